// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the z85 command line tool.
package cli

import (
	"io"
	"os"

	"github.com/schollz/cli/v2"
	log "github.com/schollz/logger"
	"golang.org/x/term"

	"github.com/destiny/z85"
)

// Version is set at build time.
var Version = "dev"

// Run runs the tool with the process's standard streams.
func Run(args []string) error {
	return NewApp(os.Stdin, os.Stdout, os.Stderr).Run(args)
}

// NewApp builds the command line application reading from in and writing
// to out and errOut.
func NewApp(in io.Reader, out, errOut io.Writer) *cli.App {
	cmds := &commands{in: in}
	return &cli.App{
		Name:      "z85",
		Usage:     "encode and decode ZeroMQ Base-85 text",
		Version:   Version,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "increase verbosity", EnvVars: []string{"Z85_DEBUG"}},
			&cli.BoolFlag{Name: "quiet", Usage: "only log errors", EnvVars: []string{"Z85_QUIET"}},
			&cli.BoolFlag{Name: "strict", Usage: "reject non-canonical encodings", EnvVars: []string{"Z85_STRICT"}},
		},
		Before: func(c *cli.Context) error {
			setLogLevel(levelFor(c.Bool("debug"), c.Bool("quiet")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "encode files (or stdin), one line per input",
				ArgsUsage: "[file...]",
				Action:    cmds.encode,
			},
			{
				Name:      "decode",
				Usage:     "decode files (or stdin) to raw bytes",
				ArgsUsage: "[file...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "newline", Usage: "terminate each output with a newline (default when stdout is a terminal)"},
				},
				Action: cmds.decode,
			},
			{
				Name:      "check",
				Usage:     "validate Z85 text given as arguments (or stdin lines)",
				ArgsUsage: "[text...]",
				Action:    cmds.check,
			},
			{
				Name:  "keygen",
				Usage: "generate a CURVE key pair in Z85",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "hex", Usage: "also print the keys in hex"},
				},
				Action: cmds.keygen,
			},
		},
	}
}

// codecFor returns the codec selected by the global flags.
func codecFor(c *cli.Context) *z85.Codec {
	if c.Bool("strict") {
		log.Debug("strict decoding")
		return z85.StrictCodec
	}
	return z85.StdCodec
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
