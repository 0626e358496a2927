// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/schollz/cli/v2"
	log "github.com/schollz/logger"
	"golang.org/x/sync/errgroup"

	"github.com/destiny/z85/curvekey"
)

// commands holds the actions, bound to the input the app was built with.
type commands struct {
	in io.Reader // stdin
}

func (cmd *commands) encode(c *cli.Context) error {
	codec := codecFor(c)
	outputs, err := cmd.transform(c, func(data []byte) ([]byte, error) {
		return codec.AppendEncode(nil, data), nil
	})
	if err != nil {
		return err
	}
	for _, out := range outputs {
		if _, err := fmt.Fprintf(c.App.Writer, "%s\n", out); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *commands) decode(c *cli.Context) error {
	codec := codecFor(c)
	outputs, err := cmd.transform(c, func(data []byte) ([]byte, error) {
		return codec.DecodeBytes(bytes.TrimSpace(data))
	})
	if err != nil {
		return err
	}

	newline := c.Bool("newline") || isTerminal(c.App.Writer)
	for _, out := range outputs {
		if newline {
			out = append(out, '\n')
		}
		if _, err := c.App.Writer.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *commands) check(c *cli.Context) error {
	codec := codecFor(c)

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(cmd.in)
		for scanner.Scan() {
			inputs = append(inputs, string(bytes.TrimSpace(scanner.Bytes())))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	invalid := 0
	for _, in := range inputs {
		status := "ok"
		if err := codec.ValidateString(in); err != nil {
			invalid++
			status = err.Error()
		}
		if _, err := fmt.Fprintf(c.App.Writer, "%q: %s\n", in, status); err != nil {
			return err
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d inputs are not valid Z85", invalid, len(inputs))
	}
	return nil
}

func (cmd *commands) keygen(c *cli.Context) error {
	kp, err := curvekey.GenerateKeyPair(rand.Reader)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.App.Writer, "public: %s\nsecret: %s\n", kp.PublicKeyZ85(), kp.SecretKeyZ85()); err != nil {
		return err
	}
	if c.Bool("hex") {
		if _, err := fmt.Fprintf(c.App.Writer, "public-hex: %s\nsecret-hex: %s\n", kp.PublicKeyHex(), kp.SecretKeyHex()); err != nil {
			return err
		}
	}
	return nil
}

// transform applies fn to stdin, or to every file argument concurrently.
// Results are returned in argument order.
func (cmd *commands) transform(c *cli.Context, fn func([]byte) ([]byte, error)) ([][]byte, error) {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		data, err := io.ReadAll(cmd.in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		log.Debugf("read %d bytes from stdin", len(data))
		out, err := fn(data)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return [][]byte{out}, nil
	}
	return transformFiles(c.Context, paths, fn)
}

func transformFiles(ctx context.Context, paths []string, fn func([]byte) ([]byte, error)) ([][]byte, error) {
	outputs := make([][]byte, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			log.Debugf("%s: read %d bytes", path, len(data))
			out, err := fn(data)
			if err != nil {
				log.Errorf("%s: %v", path, err)
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
