// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command z85 encodes and decodes ZeroMQ Base-85 text.
package main

import (
	"fmt"
	"os"

	"github.com/destiny/z85/internal/cli"
)

func main() {
	if err := cli.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "z85:", err)
		os.Exit(1)
	}
}
