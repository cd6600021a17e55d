// This file is part of the Nand2Tetris toolchain core.
//
// Copyright 2026 The Nand2Tetris Toolchain Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command jacktokens tokenizes a .jack file or a directory of .jack files
// and prints one token per line in a stable, greppable format. It and
// internal/tokendump, which it drives, are the only Jack-pipeline components
// that touch os.Stdout; only this command sets exit codes. jacklex itself
// never does I/O.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hackcore/nand2tetris/internal/diag"
	"github.com/hackcore/nand2tetris/internal/tokendump"
)

var outPath string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jacktokens <file.jack | directory>",
		Short: "Print the Jack lexer's token stream for a file or directory",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return diag.New(diag.InputShape, "", "expected exactly one argument: a .jack file or a directory")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tokendump.Run(tokendump.Config{InputPath: args[0], OutputPath: outPath})
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output path (defaults to stdout)")
	return cmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if diag.Is(err, diag.InputShape) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
