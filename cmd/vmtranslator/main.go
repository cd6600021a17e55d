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

// Command vmtranslator converts a .vm file or a directory of .vm files into
// symbolic Hack assembly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hackcore/nand2tetris/internal/diag"
	"github.com/hackcore/nand2tetris/internal/translate"
)

var (
	outPath        string
	verbose        bool
	forceBootstrap bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vmtranslator <file.vm | directory>",
		Short: "Translate Hack VM code into symbolic Hack assembly",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return diag.New(diag.InputShape, "", "expected exactly one argument: a .vm file or a directory")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := diag.NewLogger(cmd.ErrOrStderr())
			logger.Verbose = verbose

			res, err := translate.Run(translate.Config{
				InputPath:      args[0],
				OutputPath:     outPath,
				ForceBootstrap: forceBootstrap,
				Logger:         logger,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d file(s) translated)\n", res.OutputPath, len(res.FilesTranslated))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output path (defaults to input.asm or dir/dir.asm)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print a full causal error chain on failure")
	cmd.Flags().BoolVar(&forceBootstrap, "force-bootstrap", false, "always emit the Sys.init bootstrap, even for a single file")

	return cmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		if diag.Is(err, diag.InputShape) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
