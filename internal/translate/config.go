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

// Package translate drives the VM-to-assembly pipeline end to end: input
// discovery (single file or directory), the bootstrap decision, and
// sequential per-file parsing and code generation into one output stream.
// It is the only package in this module that touches the filesystem for the
// VM pipeline.
package translate

import "github.com/hackcore/nand2tetris/internal/diag"

// Config is the resolved, immutable configuration for one translator
// invocation. It is built once by the CLI layer from flags and positional
// arguments and passed down by value; nothing in this package reads back
// out of global or process state.
type Config struct {
	// InputPath is a .vm file or a directory of .vm files.
	InputPath string
	// OutputPath overrides the default output path computed from
	// InputPath (input.asm for a file, dir/dir.asm for a directory).
	OutputPath string
	// ForceBootstrap emits the bootstrap preamble unconditionally, instead
	// of only when a Sys.vm file is present in directory mode. Intended for
	// testing the bootstrap sequence against a standalone file.
	ForceBootstrap bool
	// Logger receives progress and diagnostic messages. A nil Logger is
	// replaced with one that discards everything.
	Logger *diag.Logger
}

func (c Config) logger() *diag.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return diag.NewLogger(discard{})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
