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

package asm

import "fmt"

// ErrorKind classifies a code-generation failure. Unlike vmcmd.ErrorKind,
// this taxonomy is tiny: most malformed input is already rejected by the
// parser before it ever reaches the generator.
type ErrorKind uint8

const (
	// GlobalBranch is returned for a label/goto/if-goto command encountered
	// outside of any function. Nothing in the calling convention gives such
	// a label a meaningful scope, so it is rejected rather than silently
	// placed in some synthetic global namespace.
	GlobalBranch ErrorKind = iota
)

// Error reports a command the generator could not translate.
type Error struct {
	Kind  ErrorKind
	Line  int
	Label string
}

func (e *Error) Error() string {
	switch e.Kind {
	case GlobalBranch:
		return fmt.Sprintf("line %d: %s used outside of any function", e.Line, e.Label)
	default:
		return fmt.Sprintf("line %d: code generation error", e.Line)
	}
}
