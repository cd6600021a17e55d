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

// Package asm translates a stream of vmcmd.Commands into Hack assembly text.
//
// A Generator owns exactly two pieces of mutable state across a translation
// run: a monotonically increasing label id, used to keep every comparison,
// function-local loop and call-site return label unique, and the name of the
// most recently declared function, used to scope label/goto/if-goto targets
// as "FUNCTION$LABEL". Static variables are scoped to the file currently
// being translated, set with SetFile before each file's commands are fed in.
//
// Memory access compiles down to two recurring fragments: pushD writes the D
// register to the top of the stack and advances SP; popD retreats SP and
// loads the freed cell into D. Every push/pop, every binary operand fetch and
// every calling-convention register save reduces to one of these two shapes;
// neg and not rewrite the top cell in place, and comparisons push their -1/0
// result as a literal.
//
// Signed comparisons (eq, gt, lt) do not subtract operands directly: for
// operands near the ends of the 16-bit range, x-y can overflow and produce a
// sign bit that says the opposite of the true comparison. Instead each
// comparison branches on the sign of x first, resolves the two mixed-sign
// cases immediately without subtracting, and only subtracts when x and y
// share a sign (where the difference is guaranteed to fit).
package asm
