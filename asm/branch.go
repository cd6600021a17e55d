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

import "github.com/hackcore/nand2tetris/vmcmd"

// genBranch compiles label/goto/if-goto. Labels are scoped to the enclosing
// function as "FUNCTION$LABEL" so that two functions may reuse the same
// label text without colliding; a branch with no enclosing function is
// rejected outright rather than given some synthetic global scope.
func (g *Generator) genBranch(c vmcmd.Command) error {
	if g.currentFunction == "" {
		return &Error{Kind: GlobalBranch, Label: c.String()}
	}

	scoped := g.currentFunction + "$" + c.Label
	switch c.Branch {
	case vmcmd.BranchLabel:
		g.emit("(%s)", scoped)
	case vmcmd.BranchGoto:
		g.emit("@%s", scoped)
		g.emit("0;JMP")
	case vmcmd.BranchIfGoto:
		g.popD()
		g.emit("@%s", scoped)
		g.emit("D;JNE")
	}
	return nil
}
