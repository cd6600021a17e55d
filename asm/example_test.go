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

package asm_test

import (
	"fmt"

	"github.com/hackcore/nand2tetris/asm"
	"github.com/hackcore/nand2tetris/vmcmd"
)

func ExampleGenerator_Generate() {
	cmds, err := vmcmd.Parse("push constant 2\npush constant 3\nadd\n")
	if err != nil {
		panic(err)
	}

	g := asm.New()
	g.SetFile("Main")
	if err := g.Generate(cmds); err != nil {
		panic(err)
	}

	fmt.Print(g.String())
	// Output:
	// // push constant 2
	// @2
	// D=A
	// @SP
	// A=M
	// M=D
	// @SP
	// M=M+1
	// // push constant 3
	// @3
	// D=A
	// @SP
	// A=M
	// M=D
	// @SP
	// M=M+1
	// // add
	// @SP
	// AM=M-1
	// D=M
	// A=A-1
	// M=M+D
}
