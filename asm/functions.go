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

import (
	"fmt"

	"github.com/hackcore/nand2tetris/vmcmd"
)

// unrollThreshold bounds how many local-variable initializations are
// unrolled inline before the generator falls back to a counted loop.
const unrollThreshold = 8

func (g *Generator) genFunction(c vmcmd.Command) error {
	switch c.Func {
	case vmcmd.FuncDeclare:
		g.currentFunction = c.Name
		g.genFunctionDeclare(c)
	case vmcmd.FuncCall:
		return g.genCall(c)
	case vmcmd.FuncReturn:
		g.genReturn()
	}
	return nil
}

func (g *Generator) genFunctionDeclare(c vmcmd.Command) {
	g.emit("(%s)", c.Name)

	if c.NVars <= unrollThreshold {
		for i := uint16(0); i < c.NVars; i++ {
			g.pushConst(0)
		}
		return
	}

	n := g.nextLabel()
	g.emit("@%d", c.NVars)
	g.emit("D=A")
	g.emit("@R13")
	g.emit("M=D")
	g.emit("(INIT_LOCALS_%d)", n)
	g.pushConst(0)
	g.emit("@R13")
	g.emit("MD=M-1")
	g.emit("@INIT_LOCALS_%d", n)
	g.emit("D;JGT")
	g.emit("(END_INIT_%d)", n)
}

func (g *Generator) genCall(c vmcmd.Command) error {
	n := g.nextLabel()
	retLabel := fmt.Sprintf("%s$ret.%d", c.Name, n)

	g.emit("@%s", retLabel)
	g.emit("D=A")
	g.pushD()
	for _, reg := range []string{"LCL", "ARG", "THIS", "THAT"} {
		g.emit("@%s", reg)
		g.emit("D=M")
		g.pushD()
	}
	g.emit("@SP")
	g.emit("D=M")
	g.emit("@5")
	g.emit("D=D-A")
	g.emit("@%d", c.NArgs)
	g.emit("D=D-A")
	g.emit("@ARG")
	g.emit("M=D")
	g.emit("@SP")
	g.emit("D=M")
	g.emit("@LCL")
	g.emit("M=D")
	g.emit("@%s", c.Name)
	g.emit("0;JMP")
	g.emit("(%s)", retLabel)
	return nil
}

func (g *Generator) genReturn() {
	g.emit("@LCL")
	g.emit("D=M")
	g.emit("@R13")
	g.emit("M=D") // R13 = frame

	g.emit("@5")
	g.emit("A=D-A")
	g.emit("D=M")
	g.emit("@R14")
	g.emit("M=D") // R14 = *(frame-5), saved before ARG/SP are touched

	g.popD()
	g.emit("@ARG")
	g.emit("A=M")
	g.emit("M=D") // *ARG = return value

	g.emit("@ARG")
	g.emit("D=M+1")
	g.emit("@SP")
	g.emit("M=D") // SP = ARG+1

	for _, reg := range []string{"THAT", "THIS", "ARG", "LCL"} {
		g.emit("@R13")
		g.emit("AM=M-1")
		g.emit("D=M")
		g.emit("@%s", reg)
		g.emit("M=D")
	}

	g.emit("@R14")
	g.emit("A=M")
	g.emit("0;JMP")
}
