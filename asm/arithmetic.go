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

func (g *Generator) genArithmetic(c vmcmd.Command) error {
	switch c.Op {
	case vmcmd.OpAdd:
		g.genBinary("+")
	case vmcmd.OpSub:
		g.genBinary("-")
	case vmcmd.OpAnd:
		g.genBinary("&")
	case vmcmd.OpOr:
		g.genBinary("|")
	case vmcmd.OpNeg:
		g.genUnary("-")
	case vmcmd.OpNot:
		g.genUnary("!")
	case vmcmd.OpEq, vmcmd.OpGt, vmcmd.OpLt:
		g.genComparison(c.Op)
	}
	return nil
}

// genBinary compiles one of add/sub/and/or. symbol is "-" for sub (computed
// as x-y, the only non-commutative case) and the matching ALU operator
// otherwise.
func (g *Generator) genBinary(symbol string) {
	g.popD() // D = y
	g.emit("A=A-1")
	g.emit("M=M%sD", symbol)
}

func (g *Generator) genUnary(symbol string) {
	g.emit("@SP")
	g.emit("A=M-1")
	g.emit("M=%sM", symbol)
}

func comparisonPrefix(op vmcmd.Op) string {
	switch op {
	case vmcmd.OpEq:
		return "EQ"
	case vmcmd.OpGt:
		return "GT"
	default:
		return "LT"
	}
}

// genComparison implements the overflow-safe signed comparison protocol: the
// sign of x is checked before any subtraction is attempted, so that a
// subtraction is only ever performed on two operands that share a sign (and
// therefore cannot overflow a 16-bit difference).
func (g *Generator) genComparison(op vmcmd.Op) {
	n := g.nextLabel()
	name := comparisonPrefix(op)

	g.popD() // D = y
	g.emit("@R14")
	g.emit("M=D")
	g.popD() // D = x
	g.emit("@R13")
	g.emit("M=D")

	g.emit("@%s_X_NEG_%d", name, n)
	g.emit("D;JLT") // D still holds x

	// x >= 0: y < 0 settles the comparison without subtracting.
	g.emit("@R14")
	g.emit("D=M")
	g.emit("@%s_DIFF_XPOS_%d", name, n)
	g.emit("D;JLT")
	g.emit("@%s_SAFE_%d", name, n)
	g.emit("0;JMP")

	// x < 0: y >= 0 settles the comparison the other way.
	g.emit("(%s_X_NEG_%d)", name, n)
	g.emit("@R14")
	g.emit("D=M")
	g.emit("@%s_DIFF_XNEG_%d", name, n)
	g.emit("D;JGE")

	// Same sign: the difference cannot overflow.
	g.emit("(%s_SAFE_%d)", name, n)
	g.emit("@R13")
	g.emit("D=M")
	g.emit("@R14")
	g.emit("D=D-M")
	g.emit("@%s_TRUE_%d", name, n)
	switch op {
	case vmcmd.OpEq:
		g.emit("D;JEQ")
	case vmcmd.OpGt:
		g.emit("D;JGT")
	case vmcmd.OpLt:
		g.emit("D;JLT")
	}
	g.pushConst(0)
	g.emit("@%s_END_%d", name, n)
	g.emit("0;JMP")

	xPosTrue := op == vmcmd.OpGt // x>=0, y<0 => x>y
	g.emit("(%s_DIFF_XPOS_%d)", name, n)
	if xPosTrue {
		g.pushConst(-1)
	} else {
		g.pushConst(0)
	}
	g.emit("@%s_END_%d", name, n)
	g.emit("0;JMP")

	xNegTrue := op == vmcmd.OpLt // x<0, y>=0 => x<y
	g.emit("(%s_DIFF_XNEG_%d)", name, n)
	if xNegTrue {
		g.pushConst(-1)
	} else {
		g.pushConst(0)
	}
	g.emit("@%s_END_%d", name, n)
	g.emit("0;JMP")

	g.emit("(%s_TRUE_%d)", name, n)
	g.pushConst(-1)

	g.emit("(%s_END_%d)", name, n)
}
