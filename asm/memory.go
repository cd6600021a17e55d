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

// segmentBase returns the Hack symbol holding the base address of a
// pointer-indirect segment. Only local/argument/this/that are indirected
// this way; static, pointer and temp address memory directly.
func segmentBase(s vmcmd.Segment) string {
	switch s {
	case vmcmd.SegmentLocal:
		return "LCL"
	case vmcmd.SegmentArgument:
		return "ARG"
	case vmcmd.SegmentThis:
		return "THIS"
	case vmcmd.SegmentThat:
		return "THAT"
	}
	return ""
}

func (g *Generator) genPush(c vmcmd.Command) error {
	switch c.Segment {
	case vmcmd.SegmentConstant:
		g.emit("@%d", c.Index)
		g.emit("D=A")
	case vmcmd.SegmentLocal, vmcmd.SegmentArgument, vmcmd.SegmentThis, vmcmd.SegmentThat:
		g.emit("@%s", segmentBase(c.Segment))
		g.emit("D=M")
		g.emit("@%d", c.Index)
		g.emit("A=D+A")
		g.emit("D=M")
	case vmcmd.SegmentStatic:
		g.emit("@%s.%d", g.fileBase, c.Index)
		g.emit("D=M")
	case vmcmd.SegmentPointer:
		if c.Index == 0 {
			g.emit("@THIS")
		} else {
			g.emit("@THAT")
		}
		g.emit("D=M")
	case vmcmd.SegmentTemp:
		g.emit("@%d", 5+c.Index)
		g.emit("D=M")
	}
	g.pushD()
	return nil
}

func (g *Generator) genPop(c vmcmd.Command) error {
	switch c.Segment {
	case vmcmd.SegmentLocal, vmcmd.SegmentArgument, vmcmd.SegmentThis, vmcmd.SegmentThat:
		// Precompute the effective address into R13 before popping, since
		// popD's own decrement clobbers D.
		g.emit("@%s", segmentBase(c.Segment))
		g.emit("D=M")
		g.emit("@%d", c.Index)
		g.emit("D=D+A")
		g.emit("@R13")
		g.emit("M=D")
		g.popD()
		g.emit("@R13")
		g.emit("A=M")
		g.emit("M=D")
	case vmcmd.SegmentStatic:
		g.popD()
		g.emit("@%s.%d", g.fileBase, c.Index)
		g.emit("M=D")
	case vmcmd.SegmentPointer:
		g.popD()
		if c.Index == 0 {
			g.emit("@THIS")
		} else {
			g.emit("@THAT")
		}
		g.emit("M=D")
	case vmcmd.SegmentTemp:
		g.popD()
		g.emit("@%d", 5+c.Index)
		g.emit("M=D")
	}
	return nil
}
