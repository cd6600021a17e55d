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
	"strings"

	"github.com/hackcore/nand2tetris/vmcmd"
)

// Generator translates vmcmd.Commands into Hack assembly text. The zero
// value is ready to use; call SetFile before translating each source file so
// static-segment symbols are scoped correctly.
type Generator struct {
	out             strings.Builder
	labelID         uint32
	currentFunction string
	fileBase        string
}

// New returns a ready-to-use Generator.
func New() *Generator {
	return &Generator{}
}

// SetFile sets the file stem used to scope `static` segment symbols
// (emitted as "stem.index") and clears the current function, since function
// scope never crosses a file boundary.
func (g *Generator) SetFile(stem string) {
	g.fileBase = stem
	g.currentFunction = ""
}

func (g *Generator) nextLabel() uint32 {
	g.labelID++
	return g.labelID
}

func (g *Generator) emit(format string, args ...interface{}) {
	fmt.Fprintf(&g.out, format+"\n", args...)
}

func (g *Generator) comment(c vmcmd.Command) {
	g.emit("// %s", c)
}

// pushD writes the D register to the top of the stack and advances SP.
func (g *Generator) pushD() {
	g.emit("@SP")
	g.emit("A=M")
	g.emit("M=D")
	g.emit("@SP")
	g.emit("M=M+1")
}

// popD retreats SP and loads the freed cell into D.
func (g *Generator) popD() {
	g.emit("@SP")
	g.emit("AM=M-1")
	g.emit("D=M")
}

// pushConst emits the standard push sequence for a literal -1 or 0, used by
// the comparison operators to deposit their boolean result.
func (g *Generator) pushConst(v int) {
	g.emit("@SP")
	g.emit("A=M")
	g.emit("M=%d", v)
	g.emit("@SP")
	g.emit("M=M+1")
}

// Bootstrap emits the standard SP=256 preamble followed by a call to
// Sys.init. It must run before any file's commands are translated, and at
// most once per translation run.
func (g *Generator) Bootstrap() error {
	g.emit("// bootstrap")
	g.emit("@256")
	g.emit("D=A")
	g.emit("@SP")
	g.emit("M=D")
	return g.genCall(vmcmd.Command{Name: "Sys.init", NArgs: 0})
}

// Generate translates cmds in source order, appending Hack assembly lines to
// the generator's internal buffer. On the first command that cannot be
// translated, it stops and returns an *Error carrying the command's source
// line.
func (g *Generator) Generate(cmds []vmcmd.Command) error {
	for _, c := range cmds {
		g.comment(c)

		var err error
		switch c.Kind {
		case vmcmd.KindPush:
			err = g.genPush(c)
		case vmcmd.KindPop:
			err = g.genPop(c)
		case vmcmd.KindArithmetic:
			err = g.genArithmetic(c)
		case vmcmd.KindBranch:
			err = g.genBranch(c)
		case vmcmd.KindFunction:
			err = g.genFunction(c)
		}
		if err != nil {
			if e, ok := err.(*Error); ok {
				e.Line = c.Line
			}
			return err
		}
	}
	return nil
}

// String returns the translated assembly accumulated so far.
func (g *Generator) String() string { return g.out.String() }

// Bytes returns the translated assembly accumulated so far.
func (g *Generator) Bytes() []byte { return []byte(g.out.String()) }
