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

// Package vmcmd defines the VM command model (a closed tagged variant for
// every opcode of the nand2tetris stack machine) and the line-oriented
// parser that turns VM source text into a stream of Commands.
package vmcmd

import "fmt"

// Kind is the closed set of VM command variants.
type Kind uint8

const (
	KindPush Kind = iota
	KindPop
	KindArithmetic
	KindBranch
	KindFunction
)

// Command is a single parsed VM instruction. Only the fields relevant to
// Kind are meaningful; this mirrors a tagged union (discriminant + per-variant
// payload) rather than a class hierarchy, per the closed-vocabulary design of
// every "kind" in this system.
type Command struct {
	Kind Kind
	Line int // 1-based source line, for diagnostics

	// KindPush, KindPop
	Segment Segment
	Index   uint16

	// KindArithmetic
	Op Op

	// KindBranch
	Branch BranchKind
	Label  string

	// KindFunction
	Func  FuncKind
	Name  string
	NArgs uint16 // FuncCall argument count
	NVars uint16 // FuncDeclare local count
}

func (c Command) String() string {
	switch c.Kind {
	case KindPush:
		return fmt.Sprintf("push %s %d", c.Segment, c.Index)
	case KindPop:
		return fmt.Sprintf("pop %s %d", c.Segment, c.Index)
	case KindArithmetic:
		return c.Op.String()
	case KindBranch:
		return fmt.Sprintf("%s %s", c.Branch, c.Label)
	case KindFunction:
		switch c.Func {
		case FuncDeclare:
			return fmt.Sprintf("function %s %d", c.Name, c.NVars)
		case FuncCall:
			return fmt.Sprintf("call %s %d", c.Name, c.NArgs)
		case FuncReturn:
			return "return"
		}
	}
	return "<invalid command>"
}
