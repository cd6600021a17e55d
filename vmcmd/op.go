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

package vmcmd

// Op is one of the nine no-operand arithmetic/logical VM commands.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpNeg
	OpEq
	OpGt
	OpLt
	OpAnd
	OpOr
	OpNot
)

var opText = [...]string{
	OpAdd: "add",
	OpSub: "sub",
	OpNeg: "neg",
	OpEq:  "eq",
	OpGt:  "gt",
	OpLt:  "lt",
	OpAnd: "and",
	OpOr:  "or",
	OpNot: "not",
}

var opIndex = func() map[string]Op {
	m := make(map[string]Op, len(opText))
	for o, text := range opText {
		m[text] = Op(o)
	}
	return m
}()

func (o Op) String() string { return opText[o] }

// LookupOp returns the Op named s and true, or the zero value and false if s
// is not one of the nine arithmetic/logical mnemonics.
func LookupOp(s string) (Op, bool) {
	o, ok := opIndex[s]
	return o, ok
}

// IsComparison reports whether o is one of the three comparison operators
// that require a fresh label id from the code generator.
func (o Op) IsComparison() bool {
	return o == OpEq || o == OpGt || o == OpLt
}

// BranchKind distinguishes the three control-flow forms.
type BranchKind uint8

const (
	BranchLabel BranchKind = iota
	BranchGoto
	BranchIfGoto
)

var branchText = [...]string{
	BranchLabel:  "label",
	BranchGoto:   "goto",
	BranchIfGoto: "if-goto",
}

func (b BranchKind) String() string { return branchText[b] }

// FuncKind distinguishes the three function-related commands.
type FuncKind uint8

const (
	FuncDeclare FuncKind = iota
	FuncCall
	FuncReturn
)
