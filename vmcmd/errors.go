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

import "fmt"

// ErrorKind classifies a VM parse failure.
type ErrorKind uint8

const (
	UnknownCommand ErrorKind = iota
	InvalidSegment
	InvalidIndex
	IndexOutOfRange
	InvalidConstant
	CannotPopConstant
	InvalidLabel
	InvalidVarCount
	InvalidArgCount
)

// Error reports a single line of VM source that failed to parse into a
// Command. Line is the 1-based line number within the source text passed to
// Parse, counting comment-only and blank lines.
type Error struct {
	Kind    ErrorKind
	Line    int
	Text    string // offending token or line, when applicable
	Segment Segment
	Index   uint16
	Max     uint16
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownCommand:
		return fmt.Sprintf("line %d: unknown command: %s", e.Line, e.Text)
	case InvalidSegment:
		return fmt.Sprintf("line %d: invalid segment: %s", e.Line, e.Text)
	case InvalidIndex:
		return fmt.Sprintf("line %d: invalid index: %s", e.Line, e.Text)
	case IndexOutOfRange:
		return fmt.Sprintf("line %d: invalid index %d for %s (expected 0-%d)", e.Line, e.Index, e.Segment, e.Max)
	case InvalidConstant:
		return fmt.Sprintf("line %d: constant %d exceeds 15-bit max (32767)", e.Line, e.Index)
	case CannotPopConstant:
		return fmt.Sprintf("line %d: cannot pop to constant segment", e.Line)
	case InvalidLabel:
		return fmt.Sprintf("line %d: invalid label: %s", e.Line, e.Text)
	case InvalidVarCount:
		return fmt.Sprintf("line %d: invalid variable count: %s", e.Line, e.Text)
	case InvalidArgCount:
		return fmt.Sprintf("line %d: invalid argument count: %s", e.Line, e.Text)
	default:
		return fmt.Sprintf("line %d: invalid command", e.Line)
	}
}
