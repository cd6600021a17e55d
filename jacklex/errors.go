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

package jacklex

import (
	"errors"
	"fmt"
)

// errTooWide is returned internally by parseUint16 when a digit run would
// overflow a uint16; the caller turns it into an IntegerOutOfRange Error.
var errTooWide = errors.New("integer literal too wide")

// ErrorKind classifies a lexical failure.
type ErrorKind uint8

const (
	IntegerOutOfRange ErrorKind = iota
	InvalidInteger
	InvalidSymbol
	UnterminatedString
	UnterminatedComment
)

func (k ErrorKind) String() string {
	switch k {
	case IntegerOutOfRange:
		return "integer out of range"
	case InvalidInteger:
		return "invalid integer"
	case InvalidSymbol:
		return "invalid symbol"
	case UnterminatedString:
		return "unterminated string constant"
	case UnterminatedComment:
		return "unterminated block comment"
	default:
		return "invalid lexical error"
	}
}

// Error reports a classified lexical failure together with the line on which
// the offending lexeme (string, comment, integer or character) starts.
// Earlier tokens produced before the failure are discarded by the scanner.
type Error struct {
	Kind   ErrorKind
	Line   uint32
	Column uint16
	Text   string // offending lexeme or character, when applicable
}

func (e *Error) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%d:%d: %s: %q", e.Line, e.Column, e.Kind, e.Text)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Kind)
}
