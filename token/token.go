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

// Package token defines the lexical atoms shared by the Jack lexer: a closed
// set of token kinds, each carrying a Span that locates it in the immutable
// source buffer it was scanned from.
package token

import "fmt"

// Kind is the closed set of token variants the lexer produces.
type Kind uint8

const (
	Keyword Kind = iota
	SymbolKind
	IntegerConstant
	StringConstant
	Identifier
	EOF
)

func (k Kind) String() string {
	switch k {
	case Keyword:
		return "Keyword"
	case SymbolKind:
		return "Symbol"
	case IntegerConstant:
		return "IntegerConstant"
	case StringConstant:
		return "StringConstant"
	case Identifier:
		return "Identifier"
	case EOF:
		return "Eof"
	default:
		return "Invalid"
	}
}

// Span locates a token in its source buffer. All fields are large enough to
// address any realistic Jack source file: a 32-bit byte offset, a 16-bit
// length (no single token exceeds 64KiB), a 32-bit line number and a 16-bit
// column.
type Span struct {
	Offset uint32
	Len    uint16
	Line   uint32
	Column uint16
}

// End returns the offset one past the token's last byte.
func (s Span) End() uint32 { return s.Offset + uint32(s.Len) }

// Token is a lexical atom together with its source position. Text always
// holds the raw lexeme as it appeared in the source (a slice of the source
// string, not a copy); IntValue holds the decoded payload for IntegerConstant
// and StrValue the one for StringConstant (the literal's content, quotes
// stripped, itself also a slice of the source). Keyword and SymbolID are valid only
// when Kind is Keyword or SymbolKind respectively.
type Token struct {
	Kind     Kind
	Span     Span
	Text     string
	Keyword  KeywordID
	SymbolID Symbol
	IntValue uint16
	StrValue string
}

func (t Token) String() string {
	switch t.Kind {
	case Keyword:
		return fmt.Sprintf("Keyword(%s)", t.Keyword)
	case SymbolKind:
		return fmt.Sprintf("Symbol(%s)", t.SymbolID)
	case IntegerConstant:
		return fmt.Sprintf("IntegerConstant(%d)", t.IntValue)
	case StringConstant:
		return fmt.Sprintf("StringConstant(%q)", t.StrValue)
	case Identifier:
		return fmt.Sprintf("Identifier(%s)", t.Text)
	case EOF:
		return "Eof"
	default:
		return "Invalid"
	}
}
