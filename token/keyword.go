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

package token

// KeywordID identifies one of the 21 reserved words of the Jack language.
type KeywordID uint8

// Jack keywords, in the order they appear in the language grammar.
const (
	KeywordClass KeywordID = iota
	KeywordConstructor
	KeywordFunction
	KeywordMethod
	KeywordField
	KeywordStatic
	KeywordVar
	KeywordInt
	KeywordChar
	KeywordBoolean
	KeywordVoid
	KeywordTrue
	KeywordFalse
	KeywordNull
	KeywordThis
	KeywordLet
	KeywordIf
	KeywordElse
	KeywordWhile
	KeywordReturn
	KeywordDo
)

var keywordText = [...]string{
	KeywordClass:       "class",
	KeywordConstructor: "constructor",
	KeywordFunction:    "function",
	KeywordMethod:      "method",
	KeywordField:       "field",
	KeywordStatic:      "static",
	KeywordVar:         "var",
	KeywordInt:         "int",
	KeywordChar:        "char",
	KeywordBoolean:     "boolean",
	KeywordVoid:        "void",
	KeywordTrue:        "true",
	KeywordFalse:       "false",
	KeywordNull:        "null",
	KeywordThis:        "this",
	KeywordLet:         "let",
	KeywordIf:          "if",
	KeywordElse:        "else",
	KeywordWhile:       "while",
	KeywordReturn:      "return",
	KeywordDo:          "do",
}

var keywordIndex = func() map[string]KeywordID {
	m := make(map[string]KeywordID, len(keywordText))
	for k, s := range keywordText {
		m[s] = KeywordID(k)
	}
	return m
}()

// String returns the keyword's Jack source spelling.
func (k KeywordID) String() string { return keywordText[k] }

// LookupKeyword returns the Keyword matching s and true, or the zero Keyword
// and false if s is not one of the 21 reserved words.
func LookupKeyword(s string) (KeywordID, bool) {
	k, ok := keywordIndex[s]
	return k, ok
}
