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

// Package diag carries the uniform, structured error/event record shared by
// both CLI drivers (vmtranslator, jacktokens) and a small leveled logger
// built on the standard log package.
package diag

import "fmt"

// Kind classifies the origin of a surfaced error, per the four-way taxonomy
// every package boundary in this toolchain reports against.
type Kind uint8

const (
	IO Kind = iota
	Lexical
	Parse
	InputShape
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "io"
	case Lexical:
		return "lexical"
	case Parse:
		return "parse"
	case InputShape:
		return "input"
	default:
		return "unknown"
	}
}

// Diagnostic is a uniform, structured record of one surfaced error: enough
// to locate its cause (path, 1-based line) and describe it to a human. Line
// is 0 when not applicable (e.g. a whole-file I/O failure).
type Diagnostic struct {
	Kind    Kind
	Path    string
	Line    int
	Message string
}

func (d Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", d.Kind, d.Path, d.Line, d.Message)
	}
	if d.Path != "" {
		return fmt.Sprintf("%s: %s: %s", d.Kind, d.Path, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// New builds a Diagnostic of the given kind for path, with no line context.
func New(kind Kind, path, message string) Diagnostic {
	return Diagnostic{Kind: kind, Path: path, Message: message}
}

// AtLine builds a Diagnostic of the given kind for path at a 1-based line.
func AtLine(kind Kind, path string, line int, message string) Diagnostic {
	return Diagnostic{Kind: kind, Path: path, Line: line, Message: message}
}

// As unwraps err, through any github.com/pkg/errors wrapping, looking for
// the Diagnostic at its root.
func As(err error) (Diagnostic, bool) {
	for err != nil {
		if d, ok := err.(Diagnostic); ok {
			return d, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return Diagnostic{}, false
		}
		err = u.Unwrap()
	}
	return Diagnostic{}, false
}

// Is reports whether err's causal chain contains a Diagnostic of kind. CLI
// entry points use this to pick an exit code without caring how deep the
// Diagnostic was wrapped.
func Is(err error, kind Kind) bool {
	d, ok := As(err)
	return ok && d.Kind == kind
}
