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

package diag

import (
	"io"
	"log"
)

// Logger is a minimal leveled wrapper around the standard log package.
// Verbose gates Debugf; Infof and Errorf always print.
type Logger struct {
	out     *log.Logger
	Verbose bool
}

// NewLogger returns a Logger writing to w with no timestamp prefix, matching
// the plain, greppable single-line diagnostics the CLI layer prints.
func NewLogger(w io.Writer) *Logger {
	return &Logger{out: log.New(w, "", 0)}
}

// Infof always prints a progress message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.out.Printf(format, args...)
}

// Debugf prints only when Verbose is set.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.Verbose {
		l.out.Printf(format, args...)
	}
}

// Errorf always prints a diagnostic-prefixed failure message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.out.Printf("error: "+format, args...)
}
