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

// Package tokendump drives the Jack lexer end to end over a file or
// directory and renders its token stream in a stable, greppable format. It
// exists purely to exercise jacklex's consumption interface; jacklex
// itself performs no I/O.
package tokendump

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/hackcore/nand2tetris/internal/diag"
	"github.com/hackcore/nand2tetris/jacklex"
)

// Config resolves one jacktokens invocation.
type Config struct {
	// InputPath is a .jack file or a directory of .jack files.
	InputPath string
	// OutputPath overrides the default (stdout) destination.
	OutputPath string
}

// Run tokenizes every .jack file named by cfg.InputPath, in sorted order for
// directories, and writes one line per token to the resolved destination.
func Run(cfg Config) error {
	files, err := discover(cfg.InputPath)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if cfg.OutputPath != "" {
		f, createErr := os.Create(cfg.OutputPath)
		if createErr != nil {
			return errors.Wrap(diag.New(diag.IO, cfg.OutputPath, createErr.Error()), "creating output")
		}
		defer f.Close()
		w = f
	}

	for _, path := range files {
		if err := dumpFile(w, path); err != nil {
			return err
		}
	}
	return nil
}

func discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, diag.New(diag.IO, path, err.Error())
	}
	if !info.IsDir() {
		if !strings.HasSuffix(path, ".jack") {
			return nil, diag.New(diag.InputShape, path, "expected a .jack file or a directory")
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, diag.New(diag.IO, path, err.Error())
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jack") {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	if len(files) == 0 {
		return nil, diag.New(diag.InputShape, path, "directory contains no .jack files")
	}
	sort.Strings(files)
	return files, nil
}

func dumpFile(w io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(diag.New(diag.IO, path, err.Error()), "reading %s", path)
	}

	toks, err := jacklex.Tokenize(string(src))
	if err != nil {
		if le, ok := err.(*jacklex.Error); ok {
			return errors.Wrapf(diag.AtLine(diag.Lexical, path, int(le.Line), err.Error()), "tokenizing %s", path)
		}
		return errors.Wrapf(diag.New(diag.Lexical, path, err.Error()), "tokenizing %s", path)
	}

	for _, tk := range toks {
		fmt.Fprintf(w, "%s\t%s\t%d:%d\n", tk, path, tk.Span.Line, tk.Span.Column)
	}
	return nil
}
