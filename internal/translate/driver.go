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

package translate

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/hackcore/nand2tetris/asm"
	"github.com/hackcore/nand2tetris/internal/diag"
	"github.com/hackcore/nand2tetris/internal/ngi"
	"github.com/hackcore/nand2tetris/vmcmd"
)

// Result reports what a translation run produced, for callers (notably
// tests and the CLI's summary line) that want a summary without reparsing
// the output file.
type Result struct {
	OutputPath       string
	FilesTranslated  []string
	BootstrapEmitted bool
}

// Run discovers the input named by cfg.InputPath, translates every VM
// command it contains in sorted file order, and writes Hack assembly to the
// resolved output path. The assembly is accumulated in memory and written
// only after every file has translated, so an error from any file stops the
// run before an output file is created; a failure while writing removes the
// partially written file.
func Run(cfg Config) (Result, error) {
	log := cfg.logger()

	files, outPath, bootstrap, err := plan(cfg)
	if err != nil {
		return Result{}, err
	}
	if cfg.ForceBootstrap {
		bootstrap = true
	}

	log.Debugf("translating %d file(s) to %s (bootstrap=%v)", len(files), outPath, bootstrap)

	g := asm.New()
	if bootstrap {
		if err := g.Bootstrap(); err != nil {
			return Result{}, errors.Wrap(err, "bootstrap")
		}
	}

	for _, f := range files {
		if err := translateFile(g, f); err != nil {
			return Result{}, err
		}
		log.Debugf("translated %s", f)
	}

	if err := writeOutput(outPath, g.Bytes()); err != nil {
		return Result{}, err
	}

	log.Infof("wrote %s", outPath)
	return Result{OutputPath: outPath, FilesTranslated: files, BootstrapEmitted: bootstrap}, nil
}

// plan resolves an input path into its sorted list of .vm files, the output
// path to write, and whether the directory bootstrap rule applies.
func plan(cfg Config) (files []string, outPath string, bootstrap bool, err error) {
	info, statErr := os.Stat(cfg.InputPath)
	if statErr != nil {
		return nil, "", false, diag.New(diag.IO, cfg.InputPath, statErr.Error())
	}

	if !info.IsDir() {
		if !strings.HasSuffix(cfg.InputPath, ".vm") {
			return nil, "", false, diag.New(diag.InputShape, cfg.InputPath, "expected a .vm file or a directory")
		}
		out := cfg.OutputPath
		if out == "" {
			out = strings.TrimSuffix(cfg.InputPath, ".vm") + ".asm"
		}
		return []string{cfg.InputPath}, out, false, nil
	}

	entries, readErr := os.ReadDir(cfg.InputPath)
	if readErr != nil {
		return nil, "", false, diag.New(diag.IO, cfg.InputPath, readErr.Error())
	}

	var vmFiles []string
	hasSys := false
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".vm") {
			continue
		}
		vmFiles = append(vmFiles, filepath.Join(cfg.InputPath, e.Name()))
		if e.Name() == "Sys.vm" {
			hasSys = true
		}
	}
	if len(vmFiles) == 0 {
		return nil, "", false, diag.New(diag.InputShape, cfg.InputPath, "directory contains no .vm files")
	}
	sort.Strings(vmFiles)

	dirName := filepath.Base(filepath.Clean(cfg.InputPath))
	out := cfg.OutputPath
	if out == "" {
		out = filepath.Join(cfg.InputPath, dirName+".asm")
	}
	return vmFiles, out, hasSys, nil
}

func translateFile(g *asm.Generator, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(diag.New(diag.IO, path, err.Error()), "reading %s", path)
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".vm")
	g.SetFile(stem)

	cmds, err := vmcmd.Parse(string(src))
	if err != nil {
		return errors.Wrapf(toDiagnostic(diag.Parse, path, err), "parsing %s", path)
	}

	if err := g.Generate(cmds); err != nil {
		return errors.Wrapf(toDiagnostic(diag.Parse, path, err), "generating code for %s", path)
	}
	return nil
}

// toDiagnostic lifts a vmcmd.Error/asm.Error (both of which know their own
// 1-based line number) into a diag.Diagnostic so every error surfaced by
// this package, regardless of origin, carries the same structured shape.
func toDiagnostic(kind diag.Kind, path string, err error) diag.Diagnostic {
	var line int
	switch e := err.(type) {
	case *vmcmd.Error:
		line = e.Line
	case *asm.Error:
		line = e.Line
	}
	if line > 0 {
		return diag.AtLine(kind, path, line, err.Error())
	}
	return diag.New(kind, path, err.Error())
}

// writeOutput writes data to path through a buffered, error-tracking
// writer. On any write or flush failure the partial file is removed rather
// than left behind truncated.
func writeOutput(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(diag.New(diag.IO, path, err.Error()), "creating output")
	}

	ew := ngi.NewErrWriter(f)
	bw := bufio.NewWriter(ew)
	_, _ = bw.Write(data)
	flushErr := bw.Flush()
	closeErr := f.Close()

	if ew.Err != nil || flushErr != nil || closeErr != nil {
		os.Remove(path)
		if ew.Err != nil {
			return errors.Wrap(diag.New(diag.IO, path, ew.Err.Error()), "writing output")
		}
		if flushErr != nil {
			return errors.Wrap(diag.New(diag.IO, path, flushErr.Error()), "flushing output")
		}
		return errors.Wrap(diag.New(diag.IO, path, closeErr.Error()), "closing output")
	}
	return nil
}
