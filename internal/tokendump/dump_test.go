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

package tokendump_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackcore/nand2tetris/internal/diag"
	"github.com/hackcore/nand2tetris/internal/tokendump"
)

func TestRunWritesOneLinePerToken(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Foo.jack")
	require.NoError(t, os.WriteFile(src, []byte("class Foo {}"), 0o644))
	out := filepath.Join(dir, "tokens.txt")

	err := tokendump.Run(tokendump.Config{InputPath: src, OutputPath: out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Keyword(class)")
	assert.Contains(t, string(data), "Identifier(Foo)")
	assert.Contains(t, string(data), "Eof")
}

func TestRunRejectsNonJackFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Foo.txt")
	require.NoError(t, os.WriteFile(src, []byte("class Foo {}"), 0o644))

	err := tokendump.Run(tokendump.Config{InputPath: src})
	require.Error(t, err)
	assert.True(t, diag.Is(err, diag.InputShape))
}

func TestRunSurfacesLexicalErrorWithLine(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Bad.jack")
	require.NoError(t, os.WriteFile(src, []byte("class Foo {\n  let x = \"unterminated\n}"), 0o644))

	err := tokendump.Run(tokendump.Config{InputPath: src})
	require.Error(t, err)
	d, ok := diag.As(err)
	require.True(t, ok)
	assert.Equal(t, diag.Lexical, d.Kind)
	assert.Equal(t, 2, d.Line)
}

func TestRunDirectoryModeSortsFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Zeta.jack"), []byte("class Zeta {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Alpha.jack"), []byte("class Alpha {}"), 0o644))
	out := filepath.Join(dir, "tokens.txt")

	err := tokendump.Run(tokendump.Config{InputPath: dir, OutputPath: out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	alphaIdx := indexOf(string(data), "Identifier(Alpha)")
	zetaIdx := indexOf(string(data), "Identifier(Zeta)")
	require.NotEqual(t, -1, alphaIdx)
	require.NotEqual(t, -1, zetaIdx)
	assert.Less(t, alphaIdx, zetaIdx)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
