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

package vmcmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackcore/nand2tetris/vmcmd"
)

func TestParseStripsCommentsAndBlankLines(t *testing.T) {
	src := "// a comment\n\npush constant 7 // push 7\n  \nadd\n"
	cmds, err := vmcmd.Parse(src)
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, "push constant 7", cmds[0].String())
	assert.Equal(t, 3, cmds[0].Line)
	assert.Equal(t, "add", cmds[1].String())
	assert.Equal(t, 5, cmds[1].Line)
}

func TestParseAllArithmetic(t *testing.T) {
	for _, op := range []string{"add", "sub", "neg", "eq", "gt", "lt", "and", "or", "not"} {
		cmds, err := vmcmd.Parse(op)
		require.NoError(t, err)
		require.Len(t, cmds, 1)
		assert.Equal(t, op, cmds[0].String())
	}
}

func TestParsePushPop(t *testing.T) {
	cmds, err := vmcmd.Parse("push local 3\npop argument 2\npush temp 7\npop pointer 1\n")
	require.NoError(t, err)
	require.Len(t, cmds, 4)
	assert.Equal(t, "push local 3", cmds[0].String())
	assert.Equal(t, "pop argument 2", cmds[1].String())
	assert.Equal(t, "push temp 7", cmds[2].String())
	assert.Equal(t, "pop pointer 1", cmds[3].String())
}

func TestParseRejectsUnknownSegment(t *testing.T) {
	_, err := vmcmd.Parse("push foo 1")
	require.Error(t, err)
	assert.Equal(t, vmcmd.InvalidSegment, err.(*vmcmd.Error).Kind)
}

func TestParseRejectsConstantOverflow(t *testing.T) {
	_, err := vmcmd.Parse("push constant 32768")
	require.Error(t, err)
	assert.Equal(t, vmcmd.InvalidConstant, err.(*vmcmd.Error).Kind)
}

func TestParseAcceptsMaxConstant(t *testing.T) {
	cmds, err := vmcmd.Parse("push constant 32767")
	require.NoError(t, err)
	require.Len(t, cmds, 1)
}

func TestParseRejectsPopConstant(t *testing.T) {
	_, err := vmcmd.Parse("pop constant 0")
	require.Error(t, err)
	assert.Equal(t, vmcmd.CannotPopConstant, err.(*vmcmd.Error).Kind)
}

func TestParseRejectsOutOfRangeFixedSegment(t *testing.T) {
	cases := []string{"push temp 8", "pop pointer 2"}
	for _, src := range cases {
		_, err := vmcmd.Parse(src)
		require.Error(t, err, src)
		assert.Equal(t, vmcmd.IndexOutOfRange, err.(*vmcmd.Error).Kind, src)
	}
}

func TestParseBranchCommands(t *testing.T) {
	cmds, err := vmcmd.Parse("label LOOP\ngoto LOOP\nif-goto LOOP\n")
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.Equal(t, "label LOOP", cmds[0].String())
	assert.Equal(t, "goto LOOP", cmds[1].String())
	assert.Equal(t, "if-goto LOOP", cmds[2].String())
}

func TestParseRejectsInvalidLabelName(t *testing.T) {
	_, err := vmcmd.Parse("label 1BAD")
	require.Error(t, err)
	assert.Equal(t, vmcmd.InvalidLabel, err.(*vmcmd.Error).Kind)
}

func TestParseAcceptsLabelWithAllowedPunctuation(t *testing.T) {
	cmds, err := vmcmd.Parse("label Foo.bar:baz$qux\n")
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, "Foo.bar:baz$qux", cmds[0].Label)
}

func TestParseFunctionCallReturn(t *testing.T) {
	cmds, err := vmcmd.Parse("function Foo.bar 2\ncall Foo.bar 3\nreturn\n")
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.Equal(t, "function Foo.bar 2", cmds[0].String())
	assert.Equal(t, "call Foo.bar 3", cmds[1].String())
	assert.Equal(t, "return", cmds[2].String())
}

func TestParseRejectsTrailingTokens(t *testing.T) {
	// Scenario: a stray extra token on an otherwise well-formed line must be
	// rejected rather than silently ignored.
	cases := []string{
		"add extra",
		"return now",
		"push constant 1 2",
		"label LOOP extra",
	}
	for _, src := range cases {
		_, err := vmcmd.Parse(src)
		require.Error(t, err, src)
		assert.Equal(t, vmcmd.UnknownCommand, err.(*vmcmd.Error).Kind, src)
	}
}

func TestParseRejectsGarbageCommand(t *testing.T) {
	_, err := vmcmd.Parse("frobnicate")
	require.Error(t, err)
	assert.Equal(t, vmcmd.UnknownCommand, err.(*vmcmd.Error).Kind)
}

func TestParseErrorCarriesLineNumber(t *testing.T) {
	src := "push constant 1\npush constant 2\npush foo 1\n"
	_, err := vmcmd.Parse(src)
	require.Error(t, err)
	assert.Equal(t, 3, err.(*vmcmd.Error).Line)
}

func TestParseRejectsNegativeIndex(t *testing.T) {
	_, err := vmcmd.Parse("push constant -1")
	require.Error(t, err)
	assert.Equal(t, vmcmd.InvalidIndex, err.(*vmcmd.Error).Kind)
}
