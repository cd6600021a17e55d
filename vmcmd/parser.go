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

import (
	"strconv"
	"strings"
)

// Parse strips comments, trims and skips blank lines, then parses every
// surviving line into a Command, in source order. On the first malformed
// line, it returns the accumulated commands discarded and an *Error carrying
// the offending 1-based line number.
func Parse(source string) ([]Command, error) {
	var cmds []Command
	for i, raw := range strings.Split(source, "\n") {
		lineNum := i + 1
		line := raw
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd, err := parseLine(line)
		if err != nil {
			if e, ok := err.(*Error); ok {
				e.Line = lineNum
			}
			return nil, err
		}
		cmd.Line = lineNum
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func parseLine(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, &Error{Kind: UnknownCommand, Text: line}
	}

	switch fields[0] {
	case "push", "pop":
		return parseMemory(fields)
	case "add", "sub", "neg", "eq", "gt", "lt", "and", "or", "not":
		if len(fields) != 1 {
			return Command{}, &Error{Kind: UnknownCommand, Text: line}
		}
		op, _ := LookupOp(fields[0])
		return Command{Kind: KindArithmetic, Op: op}, nil
	case "label", "goto", "if-goto":
		return parseBranch(fields)
	case "function", "call":
		return parseFunction(fields)
	case "return":
		if len(fields) != 1 {
			return Command{}, &Error{Kind: UnknownCommand, Text: line}
		}
		return Command{Kind: KindFunction, Func: FuncReturn}, nil
	default:
		return Command{}, &Error{Kind: UnknownCommand, Text: line}
	}
}

func parseMemory(fields []string) (Command, error) {
	if len(fields) != 3 {
		return Command{}, &Error{Kind: UnknownCommand, Text: strings.Join(fields, " ")}
	}
	isPush := fields[0] == "push"

	seg, ok := LookupSegment(fields[1])
	if !ok {
		return Command{}, &Error{Kind: InvalidSegment, Text: fields[1]}
	}

	index, ok := parseOperand(fields[2])
	if !ok {
		return Command{}, &Error{Kind: InvalidIndex, Text: fields[2]}
	}

	if !isPush && seg == SegmentConstant {
		return Command{}, &Error{Kind: CannotPopConstant}
	}
	if seg == SegmentConstant && index > 32767 {
		return Command{}, &Error{Kind: InvalidConstant, Index: index}
	}
	if max, bounded := seg.MaxIndex(); bounded && index > max {
		return Command{}, &Error{Kind: IndexOutOfRange, Segment: seg, Index: index, Max: max}
	}

	kind := KindPush
	if !isPush {
		kind = KindPop
	}
	return Command{Kind: kind, Segment: seg, Index: index}, nil
}

func parseBranch(fields []string) (Command, error) {
	if len(fields) != 2 {
		return Command{}, &Error{Kind: UnknownCommand, Text: strings.Join(fields, " ")}
	}
	if !isValidLabel(fields[1]) {
		return Command{}, &Error{Kind: InvalidLabel, Text: fields[1]}
	}
	var kind BranchKind
	switch fields[0] {
	case "label":
		kind = BranchLabel
	case "goto":
		kind = BranchGoto
	case "if-goto":
		kind = BranchIfGoto
	}
	return Command{Kind: KindBranch, Branch: kind, Label: fields[1]}, nil
}

func parseFunction(fields []string) (Command, error) {
	if len(fields) != 3 {
		return Command{}, &Error{Kind: UnknownCommand, Text: strings.Join(fields, " ")}
	}
	isFunction := fields[0] == "function"
	name := fields[1]

	count, ok := parseOperand(fields[2])
	if !ok {
		if isFunction {
			return Command{}, &Error{Kind: InvalidVarCount, Text: fields[2]}
		}
		return Command{}, &Error{Kind: InvalidArgCount, Text: fields[2]}
	}

	if isFunction {
		return Command{Kind: KindFunction, Func: FuncDeclare, Name: name, NVars: count}, nil
	}
	return Command{Kind: KindFunction, Func: FuncCall, Name: name, NArgs: count}, nil
}

// parseOperand parses an unsigned 16-bit decimal operand. VM operands are
// never negative and never exceed 65535 (parseMemory rejects values that
// overflow a segment's own, tighter bound separately).
func parseOperand(s string) (uint16, bool) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// isValidLabel reports whether name matches [A-Za-z_.:$][A-Za-z0-9_.:$]*.
func isValidLabel(name string) bool {
	if name == "" {
		return false
	}
	if !isLabelHead(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isLabelTail(name[i]) {
			return false
		}
	}
	return true
}

func isLabelHead(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
		c == '_' || c == '.' || c == ':' || c == '$'
}

func isLabelTail(c byte) bool {
	return isLabelHead(c) || (c >= '0' && c <= '9')
}
