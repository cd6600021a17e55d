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

package asm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// decide mirrors genComparison's decision tree exactly (sign-of-x branch
// first, subtraction only ever attempted on same-sign operands) using plain
// int16 arithmetic, so the three-way branch protocol can be checked against
// every required boundary pair without having to execute emitted assembly.
func decide(x, y int16, op string) bool {
	if x >= 0 && y < 0 {
		switch op {
		case "gt":
			return true
		default:
			return false
		}
	}
	if x < 0 && y >= 0 {
		switch op {
		case "lt":
			return true
		default:
			return false
		}
	}
	d := x - y // safe: same sign, difference fits in int16
	switch op {
	case "eq":
		return d == 0
	case "gt":
		return d > 0
	default:
		return d < 0
	}
}

func TestComparisonProtocolMatchesNativeComparisonAtBoundaries(t *testing.T) {
	values := []int16{-32768, -1, 0, 1, 32767}
	for _, x := range values {
		for _, y := range values {
			assert.Equal(t, x == y, decide(x, y, "eq"), "eq(%d,%d)", x, y)
			assert.Equal(t, x > y, decide(x, y, "gt"), "gt(%d,%d)", x, y)
			assert.Equal(t, x < y, decide(x, y, "lt"), "lt(%d,%d)", x, y)
		}
	}
}

func TestComparisonProtocolAvoidsOverflowOnOppositeExtremes(t *testing.T) {
	// The pair that a naive D=x-y would get wrong: -32768-32767 wraps past
	// int16's range and would report the opposite sign of the true result.
	assert.True(t, decide(-32768, 32767, "lt"))
	assert.False(t, decide(-32768, 32767, "gt"))
	assert.True(t, decide(32767, -32768, "gt"))
	assert.False(t, decide(32767, -32768, "lt"))
}
