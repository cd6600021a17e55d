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

// Segment is one of the eight VM memory segments addressable by push/pop.
type Segment uint8

const (
	SegmentConstant Segment = iota
	SegmentLocal
	SegmentArgument
	SegmentThis
	SegmentThat
	SegmentStatic
	SegmentTemp
	SegmentPointer
)

var segmentText = [...]string{
	SegmentConstant: "constant",
	SegmentLocal:    "local",
	SegmentArgument: "argument",
	SegmentThis:     "this",
	SegmentThat:     "that",
	SegmentStatic:   "static",
	SegmentTemp:     "temp",
	SegmentPointer:  "pointer",
}

var segmentIndex = func() map[string]Segment {
	m := make(map[string]Segment, len(segmentText))
	for s, text := range segmentText {
		m[text] = Segment(s)
	}
	return m
}()

func (s Segment) String() string { return segmentText[s] }

// LookupSegment returns the Segment named s and true, or the zero value and
// false if s is not one of the eight segment names.
func LookupSegment(s string) (Segment, bool) {
	seg, ok := segmentIndex[s]
	return seg, ok
}

// MaxIndex returns the maximum valid operand index for segments with a fixed
// address range (temp: 0..7, pointer: 0..1), and false for segments bounded
// only by the 16-bit operand width (constant is handled separately since its
// bound, 32767, is signed-word-driven rather than address-space-driven).
func (s Segment) MaxIndex() (max uint16, bounded bool) {
	switch s {
	case SegmentTemp:
		return 7, true
	case SegmentPointer:
		return 1, true
	default:
		return 0, false
	}
}
