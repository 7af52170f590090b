// This file is part of tapevm - https://github.com/db47h/tapevm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package vm

import "math"

// TapeSize is the number of cells of a Tape.
const TapeSize = 32768

// Cell is the raw type stored in a tape cell.
type Cell int32

// Cell value limits. Incrementing MaxCell or decrementing MinCell is an error.
const (
	MaxCell Cell = math.MaxInt32
	MinCell Cell = math.MinInt32
)

// EOF is the value stored by a read instruction when no more input is
// available.
const EOF Cell = -1

// Tape is the VM memory. It can be indexed directly; indices outside of
// [0, TapeSize) panic like any other array access.
type Tape [TapeSize]Cell

// Reset sets all cells to 0.
func (t *Tape) Reset() {
	clear(t[:])
}

// Used returns the slice of the tape up to the last non-zero cell, and at
// least up to and including cell n.
func (t *Tape) Used(n int) []Cell {
	end := len(t)
	for end > n+1 && t[end-1] == 0 {
		end--
	}
	return t[:end]
}

// DecodeString returns the 0 terminated string starting at position pos.
func (t *Tape) DecodeString(pos int) string {
	end := pos
	for ; end < len(t) && t[end] != 0; end++ {
	}
	str := make([]rune, end-pos)
	for idx, c := range t[pos:end] {
		str[idx] = rune(c)
	}
	return string(str)
}

// EncodeString writes s at position pos, one rune per cell, followed by a
// terminating 0 if there is room left.
func (t *Tape) EncodeString(pos int, s string) {
	for _, r := range s {
		if pos >= len(t) {
			return
		}
		t[pos] = Cell(r)
		pos++
	}
	if pos < len(t) {
		t[pos] = 0
	}
}
