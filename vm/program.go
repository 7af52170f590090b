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

import "strings"

// Program is a loaded sequence of instructions.
type Program []Instruction

// Parse builds a Program from source text.
//
// Any character that is not one of "+-><,.[]" is a comment and is silently
// dropped. This is the only source policy: there is no such thing as a
// malformed program at load time. Unbalanced loops are detected lazily by the
// VM when they are executed.
func Parse(src string) Program {
	p, _ := ParseCount(src)
	return p
}

// ParseCount works like Parse and also returns the number of characters that
// were dropped as comments.
func ParseCount(src string) (p Program, dropped int) {
	p = make(Program, 0, len(src))
	for _, r := range src {
		if op, ok := ParseInstruction(r); ok {
			p = append(p, op)
		} else {
			dropped++
		}
	}
	return p, dropped
}

// String renders the program back to source text.
func (p Program) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, op := range p {
		b.WriteRune(op.Rune())
	}
	return b.String()
}
