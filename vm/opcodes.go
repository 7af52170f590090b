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

// Instruction is one of the eight tape machine instructions.
type Instruction uint8

// Instruction set.
const (
	OpInc   Instruction = iota // +
	OpDec                      // -
	OpRight                    // >
	OpLeft                     // <
	OpIn                       // ,
	OpOut                      // .
	OpLoop                     // [
	OpEnd                      // ]
)

var opcodes = [...]struct {
	r    rune
	name string
}{
	OpInc:   {'+', "inc"},
	OpDec:   {'-', "dec"},
	OpRight: {'>', "right"},
	OpLeft:  {'<', "left"},
	OpIn:    {',', "in"},
	OpOut:   {'.', "out"},
	OpLoop:  {'[', "loop"},
	OpEnd:   {']', "end"},
}

var opcodeIndex = make(map[rune]Instruction, len(opcodes))

func init() {
	for i, v := range opcodes {
		opcodeIndex[v.r] = Instruction(i)
	}
}

// ParseInstruction returns the Instruction for the given source character. ok
// is false if r is not part of the instruction alphabet.
func ParseInstruction(r rune) (op Instruction, ok bool) {
	op, ok = opcodeIndex[r]
	return
}

// Valid reports whether op is a known instruction.
func (op Instruction) Valid() bool {
	return int(op) < len(opcodes)
}

// Rune returns the source character of the instruction.
func (op Instruction) Rune() rune {
	if !op.Valid() {
		return '?'
	}
	return opcodes[op].r
}

// String returns the instruction's mnemonic.
func (op Instruction) String() string {
	if !op.Valid() {
		return "???"
	}
	return opcodes[op].name
}
