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

// Package vm implements an embeddable interpreter for an eight instruction
// tape machine.
//
// The machine has a tape of TapeSize signed cells, a tape pointer addressing
// the active cell, and a program made of the following instructions:
//
//	char	name	description
//	----	----	-----------------------------------------------------------
//	+	inc	increment the active cell
//	-	dec	decrement the active cell
//	>	right	move the tape pointer one cell to the right
//	<	left	move the tape pointer one cell to the left
//	,	in	store the value returned by the input handler in the active cell
//	.	out	send the active cell, as a rune, to the output handler
//	[	loop	if the active cell is 0, jump past the matching ]
//	]	end	jump back to the matching [
//
// Any other character in the source text is a comment and is ignored.
//
// Loops are matched at run time: a [ with a non-zero active cell pushes its
// position on a loop stack, and a ] pops it and jumps back to the [ which then
// evaluates its guard again. A [ with a zero active cell scans forward for
// its matching ].
//
// The host drives execution with Step, which runs one instruction, or Run,
// which runs a given number of instructions or until the program halts.
// Faults are returned as Error values and recorded in the instance, see
// LastError. Cell arithmetic does not wrap: incrementing MaxCell or
// decrementing MinCell is an error, and so is moving the tape pointer outside
// of the tape. Reaching the end of the program is reported by Step as an
// ErrCodeEnd error, which Run treats as a normal exit.
//
// Input and output go through the InHandler and OutHandler interfaces. The
// ReaderInput and WriterOutput types adapt io.Reader and io.Writer values.
package vm
