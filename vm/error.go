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

import "strconv"

// ErrorKind classifies the faults reported by Step. It implements the error
// interface so that it can be used as a target for errors.Is.
type ErrorKind int

// Error kinds.
const (
	ErrNone          ErrorKind = iota // no error recorded
	ErrCodeEnd                        // end of program reached, no open loop
	ErrLoopIsUnend                    // unmatched '['
	ErrLoopIsUnstart                  // unmatched ']'
	ErrOverflow                       // '+' on MaxCell
	ErrUnderflow                      // '-' on MinCell
	ErrMemoryOver                     // '>' on the last cell
	ErrMemoryUnder                    // '<' on cell 0
)

var errorKinds = [...]string{
	ErrNone:          "no error",
	ErrCodeEnd:       "end of code",
	ErrLoopIsUnend:   "unterminated loop",
	ErrLoopIsUnstart: "loop end without start",
	ErrOverflow:      "cell overflow",
	ErrUnderflow:     "cell underflow",
	ErrMemoryOver:    "tape pointer past end of tape",
	ErrMemoryUnder:   "tape pointer before start of tape",
}

func (k ErrorKind) Error() string {
	if k < 0 || int(k) >= len(errorKinds) {
		return "error kind " + strconv.Itoa(int(k))
	}
	return errorKinds[k]
}

func (k ErrorKind) String() string { return k.Error() }

// Error is the error returned by Step and recorded as the VM's last error.
// PC is the instruction pointer at the time of failure.
type Error struct {
	Kind ErrorKind
	PC   int
}

func (e Error) Error() string {
	return e.Kind.Error() + " @pc=" + strconv.Itoa(e.PC)
}

// Unwrap returns the error kind, so that errors.Is(err, ErrOverflow) works as
// expected.
func (e Error) Unwrap() error { return e.Kind }
