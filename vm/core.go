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

// fail records an error for the current instruction and returns it.
func (i *Instance) fail(kind ErrorKind) error {
	i.err = Error{Kind: kind, PC: i.pc}
	if kind == ErrCodeEnd {
		i.logger.Debug("halted", "pc", i.pc, "instructions", i.insCount)
	} else {
		i.logger.Debug("fault", "error", kind, "pc", i.pc, "tp", i.tp, "depth", len(i.loops))
	}
	return i.err
}

// matchEnd returns the position of the ']' matching the '[' at pc, or -1 if
// there is none.
func (i *Instance) matchEnd() int {
	depth := 0
	for pc := i.pc + 1; pc < len(i.prog); pc++ {
		switch i.prog[pc] {
		case OpLoop:
			depth++
		case OpEnd:
			if depth == 0 {
				return pc
			}
			depth--
		}
	}
	return -1
}

// Step executes a single instruction.
//
// On success, it returns nil. Otherwise it returns an Error, also available
// from LastError, and leaves the VM state untouched. An Error of kind
// ErrCodeEnd means that the program has completed normally.
func (i *Instance) Step() error {
	if i.pc >= len(i.prog) {
		if len(i.loops) == 0 {
			return i.fail(ErrCodeEnd)
		}
		return i.fail(ErrLoopIsUnend)
	}
	switch i.prog[i.pc] {
	case OpInc:
		if i.Tape[i.tp] == MaxCell {
			return i.fail(ErrOverflow)
		}
		i.Tape[i.tp]++
	case OpDec:
		if i.Tape[i.tp] == MinCell {
			return i.fail(ErrUnderflow)
		}
		i.Tape[i.tp]--
	case OpRight:
		if i.tp >= len(i.Tape)-1 {
			return i.fail(ErrMemoryOver)
		}
		i.tp++
	case OpLeft:
		if i.tp <= 0 {
			return i.fail(ErrMemoryUnder)
		}
		i.tp--
	case OpIn:
		i.Tape[i.tp] = i.in()
	case OpOut:
		i.out(i.Tape[i.tp])
	case OpLoop:
		if i.Tape[i.tp] != 0 {
			i.loops = append(i.loops, i.pc)
			break
		}
		end := i.matchEnd()
		if end < 0 {
			return i.fail(ErrLoopIsUnend)
		}
		// land on the ']', skipped by the increment below
		i.pc = end
	case OpEnd:
		n := len(i.loops) - 1
		if n < 0 {
			return i.fail(ErrLoopIsUnstart)
		}
		// back to the '[' so that its guard gets evaluated again
		i.pc = i.loops[n] - 1
		i.loops = i.loops[:n]
	}
	i.pc++
	i.insCount++
	return nil
}

// Run executes up to n instructions, or until the program halts if n is
// negative (see UntilHalt).
//
// Execution stops at the first error, which is returned. Reaching the end of
// the program is not considered an error: Run returns nil and LastError
// reports ErrCodeEnd.
func (i *Instance) Run(n int) error {
	for c := 0; n < 0 || c < n; c++ {
		if err := i.Step(); err != nil {
			if i.err.Kind == ErrCodeEnd {
				return nil
			}
			return err
		}
	}
	return nil
}
