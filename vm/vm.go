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

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/db47h/tapevm/internal/ngi"
	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

// UntilHalt is the step count that makes Run execute until the program halts
// or fails.
const UntilHalt = -1

// Instance represents a tape VM instance.
//
// An Instance is not safe for concurrent use.
type Instance struct {
	Tape     Tape // Memory
	pc       int
	tp       int
	prog     Program
	loops    []int
	err      Error
	insCount int64
	input    InHandler
	output   OutHandler
	logger   *slog.Logger
}

// Option interface
type Option func(*Instance) error

// Input sets the input handler.
func Input(h InHandler) Option {
	return func(i *Instance) error { i.input = h; return nil }
}

// Output sets the output handler.
func Output(h OutHandler) Option {
	return func(i *Instance) error { i.output = h; return nil }
}

// Logger sets the logger used for debug diagnostics. The default logger
// discards everything.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("nil logger")
		}
		i.logger = l
		return nil
	}
}

// LogHandlers sets up a logger that dispatches log records to all the given
// handlers.
func LogHandlers(handlers ...slog.Handler) Option {
	return func(i *Instance) error {
		if len(handlers) == 0 {
			return errors.New("no log handler")
		}
		i.logger = slog.New(slogmulti.Fanout(handlers...))
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance running the program in src. Both in and out
// may be nil, see SetInput and SetOutput.
//
// Options will be set by calling SetOptions.
func New(src string, in InHandler, out OutHandler, opts ...Option) (*Instance, error) {
	i := &Instance{
		input:  in,
		output: out,
		logger: slog.New(slog.DiscardHandler),
		loops:  make([]int, 0, 16),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, errors.Wrap(err, "vm.New")
	}
	i.Load(src)
	return i, nil
}

// Load replaces the current program with the one in src and resets the VM.
func (i *Instance) Load(src string) {
	var dropped int
	i.prog, dropped = ParseCount(src)
	i.Reset()
	i.logger.Debug("program loaded", "size", len(i.prog), "dropped", dropped)
}

// Reset clears the tape, loop stack and last error, and moves both the
// instruction and tape pointers back to 0. The loaded program is kept.
func (i *Instance) Reset() {
	i.pc, i.tp = 0, 0
	i.Tape.Reset()
	i.loops = i.loops[:0]
	i.err = Error{}
	i.insCount = 0
}

// PC returns the instruction pointer. It is equal to len(i.Program()) once
// the whole program has been executed.
func (i *Instance) PC() int {
	return i.pc
}

// TP returns the tape pointer, that is the index of the active cell.
func (i *Instance) TP() int {
	return i.tp
}

// Program returns the loaded program. The returned slice must not be
// modified.
func (i *Instance) Program() Program {
	return i.prog
}

// String returns the source text of the loaded program.
func (i *Instance) String() string {
	return i.prog.String()
}

// Depth returns the number of currently open loops.
func (i *Instance) Depth() int {
	return len(i.loops)
}

// Loops returns a copy of the loop stack: the program positions of the open
// '[' instructions, innermost last.
func (i *Instance) Loops() []int {
	return append([]int(nil), i.loops...)
}

// LastError returns the last error recorded by Step. Its Kind is ErrNone if no
// step has failed since the last reset.
func (i *Instance) LastError() Error {
	return i.err
}

// InstructionCount returns the number of instructions executed successfully
// since the last reset.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

func dumpSlice(w *ngi.ErrWriter, a []int) error {
	l := len(a) - 1
	if l >= 0 {
		for i := 0; i < l; i++ {
			io.WriteString(w, strconv.Itoa(a[i]))
			w.Write([]byte{' '})
		}
		io.WriteString(w, strconv.Itoa(a[l]))
	}
	return w.Err
}

// Dump writes the VM state to w: the instruction and tape pointers, the loop
// stack and the used part of the tape (up to the last non-zero cell or the
// active cell, whichever comes last). Each section is made of space separated
// numbers, sections are separated by a '\x1D' byte and the whole dump starts
// with a '\x1C' byte.
func (i *Instance) Dump(w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	ew.Write([]byte{'\x1C'})
	dumpSlice(ew, []int{i.pc, i.tp})
	ew.Write([]byte{'\x1D'})
	dumpSlice(ew, i.loops)
	ew.Write([]byte{'\x1D'})
	used := i.Tape.Used(i.tp)
	cells := make([]int, len(used))
	for k, v := range used {
		cells[k] = int(v)
	}
	if err := dumpSlice(ew, cells); err != nil {
		return errors.Wrap(err, "dump failed")
	}
	return nil
}
