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
	"unicode/utf8"

	"github.com/db47h/tapevm/internal/ngi"
	"github.com/pkg/errors"
)

// InHandler supplies the value stored in the active cell by a ',' instruction.
type InHandler interface {
	In() Cell
}

// InFunc adapts a function to the InHandler interface.
type InFunc func() Cell

// In returns f().
func (f InFunc) In() Cell { return f() }

// OutHandler receives the active cell, as a rune, when a '.' instruction is
// executed.
type OutHandler interface {
	Out(r rune)
}

// OutFunc adapts a function to the OutHandler interface.
type OutFunc func(r rune)

// Out calls f(r).
func (f OutFunc) Out(r rune) { f(r) }

// byteRuneReader adapts an io.Reader without a ReadRune method. It reads one
// byte at a time so that nothing past the returned rune is consumed.
type byteRuneReader struct {
	r   io.Reader
	buf [utf8.UTFMax]byte
}

func (br *byteRuneReader) ReadRune() (rune, int, error) {
	var (
		n   int
		err error
	)
	for n < len(br.buf) && !utf8.FullRune(br.buf[:n]) {
		k, e := br.r.Read(br.buf[n : n+1])
		n += k
		if e != nil {
			err = e
			break
		}
	}
	if n == 0 {
		return 0, 0, err
	}
	r, size := utf8.DecodeRune(br.buf[:n])
	return r, size, err
}

func (br *byteRuneReader) Close() error {
	if c, ok := br.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReaderInput is an InHandler that reads one rune per call from a stack of
// io.Readers. When the reader on top of the stack reaches EOF, it is closed
// if it implements io.Closer, and reading continues with the next one. Once
// all readers are exhausted, In returns EOF. A nil *ReaderInput has no
// readers.
type ReaderInput struct {
	stack []io.RuneReader // top last
	err   error
}

// NewReaderInput returns a ReaderInput reading from r. r may be nil.
func NewReaderInput(r io.Reader) *ReaderInput {
	in := new(ReaderInput)
	in.Push(r)
	return in
}

// Push pushes r on top of the input stack.
func (in *ReaderInput) Push(r io.Reader) {
	if r == nil {
		return
	}
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = &byteRuneReader{r: r}
	}
	in.stack = append(in.stack, rr)
}

// In implements InHandler.
func (in *ReaderInput) In() Cell {
	if in == nil {
		return EOF
	}
	for n := len(in.stack); n > 0; n = len(in.stack) {
		r, size, err := in.stack[n-1].ReadRune()
		if size == 0 && err == io.EOF {
			if c, ok := in.stack[n-1].(io.Closer); ok {
				c.Close()
			}
			in.stack = in.stack[:n-1]
			continue
		}
		if err != nil && err != io.EOF && in.err == nil {
			in.err = errors.Wrap(err, "read failed")
		}
		if size == 0 {
			return EOF
		}
		return Cell(r)
	}
	return EOF
}

// Err returns the first read error other than io.EOF.
func (in *ReaderInput) Err() error {
	if in == nil {
		return nil
	}
	return in.err
}

// WriterOutput is an OutHandler that writes the UTF-8 encoding of each rune to
// an io.Writer. If the writer has a Flush() error method, it is called after
// each newline. Write errors are sticky: once a write has failed, output is
// discarded and the error is available from Err.
type WriterOutput struct {
	w *ngi.ErrWriter
}

// NewWriterOutput returns a WriterOutput writing to w.
func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{ngi.NewErrWriter(w)}
}

// Out implements OutHandler.
func (o *WriterOutput) Out(r rune) {
	if _, err := o.w.WriteRune(r); err == nil && r == '\n' {
		o.w.Flush()
	}
}

// Flush flushes the underlying writer.
func (o *WriterOutput) Flush() error {
	return o.w.Flush()
}

// Err returns the first write error.
func (o *WriterOutput) Err() error {
	return o.w.Err
}

// SetInput sets the input handler. A nil handler, or a nil *ReaderInput, makes
// ',' store EOF.
func (i *Instance) SetInput(h InHandler) {
	i.input = h
}

// SetInputFunc sets fn as the input handler.
func (i *Instance) SetInputFunc(fn func() Cell) {
	if fn == nil {
		i.input = nil
		return
	}
	i.input = InFunc(fn)
}

// SetInputReader sets the input handler to a new ReaderInput reading from r.
func (i *Instance) SetInputReader(r io.Reader) {
	i.input = NewReaderInput(r)
}

// PushInput sets r as the current input reader. When r reaches EOF, the
// previous input reader will be used. If the current input handler is not a
// *ReaderInput, it is replaced.
func (i *Instance) PushInput(r io.Reader) {
	if in, ok := i.input.(*ReaderInput); ok && in != nil {
		in.Push(r)
		return
	}
	i.input = NewReaderInput(r)
}

// SetOutput sets the output handler. A nil handler discards output.
func (i *Instance) SetOutput(h OutHandler) {
	i.output = h
}

// SetOutputFunc sets fn as the output handler.
func (i *Instance) SetOutputFunc(fn func(r rune)) {
	if fn == nil {
		i.output = nil
		return
	}
	i.output = OutFunc(fn)
}

// SetOutputWriter sets the output handler to a new WriterOutput writing to w.
func (i *Instance) SetOutputWriter(w io.Writer) {
	i.output = NewWriterOutput(w)
}

func (i *Instance) in() Cell {
	if i.input == nil {
		return EOF
	}
	return i.input.In()
}

func (i *Instance) out(v Cell) {
	if i.output != nil {
		i.output.Out(rune(v))
	}
}
