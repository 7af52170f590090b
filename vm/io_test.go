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

package vm_test

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/db47h/tapevm/vm"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

type recorder []rune

func (r *recorder) Out(c rune) { *r = append(*r, c) }

func TestIO_output(t *testing.T) {
	var out recorder
	i, err := vm.New("+++.", nil, &out)
	assert.NoError(t, err)
	assert.NoError(t, i.Run(vm.UntilHalt))
	assert.Equal(t, recorder{3}, out)
}

func TestIO_funcs(t *testing.T) {
	var got []rune
	i, err := vm.New(",+.", vm.InFunc(func() vm.Cell { return 'A' }), vm.OutFunc(func(r rune) { got = append(got, r) }))
	assert.NoError(t, err)
	assert.NoError(t, i.Run(vm.UntilHalt))
	assert.Equal(t, "B", string(got))
}

func TestIO_nilHandlers(t *testing.T) {
	i := setup(t, ",.", C{42})
	assert.NoError(t, i.Run(vm.UntilHalt))
	assert.Equal(t, vm.EOF, i.Tape[0])

	i.Load(",.")
	i.SetInputFunc(nil)
	i.SetOutputFunc(nil)
	assert.NoError(t, i.Run(vm.UntilHalt))
	assert.Equal(t, vm.EOF, i.Tape[0])
}

func TestIO_swap(t *testing.T) {
	var a, b recorder
	i := setup(t, ",.,.", nil, vm.Output(&a))
	i.SetInputFunc(func() vm.Cell { return 'x' })
	assert.NoError(t, i.Run(2))
	i.SetInputFunc(func() vm.Cell { return 'y' })
	i.SetOutput(&b)
	assert.NoError(t, i.Run(vm.UntilHalt))
	assert.Equal(t, recorder{'x'}, a)
	assert.Equal(t, recorder{'y'}, b)
}

// cat with EOF == -1
const cat = ",+[-.,+]"

func TestIO_streams(t *testing.T) {
	var b bytes.Buffer
	i := setup(t, cat, nil)
	i.SetInputReader(strings.NewReader("héllo, wörld"))
	i.SetOutputWriter(&b)
	assert.NoError(t, i.Run(vm.UntilHalt))
	assert.Equal(t, "héllo, wörld", b.String())
}

func TestIO_pushInput(t *testing.T) {
	var b bytes.Buffer
	i := setup(t, cat, nil, vm.Output(vm.NewWriterOutput(&b)))
	i.SetInputFunc(func() vm.Cell { return 'z' })
	// replaces the InFunc
	i.PushInput(strings.NewReader("world"))
	i.PushInput(strings.NewReader("hello "))
	assert.NoError(t, i.Run(vm.UntilHalt))
	assert.Equal(t, "hello world", b.String())
}

type closer struct {
	io.Reader
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return nil
}

func TestReaderInput(t *testing.T) {
	c := &closer{Reader: iotest.OneByteReader(strings.NewReader("é"))}
	in := vm.NewReaderInput(strings.NewReader("b"))
	in.Push(c)
	in.Push(nil)
	assert.Equal(t, vm.Cell('é'), in.In())
	assert.False(t, c.closed)
	assert.Equal(t, vm.Cell('b'), in.In())
	assert.True(t, c.closed)
	assert.Equal(t, vm.EOF, in.In())
	assert.Equal(t, vm.EOF, in.In())
	assert.NoError(t, in.Err())

	in = vm.NewReaderInput(nil)
	assert.Equal(t, vm.EOF, in.In())
}

func TestReaderInput_dataWithEOF(t *testing.T) {
	// the last rune comes with io.EOF
	in := vm.NewReaderInput(iotest.DataErrReader(iotest.OneByteReader(strings.NewReader("aé"))))
	assert.Equal(t, vm.Cell('a'), in.In())
	assert.Equal(t, vm.Cell('é'), in.In())
	assert.Equal(t, vm.EOF, in.In())
	assert.NoError(t, in.Err())
}

func TestReaderInput_nil(t *testing.T) {
	var in *vm.ReaderInput
	assert.Equal(t, vm.EOF, in.In())
	assert.NoError(t, in.Err())

	i, err := vm.New(",", in, nil)
	assert.NoError(t, err)
	assert.NoError(t, i.Run(vm.UntilHalt))
	assert.Equal(t, vm.EOF, i.Tape[0])

	i.Load(",")
	i.SetInput(in)
	i.PushInput(strings.NewReader("x"))
	assert.NoError(t, i.Run(vm.UntilHalt))
	assert.Equal(t, vm.Cell('x'), i.Tape[0])
}

func TestReaderInput_error(t *testing.T) {
	boom := errors.New("boom")
	in := vm.NewReaderInput(iotest.ErrReader(boom))
	assert.Equal(t, vm.EOF, in.In())
	assert.Equal(t, boom, errors.Cause(in.Err()))
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, io.ErrShortWrite
	}
	w.n--
	return len(p), nil
}

func TestWriterOutput(t *testing.T) {
	var b bytes.Buffer
	bw := bufio.NewWriter(&b)
	o := vm.NewWriterOutput(bw)
	for _, r := range "a€" {
		o.Out(r)
	}
	assert.Equal(t, 0, b.Len())
	o.Out('\n')
	assert.Equal(t, "a€\n", b.String())
	o.Out(-1)
	assert.NoError(t, o.Flush())
	assert.Equal(t, "a€\n�", b.String())
	assert.NoError(t, o.Err())

	w := &failWriter{n: 1}
	o = vm.NewWriterOutput(w)
	o.Out('x')
	assert.NoError(t, o.Err())
	o.Out('y')
	o.Out('z')
	assert.Equal(t, io.ErrShortWrite, errors.Cause(o.Err()))
	assert.Equal(t, 0, w.n)
}
