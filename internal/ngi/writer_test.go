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

package ngi_test

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/db47h/tapevm/internal/ngi"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

type limitWriter struct{ n int }

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		return 0, io.ErrShortWrite
	}
	w.n -= len(p)
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	bw := bufio.NewWriter(&b)
	w := ngi.NewErrWriter(bw)
	n, err := w.WriteRune('x')
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = w.WriteRune('世')
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, b.Len())
	assert.NoError(t, w.Flush())
	assert.Equal(t, "x世", b.String())

	w = ngi.NewErrWriter(&limitWriter{n: 2})
	_, err = w.WriteRune('é')
	assert.NoError(t, err)
	_, err = w.Write([]byte("a"))
	assert.Equal(t, io.ErrShortWrite, errors.Cause(err))
	// sticky
	_, err = w.WriteRune('b')
	assert.Equal(t, w.Err, err)
	assert.Equal(t, w.Err, w.Flush())
}
