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

// Package ngi holds small io helpers shared by the tapevm packages.
package ngi

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrWriter is a simple wrapper to track io errors. Once a write has failed,
// all subsequent writes return the same error.
type ErrWriter struct {
	w   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteRune writes the UTF-8 encoding of r. Invalid runes are written as
// utf8.RuneError.
func (w *ErrWriter) WriteRune(r rune) (size int, err error) {
	if rw, ok := w.w.(io.ByteWriter); ok && r >= 0 && r < utf8.RuneSelf {
		if w.Err != nil {
			return 0, w.Err
		}
		if err = rw.WriteByte(byte(r)); err != nil {
			w.Err = errors.Wrap(err, "write failed")
			return 0, w.Err
		}
		return 1, nil
	}
	var b [utf8.UTFMax]byte
	return w.Write(b[:utf8.EncodeRune(b[:], r)])
}

// Flush flushes the underlying writer if it implements Flush() error.
func (w *ErrWriter) Flush() error {
	if w.Err != nil {
		return w.Err
	}
	if f, ok := w.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			w.Err = errors.Wrap(err, "flush failed")
		}
	}
	return w.Err
}

// NewErrWriter returns a new ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w, nil}
}
