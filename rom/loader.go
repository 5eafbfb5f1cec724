// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package rom reads a raw CP/M-style .com image off any io.Reader. There
// is no container format to parse — unlike an iNES cartridge, a ROM file
// here is just the bytes that land at cpu.ROMLoadOffset.
package rom

import (
	"errors"
	"fmt"
	"io"
)

// ErrNilReader is returned by Load when passed a nil io.Reader.
var ErrNilReader = errors.New("rom: nil reader")

// IoError wraps a read failure from the underlying reader, distinguishing
// it from the LoadError a too-large image raises once it reaches cpu.
type IoError struct {
	Err error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("rom: read failed: %v", e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// Load reads reader to completion and returns the raw bytes. It performs
// no validation of content — whether the image fits in the 64 KiB address
// space is cpu.State.LoadROM's concern, not this package's.
func Load(reader io.Reader) ([]byte, error) {
	if reader == nil {
		return nil, ErrNilReader
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &IoError{Err: err}
	}
	return data, nil
}
