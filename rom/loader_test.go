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

package rom

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestLoadReadsAllBytes(t *testing.T) {
	want := []byte{0xC3, 0x00, 0x01, 0x76}
	got, err := Load(bytes.NewReader(want))
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestLoadNilReader(t *testing.T) {
	_, err := Load(nil)
	if !errors.Is(err, ErrNilReader) {
		t.Errorf("Load(nil) error = %v, want ErrNilReader", err)
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("boom")
}

func TestLoadWrapsReadError(t *testing.T) {
	_, err := Load(failingReader{})
	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Load error = %v (%T), want *IoError", err, err)
	}
}

func TestLoadEmptyReader(t *testing.T) {
	got, err := Load(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load of empty reader = %v, want empty", got)
	}
}

var _ io.Reader = failingReader{}
