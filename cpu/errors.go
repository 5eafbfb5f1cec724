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

package cpu

import "fmt"

// LoadError reports that a ROM image would not fit in the 64 KiB address
// space starting at the requested offset.
type LoadError struct {
	Offset uint16
	Size   int
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cpu: %d byte ROM does not fit at offset 0x%04X (64KiB limit)", e.Size, e.Offset)
}

// FatalDecodeError reports an opcode with no dispatch handler. A
// conformant build wires all 256 opcodes, so this indicates a programmer
// bug in the dispatch table rather than a reachable runtime condition.
type FatalDecodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *FatalDecodeError) Error() string {
	return fmt.Sprintf("cpu: no dispatch entry for opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}
