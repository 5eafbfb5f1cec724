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

// Package disasm is a linear one-shot decoder over a byte buffer. It reads
// cpu.OpcodeTable for every piece of per-opcode metadata — mnemonic,
// operand template, and length — so the textual decode can never drift
// from what the interpreter actually executes.
package disasm

import (
	"fmt"
	"strings"

	"github.com/mgcorp/i8080emu/cpu"
)

// Line is one decoded instruction: the address it starts at, the raw
// bytes it occupies, and its rendered mnemonic/operand text.
type Line struct {
	Address  uint16
	Bytes    []byte
	Mnemonic string
	Operand  string
}

// String formats a Line the way the disassembler binary prints it:
// mnemonic padded to a fixed column, then the operand. Address and raw
// bytes are available on the struct for callers that want them but are
// not part of the stable stdout format.
func (l Line) String() string {
	sb := &strings.Builder{}
	sb.WriteString(l.Mnemonic)
	if l.Operand == "" {
		return sb.String()
	}
	for sb.Len() < 6 {
		sb.WriteRune(' ')
	}
	sb.WriteString(l.Operand)
	return sb.String()
}

// Disassemble decodes code from address 0 through its end, one
// instruction per Line, advancing by each opcode's table length. An
// opcode whose immediate bytes run past the end of code is still
// emitted — the rendered operand simply treats missing trailing bytes
// as zero, since the linear decoder has no resynchronization story for
// a truncated trailing instruction.
func Disassemble(code []byte) []Line {
	var lines []Line
	addr := 0
	for addr < len(code) {
		opcode := code[addr]
		info := cpu.OpcodeTable[opcode]
		length := info.Length
		if length == 0 {
			length = 1
		}

		end := addr + length
		if end > len(code) {
			end = len(code)
		}

		lines = append(lines, Line{
			Address:  uint16(addr),
			Bytes:    code[addr:end],
			Mnemonic: info.Mnemonic,
			Operand:  formatOperand(info, code, addr),
		})

		addr += length
	}
	return lines
}

func formatOperand(info cpu.OpcodeInfo, code []byte, addr int) string {
	switch info.Kind {
	case cpu.OperandImm8:
		return fmt.Sprintf(info.Operand, byteAt(code, addr+1))
	case cpu.OperandImm16:
		lo := byteAt(code, addr+1)
		hi := byteAt(code, addr+2)
		return fmt.Sprintf(info.Operand, uint16(hi)<<8|uint16(lo))
	default:
		return info.Operand
	}
}

func byteAt(code []byte, i int) uint8 {
	if i >= len(code) {
		return 0
	}
	return code[i]
}
