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

// PortBus is the host's hook for 8080 port I/O. IN invokes In and stores
// the result in A; OUT invokes Out with A. A CPU with no attached bus
// treats both instructions as no-ops.
type PortBus interface {
	In(port uint8) uint8
	Out(port uint8, value uint8)
}

// CPU is the 8080 instruction interpreter: a State plus the dispatch
// machinery that decodes and executes one instruction per Step call. It
// holds no instruction-family code itself — every opcode's behavior lives
// in OpcodeTable, shared with the disasm package.
type CPU struct {
	State *State
	bus   PortBus
}

// NewCPU wraps an existing State. The caller is expected to have already
// loaded a ROM and called State.Init.
func NewCPU(s *State) *CPU {
	return &CPU{State: s}
}

// AttachPortBus wires IN/OUT to bus. Passing nil detaches it, reverting
// both instructions to no-ops.
func (c *CPU) AttachPortBus(bus PortBus) {
	c.bus = bus
}

// Halted reports whether HLT has executed. Init does not clear it.
func (c *CPU) Halted() bool {
	return c.State.Halted
}

// Step fetches the opcode at PC, advances PC by one, and dispatches to
// that opcode's handler. Multi-byte instructions advance PC further from
// inside their handler. Exactly one instruction executes per call.
func (c *CPU) Step() {
	s := c.State
	opcode := s.Memory[s.PC]
	s.PC++

	entry := &OpcodeTable[opcode]
	if entry.Exec == nil {
		panic(&FatalDecodeError{Opcode: opcode, PC: s.PC - 1})
	}

	if logEnable {
		logger.Log(c.traceLine(opcode))
	}

	entry.Exec(c)
}

// Interrupt models an RST-like interrupt injection. The host is expected
// to call this between Step calls, never from inside one. If interrupts
// are disabled, this is a no-op; otherwise it clears IntEnable, pushes PC,
// and jumps to vector, exactly as RST n would with n*8 == vector.
func (c *CPU) Interrupt(vector uint16) {
	s := c.State
	if !s.IntEnable {
		return
	}
	s.IntEnable = false
	s.Push16(s.PC)
	s.PC = vector
}

func (c *CPU) traceLine(opcode uint8) string {
	s := c.State
	flags := ""
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"S", s.FlagS}, {"Z", s.FlagZ}, {"A", s.FlagAC}, {"P", s.FlagP}, {"C", s.FlagCY},
	} {
		if f.set {
			flags += f.name
		} else {
			flags += "."
		}
	}
	return fmt.Sprintf("%04X %02X %-4s A:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X %s",
		s.PC-1, opcode, OpcodeTable[opcode].Mnemonic, s.A, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, flags)
}

// reg8 returns the value addressed by the standard 8080 3-bit register
// field: 0=B 1=C 2=D 3=E 4=H 5=L 6=M(memory at HL) 7=A.
func (c *CPU) reg8(idx uint8) uint8 {
	s := c.State
	switch idx {
	case 0:
		return s.B
	case 1:
		return s.C
	case 2:
		return s.D
	case 3:
		return s.E
	case 4:
		return s.H
	case 5:
		return s.L
	case 6:
		return s.Memory[s.HL()]
	default:
		return s.A
	}
}

func (c *CPU) setReg8(idx uint8, v uint8) {
	s := c.State
	switch idx {
	case 0:
		s.B = v
	case 1:
		s.C = v
	case 2:
		s.D = v
	case 3:
		s.E = v
	case 4:
		s.H = v
	case 5:
		s.L = v
	case 6:
		s.Memory[s.HL()] = v
	default:
		s.A = v
	}
}

// regPair returns the value addressed by the 2-bit register-pair field
// used by LXI/INX/DCX/DAD: 0=BC 1=DE 2=HL 3=SP.
func (c *CPU) regPair(idx uint8) uint16 {
	s := c.State
	switch idx {
	case 0:
		return s.BC()
	case 1:
		return s.DE()
	case 2:
		return s.HL()
	default:
		return s.SP
	}
}

func (c *CPU) setRegPair(idx uint8, v uint16) {
	s := c.State
	switch idx {
	case 0:
		s.SetBC(v)
	case 1:
		s.SetDE(v)
	case 2:
		s.SetHL(v)
	default:
		s.SP = v
	}
}

// fetchImm8 reads the immediate byte following the opcode. Step has
// already advanced PC past the opcode itself, so it sits at PC.
func (c *CPU) fetchImm8() uint8 {
	return c.State.Memory[c.State.PC]
}

// fetchImm16 reads the little-endian 16-bit immediate following the
// opcode.
func (c *CPU) fetchImm16() uint16 {
	s := c.State
	lo := uint16(s.Memory[s.PC])
	hi := uint16(s.Memory[s.PC+1])
	return hi<<8 | lo
}

// setZSP updates the Z, S, and P flags from an 8-bit result. Used by every
// instruction family except the ones that leave them untouched (INX/DCX,
// rotates, DAD, logical-CY-only forcing).
func (s *State) setZSP(result uint8) {
	s.FlagZ = Zero(result)
	s.FlagS = Sign(result)
	s.FlagP = Parity(result)
}
