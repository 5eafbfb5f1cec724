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

const (
	// MemoryCapacity is the size of the linear address space a 8080 can
	// address.
	MemoryCapacity = 65536

	// ROMLoadOffset is the conventional CP/M load address: a .com image
	// is mapped starting here, with the first 0x100 bytes reserved for
	// the zero page / BDOS entry points.
	ROMLoadOffset = 0x0100

	// bdosReturnVector is where CP/M's BDOS entry point lives. Init sets
	// it to a RET opcode so that BDOS syscalls issued by test programs
	// like cpudiag.bin return immediately instead of jumping into
	// unmapped memory.
	bdosReturnVector = 0x0005
	opRET            = 0xC9
)

// State is the full architectural state of an 8080: the register file, the
// condition flags, and the 64 KiB linear memory. It carries no behavior of
// its own beyond the scoped accessors below; decoding and dispatch live in
// CPU.
type State struct {
	A, B, C, D, E, H, L uint8
	SP, PC              uint16

	FlagZ, FlagS, FlagP, FlagCY, FlagAC bool

	Halted    bool
	IntEnable bool

	Memory [MemoryCapacity]byte
}

// NewState returns a zero-valued State, matching the 8080's actual
// power-on condition: every register, flag, and memory byte at zero.
func NewState() *State {
	return &State{}
}

// Init prepares the state for running a CP/M-style .com image: PC starts
// at the conventional load address, and the BDOS entry point at address 5
// is patched to RET so that BDOS calls issued by the program return
// immediately instead of running off into unmapped memory.
func (s *State) Init() {
	s.PC = ROMLoadOffset
	s.Memory[bdosReturnVector] = opRET
}

// LoadROM copies bytes into memory starting at offset. It fails with
// LoadError if the image would not fit in the 64 KiB address space.
func (s *State) LoadROM(bytes []byte, offset uint16) error {
	if int(offset)+len(bytes) > MemoryCapacity {
		return &LoadError{Offset: offset, Size: len(bytes)}
	}
	copy(s.Memory[offset:], bytes)
	return nil
}

// BC returns the (B,C) register pair as a 16-bit value.
func (s *State) BC() uint16 { return uint16(s.B)<<8 | uint16(s.C) }

// DE returns the (D,E) register pair as a 16-bit value.
func (s *State) DE() uint16 { return uint16(s.D)<<8 | uint16(s.E) }

// HL returns the (H,L) register pair as a 16-bit value.
func (s *State) HL() uint16 { return uint16(s.H)<<8 | uint16(s.L) }

// SetBC splits v across B and C.
func (s *State) SetBC(v uint16) { s.B, s.C = uint8(v>>8), uint8(v) }

// SetDE splits v across D and E.
func (s *State) SetDE(v uint16) { s.D, s.E = uint8(v>>8), uint8(v) }

// SetHL splits v across H and L.
func (s *State) SetHL(v uint16) { s.H, s.L = uint8(v>>8), uint8(v) }

// Flags packs the condition codes into the PSW low byte: bit 7=S, bit 6=Z,
// bit 5=0, bit 4=AC, bit 3=0, bit 2=P, bit 1=1 (always set), bit 0=CY.
func (s *State) Flags() uint8 {
	var f uint8 = 0x02 // bit 1 always reads 1
	if s.FlagS {
		f |= 0x80
	}
	if s.FlagZ {
		f |= 0x40
	}
	if s.FlagAC {
		f |= 0x10
	}
	if s.FlagP {
		f |= 0x04
	}
	if s.FlagCY {
		f |= 0x01
	}
	return f
}

// SetFlags unpacks a PSW low byte into the condition codes. AC is restored
// from bit 4, matching real 8080 POP PSW behavior.
func (s *State) SetFlags(f uint8) {
	s.FlagS = f&0x80 != 0
	s.FlagZ = f&0x40 != 0
	s.FlagAC = f&0x10 != 0
	s.FlagP = f&0x04 != 0
	s.FlagCY = f&0x01 != 0
}

// Push16 writes the high byte of v at SP-1 and the low byte at SP-2, then
// decrements SP by 2, all with 16-bit wraparound.
func (s *State) Push16(v uint16) {
	s.Memory[s.SP-1] = uint8(v >> 8)
	s.Memory[s.SP-2] = uint8(v)
	s.SP -= 2
}

// Pop16 reads the low byte at SP and the high byte at SP+1, increments SP
// by 2, and returns the combined value. Both the reads and the increment
// wrap at 16 bits.
func (s *State) Pop16() uint16 {
	lo := s.Memory[s.SP]
	hi := s.Memory[s.SP+1]
	s.SP += 2
	return uint16(hi)<<8 | uint16(lo)
}

// Snapshot returns a value copy of the state, for tests and diagnostics
// that want to compare "before" and "after" without the interpreter's
// mutation aliasing the comparison.
func (s *State) Snapshot() State {
	return *s
}
