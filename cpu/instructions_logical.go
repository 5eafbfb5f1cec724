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

// execANA ANDs operand into A. The 8080 sets AC from the OR of bits 3 of
// the two operands (a quirk of the real silicon's half-carry adder being
// reused for AND); CY always clears.
func execANA(c *CPU, operand uint8) {
	s := c.State
	s.FlagAC = (s.A|operand)&0x08 != 0
	s.A &= operand
	s.FlagCY = false
	s.setZSP(s.A)
}

// execXRA XORs operand into A. Both AC and CY always clear.
func execXRA(c *CPU, operand uint8) {
	s := c.State
	s.A ^= operand
	s.FlagAC = false
	s.FlagCY = false
	s.setZSP(s.A)
}

// execORA ORs operand into A. Both AC and CY always clear.
func execORA(c *CPU, operand uint8) {
	s := c.State
	s.A |= operand
	s.FlagAC = false
	s.FlagCY = false
	s.setZSP(s.A)
}

// execRLC rotates A left by one bit; the bit rotated out of bit 7 goes
// into both bit 0 and CY.
func execRLC(c *CPU) {
	s := c.State
	out := s.A & 0x80
	s.A = s.A<<1 | out>>7
	s.FlagCY = out != 0
}

// execRRC rotates A right by one bit; the bit rotated out of bit 0 goes
// into both bit 7 and CY.
func execRRC(c *CPU) {
	s := c.State
	out := s.A & 0x01
	s.A = s.A>>1 | out<<7
	s.FlagCY = out != 0
}

// execRAL rotates A left through carry: CY feeds bit 0, and the bit
// rotated out of bit 7 becomes the new CY.
func execRAL(c *CPU) {
	s := c.State
	out := s.A & 0x80
	carryIn := uint8(0)
	if s.FlagCY {
		carryIn = 1
	}
	s.A = s.A<<1 | carryIn
	s.FlagCY = out != 0
}

// execRAR rotates A right through carry: CY feeds bit 7, and the bit
// rotated out of bit 0 becomes the new CY.
func execRAR(c *CPU) {
	s := c.State
	out := s.A & 0x01
	carryIn := uint8(0)
	if s.FlagCY {
		carryIn = 0x80
	}
	s.A = s.A>>1 | carryIn
	s.FlagCY = out != 0
}

// execCMA complements A in place. No flags change.
func execCMA(c *CPU) {
	c.State.A = ^c.State.A
}

// execSTC sets CY unconditionally.
func execSTC(c *CPU) {
	c.State.FlagCY = true
}

// execCMC complements CY.
func execCMC(c *CPU) {
	c.State.FlagCY = !c.State.FlagCY
}
