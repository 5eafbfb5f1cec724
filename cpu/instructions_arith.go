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

// execADD adds operand into A, setting Z, S, P, CY, AC.
func execADD(c *CPU, operand uint8) {
	s := c.State
	sum := uint16(s.A) + uint16(operand)
	s.FlagAC = halfCarryAdd(s.A, operand, 0)
	s.A = uint8(sum)
	s.FlagCY = Carry(sum > 0xFF)
	s.setZSP(s.A)
}

// execADC adds operand plus the carry-in to A. The carry-in is the value
// CY held before this instruction started, sampled before CY is overwritten
// by the result of this add.
func execADC(c *CPU, operand uint8) {
	s := c.State
	carryIn := uint8(0)
	if s.FlagCY {
		carryIn = 1
	}
	sum := uint16(s.A) + uint16(operand) + uint16(carryIn)
	s.FlagAC = halfCarryAdd(s.A, operand, carryIn)
	s.A = uint8(sum)
	s.FlagCY = Carry(sum > 0xFF)
	s.setZSP(s.A)
}

// execSUB subtracts operand from A, setting Z, S, P, CY, AC. CY is set on
// borrow, matching the 8080's "subtract sets carry" convention.
func execSUB(c *CPU, operand uint8) {
	s := c.State
	diff := int(s.A) - int(operand)
	s.FlagAC = halfCarrySub(s.A, operand, 0)
	s.A = uint8(diff)
	s.FlagCY = Carry(diff < 0)
	s.setZSP(s.A)
}

// execSBB subtracts operand plus the borrow-in from A. The borrow-in is the
// CY value from before this instruction started, sampled before CY is
// overwritten by the result of this subtraction.
func execSBB(c *CPU, operand uint8) {
	s := c.State
	borrowIn := uint8(0)
	if s.FlagCY {
		borrowIn = 1
	}
	diff := int(s.A) - int(operand) - int(borrowIn)
	s.FlagAC = halfCarrySub(s.A, operand, borrowIn)
	s.A = uint8(diff)
	s.FlagCY = Carry(diff < 0)
	s.setZSP(s.A)
}

// execCMP compares operand against A (A-operand) without storing the
// result, setting flags only.
func execCMP(c *CPU, operand uint8) {
	s := c.State
	diff := int(s.A) - int(operand)
	s.FlagAC = halfCarrySub(s.A, operand, 0)
	s.FlagCY = Carry(diff < 0)
	s.setZSP(uint8(diff))
}

// execINR increments the register addressed by reg by one. CY is left
// untouched, matching the 8080 ISA; AC still reflects the bit-3 carry.
func execINR(c *CPU, reg uint8) {
	v := c.reg8(reg)
	s := c.State
	s.FlagAC = halfCarryAdd(v, 1, 0)
	v++
	c.setReg8(reg, v)
	s.setZSP(v)
}

// execDCR decrements the register addressed by reg by one. CY is left
// untouched; AC reflects the bit-3 borrow.
func execDCR(c *CPU, reg uint8) {
	v := c.reg8(reg)
	s := c.State
	s.FlagAC = halfCarrySub(v, 1, 0)
	v--
	c.setReg8(reg, v)
	s.setZSP(v)
}

// execDAD adds the register pair addressed by rp into HL. Only CY is
// affected; Z, S, P, AC are left untouched, matching the 8080 ISA.
func execDAD(c *CPU, rp uint8) {
	s := c.State
	sum := uint32(s.HL()) + uint32(c.regPair(rp))
	s.SetHL(uint16(sum))
	s.FlagCY = Carry(sum > 0xFFFF)
}

// execDAA applies the decimal adjust algorithm: if the low nibble of A
// exceeds 9 or AC is set, add 6 to it; then if the (possibly updated) high
// nibble exceeds 9 or CY is set, add 0x60. Both additions can each set AC
// and CY respectively, and a carry out of either step latches CY — it
// never clears a CY the instruction found already set.
func execDAA(c *CPU) {
	s := c.State
	a := s.A
	carry := s.FlagCY
	correction := uint8(0)

	lowNibble := a & 0x0F
	if lowNibble > 9 || s.FlagAC {
		correction |= 0x06
	}

	highNibble := a >> 4
	if highNibble > 9 || carry || (highNibble == 9 && lowNibble > 9) {
		correction |= 0x60
		carry = true
	}

	s.FlagAC = halfCarryAdd(a, correction, 0)
	sum := uint16(a) + uint16(correction)
	s.A = uint8(sum)
	s.FlagCY = carry
	s.setZSP(s.A)
}
