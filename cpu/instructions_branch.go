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

// testCond evaluates one of the 8 standard 8080 condition codes:
// 0=NZ 1=Z 2=NC 3=C 4=PO 5=PE 6=P 7=M.
func testCond(s *State, cond uint8) bool {
	switch cond {
	case 0:
		return !s.FlagZ
	case 1:
		return s.FlagZ
	case 2:
		return !s.FlagCY
	case 3:
		return s.FlagCY
	case 4:
		return !s.FlagP
	case 5:
		return s.FlagP
	case 6:
		return !s.FlagS
	default:
		return s.FlagS
	}
}

// execJMP jumps unconditionally to the 16-bit immediate address.
func execJMP(c *CPU) {
	c.State.PC = c.fetchImm16()
}

// execJcc jumps to the immediate address only if cond holds; otherwise it
// just steps past the two address bytes like any other 3-byte instruction.
func execJcc(c *CPU, cond uint8) {
	s := c.State
	addr := c.fetchImm16()
	if testCond(s, cond) {
		s.PC = addr
	} else {
		s.PC += 2
	}
}

// execCALL pushes the return address (PC after this 3-byte instruction)
// and jumps to the immediate address.
func execCALL(c *CPU) {
	s := c.State
	addr := c.fetchImm16()
	s.Push16(s.PC + 2)
	s.PC = addr
}

// execCcc calls the immediate address only if cond holds.
func execCcc(c *CPU, cond uint8) {
	s := c.State
	addr := c.fetchImm16()
	if testCond(s, cond) {
		s.Push16(s.PC + 2)
		s.PC = addr
	} else {
		s.PC += 2
	}
}

// execRET pops the return address off the stack into PC.
func execRET(c *CPU) {
	c.State.PC = c.State.Pop16()
}

// execRcc returns only if cond holds.
func execRcc(c *CPU, cond uint8) {
	s := c.State
	if testCond(s, cond) {
		s.PC = s.Pop16()
	}
}

// execPCHL sets PC to HL directly, with no stack interaction — a bare
// register-to-register jump, unlike CALL/RET.
func execPCHL(c *CPU) {
	c.State.PC = c.State.HL()
}
