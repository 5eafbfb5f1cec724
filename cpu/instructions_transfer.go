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

// execSTA stores A at the 16-bit address following the opcode.
func execSTA(c *CPU) {
	s := c.State
	addr := c.fetchImm16()
	s.Memory[addr] = s.A
	s.PC += 2
}

// execLDA loads A from the 16-bit address following the opcode.
func execLDA(c *CPU) {
	s := c.State
	addr := c.fetchImm16()
	s.A = s.Memory[addr]
	s.PC += 2
}

// execSHLD stores L at addr and H at addr+1, addr being the 16-bit
// immediate following the opcode.
func execSHLD(c *CPU) {
	s := c.State
	addr := c.fetchImm16()
	s.Memory[addr] = s.L
	s.Memory[addr+1] = s.H
	s.PC += 2
}

// execLHLD loads L from addr and H from addr+1.
func execLHLD(c *CPU) {
	s := c.State
	addr := c.fetchImm16()
	s.L = s.Memory[addr]
	s.H = s.Memory[addr+1]
	s.PC += 2
}

// execXCHG swaps HL and DE.
func execXCHG(c *CPU) {
	s := c.State
	s.H, s.D = s.D, s.H
	s.L, s.E = s.E, s.L
}
