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

// execPUSH pushes the register pair addressed by rp (0=BC 1=DE 2=HL
// 3=PSW, the A/flags pair) onto the stack.
func execPUSH(c *CPU, rp uint8) {
	s := c.State
	if rp == 3 {
		s.Push16(uint16(s.A)<<8 | uint16(s.Flags()))
		return
	}
	s.Push16(c.regPair(rp))
}

// execPOP pops into the register pair addressed by rp. rp==3 (PSW) pops A
// from the high byte and restores every flag, including AC, from the low
// byte.
func execPOP(c *CPU, rp uint8) {
	s := c.State
	v := s.Pop16()
	if rp == 3 {
		s.A = uint8(v >> 8)
		s.SetFlags(uint8(v))
		return
	}
	c.setRegPair(rp, v)
}

// execXTHL exchanges HL with the top of stack.
func execXTHL(c *CPU) {
	s := c.State
	lo := s.Memory[s.SP]
	hi := s.Memory[s.SP+1]
	s.Memory[s.SP] = s.L
	s.Memory[s.SP+1] = s.H
	s.L = lo
	s.H = hi
}

// execSPHL copies HL into SP.
func execSPHL(c *CPU) {
	c.State.SP = c.State.HL()
}

// execNOP does nothing. Also serves every undocumented opcode that
// decodes to a no-op on real 8080 silicon.
func execNOP(c *CPU) {}

// execHLT sets Halted. Step does not check it, so the host is expected to
// check CPU.Halted after every Step and stop calling it once true.
func execHLT(c *CPU) {
	c.State.Halted = true
}

// execDI disables interrupts.
func execDI(c *CPU) {
	c.State.IntEnable = false
}

// execEI enables interrupts.
func execEI(c *CPU) {
	c.State.IntEnable = true
}

// execIN reads the immediate port byte through the attached PortBus and
// stores the result in A. With no bus attached this leaves A unchanged.
func execIN(c *CPU) {
	s := c.State
	port := c.fetchImm8()
	s.PC++
	if c.bus != nil {
		s.A = c.bus.In(port)
	}
}

// execOUT writes A to the immediate port byte through the attached
// PortBus. With no bus attached this is a no-op.
func execOUT(c *CPU) {
	s := c.State
	port := c.fetchImm8()
	s.PC++
	if c.bus != nil {
		c.bus.Out(port, s.A)
	}
}
