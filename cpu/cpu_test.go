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

import "testing"

func newTestCPU() (*CPU, *State) {
	s := NewState()
	c := NewCPU(s)
	return c, s
}

// TestNOPPath is scenario S1: a single NOP advances PC by one and
// disturbs nothing else.
func TestNOPPath(t *testing.T) {
	c, s := newTestCPU()
	s.Memory[0x0100] = 0x00
	s.PC = 0x0100
	before := s.Snapshot()

	c.Step()

	if s.PC != 0x0101 {
		t.Errorf("PC = 0x%04X, want 0x0101", s.PC)
	}
	before.PC = s.PC
	if s.Snapshot() != before {
		t.Error("NOP should leave all state but PC unchanged")
	}
}

// TestImmediateLoad is scenario S2.
func TestImmediateLoad(t *testing.T) {
	c, s := newTestCPU()
	s.Memory[0x0100] = 0x3E // MVI A,d8
	s.Memory[0x0101] = 0x42
	s.PC = 0x0100

	c.Step()

	if s.A != 0x42 {
		t.Errorf("A = 0x%02X, want 0x42", s.A)
	}
	if s.PC != 0x0102 {
		t.Errorf("PC = 0x%04X, want 0x0102", s.PC)
	}
}

// TestAddWithCarry is scenario S3.
func TestAddWithCarry(t *testing.T) {
	c, s := newTestCPU()
	s.A = 0xFF
	s.B = 0x01
	s.Memory[0x0100] = 0x80 // ADD B
	s.PC = 0x0100

	c.Step()

	if s.A != 0x00 {
		t.Errorf("A = 0x%02X, want 0x00", s.A)
	}
	if !s.FlagZ {
		t.Error("Z should be set")
	}
	if s.FlagS {
		t.Error("S should be clear")
	}
	if !s.FlagCY {
		t.Error("CY should be set")
	}
	if !s.FlagP {
		t.Error("P should be set (0x00 has even parity)")
	}
}

// TestCallRetRoundTrip is scenario S4.
func TestCallRetRoundTrip(t *testing.T) {
	c, s := newTestCPU()
	s.Memory[0x0100] = 0xCD // CALL 0x0200
	s.Memory[0x0101] = 0x00
	s.Memory[0x0102] = 0x02
	s.Memory[0x0200] = 0xC9 // RET
	s.PC = 0x0100
	s.SP = 0x2400

	c.Step() // CALL
	if s.PC != 0x0200 {
		t.Errorf("after CALL: PC = 0x%04X, want 0x0200", s.PC)
	}
	if s.SP != 0x23FE {
		t.Errorf("after CALL: SP = 0x%04X, want 0x23FE", s.SP)
	}
	if s.Memory[0x23FE] != 0x03 || s.Memory[0x23FF] != 0x01 {
		t.Errorf("after CALL: return address bytes = %02X %02X, want 03 01",
			s.Memory[0x23FE], s.Memory[0x23FF])
	}

	c.Step() // RET
	if s.PC != 0x0103 {
		t.Errorf("after RET: PC = 0x%04X, want 0x0103", s.PC)
	}
	if s.SP != 0x2400 {
		t.Errorf("after RET: SP = 0x%04X, want 0x2400", s.SP)
	}
}

// TestConditionalBranchNotTaken is scenario S5.
func TestConditionalBranchNotTaken(t *testing.T) {
	c, s := newTestCPU()
	s.FlagZ = false
	s.Memory[0x0100] = 0xCA // JZ 0x1234
	s.Memory[0x0101] = 0x34
	s.Memory[0x0102] = 0x12
	s.PC = 0x0100

	c.Step()

	if s.PC != 0x0103 {
		t.Errorf("PC = 0x%04X, want 0x0103 (branch not taken)", s.PC)
	}
}

// TestXCHG is scenario S6.
func TestXCHG(t *testing.T) {
	c, s := newTestCPU()
	s.D, s.E, s.H, s.L = 0x11, 0x22, 0x33, 0x44
	s.Memory[0x0100] = 0xEB
	s.PC = 0x0100

	c.Step()

	if s.D != 0x33 || s.E != 0x44 || s.H != 0x11 || s.L != 0x22 {
		t.Errorf("XCHG: D=%02X E=%02X H=%02X L=%02X, want 33 44 11 22", s.D, s.E, s.H, s.L)
	}
}

func TestXRASelf(t *testing.T) {
	c, s := newTestCPU()
	s.A = 0x7A
	s.Memory[0x0100] = 0xAF // XRA A
	s.PC = 0x0100

	c.Step()

	if s.A != 0 {
		t.Errorf("A = 0x%02X, want 0x00", s.A)
	}
	if !s.FlagZ || s.FlagS || s.FlagCY {
		t.Error("XRA A should set Z, clear S and CY")
	}
}

func TestJMPLandsExactly(t *testing.T) {
	c, s := newTestCPU()
	s.Memory[0x0100] = 0xC3 // JMP 0x4321
	s.Memory[0x0101] = 0x21
	s.Memory[0x0102] = 0x43
	s.PC = 0x0100
	s.A = 0x55

	c.Step()

	if s.PC != 0x4321 {
		t.Errorf("PC = 0x%04X, want 0x4321", s.PC)
	}
	if s.A != 0x55 {
		t.Error("JMP should not disturb A")
	}
}

func TestCMATwiceIsIdentity(t *testing.T) {
	c, s := newTestCPU()
	s.A = 0x5A
	s.Memory[0x0100] = 0x2F
	s.Memory[0x0101] = 0x2F
	s.PC = 0x0100

	c.Step()
	c.Step()

	if s.A != 0x5A {
		t.Errorf("CMA;CMA: A = 0x%02X, want 0x5A", s.A)
	}
}

func TestCMCTwiceIsIdentity(t *testing.T) {
	c, s := newTestCPU()
	s.FlagCY = true
	s.Memory[0x0100] = 0x3F
	s.Memory[0x0101] = 0x3F
	s.PC = 0x0100

	c.Step()
	c.Step()

	if !s.FlagCY {
		t.Error("CMC;CMC should restore CY")
	}
}

func TestINXWrapsAt0xFFFF(t *testing.T) {
	c, s := newTestCPU()
	s.SetBC(0xFFFF)
	s.Memory[0x0100] = 0x03 // INX B
	s.PC = 0x0100

	c.Step()

	if s.BC() != 0x0000 {
		t.Errorf("BC() = 0x%04X, want 0x0000", s.BC())
	}
}

func TestDCXWrapsAt0x0000(t *testing.T) {
	c, s := newTestCPU()
	s.SetBC(0x0000)
	s.Memory[0x0100] = 0x0B // DCX B
	s.PC = 0x0100

	c.Step()

	if s.BC() != 0xFFFF {
		t.Errorf("BC() = 0x%04X, want 0xFFFF", s.BC())
	}
}

func TestPushAtSP1Wraps(t *testing.T) {
	c, s := newTestCPU()
	s.SP = 0x0001
	s.SetBC(0x1234)
	s.Memory[0x0100] = 0xC5 // PUSH B
	s.PC = 0x0100

	c.Step()

	if s.Memory[0x0000] != 0x12 || s.Memory[0xFFFF] != 0x34 {
		t.Errorf("PUSH at SP=1: mem[0]=%02X mem[FFFF]=%02X, want 12 34",
			s.Memory[0x0000], s.Memory[0xFFFF])
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, s := newTestCPU()
	s.SetHL(0xCAFE)
	s.SP = 0x2000
	s.Memory[0x0100] = 0xE5 // PUSH H
	s.Memory[0x0101] = 0xE1 // POP H
	s.PC = 0x0100

	c.Step()
	c.Step()

	if s.HL() != 0xCAFE {
		t.Errorf("HL() = 0x%04X, want 0xCAFE", s.HL())
	}
	if s.SP != 0x2000 {
		t.Errorf("SP = 0x%04X, want 0x2000", s.SP)
	}
}

// TestPopPSWRestoresAC verifies POP PSW restores AC from PSW bit 4.
func TestPopPSWRestoresAC(t *testing.T) {
	c, s := newTestCPU()
	s.A = 0x00
	s.FlagAC = true
	s.SP = 0x2000
	s.Memory[0x0100] = 0xF5 // PUSH PSW
	s.PC = 0x0100
	c.Step()

	s.FlagAC = false // disturb it before popping
	s.Memory[0x0101] = 0xF1 // POP PSW
	c.Step()

	if !s.FlagAC {
		t.Error("POP PSW should restore AC from PSW bit 4")
	}
}

// TestADCUsesPreInstructionCarry verifies ADC samples CY before this
// instruction's own result overwrites it.
func TestADCUsesPreInstructionCarry(t *testing.T) {
	c, s := newTestCPU()
	s.A = 0x05
	s.B = 0x03
	s.FlagCY = true
	s.Memory[0x0100] = 0x88 // ADC B
	s.PC = 0x0100

	c.Step()

	if s.A != 0x09 {
		t.Errorf("ADC with CY=1: A = 0x%02X, want 0x09 (5+3+1)", s.A)
	}
}

func TestPCHLDoesNotTouchStack(t *testing.T) {
	c, s := newTestCPU()
	s.SetHL(0x9000)
	s.SP = 0x2000
	s.Memory[0x0100] = 0xE9 // PCHL
	s.PC = 0x0100

	c.Step()

	if s.PC != 0x9000 {
		t.Errorf("PC = 0x%04X, want 0x9000", s.PC)
	}
	if s.SP != 0x2000 {
		t.Error("PCHL must not push anything onto the stack")
	}
}

func TestRSTPushesReturnAddress(t *testing.T) {
	c, s := newTestCPU()
	s.SP = 0x2000
	s.PC = 0x0100
	s.Memory[0x0100] = 0xCF // RST 1

	c.Step()

	if s.PC != 0x0008 {
		t.Errorf("PC = 0x%04X, want 0x0008", s.PC)
	}
	if s.SP != 0x1FFE {
		t.Errorf("SP = 0x%04X, want 0x1FFE", s.SP)
	}
	if s.Memory[0x1FFE] != 0x01 {
		t.Errorf("pushed return address low byte = %02X, want 01", s.Memory[0x1FFE])
	}
}

func TestHLTSetsHalted(t *testing.T) {
	c, s := newTestCPU()
	s.Memory[0x0100] = 0x76
	s.PC = 0x0100

	if c.Halted() {
		t.Fatal("CPU should not start halted")
	}
	c.Step()
	if !c.Halted() {
		t.Error("HLT should set Halted")
	}
}

type fakeBus struct {
	in      uint8
	outPort uint8
	outVal  uint8
}

func (b *fakeBus) In(port uint8) uint8 {
	return b.in
}

func (b *fakeBus) Out(port uint8, value uint8) {
	b.outPort = port
	b.outVal = value
}

func TestPortIOWithBus(t *testing.T) {
	c, s := newTestCPU()
	bus := &fakeBus{in: 0x77}
	c.AttachPortBus(bus)

	s.Memory[0x0100] = 0xDB // IN 0x05
	s.Memory[0x0101] = 0x05
	s.PC = 0x0100
	c.Step()
	if s.A != 0x77 {
		t.Errorf("IN: A = 0x%02X, want 0x77", s.A)
	}

	s.A = 0x99
	s.Memory[0x0102] = 0xD3 // OUT 0x06
	s.Memory[0x0103] = 0x06
	c.Step()
	if bus.outPort != 0x06 || bus.outVal != 0x99 {
		t.Errorf("OUT: port=%02X val=%02X, want 06 99", bus.outPort, bus.outVal)
	}
}

func TestPortIOWithoutBusIsNoop(t *testing.T) {
	c, s := newTestCPU()
	s.A = 0x11
	s.Memory[0x0100] = 0xDB // IN 0x00
	s.Memory[0x0101] = 0x00
	s.PC = 0x0100

	c.Step()

	if s.A != 0x11 {
		t.Error("IN with no bus attached should leave A unchanged")
	}
}

func TestInterruptPushesAndJumps(t *testing.T) {
	c, s := newTestCPU()
	s.PC = 0x0150
	s.SP = 0x2000
	s.IntEnable = true

	c.Interrupt(0x0038)

	if s.PC != 0x0038 {
		t.Errorf("PC = 0x%04X, want 0x0038", s.PC)
	}
	if s.IntEnable {
		t.Error("Interrupt should clear IntEnable")
	}
	if s.Pop16() != 0x0150 {
		t.Error("Interrupt should have pushed the pre-interrupt PC")
	}
}

func TestInterruptNoopWhenDisabled(t *testing.T) {
	c, s := newTestCPU()
	s.PC = 0x0150
	s.IntEnable = false

	c.Interrupt(0x0038)

	if s.PC != 0x0150 {
		t.Error("Interrupt should be a no-op when IntEnable is false")
	}
}

// TestEveryOpcodeIsWired verifies all 256 table slots have a handler, so
// Step never panics with FatalDecodeError on a conformant build.
func TestEveryOpcodeIsWired(t *testing.T) {
	for op := 0; op < 256; op++ {
		if OpcodeTable[op].Exec == nil {
			t.Errorf("opcode 0x%02X has no Exec handler", op)
		}
	}
}

// TestStepIsDeterministic covers universal invariant #2.
func TestStepIsDeterministic(t *testing.T) {
	for op := 0; op < 256; op++ {
		run := func() State {
			s := NewState()
			s.A, s.B, s.C, s.D, s.E, s.H, s.L = 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77
			s.SP = 0x2000
			s.PC = 0x0100
			s.Memory[0x0100] = byte(op)
			s.Memory[0x0101] = 0x42
			s.Memory[0x0102] = 0x43
			c := NewCPU(s)
			c.Step()
			return *s
		}
		a, b := run(), run()
		if a != b {
			t.Errorf("opcode 0x%02X is not deterministic", op)
		}
	}
}
