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

// OperandKind tells the disassembler how to pull operand bytes out of the
// instruction stream; the interpreter ignores it entirely.
type OperandKind int

const (
	// OperandNone opcodes carry no trailing immediate bytes; Operand is
	// already the complete, static operand text.
	OperandNone OperandKind = iota
	// OperandImm8 opcodes have one trailing immediate byte, formatted
	// into Operand with a single %02x verb.
	OperandImm8
	// OperandImm16 opcodes have two trailing little-endian bytes,
	// formatted into Operand with a single %04x verb.
	OperandImm16
)

// OpcodeInfo is one row of the 256-entry decode table shared by the
// interpreter (Exec) and the disassembler (everything else). This is the
// single source of truth for per-opcode length and mnemonic; nothing in
// package disasm duplicates it.
type OpcodeInfo struct {
	Mnemonic string
	Operand  string
	Length   int
	Kind     OperandKind
	Exec     func(c *CPU)
}

// OpcodeTable is indexed by opcode byte. Every one of the 256 entries has
// a non-nil Exec — the 12 undocumented opcodes and all other gaps in the
// 8080 ISA decode as NOP, per spec. A nil Exec here is a programmer bug,
// not a runtime condition (see FatalDecodeError).
var OpcodeTable [256]OpcodeInfo

var regName = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var pairName = [4]string{"B", "D", "H", "SP"}
var pushPopName = [4]string{"B", "D", "H", "PSW"}
var condName = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

func init() {
	buildMOV()
	buildALU()
	buildImmediateALU()
	buildINRDCR()
	buildRegPairOps()
	buildPushPop()
	buildBranches()
	buildRST()
	buildMisc()
	buildUndocumentedNOPs()
}

func buildMOV() {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			op := 0x40 | dst<<3 | src
			if op == 0x76 {
				continue // HLT occupies MOV M,M's slot; set in buildMisc
			}
			d, s := dst, src
			OpcodeTable[op] = OpcodeInfo{
				Mnemonic: "MOV",
				Operand:  regName[d] + "," + regName[s],
				Length:   1,
				Exec:     func(c *CPU) { c.setReg8(d, c.reg8(s)) },
			}
		}
	}
}

func buildALU() {
	families := []struct {
		base     uint8
		mnemonic string
		fn       func(c *CPU, operand uint8)
	}{
		{0x80, "ADD", execADD},
		{0x88, "ADC", execADC},
		{0x90, "SUB", execSUB},
		{0x98, "SBB", execSBB},
		{0xA0, "ANA", execANA},
		{0xA8, "XRA", execXRA},
		{0xB0, "ORA", execORA},
		{0xB8, "CMP", execCMP},
	}
	for _, fam := range families {
		for r := uint8(0); r < 8; r++ {
			op := fam.base | r
			reg := r
			fn := fam.fn
			OpcodeTable[op] = OpcodeInfo{
				Mnemonic: fam.mnemonic,
				Operand:  regName[reg],
				Length:   1,
				Exec:     func(c *CPU) { fn(c, c.reg8(reg)) },
			}
		}
	}
}

func buildImmediateALU() {
	families := []struct {
		op       uint8
		mnemonic string
		fn       func(c *CPU, operand uint8)
	}{
		{0xC6, "ADI", execADD},
		{0xCE, "ACI", execADC},
		{0xD6, "SUI", execSUB},
		{0xDE, "SBI", execSBB},
		{0xE6, "ANI", execANA},
		{0xEE, "XRI", execXRA},
		{0xF6, "ORI", execORA},
		{0xFE, "CPI", execCMP},
	}
	for _, fam := range families {
		fn := fam.fn
		OpcodeTable[fam.op] = OpcodeInfo{
			Mnemonic: fam.mnemonic,
			Operand:  "#$%02x",
			Length:   2,
			Kind:     OperandImm8,
			Exec: func(c *CPU) {
				fn(c, c.fetchImm8())
				c.State.PC++
			},
		}
	}
}

func buildINRDCR() {
	for r := uint8(0); r < 8; r++ {
		reg := r
		OpcodeTable[0x04|r<<3] = OpcodeInfo{
			Mnemonic: "INR",
			Operand:  regName[reg],
			Length:   1,
			Exec:     func(c *CPU) { execINR(c, reg) },
		}
		OpcodeTable[0x05|r<<3] = OpcodeInfo{
			Mnemonic: "DCR",
			Operand:  regName[reg],
			Length:   1,
			Exec:     func(c *CPU) { execDCR(c, reg) },
		}
	}
}

func buildRegPairOps() {
	for rp := uint8(0); rp < 4; rp++ {
		p := rp
		OpcodeTable[0x01|p<<4] = OpcodeInfo{
			Mnemonic: "LXI",
			Operand:  pairName[p] + ",#$%04x",
			Length:   3,
			Kind:     OperandImm16,
			Exec: func(c *CPU) {
				c.setRegPair(p, c.fetchImm16())
				c.State.PC += 2
			},
		}
		OpcodeTable[0x03|p<<4] = OpcodeInfo{
			Mnemonic: "INX",
			Operand:  pairName[p],
			Length:   1,
			Exec:     func(c *CPU) { c.setRegPair(p, c.regPair(p)+1) },
		}
		OpcodeTable[0x0B|p<<4] = OpcodeInfo{
			Mnemonic: "DCX",
			Operand:  pairName[p],
			Length:   1,
			Exec:     func(c *CPU) { c.setRegPair(p, c.regPair(p)-1) },
		}
		OpcodeTable[0x09|p<<4] = OpcodeInfo{
			Mnemonic: "DAD",
			Operand:  pairName[p],
			Length:   1,
			Exec:     func(c *CPU) { execDAD(c, p) },
		}
	}

	// LDAX/STAX only exist for BC and DE.
	OpcodeTable[0x02] = OpcodeInfo{Mnemonic: "STAX", Operand: "B", Length: 1,
		Exec: func(c *CPU) { c.State.Memory[c.State.BC()] = c.State.A }}
	OpcodeTable[0x0A] = OpcodeInfo{Mnemonic: "LDAX", Operand: "B", Length: 1,
		Exec: func(c *CPU) { c.State.A = c.State.Memory[c.State.BC()] }}
	OpcodeTable[0x12] = OpcodeInfo{Mnemonic: "STAX", Operand: "D", Length: 1,
		Exec: func(c *CPU) { c.State.Memory[c.State.DE()] = c.State.A }}
	OpcodeTable[0x1A] = OpcodeInfo{Mnemonic: "LDAX", Operand: "D", Length: 1,
		Exec: func(c *CPU) { c.State.A = c.State.Memory[c.State.DE()] }}

	// MVI r,d8 / MVI M,d8
	for r := uint8(0); r < 8; r++ {
		reg := r
		OpcodeTable[0x06|r<<3] = OpcodeInfo{
			Mnemonic: "MVI",
			Operand:  regName[reg] + ",#$%02x",
			Length:   2,
			Kind:     OperandImm8,
			Exec: func(c *CPU) {
				c.setReg8(reg, c.fetchImm8())
				c.State.PC++
			},
		}
	}
}

func buildPushPop() {
	for rp := uint8(0); rp < 4; rp++ {
		p := rp
		OpcodeTable[0xC5|p<<4] = OpcodeInfo{
			Mnemonic: "PUSH",
			Operand:  pushPopName[p],
			Length:   1,
			Exec:     func(c *CPU) { execPUSH(c, p) },
		}
		OpcodeTable[0xC1|p<<4] = OpcodeInfo{
			Mnemonic: "POP",
			Operand:  pushPopName[p],
			Length:   1,
			Exec:     func(c *CPU) { execPOP(c, p) },
		}
	}
}

func buildBranches() {
	for cc := uint8(0); cc < 8; cc++ {
		cond := cc
		name := condName[cond]
		OpcodeTable[0xC2|cc<<3] = OpcodeInfo{
			Mnemonic: "J" + name,
			Operand:  "$%04x",
			Length:   3,
			Kind:     OperandImm16,
			Exec:     func(c *CPU) { execJcc(c, cond) },
		}
		OpcodeTable[0xC4|cc<<3] = OpcodeInfo{
			Mnemonic: "C" + name,
			Operand:  "$%04x",
			Length:   3,
			Kind:     OperandImm16,
			Exec:     func(c *CPU) { execCcc(c, cond) },
		}
		OpcodeTable[0xC0|cc<<3] = OpcodeInfo{
			Mnemonic: "R" + name,
			Operand:  "",
			Length:   1,
			Exec:     func(c *CPU) { execRcc(c, cond) },
		}
	}
}

func buildRST() {
	digits := [8]string{"0", "1", "2", "3", "4", "5", "6", "7"}
	for n := uint8(0); n < 8; n++ {
		num := n
		OpcodeTable[0xC7|n<<3] = OpcodeInfo{
			Mnemonic: "RST",
			Operand:  digits[n],
			Length:   1,
			Exec: func(c *CPU) {
				c.State.Push16(c.State.PC)
				c.State.PC = uint16(num) * 8
			},
		}
	}
}

func buildMisc() {
	OpcodeTable[0x00] = OpcodeInfo{Mnemonic: "NOP", Length: 1, Exec: execNOP}
	OpcodeTable[0x07] = OpcodeInfo{Mnemonic: "RLC", Length: 1, Exec: execRLC}
	OpcodeTable[0x0F] = OpcodeInfo{Mnemonic: "RRC", Length: 1, Exec: execRRC}
	OpcodeTable[0x17] = OpcodeInfo{Mnemonic: "RAL", Length: 1, Exec: execRAL}
	OpcodeTable[0x1F] = OpcodeInfo{Mnemonic: "RAR", Length: 1, Exec: execRAR}
	OpcodeTable[0x22] = OpcodeInfo{Mnemonic: "SHLD", Operand: "$%04x", Length: 3, Kind: OperandImm16, Exec: execSHLD}
	OpcodeTable[0x27] = OpcodeInfo{Mnemonic: "DAA", Length: 1, Exec: execDAA}
	OpcodeTable[0x2A] = OpcodeInfo{Mnemonic: "LHLD", Operand: "$%04x", Length: 3, Kind: OperandImm16, Exec: execLHLD}
	OpcodeTable[0x2F] = OpcodeInfo{Mnemonic: "CMA", Length: 1, Exec: execCMA}
	OpcodeTable[0x32] = OpcodeInfo{Mnemonic: "STA", Operand: "$%04x", Length: 3, Kind: OperandImm16, Exec: execSTA}
	OpcodeTable[0x37] = OpcodeInfo{Mnemonic: "STC", Length: 1, Exec: execSTC}
	OpcodeTable[0x3A] = OpcodeInfo{Mnemonic: "LDA", Operand: "$%04x", Length: 3, Kind: OperandImm16, Exec: execLDA}
	OpcodeTable[0x3F] = OpcodeInfo{Mnemonic: "CMC", Length: 1, Exec: execCMC}
	OpcodeTable[0x76] = OpcodeInfo{Mnemonic: "HLT", Length: 1, Exec: execHLT}
	OpcodeTable[0xC3] = OpcodeInfo{Mnemonic: "JMP", Operand: "$%04x", Length: 3, Kind: OperandImm16, Exec: execJMP}
	OpcodeTable[0xC9] = OpcodeInfo{Mnemonic: "RET", Length: 1, Exec: execRET}
	OpcodeTable[0xCD] = OpcodeInfo{Mnemonic: "CALL", Operand: "$%04x", Length: 3, Kind: OperandImm16, Exec: execCALL}
	OpcodeTable[0xD3] = OpcodeInfo{Mnemonic: "OUT", Operand: "#$%02x", Length: 2, Kind: OperandImm8, Exec: execOUT}
	OpcodeTable[0xDB] = OpcodeInfo{Mnemonic: "IN", Operand: "#$%02x", Length: 2, Kind: OperandImm8, Exec: execIN}
	OpcodeTable[0xE3] = OpcodeInfo{Mnemonic: "XTHL", Length: 1, Exec: execXTHL}
	OpcodeTable[0xE9] = OpcodeInfo{Mnemonic: "PCHL", Length: 1, Exec: execPCHL}
	OpcodeTable[0xEB] = OpcodeInfo{Mnemonic: "XCHG", Length: 1, Exec: execXCHG}
	OpcodeTable[0xF3] = OpcodeInfo{Mnemonic: "DI", Length: 1, Exec: execDI}
	OpcodeTable[0xF9] = OpcodeInfo{Mnemonic: "SPHL", Length: 1, Exec: execSPHL}
	OpcodeTable[0xFB] = OpcodeInfo{Mnemonic: "EI", Length: 1, Exec: execEI}
}

func buildUndocumentedNOPs() {
	for _, op := range []uint8{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD} {
		OpcodeTable[op] = OpcodeInfo{Mnemonic: "NOP", Length: 1, Exec: execNOP}
	}
}
