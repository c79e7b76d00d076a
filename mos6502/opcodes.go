package mos6502

import "fmt"

// Addressing modes.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	Implicit = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // indexed indirect, (zp,X)
	IndirectY // indirect indexed, (zp),Y
)

var modeNames = map[uint8]string{
	Implicit: "impl", Accumulator: "acc", Immediate: "imm",
	ZeroPage: "zp", ZeroPageX: "zp,x", ZeroPageY: "zp,y",
	Relative: "rel", Absolute: "abs", AbsoluteX: "abs,x", AbsoluteY: "abs,y",
	Indirect: "ind", IndirectX: "(ind,x)", IndirectY: "(ind),y",
}

// Mnemonics. Legal instructions first, then the unofficial opcodes
// this core synthesizes as the composition of two legal operations on
// the same effective address.
// https://www.nesdev.org/obelisk-6502-guide/instructions.html
// https://www.nesdev.org/wiki/CPU_unofficial_opcodes
const (
	ADC = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// Unofficial.
	LAX // LDA+LDX
	SAX // store A&X
	DCP // DEC+CMP
	ISB // INC+SBC
	SLO // ASL+ORA
	RLA // ROL+AND
	SRE // LSR+EOR
	RRA // ROR+ADC
	ANC // AND, copy N into C
	ALR // AND then LSR A
	ARR // AND then ROR A, odd V/C
	SBX // (A&X) - operand -> X
	LAS // (mem & SP) -> A,X,SP
	SHA // store A&X&(hi+1), unstable
	SHX // store X&(hi+1), unstable
	SHY // store Y&(hi+1), unstable
	TAS // SP = A&X; SHA-style store, unstable
	JAM // halts the CPU (KIL/HLT)
)

var mnemonics = map[uint8]string{
	ADC: "ADC", AND: "AND", ASL: "ASL", BCC: "BCC", BCS: "BCS", BEQ: "BEQ",
	BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL", BRK: "BRK", BVC: "BVC",
	BVS: "BVS", CLC: "CLC", CLD: "CLD", CLI: "CLI", CLV: "CLV", CMP: "CMP",
	CPX: "CPX", CPY: "CPY", DEC: "DEC", DEX: "DEX", DEY: "DEY", EOR: "EOR",
	INC: "INC", INX: "INX", INY: "INY", JMP: "JMP", JSR: "JSR", LDA: "LDA",
	LDX: "LDX", LDY: "LDY", LSR: "LSR", NOP: "NOP", ORA: "ORA", PHA: "PHA",
	PHP: "PHP", PLA: "PLA", PLP: "PLP", ROL: "ROL", ROR: "ROR", RTI: "RTI",
	RTS: "RTS", SBC: "SBC", SEC: "SEC", SED: "SED", SEI: "SEI", STA: "STA",
	STX: "STX", STY: "STY", TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA",
	TXS: "TXS", TYA: "TYA", LAX: "LAX", SAX: "SAX", DCP: "DCP", ISB: "ISB",
	SLO: "SLO", RLA: "RLA", SRE: "SRE", RRA: "RRA", ANC: "ANC", ALR: "ALR",
	ARR: "ARR", SBX: "SBX", LAS: "LAS", SHA: "SHA", SHX: "SHX", SHY: "SHY",
	TAS: "TAS", JAM: "JAM",
}

// opcode describes one of the 256 entries of the decode table. bytes
// is the instruction's total length including the opcode byte; cycles
// is the base cycle count before any page-cross or branch-taken
// penalty accounted for separately in the core.
type opcode struct {
	op     uint8
	mode   uint8
	bytes  uint8
	cycles uint8
}

func (o opcode) String() string {
	return fmt.Sprintf("%s %s", mnemonics[o.op], modeNames[o.mode])
}

// Disassemble returns the mnemonic and addressing mode of the opcode
// byte code, and the instruction's total length in bytes, for tools
// (the debugger, trace logging) that want decode info without
// stepping the CPU.
func Disassemble(code uint8) (text string, length uint8) {
	o := opcodes[code]
	return o.String(), o.bytes
}

// opcodes is the static 256-entry decode table. Slots with no
// assigned real-hardware behavior decode as JAM.
var opcodes [256]opcode

func def(code uint8, op, mode uint8, bytes, cycles uint8) {
	opcodes[code] = opcode{op: op, mode: mode, bytes: bytes, cycles: cycles}
}

func init() {
	for i := range opcodes {
		opcodes[i] = opcode{op: JAM, mode: Implicit, bytes: 1, cycles: 2}
	}

	// ADC
	def(0x69, ADC, Immediate, 2, 2)
	def(0x65, ADC, ZeroPage, 2, 3)
	def(0x75, ADC, ZeroPageX, 2, 4)
	def(0x6D, ADC, Absolute, 3, 4)
	def(0x7D, ADC, AbsoluteX, 3, 4)
	def(0x79, ADC, AbsoluteY, 3, 4)
	def(0x61, ADC, IndirectX, 2, 6)
	def(0x71, ADC, IndirectY, 2, 5)

	// AND
	def(0x29, AND, Immediate, 2, 2)
	def(0x25, AND, ZeroPage, 2, 3)
	def(0x35, AND, ZeroPageX, 2, 4)
	def(0x2D, AND, Absolute, 3, 4)
	def(0x3D, AND, AbsoluteX, 3, 4)
	def(0x39, AND, AbsoluteY, 3, 4)
	def(0x21, AND, IndirectX, 2, 6)
	def(0x31, AND, IndirectY, 2, 5)

	// ASL
	def(0x0A, ASL, Accumulator, 1, 2)
	def(0x06, ASL, ZeroPage, 2, 5)
	def(0x16, ASL, ZeroPageX, 2, 6)
	def(0x0E, ASL, Absolute, 3, 6)
	def(0x1E, ASL, AbsoluteX, 3, 7)

	// branches
	def(0x90, BCC, Relative, 2, 2)
	def(0xB0, BCS, Relative, 2, 2)
	def(0xF0, BEQ, Relative, 2, 2)
	def(0x30, BMI, Relative, 2, 2)
	def(0xD0, BNE, Relative, 2, 2)
	def(0x10, BPL, Relative, 2, 2)
	def(0x50, BVC, Relative, 2, 2)
	def(0x70, BVS, Relative, 2, 2)

	def(0x24, BIT, ZeroPage, 2, 3)
	def(0x2C, BIT, Absolute, 3, 4)

	def(0x00, BRK, Implicit, 1, 7)

	def(0x18, CLC, Implicit, 1, 2)
	def(0xD8, CLD, Implicit, 1, 2)
	def(0x58, CLI, Implicit, 1, 2)
	def(0xB8, CLV, Implicit, 1, 2)

	def(0xC9, CMP, Immediate, 2, 2)
	def(0xC5, CMP, ZeroPage, 2, 3)
	def(0xD5, CMP, ZeroPageX, 2, 4)
	def(0xCD, CMP, Absolute, 3, 4)
	def(0xDD, CMP, AbsoluteX, 3, 4)
	def(0xD9, CMP, AbsoluteY, 3, 4)
	def(0xC1, CMP, IndirectX, 2, 6)
	def(0xD1, CMP, IndirectY, 2, 5)

	def(0xE0, CPX, Immediate, 2, 2)
	def(0xE4, CPX, ZeroPage, 2, 3)
	def(0xEC, CPX, Absolute, 3, 4)

	def(0xC0, CPY, Immediate, 2, 2)
	def(0xC4, CPY, ZeroPage, 2, 3)
	def(0xCC, CPY, Absolute, 3, 4)

	def(0xC6, DEC, ZeroPage, 2, 5)
	def(0xD6, DEC, ZeroPageX, 2, 6)
	def(0xCE, DEC, Absolute, 3, 6)
	def(0xDE, DEC, AbsoluteX, 3, 7)

	def(0xCA, DEX, Implicit, 1, 2)
	def(0x88, DEY, Implicit, 1, 2)

	def(0x49, EOR, Immediate, 2, 2)
	def(0x45, EOR, ZeroPage, 2, 3)
	def(0x55, EOR, ZeroPageX, 2, 4)
	def(0x4D, EOR, Absolute, 3, 4)
	def(0x5D, EOR, AbsoluteX, 3, 4)
	def(0x59, EOR, AbsoluteY, 3, 4)
	def(0x41, EOR, IndirectX, 2, 6)
	def(0x51, EOR, IndirectY, 2, 5)

	def(0xE6, INC, ZeroPage, 2, 5)
	def(0xF6, INC, ZeroPageX, 2, 6)
	def(0xEE, INC, Absolute, 3, 6)
	def(0xFE, INC, AbsoluteX, 3, 7)

	def(0xE8, INX, Implicit, 1, 2)
	def(0xC8, INY, Implicit, 1, 2)

	def(0x4C, JMP, Absolute, 3, 3)
	def(0x6C, JMP, Indirect, 3, 5)

	def(0x20, JSR, Absolute, 3, 6)

	def(0xA9, LDA, Immediate, 2, 2)
	def(0xA5, LDA, ZeroPage, 2, 3)
	def(0xB5, LDA, ZeroPageX, 2, 4)
	def(0xAD, LDA, Absolute, 3, 4)
	def(0xBD, LDA, AbsoluteX, 3, 4)
	def(0xB9, LDA, AbsoluteY, 3, 4)
	def(0xA1, LDA, IndirectX, 2, 6)
	def(0xB1, LDA, IndirectY, 2, 5)

	def(0xA2, LDX, Immediate, 2, 2)
	def(0xA6, LDX, ZeroPage, 2, 3)
	def(0xB6, LDX, ZeroPageY, 2, 4)
	def(0xAE, LDX, Absolute, 3, 4)
	def(0xBE, LDX, AbsoluteY, 3, 4)

	def(0xA0, LDY, Immediate, 2, 2)
	def(0xA4, LDY, ZeroPage, 2, 3)
	def(0xB4, LDY, ZeroPageX, 2, 4)
	def(0xAC, LDY, Absolute, 3, 4)
	def(0xBC, LDY, AbsoluteX, 3, 4)

	def(0x4A, LSR, Accumulator, 1, 2)
	def(0x46, LSR, ZeroPage, 2, 5)
	def(0x56, LSR, ZeroPageX, 2, 6)
	def(0x4E, LSR, Absolute, 3, 6)
	def(0x5E, LSR, AbsoluteX, 3, 7)

	def(0xEA, NOP, Implicit, 1, 2)
	// undocumented NOPs
	for _, c := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		def(c, NOP, Implicit, 1, 2)
	}
	for _, c := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		def(c, NOP, Immediate, 2, 2)
	}
	for _, c := range []uint8{0x04, 0x44, 0x64} {
		def(c, NOP, ZeroPage, 2, 3)
	}
	for _, c := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		def(c, NOP, ZeroPageX, 2, 4)
	}
	def(0x0C, NOP, Absolute, 3, 4)
	for _, c := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		def(c, NOP, AbsoluteX, 3, 4)
	}

	def(0x09, ORA, Immediate, 2, 2)
	def(0x05, ORA, ZeroPage, 2, 3)
	def(0x15, ORA, ZeroPageX, 2, 4)
	def(0x0D, ORA, Absolute, 3, 4)
	def(0x1D, ORA, AbsoluteX, 3, 4)
	def(0x19, ORA, AbsoluteY, 3, 4)
	def(0x01, ORA, IndirectX, 2, 6)
	def(0x11, ORA, IndirectY, 2, 5)

	def(0x48, PHA, Implicit, 1, 3)
	def(0x08, PHP, Implicit, 1, 3)
	def(0x68, PLA, Implicit, 1, 4)
	def(0x28, PLP, Implicit, 1, 4)

	def(0x2A, ROL, Accumulator, 1, 2)
	def(0x26, ROL, ZeroPage, 2, 5)
	def(0x36, ROL, ZeroPageX, 2, 6)
	def(0x2E, ROL, Absolute, 3, 6)
	def(0x3E, ROL, AbsoluteX, 3, 7)

	def(0x6A, ROR, Accumulator, 1, 2)
	def(0x66, ROR, ZeroPage, 2, 5)
	def(0x76, ROR, ZeroPageX, 2, 6)
	def(0x6E, ROR, Absolute, 3, 6)
	def(0x7E, ROR, AbsoluteX, 3, 7)

	def(0x40, RTI, Implicit, 1, 6)
	def(0x60, RTS, Implicit, 1, 6)

	def(0xE9, SBC, Immediate, 2, 2)
	def(0xEB, SBC, Immediate, 2, 2) // undocumented alias
	def(0xE5, SBC, ZeroPage, 2, 3)
	def(0xF5, SBC, ZeroPageX, 2, 4)
	def(0xED, SBC, Absolute, 3, 4)
	def(0xFD, SBC, AbsoluteX, 3, 4)
	def(0xF9, SBC, AbsoluteY, 3, 4)
	def(0xE1, SBC, IndirectX, 2, 6)
	def(0xF1, SBC, IndirectY, 2, 5)

	def(0x38, SEC, Implicit, 1, 2)
	def(0xF8, SED, Implicit, 1, 2)
	def(0x78, SEI, Implicit, 1, 2)

	def(0x85, STA, ZeroPage, 2, 3)
	def(0x95, STA, ZeroPageX, 2, 4)
	def(0x8D, STA, Absolute, 3, 4)
	def(0x9D, STA, AbsoluteX, 3, 5)
	def(0x99, STA, AbsoluteY, 3, 5)
	def(0x81, STA, IndirectX, 2, 6)
	def(0x91, STA, IndirectY, 2, 6)

	def(0x86, STX, ZeroPage, 2, 3)
	def(0x96, STX, ZeroPageY, 2, 4)
	def(0x8E, STX, Absolute, 3, 4)

	def(0x84, STY, ZeroPage, 2, 3)
	def(0x94, STY, ZeroPageX, 2, 4)
	def(0x8C, STY, Absolute, 3, 4)

	def(0xAA, TAX, Implicit, 1, 2)
	def(0xA8, TAY, Implicit, 1, 2)
	def(0xBA, TSX, Implicit, 1, 2)
	def(0x8A, TXA, Implicit, 1, 2)
	def(0x9A, TXS, Implicit, 1, 2)
	def(0x98, TYA, Implicit, 1, 2)

	// Unofficial opcodes.
	def(0xA7, LAX, ZeroPage, 2, 3)
	def(0xB7, LAX, ZeroPageY, 2, 4)
	def(0xAF, LAX, Absolute, 3, 4)
	def(0xBF, LAX, AbsoluteY, 3, 4)
	def(0xA3, LAX, IndirectX, 2, 6)
	def(0xB3, LAX, IndirectY, 2, 5)

	def(0x87, SAX, ZeroPage, 2, 3)
	def(0x97, SAX, ZeroPageY, 2, 4)
	def(0x8F, SAX, Absolute, 3, 4)
	def(0x83, SAX, IndirectX, 2, 6)

	def(0xC7, DCP, ZeroPage, 2, 5)
	def(0xD7, DCP, ZeroPageX, 2, 6)
	def(0xCF, DCP, Absolute, 3, 6)
	def(0xDF, DCP, AbsoluteX, 3, 7)
	def(0xDB, DCP, AbsoluteY, 3, 7)
	def(0xC3, DCP, IndirectX, 2, 8)
	def(0xD3, DCP, IndirectY, 2, 8)

	def(0xE7, ISB, ZeroPage, 2, 5)
	def(0xF7, ISB, ZeroPageX, 2, 6)
	def(0xEF, ISB, Absolute, 3, 6)
	def(0xFF, ISB, AbsoluteX, 3, 7)
	def(0xFB, ISB, AbsoluteY, 3, 7)
	def(0xE3, ISB, IndirectX, 2, 8)
	def(0xF3, ISB, IndirectY, 2, 8)

	def(0x07, SLO, ZeroPage, 2, 5)
	def(0x17, SLO, ZeroPageX, 2, 6)
	def(0x0F, SLO, Absolute, 3, 6)
	def(0x1F, SLO, AbsoluteX, 3, 7)
	def(0x1B, SLO, AbsoluteY, 3, 7)
	def(0x03, SLO, IndirectX, 2, 8)
	def(0x13, SLO, IndirectY, 2, 8)

	def(0x27, RLA, ZeroPage, 2, 5)
	def(0x37, RLA, ZeroPageX, 2, 6)
	def(0x2F, RLA, Absolute, 3, 6)
	def(0x3F, RLA, AbsoluteX, 3, 7)
	def(0x3B, RLA, AbsoluteY, 3, 7)
	def(0x23, RLA, IndirectX, 2, 8)
	def(0x33, RLA, IndirectY, 2, 8)

	def(0x47, SRE, ZeroPage, 2, 5)
	def(0x57, SRE, ZeroPageX, 2, 6)
	def(0x4F, SRE, Absolute, 3, 6)
	def(0x5F, SRE, AbsoluteX, 3, 7)
	def(0x5B, SRE, AbsoluteY, 3, 7)
	def(0x43, SRE, IndirectX, 2, 8)
	def(0x53, SRE, IndirectY, 2, 8)

	def(0x67, RRA, ZeroPage, 2, 5)
	def(0x77, RRA, ZeroPageX, 2, 6)
	def(0x6F, RRA, Absolute, 3, 6)
	def(0x7F, RRA, AbsoluteX, 3, 7)
	def(0x7B, RRA, AbsoluteY, 3, 7)
	def(0x63, RRA, IndirectX, 2, 8)
	def(0x73, RRA, IndirectY, 2, 8)

	def(0x0B, ANC, Immediate, 2, 2)
	def(0x2B, ANC, Immediate, 2, 2)
	def(0x4B, ALR, Immediate, 2, 2)
	def(0x6B, ARR, Immediate, 2, 2)
	def(0xCB, SBX, Immediate, 2, 2)
	def(0xBB, LAS, AbsoluteY, 3, 4)

	def(0x9F, SHA, AbsoluteY, 3, 5)
	def(0x93, SHA, IndirectY, 2, 6)
	def(0x9E, SHX, AbsoluteY, 3, 5)
	def(0x9C, SHY, AbsoluteX, 3, 5)
	def(0x9B, TAS, AbsoluteY, 3, 5)

	for _, c := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		def(c, JAM, Implicit, 1, 2)
	}
}
