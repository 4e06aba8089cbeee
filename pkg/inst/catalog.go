package inst

import "fmt"

// OperandKind describes how an instruction's trailing bytes are
// rendered: nothing, an immediate byte, an immediate word, or an
// address. Immediates carry a "#" marker in listings, addresses do
// not.
type OperandKind uint8

const (
	OperandNone OperandKind = iota
	OperandImm8
	OperandImm16
	OperandAddr
)

// Info holds static metadata for one opcode byte.
type Info struct {
	Mnemonic string // assembly mnemonic, "*"-suffixed for undocumented aliases
	Size     int    // total instruction length in bytes (1, 2 or 3)
	Operand  OperandKind
	Alt      bool // undocumented opcode aliasing a documented one
}

// Catalog maps each of the 256 opcode bytes to its Info. Every byte
// value is defined; there is no unknown opcode.
var Catalog [256]Info

// Size returns the instruction length for an opcode byte.
func Size(op uint8) int {
	return Catalog[op].Size
}

// Mnemonic returns the assembly mnemonic for an opcode byte.
func Mnemonic(op uint8) string {
	return Catalog[op].Mnemonic
}

// regNames indexes the source/destination encodings of the MOV and
// ALU blocks: B, C, D, E, H, L, M (memory at HL), A.
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

func def(op uint8, mnemonic string, kind OperandKind) {
	size := 1
	switch kind {
	case OperandImm8:
		size = 2
	case OperandImm16, OperandAddr:
		size = 3
	}
	Catalog[op] = Info{Mnemonic: mnemonic, Size: size, Operand: kind}
}

func defAlt(op uint8, mnemonic string, kind OperandKind) {
	def(op, mnemonic+"*", kind)
	Catalog[op].Alt = true
}

func init() {
	// 0x00..0x3F: the irregular block. Row pattern repeats per
	// register pair.
	def(0x00, "NOP", OperandNone)
	def(0x01, "LXI B", OperandImm16)
	def(0x02, "STAX B", OperandNone)
	def(0x03, "INX B", OperandNone)
	def(0x07, "RLC", OperandNone)
	def(0x09, "DAD B", OperandNone)
	def(0x0A, "LDAX B", OperandNone)
	def(0x0B, "DCX B", OperandNone)
	def(0x0F, "RRC", OperandNone)

	def(0x11, "LXI D", OperandImm16)
	def(0x12, "STAX D", OperandNone)
	def(0x13, "INX D", OperandNone)
	def(0x17, "RAL", OperandNone)
	def(0x19, "DAD D", OperandNone)
	def(0x1A, "LDAX D", OperandNone)
	def(0x1B, "DCX D", OperandNone)
	def(0x1F, "RAR", OperandNone)

	def(0x21, "LXI H", OperandImm16)
	def(0x22, "SHLD", OperandAddr)
	def(0x23, "INX H", OperandNone)
	def(0x27, "DAA", OperandNone)
	def(0x29, "DAD H", OperandNone)
	def(0x2A, "LHLD", OperandAddr)
	def(0x2B, "DCX H", OperandNone)
	def(0x2F, "CMA", OperandNone)

	def(0x31, "LXI SP", OperandImm16)
	def(0x32, "STA", OperandAddr)
	def(0x33, "INX SP", OperandNone)
	def(0x37, "STC", OperandNone)
	def(0x39, "DAD SP", OperandNone)
	def(0x3A, "LDA", OperandAddr)
	def(0x3B, "DCX SP", OperandNone)
	def(0x3F, "CMC", OperandNone)

	// Undocumented NOP aliases.
	for _, op := range []uint8{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		defAlt(op, "NOP", OperandNone)
	}

	// INR / DCR / MVI spread across the block at stride 8.
	for i, r := range regNames {
		def(0x04+uint8(i)*8, "INR "+r, OperandNone)
		def(0x05+uint8(i)*8, "DCR "+r, OperandNone)
		def(0x06+uint8(i)*8, "MVI "+r, OperandImm8)
	}

	// 0x40..0x7F: MOV dst,src with 0x76 as HLT.
	for d, dst := range regNames {
		for s, src := range regNames {
			def(0x40+uint8(d)*8+uint8(s), "MOV "+dst+","+src, OperandNone)
		}
	}
	def(0x76, "HLT", OperandNone)

	// 0x80..0xBF: the ALU block.
	for i, r := range regNames {
		def(0x80+uint8(i), "ADD "+r, OperandNone)
		def(0x88+uint8(i), "ADC "+r, OperandNone)
		def(0x90+uint8(i), "SUB "+r, OperandNone)
		def(0x98+uint8(i), "SBB "+r, OperandNone)
		def(0xA0+uint8(i), "ANA "+r, OperandNone)
		def(0xA8+uint8(i), "XRA "+r, OperandNone)
		def(0xB0+uint8(i), "ORA "+r, OperandNone)
		def(0xB8+uint8(i), "CMP "+r, OperandNone)
	}

	// 0xC0..0xFF: control flow, stack, I/O and immediates.
	def(0xC0, "RNZ", OperandNone)
	def(0xC1, "POP B", OperandNone)
	def(0xC2, "JNZ", OperandAddr)
	def(0xC3, "JMP", OperandAddr)
	def(0xC4, "CNZ", OperandAddr)
	def(0xC5, "PUSH B", OperandNone)
	def(0xC6, "ADI", OperandImm8)
	def(0xC8, "RZ", OperandNone)
	def(0xC9, "RET", OperandNone)
	def(0xCA, "JZ", OperandAddr)
	defAlt(0xCB, "JMP", OperandAddr)
	def(0xCC, "CZ", OperandAddr)
	def(0xCD, "CALL", OperandAddr)
	def(0xCE, "ACI", OperandImm8)

	def(0xD0, "RNC", OperandNone)
	def(0xD1, "POP D", OperandNone)
	def(0xD2, "JNC", OperandAddr)
	def(0xD3, "OUT", OperandImm8)
	def(0xD4, "CNC", OperandAddr)
	def(0xD5, "PUSH D", OperandNone)
	def(0xD6, "SUI", OperandImm8)
	def(0xD8, "RC", OperandNone)
	defAlt(0xD9, "RET", OperandNone)
	def(0xDA, "JC", OperandAddr)
	def(0xDB, "IN", OperandImm8)
	def(0xDC, "CC", OperandAddr)
	defAlt(0xDD, "CALL", OperandAddr)
	def(0xDE, "SBI", OperandImm8)

	def(0xE0, "RPO", OperandNone)
	def(0xE1, "POP H", OperandNone)
	def(0xE2, "JPO", OperandAddr)
	def(0xE3, "XTHL", OperandNone)
	def(0xE4, "CPO", OperandAddr)
	def(0xE5, "PUSH H", OperandNone)
	def(0xE6, "ANI", OperandImm8)
	def(0xE8, "RPE", OperandNone)
	def(0xE9, "PCHL", OperandNone)
	def(0xEA, "JPE", OperandAddr)
	def(0xEB, "XCHG", OperandNone)
	def(0xEC, "CPE", OperandAddr)
	defAlt(0xED, "CALL", OperandAddr)
	def(0xEE, "XRI", OperandImm8)

	def(0xF0, "RP", OperandNone)
	def(0xF1, "POP PSW", OperandNone)
	def(0xF2, "JP", OperandAddr)
	def(0xF3, "DI", OperandNone)
	def(0xF4, "CP", OperandAddr)
	def(0xF5, "PUSH PSW", OperandNone)
	def(0xF6, "ORI", OperandImm8)
	def(0xF8, "RM", OperandNone)
	def(0xF9, "SPHL", OperandNone)
	def(0xFA, "JM", OperandAddr)
	def(0xFB, "EI", OperandNone)
	def(0xFC, "CM", OperandAddr)
	defAlt(0xFD, "CALL", OperandAddr)
	def(0xFE, "CPI", OperandImm8)

	// RST vectors.
	for n := uint8(0); n < 8; n++ {
		def(0xC7+n*8, fmt.Sprintf("RST %d", n), OperandNone)
	}
}
