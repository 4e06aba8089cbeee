package cpu

// PSW low-byte bit positions. Bits 5 and 3 always read as 0, bit 1
// always reads as 1.
const (
	flagBitS      uint8 = 0x80 // Sign
	flagBitZ      uint8 = 0x40 // Zero
	flagBitA      uint8 = 0x10 // Auxiliary carry
	flagBitP      uint8 = 0x04 // Parity
	flagBitAlways uint8 = 0x02 // Reserved, wired to 1
	flagBitC      uint8 = 0x01 // Carry
)

// Flags holds the five 8080 condition flags.
type Flags struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// parityTable: true for each byte value with an even number of 1 bits.
var parityTable [256]bool

func init() {
	for i := 0; i < 256; i++ {
		j := uint8(i)
		ones := uint8(0)
		for k := 0; k < 8; k++ {
			ones ^= j & 1
			j >>= 1
		}
		parityTable[i] = ones == 0
	}
}

// Parity reports whether v has an even number of 1 bits.
func Parity(v uint8) bool {
	return parityTable[v]
}

// SetZSP sets the zero, sign and parity flags from an 8-bit result.
// Carry and aux-carry are untouched.
func (f *Flags) SetZSP(v uint8) {
	f.Zero = v == 0
	f.Sign = v&0x80 != 0
	f.Parity = parityTable[v]
}

// Encode packs the flags into the PSW low byte, forcing the reserved
// bits (bit5=0, bit3=0, bit1=1).
func (f *Flags) Encode() uint8 {
	b := flagBitAlways
	if f.Sign {
		b |= flagBitS
	}
	if f.Zero {
		b |= flagBitZ
	}
	if f.AuxCarry {
		b |= flagBitA
	}
	if f.Parity {
		b |= flagBitP
	}
	if f.Carry {
		b |= flagBitC
	}
	return b
}

// Decode unpacks the PSW low byte. Reserved bits are ignored.
func (f *Flags) Decode(b uint8) {
	f.Sign = b&flagBitS != 0
	f.Zero = b&flagBitZ != 0
	f.AuxCarry = b&flagBitA != 0
	f.Parity = b&flagBitP != 0
	f.Carry = b&flagBitC != 0
}
