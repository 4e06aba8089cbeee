package cpu

import (
	"math/bits"
	"testing"
)

// TestParityTable verifies the precomputed table against popcount for
// every byte value.
func TestParityTable(t *testing.T) {
	for v := 0; v < 256; v++ {
		want := bits.OnesCount8(uint8(v))%2 == 0
		if Parity(uint8(v)) != want {
			t.Errorf("Parity(%02X) = %v, want %v", v, Parity(uint8(v)), want)
		}
	}
}

// allFlagCombos enumerates every combination of the five flags.
func allFlagCombos() []Flags {
	combos := make([]Flags, 0, 32)
	for i := 0; i < 32; i++ {
		combos = append(combos, Flags{
			Sign:     i&1 != 0,
			Zero:     i&2 != 0,
			AuxCarry: i&4 != 0,
			Parity:   i&8 != 0,
			Carry:    i&16 != 0,
		})
	}
	return combos
}

// TestEncodeDecodeRoundTrip verifies decode(encode(f)) == f for all
// flag combinations.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, f := range allFlagCombos() {
		var got Flags
		got.Decode(f.Encode())
		if got != f {
			t.Errorf("round trip %+v: got %+v", f, got)
		}
	}
}

// TestEncodeReservedBits verifies bit5=0, bit3=0, bit1=1 in every
// encoding.
func TestEncodeReservedBits(t *testing.T) {
	for _, f := range allFlagCombos() {
		b := f.Encode()
		if b&0b00101000 != 0 {
			t.Errorf("encode %+v = %08b: reserved bits 5/3 set", f, b)
		}
		if b&0b00000010 == 0 {
			t.Errorf("encode %+v = %08b: reserved bit 1 clear", f, b)
		}
	}
}

// TestDecodeIgnoresReservedBits verifies garbage in the reserved bits
// does not leak into the flags.
func TestDecodeIgnoresReservedBits(t *testing.T) {
	var a, b Flags
	a.Decode(0x00)
	b.Decode(0b00101000)
	if a != b {
		t.Errorf("reserved bits changed decode: %+v vs %+v", a, b)
	}
}

// TestSetZSP verifies the three result flags and that carry/aux are
// untouched.
func TestSetZSP(t *testing.T) {
	f := Flags{Carry: true, AuxCarry: true}
	f.SetZSP(0x00)
	if !f.Zero || f.Sign || !f.Parity {
		t.Errorf("SetZSP(0): %+v", f)
	}
	if !f.Carry || !f.AuxCarry {
		t.Error("SetZSP touched carry/aux-carry")
	}

	f.SetZSP(0x80)
	if f.Zero || !f.Sign {
		t.Errorf("SetZSP(0x80): %+v", f)
	}
	if f.Parity {
		t.Error("SetZSP(0x80): parity should be odd")
	}
}
