package cpu

import "testing"

func TestRegisterGetSet(t *testing.T) {
	var r Registers
	regs := []Reg{RegB, RegC, RegD, RegE, RegH, RegL, RegA}
	for i, reg := range regs {
		r.Set(reg, uint8(i+1))
	}
	for i, reg := range regs {
		if got := r.Get(reg); got != uint8(i+1) {
			t.Errorf("Get(%d) = %02X, want %02X", reg, got, i+1)
		}
	}
}

func TestRegisterPairs(t *testing.T) {
	var r Registers
	r.SetPair(PairBC, 0x1234)
	if r.B != 0x12 || r.C != 0x34 {
		t.Errorf("SetPair BC: B=%02X C=%02X", r.B, r.C)
	}
	if r.Pair(PairBC) != 0x1234 {
		t.Errorf("Pair BC = %04X", r.Pair(PairBC))
	}

	r.SetPair(PairDE, 0xABCD)
	if r.Pair(PairDE) != 0xABCD {
		t.Errorf("Pair DE = %04X", r.Pair(PairDE))
	}

	r.SetPair(PairHL, 0x5678)
	if r.HL() != 0x5678 || r.H != 0x56 || r.L != 0x78 {
		t.Errorf("SetPair HL: H=%02X L=%02X", r.H, r.L)
	}
}

func TestPSWPacking(t *testing.T) {
	c := New()
	c.Regs.A = 0x5A
	c.Flags = Flags{Zero: true, Carry: true}
	if got := c.PSW(); got != 0x5A43 {
		t.Errorf("PSW = %04X, want 5A43", got)
	}

	c.SetPSW(0xFFD7)
	if c.Regs.A != 0xFF {
		t.Errorf("SetPSW: A=%02X", c.Regs.A)
	}
	want := Flags{Sign: true, Zero: true, AuxCarry: true, Parity: true, Carry: true}
	if c.Flags != want {
		t.Errorf("SetPSW: flags %+v", c.Flags)
	}
}
