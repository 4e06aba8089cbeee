package emu

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/oisee/i8080/pkg/cpu"
)

// Snapshot captures the observable CPU state after a run.
type Snapshot struct {
	A uint8 `json:"a"`
	B uint8 `json:"b"`
	C uint8 `json:"c"`
	D uint8 `json:"d"`
	E uint8 `json:"e"`
	H uint8 `json:"h"`
	L uint8 `json:"l"`

	SP  uint16 `json:"sp"`
	PC  uint16 `json:"pc"`
	PSW uint16 `json:"psw"`

	Sign     bool `json:"sign"`
	Zero     bool `json:"zero"`
	AuxCarry bool `json:"aux_carry"`
	Parity   bool `json:"parity"`
	Carry    bool `json:"carry"`

	Halted            bool   `json:"halted"`
	InterruptsEnabled bool   `json:"interrupts_enabled"`
	Steps             uint64 `json:"steps"`
}

// Take snapshots a CPU.
func Take(c *cpu.CPU, steps uint64) Snapshot {
	return Snapshot{
		A: c.Regs.A, B: c.Regs.B, C: c.Regs.C, D: c.Regs.D,
		E: c.Regs.E, H: c.Regs.H, L: c.Regs.L,
		SP: c.Regs.SP, PC: c.Regs.PC, PSW: c.PSW(),
		Sign: c.Flags.Sign, Zero: c.Flags.Zero, AuxCarry: c.Flags.AuxCarry,
		Parity: c.Flags.Parity, Carry: c.Flags.Carry,
		Halted: c.Halted, InterruptsEnabled: c.InterruptsEnabled,
		Steps: steps,
	}
}

// WriteJSON writes the snapshot as indented JSON.
func (s Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// String renders the snapshot as a compact register/flag dump.
func (s Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "A:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X\n",
		s.A, s.B, s.C, s.D, s.E, s.H, s.L)
	fmt.Fprintf(&sb, "PC:%04X SP:%04X PSW:%04X\n", s.PC, s.SP, s.PSW)
	sb.WriteString("FLAGS: ")
	for _, f := range []struct {
		sym rune
		on  bool
	}{{'S', s.Sign}, {'Z', s.Zero}, {'A', s.AuxCarry}, {'P', s.Parity}, {'C', s.Carry}} {
		if f.on {
			sb.WriteRune(f.sym)
		} else {
			sb.WriteRune('.')
		}
	}
	fmt.Fprintf(&sb, "\nhalted:%v interrupts:%v steps:%d", s.Halted, s.InterruptsEnabled, s.Steps)
	return sb.String()
}
