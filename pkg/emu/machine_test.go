package emu

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"
)

// runROM executes a program on a fresh machine until halt and returns
// the final snapshot.
func runROM(t *testing.T, rom []byte) (*Machine, Snapshot) {
	t.Helper()
	m := NewMachine(Options{}, nil)
	require.NoError(t, m.Load(rom))
	steps, err := m.Run()
	require.NoError(t, err)
	return m, Take(m.CPU, steps)
}

func TestRunAddRegisters(t *testing.T) {
	// MVI A,0x42; MVI B,0x10; ADD B; HLT
	_, snap := runROM(t, []byte{0x3E, 0x42, 0x06, 0x10, 0x80, 0x76})
	want := Snapshot{
		A: 0x52, B: 0x10,
		PC: 0x0006, PSW: 0x5202,
		Halted: true, Steps: 4,
	}
	if diff := deep.Equal(snap, want); diff != nil {
		t.Error(diff)
	}
}

func TestRunAddImmediateOverflow(t *testing.T) {
	// MVI A,0xFF; ADI 0x01; HLT
	_, snap := runROM(t, []byte{0x3E, 0xFF, 0xC6, 0x01, 0x76})
	want := Snapshot{
		A: 0x00,
		PC: 0x0005, PSW: 0x0057,
		Zero: true, AuxCarry: true, Parity: true, Carry: true,
		Halted: true, Steps: 3,
	}
	if diff := deep.Equal(snap, want); diff != nil {
		t.Error(diff)
	}
}

func TestRunPairOr(t *testing.T) {
	// LXI H,0x1234; MOV A,H; ORA L; HLT
	_, snap := runROM(t, []byte{0x21, 0x34, 0x12, 0x7C, 0xB5, 0x76})
	want := Snapshot{
		A: 0x36, H: 0x12, L: 0x34,
		PC: 0x0006, PSW: 0x3606,
		Parity: true,
		Halted: true, Steps: 4,
	}
	if diff := deep.Equal(snap, want); diff != nil {
		t.Error(diff)
	}
}

func TestRunCallRet(t *testing.T) {
	// LXI SP,0x2000; CALL 0x0008; HLT; pad; MVI A,0x07; RET
	m, snap := runROM(t, []byte{
		0x31, 0x00, 0x20,
		0xCD, 0x08, 0x00,
		0x76, 0x00,
		0x3E, 0x07,
		0xC9,
	})
	want := Snapshot{
		A: 0x07, SP: 0x2000,
		PC: 0x0007, PSW: 0x0702,
		Halted: true, Steps: 5,
	}
	if diff := deep.Equal(snap, want); diff != nil {
		t.Error(diff)
	}
	// The return-address bytes stay below the stack pointer.
	require.Equal(t, uint8(0x06), m.CPU.Mem.Read(0x1FFE))
	require.Equal(t, uint8(0x00), m.CPU.Mem.Read(0x1FFF))
}

func TestRunDecimalAdjust(t *testing.T) {
	// MVI A,0x9B; DAA; HLT
	_, snap := runROM(t, []byte{0x3E, 0x9B, 0x27, 0x76})
	want := Snapshot{
		A: 0x01,
		PC: 0x0004, PSW: 0x0113,
		AuxCarry: true, Carry: true,
		Halted: true, Steps: 3,
	}
	if diff := deep.Equal(snap, want); diff != nil {
		t.Error(diff)
	}
}

func TestRunStepBudget(t *testing.T) {
	// JMP 0 never halts; the budget has to cut it off.
	m := NewMachine(Options{MaxSteps: 10}, nil)
	require.NoError(t, m.Load([]byte{0xC3, 0x00, 0x00}))
	steps, err := m.Run()
	require.ErrorIs(t, err, ErrStepBudget)
	require.Equal(t, uint64(10), steps)
	require.False(t, m.CPU.Halted)
}

func TestRunTraceDoesNotPerturbState(t *testing.T) {
	rom := []byte{0x3E, 0x42, 0x06, 0x10, 0x80, 0x76}
	_, plain := runROM(t, rom)

	traced := NewMachine(Options{Trace: true}, nil)
	require.NoError(t, traced.Load(rom))
	steps, err := traced.Run()
	require.NoError(t, err)
	if diff := deep.Equal(Take(traced.CPU, steps), plain); diff != nil {
		t.Error(diff)
	}
}

func TestLoadRejectsOversizedImage(t *testing.T) {
	m := NewMachine(Options{}, nil)
	require.Error(t, m.Load(make([]byte, 1<<16+1)))
}
