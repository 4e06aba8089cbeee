package emu

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/oisee/i8080/pkg/cpu"
	"github.com/oisee/i8080/pkg/inst"
)

// ErrStepBudget reports that the instruction budget ran out before
// the program halted.
var ErrStepBudget = errors.New("instruction budget exhausted before halt")

// Options control a single emulation run.
type Options struct {
	Trace    bool   // log every instruction and port access
	MaxSteps uint64 // stop after this many instructions; 0 = unlimited
}

// Machine drives a CPU from ROM load to halt. The CPU stays exposed
// so callers and tests can inspect state between steps.
type Machine struct {
	CPU *cpu.CPU

	log   *zap.Logger
	opts  Options
	steps uint64
}

// NewMachine builds a machine around a fresh CPU. A nil logger
// disables tracing output entirely.
func NewMachine(opts Options, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Machine{CPU: cpu.New(), log: log, opts: opts}
	m.CPU.In = m.portIn
	m.CPU.Out = m.portOut
	return m
}

// Load copies a ROM image into memory at address 0.
func (m *Machine) Load(image []byte) error {
	if err := m.CPU.LoadROM(image); err != nil {
		return fmt.Errorf("load rom: %w", err)
	}
	return nil
}

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() uint64 {
	return m.steps
}

// Run steps the CPU until it halts, or until the step budget is
// exhausted. Returns the number of instructions executed.
func (m *Machine) Run() (uint64, error) {
	for !m.CPU.Halted {
		if m.opts.MaxSteps > 0 && m.steps >= m.opts.MaxSteps {
			return m.steps, fmt.Errorf("%w (%d instructions)", ErrStepBudget, m.steps)
		}
		if m.opts.Trace {
			m.traceStep()
		}
		m.CPU.Step()
		m.steps++
	}
	return m.steps, nil
}

func (m *Machine) traceStep() {
	pc := m.CPU.Regs.PC
	op := m.CPU.Mem.Read(pc)
	m.log.Debug("step",
		zap.Uint64("n", m.steps),
		zap.Uint16("pc", pc),
		zap.Uint8("op", op),
		zap.String("mnemonic", inst.Mnemonic(op)),
		zap.Uint16("psw", m.CPU.PSW()),
	)
}

// portIn is the default IN handler: reads 0, logged when tracing.
func (m *Machine) portIn(port uint8) uint8 {
	if m.opts.Trace {
		m.log.Debug("port in", zap.Uint8("port", port))
	}
	return 0
}

// portOut is the default OUT handler: discards, logged when tracing.
func (m *Machine) portOut(port, value uint8) {
	if m.opts.Trace {
		m.log.Debug("port out", zap.Uint8("port", port), zap.Uint8("value", value))
	}
}
