package cpu

// PortIn is called by the IN instruction to read an input port.
type PortIn func(port uint8) uint8

// PortOut is called by the OUT instruction to write an output port.
type PortOut func(port uint8, value uint8)

// CPU is an Intel 8080 core: register file, flags, 64 KiB of memory
// and the interrupt/halt latches. It is single-threaded and owns all
// of its state; the port callbacks are borrowed from the caller for
// the duration of one instruction.
type CPU struct {
	Regs  Registers
	Flags Flags
	Mem   Memory

	Halted            bool
	InterruptsEnabled bool

	In  PortIn
	Out PortOut
}

// New returns a zeroed CPU with default port handlers: IN reads 0,
// OUT discards.
func New() *CPU {
	return &CPU{
		In:  func(uint8) uint8 { return 0 },
		Out: func(uint8, uint8) {},
	}
}

// LoadROM copies a flat binary image into memory at address 0.
func (c *CPU) LoadROM(image []byte) error {
	return c.Mem.Load(image)
}

// Step executes one complete instruction: fetch at PC, dispatch,
// execute, advance PC. On a halted CPU it is a no-op and returns
// false.
func (c *CPU) Step() bool {
	if c.Halted {
		return false
	}
	c.exec(c.Mem.Read(c.Regs.PC))
	return true
}

// Run steps until the CPU halts.
func (c *CPU) Run() {
	for c.Step() {
	}
}

// PSW returns the program status word: A in the high byte, the
// encoded flags in the low byte.
func (c *CPU) PSW() uint16 {
	return uint16(c.Regs.A)<<8 | uint16(c.Flags.Encode())
}

// SetPSW restores A and the flags from a program status word.
func (c *CPU) SetPSW(v uint16) {
	c.Regs.A = uint8(v >> 8)
	c.Flags.Decode(uint8(v))
}

// push16 stores a word on the stack: SP drops by 2, high byte at
// SP+1, low byte at SP.
func (c *CPU) push16(v uint16) {
	c.Regs.SP -= 2
	c.Mem.Write(c.Regs.SP, uint8(v))
	c.Mem.Write(c.Regs.SP+1, uint8(v>>8))
}

// pop16 loads a word from the stack and raises SP by 2.
func (c *CPU) pop16() uint16 {
	v := uint16(c.Mem.Read(c.Regs.SP)) | uint16(c.Mem.Read(c.Regs.SP+1))<<8
	c.Regs.SP += 2
	return v
}

// fetch16 reads the little-endian immediate word of a 3-byte
// instruction at PC+1, PC+2.
func (c *CPU) fetch16() uint16 {
	return uint16(c.Mem.Read(c.Regs.PC+1)) | uint16(c.Mem.Read(c.Regs.PC+2))<<8
}

// fetch8 reads the immediate byte of a 2-byte instruction.
func (c *CPU) fetch8() uint8 {
	return c.Mem.Read(c.Regs.PC + 1)
}
