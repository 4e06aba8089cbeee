package cpu

// exec executes the instruction whose opcode byte is op, updating
// registers, flags, memory and PC. Every byte value 0x00..0xFF is
// defined: the undocumented opcodes alias their documented
// equivalents (0x08.. as NOP, 0xCB as JMP, 0xD9 as RET, 0xDD/0xED/
// 0xFD as CALL), so dispatch is total and cannot fail.
func (c *CPU) exec(op uint8) {
	switch op {

	// === NOP and its undocumented aliases ===
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		c.Regs.PC++

	// === LXI rp, d16 ===
	case 0x01:
		c.Regs.SetPair(PairBC, c.fetch16())
		c.Regs.PC += 3
	case 0x11:
		c.Regs.SetPair(PairDE, c.fetch16())
		c.Regs.PC += 3
	case 0x21:
		c.Regs.SetPair(PairHL, c.fetch16())
		c.Regs.PC += 3
	case 0x31:
		c.Regs.SP = c.fetch16()
		c.Regs.PC += 3

	// === STAX / LDAX ===
	case 0x02:
		c.Mem.Write(c.Regs.Pair(PairBC), c.Regs.A)
		c.Regs.PC++
	case 0x12:
		c.Mem.Write(c.Regs.Pair(PairDE), c.Regs.A)
		c.Regs.PC++
	case 0x0A:
		c.Regs.A = c.Mem.Read(c.Regs.Pair(PairBC))
		c.Regs.PC++
	case 0x1A:
		c.Regs.A = c.Mem.Read(c.Regs.Pair(PairDE))
		c.Regs.PC++

	// === INX / DCX rp — 16-bit wrap, no flag effect ===
	case 0x03:
		c.Regs.SetPair(PairBC, c.Regs.Pair(PairBC)+1)
		c.Regs.PC++
	case 0x13:
		c.Regs.SetPair(PairDE, c.Regs.Pair(PairDE)+1)
		c.Regs.PC++
	case 0x23:
		c.Regs.SetPair(PairHL, c.Regs.Pair(PairHL)+1)
		c.Regs.PC++
	case 0x33:
		c.Regs.SP++
		c.Regs.PC++
	case 0x0B:
		c.Regs.SetPair(PairBC, c.Regs.Pair(PairBC)-1)
		c.Regs.PC++
	case 0x1B:
		c.Regs.SetPair(PairDE, c.Regs.Pair(PairDE)-1)
		c.Regs.PC++
	case 0x2B:
		c.Regs.SetPair(PairHL, c.Regs.Pair(PairHL)-1)
		c.Regs.PC++
	case 0x3B:
		c.Regs.SP--
		c.Regs.PC++

	// === INR r / INR M ===
	case 0x04:
		c.Regs.B = execInr(c, c.Regs.B)
		c.Regs.PC++
	case 0x0C:
		c.Regs.C = execInr(c, c.Regs.C)
		c.Regs.PC++
	case 0x14:
		c.Regs.D = execInr(c, c.Regs.D)
		c.Regs.PC++
	case 0x1C:
		c.Regs.E = execInr(c, c.Regs.E)
		c.Regs.PC++
	case 0x24:
		c.Regs.H = execInr(c, c.Regs.H)
		c.Regs.PC++
	case 0x2C:
		c.Regs.L = execInr(c, c.Regs.L)
		c.Regs.PC++
	case 0x34:
		addr := c.Regs.HL()
		c.Mem.Write(addr, execInr(c, c.Mem.Read(addr)))
		c.Regs.PC++
	case 0x3C:
		c.Regs.A = execInr(c, c.Regs.A)
		c.Regs.PC++

	// === DCR r / DCR M ===
	case 0x05:
		c.Regs.B = execDcr(c, c.Regs.B)
		c.Regs.PC++
	case 0x0D:
		c.Regs.C = execDcr(c, c.Regs.C)
		c.Regs.PC++
	case 0x15:
		c.Regs.D = execDcr(c, c.Regs.D)
		c.Regs.PC++
	case 0x1D:
		c.Regs.E = execDcr(c, c.Regs.E)
		c.Regs.PC++
	case 0x25:
		c.Regs.H = execDcr(c, c.Regs.H)
		c.Regs.PC++
	case 0x2D:
		c.Regs.L = execDcr(c, c.Regs.L)
		c.Regs.PC++
	case 0x35:
		addr := c.Regs.HL()
		c.Mem.Write(addr, execDcr(c, c.Mem.Read(addr)))
		c.Regs.PC++
	case 0x3D:
		c.Regs.A = execDcr(c, c.Regs.A)
		c.Regs.PC++

	// === MVI r, d8 / MVI M, d8 ===
	case 0x06:
		c.Regs.B = c.fetch8()
		c.Regs.PC += 2
	case 0x0E:
		c.Regs.C = c.fetch8()
		c.Regs.PC += 2
	case 0x16:
		c.Regs.D = c.fetch8()
		c.Regs.PC += 2
	case 0x1E:
		c.Regs.E = c.fetch8()
		c.Regs.PC += 2
	case 0x26:
		c.Regs.H = c.fetch8()
		c.Regs.PC += 2
	case 0x2E:
		c.Regs.L = c.fetch8()
		c.Regs.PC += 2
	case 0x36:
		c.Mem.Write(c.Regs.HL(), c.fetch8())
		c.Regs.PC += 2
	case 0x3E:
		c.Regs.A = c.fetch8()
		c.Regs.PC += 2

	// === Accumulator rotates — only carry among the flags ===
	case 0x07: // RLC
		c.Flags.Carry = c.Regs.A&0x80 != 0
		c.Regs.A = c.Regs.A<<1 | c.Regs.A>>7
		c.Regs.PC++
	case 0x0F: // RRC
		c.Flags.Carry = c.Regs.A&0x01 != 0
		c.Regs.A = c.Regs.A>>1 | c.Regs.A<<7
		c.Regs.PC++
	case 0x17: // RAL
		old := c.Regs.A
		c.Regs.A = old<<1 | b2u(c.Flags.Carry)
		c.Flags.Carry = old&0x80 != 0
		c.Regs.PC++
	case 0x1F: // RAR
		old := c.Regs.A
		c.Regs.A = old>>1 | b2u(c.Flags.Carry)<<7
		c.Flags.Carry = old&0x01 != 0
		c.Regs.PC++

	// === DAD rp / DAD SP ===
	case 0x09:
		execDad(c, c.Regs.Pair(PairBC))
		c.Regs.PC++
	case 0x19:
		execDad(c, c.Regs.Pair(PairDE))
		c.Regs.PC++
	case 0x29:
		execDad(c, c.Regs.Pair(PairHL))
		c.Regs.PC++
	case 0x39:
		execDad(c, c.Regs.SP)
		c.Regs.PC++

	// === Direct addressing ===
	case 0x22: // SHLD a16
		c.Mem.Write16(c.fetch16(), c.Regs.HL())
		c.Regs.PC += 3
	case 0x2A: // LHLD a16
		c.Regs.SetPair(PairHL, c.Mem.Read16(c.fetch16()))
		c.Regs.PC += 3
	case 0x32: // STA a16
		c.Mem.Write(c.fetch16(), c.Regs.A)
		c.Regs.PC += 3
	case 0x3A: // LDA a16
		c.Regs.A = c.Mem.Read(c.fetch16())
		c.Regs.PC += 3

	// === Accumulator/carry specials ===
	case 0x27:
		execDaa(c)
		c.Regs.PC++
	case 0x2F: // CMA
		c.Regs.A = ^c.Regs.A
		c.Regs.PC++
	case 0x37: // STC
		c.Flags.Carry = true
		c.Regs.PC++
	case 0x3F: // CMC
		c.Flags.Carry = !c.Flags.Carry
		c.Regs.PC++

	// === MOV dst, src (0x40..0x7F, 0x76 is HLT) ===
	case 0x40:
		// MOV B,B
		c.Regs.PC++
	case 0x41:
		c.Regs.B = c.Regs.C
		c.Regs.PC++
	case 0x42:
		c.Regs.B = c.Regs.D
		c.Regs.PC++
	case 0x43:
		c.Regs.B = c.Regs.E
		c.Regs.PC++
	case 0x44:
		c.Regs.B = c.Regs.H
		c.Regs.PC++
	case 0x45:
		c.Regs.B = c.Regs.L
		c.Regs.PC++
	case 0x46:
		c.Regs.B = c.Mem.Read(c.Regs.HL())
		c.Regs.PC++
	case 0x47:
		c.Regs.B = c.Regs.A
		c.Regs.PC++
	case 0x48:
		c.Regs.C = c.Regs.B
		c.Regs.PC++
	case 0x49:
		// MOV C,C
		c.Regs.PC++
	case 0x4A:
		c.Regs.C = c.Regs.D
		c.Regs.PC++
	case 0x4B:
		c.Regs.C = c.Regs.E
		c.Regs.PC++
	case 0x4C:
		c.Regs.C = c.Regs.H
		c.Regs.PC++
	case 0x4D:
		c.Regs.C = c.Regs.L
		c.Regs.PC++
	case 0x4E:
		c.Regs.C = c.Mem.Read(c.Regs.HL())
		c.Regs.PC++
	case 0x4F:
		c.Regs.C = c.Regs.A
		c.Regs.PC++
	case 0x50:
		c.Regs.D = c.Regs.B
		c.Regs.PC++
	case 0x51:
		c.Regs.D = c.Regs.C
		c.Regs.PC++
	case 0x52:
		// MOV D,D
		c.Regs.PC++
	case 0x53:
		c.Regs.D = c.Regs.E
		c.Regs.PC++
	case 0x54:
		c.Regs.D = c.Regs.H
		c.Regs.PC++
	case 0x55:
		c.Regs.D = c.Regs.L
		c.Regs.PC++
	case 0x56:
		c.Regs.D = c.Mem.Read(c.Regs.HL())
		c.Regs.PC++
	case 0x57:
		c.Regs.D = c.Regs.A
		c.Regs.PC++
	case 0x58:
		c.Regs.E = c.Regs.B
		c.Regs.PC++
	case 0x59:
		c.Regs.E = c.Regs.C
		c.Regs.PC++
	case 0x5A:
		c.Regs.E = c.Regs.D
		c.Regs.PC++
	case 0x5B:
		// MOV E,E
		c.Regs.PC++
	case 0x5C:
		c.Regs.E = c.Regs.H
		c.Regs.PC++
	case 0x5D:
		c.Regs.E = c.Regs.L
		c.Regs.PC++
	case 0x5E:
		c.Regs.E = c.Mem.Read(c.Regs.HL())
		c.Regs.PC++
	case 0x5F:
		c.Regs.E = c.Regs.A
		c.Regs.PC++
	case 0x60:
		c.Regs.H = c.Regs.B
		c.Regs.PC++
	case 0x61:
		c.Regs.H = c.Regs.C
		c.Regs.PC++
	case 0x62:
		c.Regs.H = c.Regs.D
		c.Regs.PC++
	case 0x63:
		c.Regs.H = c.Regs.E
		c.Regs.PC++
	case 0x64:
		// MOV H,H
		c.Regs.PC++
	case 0x65:
		c.Regs.H = c.Regs.L
		c.Regs.PC++
	case 0x66:
		c.Regs.H = c.Mem.Read(c.Regs.HL())
		c.Regs.PC++
	case 0x67:
		c.Regs.H = c.Regs.A
		c.Regs.PC++
	case 0x68:
		c.Regs.L = c.Regs.B
		c.Regs.PC++
	case 0x69:
		c.Regs.L = c.Regs.C
		c.Regs.PC++
	case 0x6A:
		c.Regs.L = c.Regs.D
		c.Regs.PC++
	case 0x6B:
		c.Regs.L = c.Regs.E
		c.Regs.PC++
	case 0x6C:
		c.Regs.L = c.Regs.H
		c.Regs.PC++
	case 0x6D:
		// MOV L,L
		c.Regs.PC++
	case 0x6E:
		c.Regs.L = c.Mem.Read(c.Regs.HL())
		c.Regs.PC++
	case 0x6F:
		c.Regs.L = c.Regs.A
		c.Regs.PC++
	case 0x70:
		c.Mem.Write(c.Regs.HL(), c.Regs.B)
		c.Regs.PC++
	case 0x71:
		c.Mem.Write(c.Regs.HL(), c.Regs.C)
		c.Regs.PC++
	case 0x72:
		c.Mem.Write(c.Regs.HL(), c.Regs.D)
		c.Regs.PC++
	case 0x73:
		c.Mem.Write(c.Regs.HL(), c.Regs.E)
		c.Regs.PC++
	case 0x74:
		c.Mem.Write(c.Regs.HL(), c.Regs.H)
		c.Regs.PC++
	case 0x75:
		c.Mem.Write(c.Regs.HL(), c.Regs.L)
		c.Regs.PC++
	case 0x77:
		c.Mem.Write(c.Regs.HL(), c.Regs.A)
		c.Regs.PC++
	case 0x78:
		c.Regs.A = c.Regs.B
		c.Regs.PC++
	case 0x79:
		c.Regs.A = c.Regs.C
		c.Regs.PC++
	case 0x7A:
		c.Regs.A = c.Regs.D
		c.Regs.PC++
	case 0x7B:
		c.Regs.A = c.Regs.E
		c.Regs.PC++
	case 0x7C:
		c.Regs.A = c.Regs.H
		c.Regs.PC++
	case 0x7D:
		c.Regs.A = c.Regs.L
		c.Regs.PC++
	case 0x7E:
		c.Regs.A = c.Mem.Read(c.Regs.HL())
		c.Regs.PC++
	case 0x7F:
		// MOV A,A
		c.Regs.PC++

	// === HLT ===
	case 0x76:
		c.Halted = true
		c.Regs.PC++

	// === ADD r/M ===
	case 0x80:
		execAdd(c, c.Regs.B, 0)
		c.Regs.PC++
	case 0x81:
		execAdd(c, c.Regs.C, 0)
		c.Regs.PC++
	case 0x82:
		execAdd(c, c.Regs.D, 0)
		c.Regs.PC++
	case 0x83:
		execAdd(c, c.Regs.E, 0)
		c.Regs.PC++
	case 0x84:
		execAdd(c, c.Regs.H, 0)
		c.Regs.PC++
	case 0x85:
		execAdd(c, c.Regs.L, 0)
		c.Regs.PC++
	case 0x86:
		execAdd(c, c.Mem.Read(c.Regs.HL()), 0)
		c.Regs.PC++
	case 0x87:
		execAdd(c, c.Regs.A, 0)
		c.Regs.PC++

	// === ADC r/M ===
	case 0x88:
		execAdd(c, c.Regs.B, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x89:
		execAdd(c, c.Regs.C, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x8A:
		execAdd(c, c.Regs.D, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x8B:
		execAdd(c, c.Regs.E, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x8C:
		execAdd(c, c.Regs.H, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x8D:
		execAdd(c, c.Regs.L, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x8E:
		execAdd(c, c.Mem.Read(c.Regs.HL()), b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x8F:
		execAdd(c, c.Regs.A, b2u(c.Flags.Carry))
		c.Regs.PC++

	// === SUB r/M ===
	case 0x90:
		c.Regs.A = execSub(c, c.Regs.B, 0)
		c.Regs.PC++
	case 0x91:
		c.Regs.A = execSub(c, c.Regs.C, 0)
		c.Regs.PC++
	case 0x92:
		c.Regs.A = execSub(c, c.Regs.D, 0)
		c.Regs.PC++
	case 0x93:
		c.Regs.A = execSub(c, c.Regs.E, 0)
		c.Regs.PC++
	case 0x94:
		c.Regs.A = execSub(c, c.Regs.H, 0)
		c.Regs.PC++
	case 0x95:
		c.Regs.A = execSub(c, c.Regs.L, 0)
		c.Regs.PC++
	case 0x96:
		c.Regs.A = execSub(c, c.Mem.Read(c.Regs.HL()), 0)
		c.Regs.PC++
	case 0x97:
		c.Regs.A = execSub(c, c.Regs.A, 0)
		c.Regs.PC++

	// === SBB r/M ===
	case 0x98:
		c.Regs.A = execSub(c, c.Regs.B, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x99:
		c.Regs.A = execSub(c, c.Regs.C, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x9A:
		c.Regs.A = execSub(c, c.Regs.D, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x9B:
		c.Regs.A = execSub(c, c.Regs.E, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x9C:
		c.Regs.A = execSub(c, c.Regs.H, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x9D:
		c.Regs.A = execSub(c, c.Regs.L, b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x9E:
		c.Regs.A = execSub(c, c.Mem.Read(c.Regs.HL()), b2u(c.Flags.Carry))
		c.Regs.PC++
	case 0x9F:
		c.Regs.A = execSub(c, c.Regs.A, b2u(c.Flags.Carry))
		c.Regs.PC++

	// === ANA r/M ===
	case 0xA0:
		execAna(c, c.Regs.B)
		c.Regs.PC++
	case 0xA1:
		execAna(c, c.Regs.C)
		c.Regs.PC++
	case 0xA2:
		execAna(c, c.Regs.D)
		c.Regs.PC++
	case 0xA3:
		execAna(c, c.Regs.E)
		c.Regs.PC++
	case 0xA4:
		execAna(c, c.Regs.H)
		c.Regs.PC++
	case 0xA5:
		execAna(c, c.Regs.L)
		c.Regs.PC++
	case 0xA6:
		execAna(c, c.Mem.Read(c.Regs.HL()))
		c.Regs.PC++
	case 0xA7:
		execAna(c, c.Regs.A)
		c.Regs.PC++

	// === XRA r/M ===
	case 0xA8:
		execXra(c, c.Regs.B)
		c.Regs.PC++
	case 0xA9:
		execXra(c, c.Regs.C)
		c.Regs.PC++
	case 0xAA:
		execXra(c, c.Regs.D)
		c.Regs.PC++
	case 0xAB:
		execXra(c, c.Regs.E)
		c.Regs.PC++
	case 0xAC:
		execXra(c, c.Regs.H)
		c.Regs.PC++
	case 0xAD:
		execXra(c, c.Regs.L)
		c.Regs.PC++
	case 0xAE:
		execXra(c, c.Mem.Read(c.Regs.HL()))
		c.Regs.PC++
	case 0xAF:
		execXra(c, c.Regs.A)
		c.Regs.PC++

	// === ORA r/M ===
	case 0xB0:
		execOra(c, c.Regs.B)
		c.Regs.PC++
	case 0xB1:
		execOra(c, c.Regs.C)
		c.Regs.PC++
	case 0xB2:
		execOra(c, c.Regs.D)
		c.Regs.PC++
	case 0xB3:
		execOra(c, c.Regs.E)
		c.Regs.PC++
	case 0xB4:
		execOra(c, c.Regs.H)
		c.Regs.PC++
	case 0xB5:
		execOra(c, c.Regs.L)
		c.Regs.PC++
	case 0xB6:
		execOra(c, c.Mem.Read(c.Regs.HL()))
		c.Regs.PC++
	case 0xB7:
		execOra(c, c.Regs.A)
		c.Regs.PC++

	// === CMP r/M — SUB flags, A preserved ===
	case 0xB8:
		execSub(c, c.Regs.B, 0)
		c.Regs.PC++
	case 0xB9:
		execSub(c, c.Regs.C, 0)
		c.Regs.PC++
	case 0xBA:
		execSub(c, c.Regs.D, 0)
		c.Regs.PC++
	case 0xBB:
		execSub(c, c.Regs.E, 0)
		c.Regs.PC++
	case 0xBC:
		execSub(c, c.Regs.H, 0)
		c.Regs.PC++
	case 0xBD:
		execSub(c, c.Regs.L, 0)
		c.Regs.PC++
	case 0xBE:
		execSub(c, c.Mem.Read(c.Regs.HL()), 0)
		c.Regs.PC++
	case 0xBF:
		execSub(c, c.Regs.A, 0)
		c.Regs.PC++

	// === Immediate ALU ===
	case 0xC6: // ADI d8
		execAdd(c, c.fetch8(), 0)
		c.Regs.PC += 2
	case 0xCE: // ACI d8
		execAdd(c, c.fetch8(), b2u(c.Flags.Carry))
		c.Regs.PC += 2
	case 0xD6: // SUI d8
		c.Regs.A = execSub(c, c.fetch8(), 0)
		c.Regs.PC += 2
	case 0xDE: // SBI d8
		c.Regs.A = execSub(c, c.fetch8(), b2u(c.Flags.Carry))
		c.Regs.PC += 2
	case 0xE6: // ANI d8
		execAna(c, c.fetch8())
		c.Regs.PC += 2
	case 0xEE: // XRI d8
		execXra(c, c.fetch8())
		c.Regs.PC += 2
	case 0xF6: // ORI d8
		execOra(c, c.fetch8())
		c.Regs.PC += 2
	case 0xFE: // CPI d8
		execSub(c, c.fetch8(), 0)
		c.Regs.PC += 2

	// === Conditional returns, RET and its alias ===
	case 0xC0:
		c.ret(!c.Flags.Zero)
	case 0xC8:
		c.ret(c.Flags.Zero)
	case 0xD0:
		c.ret(!c.Flags.Carry)
	case 0xD8:
		c.ret(c.Flags.Carry)
	case 0xE0:
		c.ret(!c.Flags.Parity)
	case 0xE8:
		c.ret(c.Flags.Parity)
	case 0xF0:
		c.ret(!c.Flags.Sign)
	case 0xF8:
		c.ret(c.Flags.Sign)
	case 0xC9, 0xD9:
		c.ret(true)

	// === POP / PUSH ===
	case 0xC1:
		c.Regs.SetPair(PairBC, c.pop16())
		c.Regs.PC++
	case 0xD1:
		c.Regs.SetPair(PairDE, c.pop16())
		c.Regs.PC++
	case 0xE1:
		c.Regs.SetPair(PairHL, c.pop16())
		c.Regs.PC++
	case 0xF1: // POP PSW restores all five flags
		c.SetPSW(c.pop16())
		c.Regs.PC++
	case 0xC5:
		c.push16(c.Regs.Pair(PairBC))
		c.Regs.PC++
	case 0xD5:
		c.push16(c.Regs.Pair(PairDE))
		c.Regs.PC++
	case 0xE5:
		c.push16(c.Regs.Pair(PairHL))
		c.Regs.PC++
	case 0xF5:
		c.push16(c.PSW())
		c.Regs.PC++

	// === Conditional jumps, JMP and its alias ===
	case 0xC2:
		c.jump(!c.Flags.Zero)
	case 0xCA:
		c.jump(c.Flags.Zero)
	case 0xD2:
		c.jump(!c.Flags.Carry)
	case 0xDA:
		c.jump(c.Flags.Carry)
	case 0xE2:
		c.jump(!c.Flags.Parity)
	case 0xEA:
		c.jump(c.Flags.Parity)
	case 0xF2:
		c.jump(!c.Flags.Sign)
	case 0xFA:
		c.jump(c.Flags.Sign)
	case 0xC3, 0xCB:
		c.jump(true)

	// === Conditional calls, CALL and its aliases ===
	case 0xC4:
		c.call(!c.Flags.Zero)
	case 0xCC:
		c.call(c.Flags.Zero)
	case 0xD4:
		c.call(!c.Flags.Carry)
	case 0xDC:
		c.call(c.Flags.Carry)
	case 0xE4:
		c.call(!c.Flags.Parity)
	case 0xEC:
		c.call(c.Flags.Parity)
	case 0xF4:
		c.call(!c.Flags.Sign)
	case 0xFC:
		c.call(c.Flags.Sign)
	case 0xCD, 0xDD, 0xED, 0xFD:
		c.call(true)

	// === RST n — single-byte call to 8*n ===
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		c.push16(c.Regs.PC + 1)
		c.Regs.PC = uint16(op & 0x38)

	// === Port I/O ===
	case 0xD3: // OUT d8
		c.Out(c.fetch8(), c.Regs.A)
		c.Regs.PC += 2
	case 0xDB: // IN d8
		c.Regs.A = c.In(c.fetch8())
		c.Regs.PC += 2

	// === Exchange / pointer transfers ===
	case 0xE3: // XTHL
		hl := c.Regs.HL()
		c.Regs.SetPair(PairHL, c.Mem.Read16(c.Regs.SP))
		c.Mem.Write16(c.Regs.SP, hl)
		c.Regs.PC++
	case 0xEB: // XCHG
		c.Regs.D, c.Regs.H = c.Regs.H, c.Regs.D
		c.Regs.E, c.Regs.L = c.Regs.L, c.Regs.E
		c.Regs.PC++
	case 0xE9: // PCHL
		c.Regs.PC = c.Regs.HL()
	case 0xF9: // SPHL
		c.Regs.SP = c.Regs.HL()
		c.Regs.PC++

	// === Interrupt latch ===
	case 0xF3: // DI
		c.InterruptsEnabled = false
		c.Regs.PC++
	case 0xFB: // EI
		c.InterruptsEnabled = true
		c.Regs.PC++
	}
}

// jump implements JMP/Jcc: 3-byte instruction, PC moves to the
// immediate address when cond holds.
func (c *CPU) jump(cond bool) {
	if cond {
		c.Regs.PC = c.fetch16()
	} else {
		c.Regs.PC += 3
	}
}

// call implements CALL/Ccc: the address of the next instruction is
// pushed before the transfer.
func (c *CPU) call(cond bool) {
	if cond {
		target := c.fetch16()
		c.push16(c.Regs.PC + 3)
		c.Regs.PC = target
	} else {
		c.Regs.PC += 3
	}
}

// ret implements RET/Rcc.
func (c *CPU) ret(cond bool) {
	if cond {
		c.Regs.PC = c.pop16()
	} else {
		c.Regs.PC++
	}
}

// --- ALU helpers ---

// execAdd implements ADD/ADC/ADI/ACI: A ← A + v + carryIn. Carry is
// the overflow out of bit 7, aux-carry the overflow out of bit 3.
func execAdd(c *CPU, v, carryIn uint8) {
	a := c.Regs.A
	wide := uint16(a) + uint16(v) + uint16(carryIn)
	c.Regs.A = uint8(wide)
	c.Flags.Carry = wide > 0xFF
	c.Flags.AuxCarry = (a&0x0F)+(v&0x0F)+carryIn > 0x0F
	c.Flags.SetZSP(c.Regs.A)
}

// execSub computes A - v - borrowIn and returns the 8-bit result
// without storing it, so CMP/CPI can share it with SUB/SBB/SUI/SBI.
// Carry is the borrow out of bit 7; aux-carry is set when there is NO
// borrow out of bit 3, per the 8080 manual. The wide type keeps
// v + borrowIn from overflowing 8 bits.
func execSub(c *CPU, v, borrowIn uint8) uint8 {
	a := c.Regs.A
	wide := int16(a) - int16(v) - int16(borrowIn)
	res := uint8(wide)
	c.Flags.Carry = wide < 0
	c.Flags.AuxCarry = int16(a&0x0F)-int16(v&0x0F)-int16(borrowIn) >= 0
	c.Flags.SetZSP(res)
	return res
}

// execInr implements INR: v + 1 with Z, S, P and aux-carry from the
// low nibble. Carry is untouched.
func execInr(c *CPU, v uint8) uint8 {
	res := v + 1
	c.Flags.AuxCarry = (v&0x0F)+1 > 0x0F
	c.Flags.SetZSP(res)
	return res
}

// execDcr implements DCR: v - 1. Aux-carry is set when there is no
// borrow out of bit 3, i.e. the result's low nibble is not 0xF.
// Carry is untouched.
func execDcr(c *CPU, v uint8) uint8 {
	res := v - 1
	c.Flags.AuxCarry = res&0x0F != 0x0F
	c.Flags.SetZSP(res)
	return res
}

// execAna implements ANA/ANI. Carry clears; aux-carry takes the
// 8080's OR-of-bit-3 behavior: set when bit 3 of either operand is 1.
func execAna(c *CPU, v uint8) {
	a := c.Regs.A
	c.Regs.A = a & v
	c.Flags.Carry = false
	c.Flags.AuxCarry = (a|v)&0x08 != 0
	c.Flags.SetZSP(c.Regs.A)
}

// execXra implements XRA/XRI: carry and aux-carry clear.
func execXra(c *CPU, v uint8) {
	c.Regs.A ^= v
	c.Flags.Carry = false
	c.Flags.AuxCarry = false
	c.Flags.SetZSP(c.Regs.A)
}

// execOra implements ORA/ORI: carry and aux-carry clear.
func execOra(c *CPU, v uint8) {
	c.Regs.A |= v
	c.Flags.Carry = false
	c.Flags.AuxCarry = false
	c.Flags.SetZSP(c.Regs.A)
}

// execDad implements DAD: HL ← HL + v, carry from bit 15 only.
func execDad(c *CPU, v uint16) {
	wide := uint32(c.Regs.HL()) + uint32(v)
	c.Regs.SetPair(PairHL, uint16(wide))
	c.Flags.Carry = wide > 0xFFFF
}

// execDaa implements the two-phase decimal adjust. Phase 1 corrects
// the low nibble and records its overflow in aux-carry (clearing it
// when no correction happens); phase 2 corrects the high nibble and
// can only set carry, never clear it.
func execDaa(c *CPU) {
	a := c.Regs.A
	lo := a & 0x0F
	if lo > 9 || c.Flags.AuxCarry {
		a += 0x06
		c.Flags.AuxCarry = lo+0x06 > 0x0F
	} else {
		c.Flags.AuxCarry = false
	}
	if a>>4 > 9 || c.Flags.Carry {
		wide := uint16(a) + 0x60
		a = uint8(wide)
		if wide > 0xFF {
			c.Flags.Carry = true
		}
	}
	c.Regs.A = a
	c.Flags.SetZSP(a)
}

// b2u converts a flag to its 0/1 carry-in value.
func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
