package inst

import (
	"fmt"
	"io"
)

// mnemonicWidth pads mnemonics so operands line up in listings.
const mnemonicWidth = 9

// Banner explains the listing's marking conventions. Emitted once
// before a disassembly.
const Banner = `**************************************
* Marking conventions:               *
*   #0x1234 = literal value          *
*   0x1234 = address                 *
*   OP* = alternate instruction      *
**************************************

<Addr> <OP>      <OP param>
`

// FormatLine renders the instruction starting at pc as one listing
// line and returns it together with the instruction length. Operand
// bytes past the end of the image read as zero; the caller's cursor
// still advances by the full instruction length, which ends a linear
// walk at the image boundary.
func FormatLine(image []byte, pc int) (string, int) {
	op := image[pc]
	info := &Catalog[op]

	at := func(off int) uint8 {
		if pc+off >= len(image) {
			return 0
		}
		return image[pc+off]
	}

	switch info.Operand {
	case OperandImm8:
		return fmt.Sprintf("0x%04X    %-*s#0x%02X", pc, mnemonicWidth, info.Mnemonic, at(1)), info.Size
	case OperandImm16:
		return fmt.Sprintf("0x%04X    %-*s#0x%02X%02X", pc, mnemonicWidth, info.Mnemonic, at(2), at(1)), info.Size
	case OperandAddr:
		return fmt.Sprintf("0x%04X    %-*s0x%02X%02X", pc, mnemonicWidth, info.Mnemonic, at(2), at(1)), info.Size
	default:
		return fmt.Sprintf("0x%04X    %s", pc, info.Mnemonic), info.Size
	}
}

// Disassemble walks the image linearly from offset 0 and writes the
// banner plus one line per instruction to w. Control flow is not
// followed: data bytes embedded in the code stream are rendered as
// instructions, which is an accepted limitation of a linear walk.
func Disassemble(image []byte, w io.Writer) error {
	if _, err := io.WriteString(w, Banner); err != nil {
		return err
	}
	for pc := 0; pc < len(image); {
		line, size := FormatLine(image, pc)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		pc += size
	}
	return nil
}
