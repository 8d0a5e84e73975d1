package cpu

import (
	"fmt"
	"strings"
)

// Trace renders c's current instruction (the one about to execute) as a
// single line matching columns 0-72 of Nintendulator's nestest.log: PC, the
// instruction's raw bytes, its mnemonic, the disassembled operand, and a
// register dump.
func Trace(c *CPU) string {
	opByte := c.read(c.PC)
	desc := opcodeTable[opByte]

	var b strings.Builder

	fmt.Fprintf(&b, "%04X  ", c.PC)

	switch desc.Length {
	case 1:
		fmt.Fprintf(&b, "%02X      ", opByte)
	case 2:
		fmt.Fprintf(&b, "%02X %02X   ", opByte, c.read(c.PC+1))
	case 3:
		fmt.Fprintf(&b, "%02X %02X %02X", opByte, c.read(c.PC+1), c.read(c.PC+2))
	}

	if desc.Official {
		b.WriteString("  ")
	} else {
		b.WriteString(" *")
	}
	b.WriteString(desc.Mnemonic.String())
	b.WriteString(" ")

	start := b.Len()
	writeOperand(&b, c, desc)
	pad := 28 - (b.Len() - start)
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	fmt.Fprintf(&b, "A:%02X X:%02X Y:%02X P:%02X SP:%02X", c.A, c.X, c.Y, c.P, c.SP)

	return b.String()
}

// writeOperand formats the instruction's operand per addressing mode,
// matching nestest.log's disassembly conventions. JMP/JSR absolute omit the
// "= value" suffix other absolute-addressed instructions show.
func writeOperand(b *strings.Builder, c *CPU, desc Opcode) {
	switch desc.Mode {
	case Implicit:
		return
	case Accumulator:
		b.WriteString("A")
	case Immediate:
		fmt.Fprintf(b, "#$%02X", c.read(c.PC+1))
	case ZeroPage:
		addr := uint16(c.read(c.PC + 1))
		fmt.Fprintf(b, "$%02X = %02X", addr, c.read(addr))
	case ZeroPageX:
		zp := c.read(c.PC + 1)
		addr := uint16(zp + c.X)
		fmt.Fprintf(b, "$%02X,X @ %02X = %02X", zp, addr, c.read(addr))
	case ZeroPageY:
		zp := c.read(c.PC + 1)
		addr := uint16(zp + c.Y)
		fmt.Fprintf(b, "$%02X,Y @ %02X = %02X", zp, addr, c.read(addr))
	case Relative:
		offset := int8(c.read(c.PC + 1))
		target := c.PC + 2 + uint16(offset)
		fmt.Fprintf(b, "$%04X", target)
	case Absolute:
		addr := c.read16(c.PC + 1)
		if desc.Mnemonic == JMP || desc.Mnemonic == JSR {
			fmt.Fprintf(b, "$%04X", addr)
		} else {
			fmt.Fprintf(b, "$%04X = %02X", addr, c.read(addr))
		}
	case AbsoluteX:
		base := c.read16(c.PC + 1)
		addr := base + uint16(c.X)
		fmt.Fprintf(b, "$%04X,X @ %04X = %02X", base, addr, c.read(addr))
	case AbsoluteY:
		base := c.read16(c.PC + 1)
		addr := base + uint16(c.Y)
		fmt.Fprintf(b, "$%04X,Y @ %04X = %02X", base, addr, c.read(addr))
	case Indirect:
		ptr := c.read16(c.PC + 1)
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
		lo := uint16(c.read(ptr))
		hi := uint16(c.read(hiAddr))
		fmt.Fprintf(b, "($%04X) = %04X", ptr, hi<<8|lo)
	case IndirectX:
		zp := c.read(c.PC + 1)
		idx := zp + c.X
		lo := uint16(c.read(uint16(idx)))
		hi := uint16(c.read(uint16(idx + 1)))
		addr := hi<<8 | lo
		fmt.Fprintf(b, "($%02X,X) @ %02X = %04X = %02X", zp, idx, addr, c.read(addr))
	case IndirectY:
		zp := c.read(c.PC + 1)
		intermediate := c.read16Zp(zp)
		addr := intermediate + uint16(c.Y)
		fmt.Fprintf(b, "($%02X),Y = %04X @ %04X = %02X", zp, intermediate, addr, c.read(addr))
	}
}

// read16Zp reads a little-endian u16 from two zero-page addresses with
// zero-page wraparound, used only by the trace formatter's IndirectY
// disassembly to show the unindexed intermediate pointer.
func (c *CPU) read16Zp(zp uint8) uint16 {
	lo := uint16(c.read(uint16(zp)))
	hi := uint16(c.read(uint16(zp + 1)))
	return hi<<8 | lo
}
