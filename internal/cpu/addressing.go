package cpu

import "github.com/sixty502/emu/mask"

// AddressingMode tells the resolver where to look for an instruction's
// operand and how many operand bytes follow the opcode.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// resolve computes the effective address for mode, advancing the program
// counter past any operand bytes, and reports whether a page boundary was
// crossed while doing so (only AbsoluteX, AbsoluteY and IndirectY ever
// report one; Relative reports false, since the branch instruction does
// its own page-cross accounting).
//
// Implied and Accumulator modes return addr=0; callers must not read
// through it.
func (c *Cpu) resolve(mode AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		addr = c.PC
		c.PC++
		return addr, false

	case ZeroPage:
		addr = uint16(c.fetch8())
		return addr, false

	case ZeroPageX:
		addr = uint16(c.fetch8()+c.X) & 0x00ff
		return addr, false

	case ZeroPageY:
		addr = uint16(c.fetch8()+c.Y) & 0x00ff
		return addr, false

	case Relative:
		// The offset is stored raw; sign-extension is left to the branch
		// instruction, which knows whether it is taking the branch.
		addr = uint16(c.fetch8())
		return addr, false

	case Absolute:
		addr = c.fetch16()
		return addr, false

	case AbsoluteX:
		base := c.fetch16()
		addr = base + uint16(c.X)
		return addr, pageDiffers(base, addr)

	case AbsoluteY:
		base := c.fetch16()
		addr = base + uint16(c.Y)
		return addr, pageDiffers(base, addr)

	case Indirect:
		ptr := c.fetch16()
		addr = c.readIndirectWord(ptr)
		return addr, false

	case IndirectX:
		zp := uint16(c.fetch8()+c.X) & 0x00ff
		lo := c.Read(zp)
		hi := c.Read((zp + 1) & 0x00ff)
		addr = mask.Word(hi, lo)
		return addr, false

	case IndirectY:
		zp := uint16(c.fetch8())
		lo := c.Read(zp)
		hi := c.Read((zp + 1) & 0x00ff)
		base := mask.Word(hi, lo)
		addr = base + uint16(c.Y)
		return addr, pageDiffers(base, addr)
	}
	return 0, false
}

// fetch8 reads the byte at PC and advances PC by one.
func (c *Cpu) fetch8() byte {
	b := c.Read(c.PC)
	c.PC++
	return b
}

// fetch16 reads a little-endian word at PC and advances PC by two.
func (c *Cpu) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return mask.Word(hi, lo)
}

// readIndirectWord reads the 16-bit pointer stored at ptr, reproducing the
// page-wrap bug of the original hardware's indirect JMP: when the low byte
// of ptr is 0xFF, the high byte is fetched from the start of the same
// page instead of the next one.
func (c *Cpu) readIndirectWord(ptr uint16) uint16 {
	lo := c.Read(ptr)
	var hiAddr uint16
	if ptr&0x00ff == 0x00ff {
		hiAddr = ptr & 0xff00
	} else {
		hiAddr = ptr + 1
	}
	hi := c.Read(hiAddr)
	return mask.Word(hi, lo)
}

// pageDiffers reports whether a and b have different high bytes, i.e. an
// effective address computation crossed a 256-byte page boundary.
func pageDiffers(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// modeLength reports how many bytes (including the opcode byte itself)
// an instruction using mode occupies.
func modeLength(mode AddressingMode) byte {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, Relative, IndirectX, IndirectY:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 1
}

// signExtend interprets b as a signed 8-bit relative branch offset.
func signExtend(b byte) int16 {
	return int16(int8(b))
}
