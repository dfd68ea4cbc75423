package cpu

import "github.com/sixty502/emu/mask"

// Bit positions of the packed status byte, LSB to MSB: C Z I D B U V N.
const (
	bitCarry byte = iota
	bitZero
	bitInterrupt
	bitDecimal
	bitBreak
	bitUnused
	bitOverflow
	bitNegative
)

// StatusRegister is the packed 8-bit 6502 flag set (the P register). It is
// stored unpacked as individual booleans, the same layout the registers
// themselves use, and only packed into a byte on demand (PHP, BRK, IRQ,
// NMI) or unpacked from one (PLP, RTI).
type StatusRegister struct {
	Carry            bool
	Zero             bool
	DisableInterrupt bool
	Decimal          bool
	Break            bool // software push flag; not a real latch
	Unused           bool // always read as 1 once packed
	Overflow         bool
	Negative         bool
}

// get returns the named bit's value. bit must be one of the bitXxx
// constants above.
func (s *StatusRegister) get(bit byte) bool {
	switch bit {
	case bitCarry:
		return s.Carry
	case bitZero:
		return s.Zero
	case bitInterrupt:
		return s.DisableInterrupt
	case bitDecimal:
		return s.Decimal
	case bitBreak:
		return s.Break
	case bitUnused:
		return s.Unused
	case bitOverflow:
		return s.Overflow
	case bitNegative:
		return s.Negative
	}
	return false
}

// set assigns the named bit.
func (s *StatusRegister) set(bit byte, v bool) {
	switch bit {
	case bitCarry:
		s.Carry = v
	case bitZero:
		s.Zero = v
	case bitInterrupt:
		s.DisableInterrupt = v
	case bitDecimal:
		s.Decimal = v
	case bitBreak:
		s.Break = v
	case bitUnused:
		s.Unused = v
	case bitOverflow:
		s.Overflow = v
	case bitNegative:
		s.Negative = v
	}
}

// pack compresses the flags into a single byte, NV1BDIZC from MSB to LSB.
// The unused bit is always forced to 1 regardless of its stored value.
func (s *StatusRegister) pack() byte {
	var b byte
	b = mask.SetFromLSB(b, bitCarry, s.Carry)
	b = mask.SetFromLSB(b, bitZero, s.Zero)
	b = mask.SetFromLSB(b, bitInterrupt, s.DisableInterrupt)
	b = mask.SetFromLSB(b, bitDecimal, s.Decimal)
	b = mask.SetFromLSB(b, bitBreak, s.Break)
	b = mask.SetFromLSB(b, bitUnused, true)
	b = mask.SetFromLSB(b, bitOverflow, s.Overflow)
	b = mask.SetFromLSB(b, bitNegative, s.Negative)
	return b
}

// packWithBreak packs the flags exactly like pack, but overrides the B
// bit in the resulting byte without touching the stored Break field —
// B is not a real latch on the 6502, only a bit pattern chosen at push
// time (1 for BRK/PHP, 0 for hardware NMI/IRQ entry).
func (s *StatusRegister) packWithBreak(b bool) byte {
	return mask.SetFromLSB(s.pack(), bitBreak, b)
}

// unpack restores all eight flags from a packed byte.
func (s *StatusRegister) unpack(b byte) {
	s.Carry = mask.FromLSB(b, bitCarry)
	s.Zero = mask.FromLSB(b, bitZero)
	s.DisableInterrupt = mask.FromLSB(b, bitInterrupt)
	s.Decimal = mask.FromLSB(b, bitDecimal)
	s.Break = mask.FromLSB(b, bitBreak)
	s.Unused = mask.FromLSB(b, bitUnused)
	s.Overflow = mask.FromLSB(b, bitOverflow)
	s.Negative = mask.FromLSB(b, bitNegative)
}

// updateZN sets Zero from the low 8 bits of v and Negative from bit 7.
func (s *StatusRegister) updateZN(v byte) {
	s.Zero = v == 0
	s.Negative = v&0x80 != 0
}
