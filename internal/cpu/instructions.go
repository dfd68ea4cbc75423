package cpu

// Instruction handlers. Each receives the effective address resolved by
// the addressing mode (meaningless for Implied/Accumulator) and returns
// any extra cycles beyond the opcode's base count; only branches ever
// return non-zero here, since load/store page-cross penalties are
// applied by the caller from the addressing resolver's own report.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// operand reads the byte an instruction operates on: the accumulator
// itself in Accumulator mode, otherwise the byte at addr.
func (c *Cpu) operand(addr uint16, mode AddressingMode) byte {
	if mode == Accumulator {
		return c.A
	}
	return c.Read(addr)
}

// writeback stores the result of a read-modify-write instruction back to
// wherever its operand came from.
func (c *Cpu) writeback(addr uint16, mode AddressingMode, v byte) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.Write(addr, v)
}

// addBinary performs an 8-bit add-with-carry and reports the carry and
// signed-overflow outputs of the binary (non-BCD) operation.
func addBinary(a, m, carryIn byte) (sum byte, carryOut, overflow bool) {
	s := uint16(a) + uint16(m) + uint16(carryIn)
	sum = byte(s)
	carryOut = s > 0xff
	overflow = (a^sum)&(m^sum)&0x80 != 0
	return
}

// ADC - Add with Carry. In decimal mode, the accumulator's nibbles are
// BCD-corrected per the classic NMOS algorithm; flags follow the NMOS
// convention of deriving N/V/Z from the uncorrected binary sum (see
// DESIGN.md for the open-question decision).
func (c *Cpu) ADC(addr uint16, mode AddressingMode) int {
	m := c.operand(addr, mode)
	carryIn := byte(0)
	if c.Status.Carry {
		carryIn = 1
	}

	binSum, binCarry, binOverflow := addBinary(c.A, m, carryIn)

	if !c.Status.Decimal {
		c.A = binSum
		c.Status.Carry = binCarry
		c.Status.Overflow = binOverflow
		c.Status.updateZN(c.A)
		return 0
	}

	al := (c.A & 0x0f) + (m & 0x0f) + carryIn
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}
	sum16 := uint16(c.A&0xf0) + uint16(m&0xf0) + uint16(al)
	if sum16 >= 0xa0 {
		sum16 += 0x60
	}

	c.A = byte(sum16)
	c.Status.Carry = sum16 > 0xff
	c.Status.Overflow = binOverflow
	c.Status.Zero = binSum == 0
	c.Status.Negative = binSum&0x80 != 0
	return 0
}

// SBC - Subtract with Carry, defined as ADC against the one's-complement
// of the operand (per spec.md §4.3).
func (c *Cpu) SBC(addr uint16, mode AddressingMode) int {
	m := ^c.operand(addr, mode)
	return c.adcValue(m)
}

// adcValue runs the ADC algorithm against an already-prepared operand
// byte, used by SBC to reuse the BCD machinery without re-reading memory.
func (c *Cpu) adcValue(m byte) int {
	carryIn := byte(0)
	if c.Status.Carry {
		carryIn = 1
	}

	binSum, binCarry, binOverflow := addBinary(c.A, m, carryIn)

	if !c.Status.Decimal {
		c.A = binSum
		c.Status.Carry = binCarry
		c.Status.Overflow = binOverflow
		c.Status.updateZN(c.A)
		return 0
	}

	al := (c.A & 0x0f) + (m & 0x0f) + carryIn
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}
	sum16 := uint16(c.A&0xf0) + uint16(m&0xf0) + uint16(al)
	if sum16 >= 0xa0 {
		sum16 += 0x60
	}

	c.A = byte(sum16)
	c.Status.Carry = sum16 > 0xff
	c.Status.Overflow = binOverflow
	c.Status.Zero = binSum == 0
	c.Status.Negative = binSum&0x80 != 0
	return 0
}

// AND - Logical AND
func (c *Cpu) AND(addr uint16, mode AddressingMode) int {
	c.A &= c.operand(addr, mode)
	c.Status.updateZN(c.A)
	return 0
}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA(addr uint16, mode AddressingMode) int {
	c.A |= c.operand(addr, mode)
	c.Status.updateZN(c.A)
	return 0
}

// EOR - Exclusive OR
func (c *Cpu) EOR(addr uint16, mode AddressingMode) int {
	c.A ^= c.operand(addr, mode)
	c.Status.updateZN(c.A)
	return 0
}

// BIT - Bit Test. Does not modify A.
func (c *Cpu) BIT(addr uint16, mode AddressingMode) int {
	m := c.operand(addr, mode)
	c.Status.Zero = c.A&m == 0
	c.Status.Negative = m&0x80 != 0
	c.Status.Overflow = m&0x40 != 0
	return 0
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL(addr uint16, mode AddressingMode) int {
	m := c.operand(addr, mode)
	c.Status.Carry = m&0x80 != 0
	m <<= 1
	c.writeback(addr, mode, m)
	c.Status.updateZN(m)
	return 0
}

// LSR - Logical Shift Right
func (c *Cpu) LSR(addr uint16, mode AddressingMode) int {
	m := c.operand(addr, mode)
	c.Status.Carry = m&0x01 != 0
	m >>= 1
	c.writeback(addr, mode, m)
	c.Status.updateZN(m)
	return 0
}

// ROL - Rotate Left
func (c *Cpu) ROL(addr uint16, mode AddressingMode) int {
	m := c.operand(addr, mode)
	carryIn := byte(0)
	if c.Status.Carry {
		carryIn = 1
	}
	c.Status.Carry = m&0x80 != 0
	m = (m << 1) | carryIn
	c.writeback(addr, mode, m)
	c.Status.updateZN(m)
	return 0
}

// ROR - Rotate Right
func (c *Cpu) ROR(addr uint16, mode AddressingMode) int {
	m := c.operand(addr, mode)
	carryIn := byte(0)
	if c.Status.Carry {
		carryIn = 0x80
	}
	c.Status.Carry = m&0x01 != 0
	m = (m >> 1) | carryIn
	c.writeback(addr, mode, m)
	c.Status.updateZN(m)
	return 0
}

// CMP - Compare Accumulator
func (c *Cpu) CMP(addr uint16, mode AddressingMode) int { c.compare(c.A, addr, mode); return 0 }

// CPX - Compare X Register
func (c *Cpu) CPX(addr uint16, mode AddressingMode) int { c.compare(c.X, addr, mode); return 0 }

// CPY - Compare Y Register
func (c *Cpu) CPY(addr uint16, mode AddressingMode) int { c.compare(c.Y, addr, mode); return 0 }

func (c *Cpu) compare(reg byte, addr uint16, mode AddressingMode) {
	m := c.operand(addr, mode)
	c.Status.Carry = reg >= m
	c.Status.Zero = reg == m
	c.Status.Negative = (reg-m)&0x80 != 0
}

// INC - Increment Memory
func (c *Cpu) INC(addr uint16, mode AddressingMode) int {
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.Status.updateZN(v)
	return 0
}

// DEC - Decrement Memory
func (c *Cpu) DEC(addr uint16, mode AddressingMode) int {
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.Status.updateZN(v)
	return 0
}

// INX - Increment X Register
func (c *Cpu) INX(addr uint16, mode AddressingMode) int {
	c.X++
	c.Status.updateZN(c.X)
	return 0
}

// DEX - Decrement X Register
func (c *Cpu) DEX(addr uint16, mode AddressingMode) int {
	c.X--
	c.Status.updateZN(c.X)
	return 0
}

// INY - Increment Y Register
func (c *Cpu) INY(addr uint16, mode AddressingMode) int {
	c.Y++
	c.Status.updateZN(c.Y)
	return 0
}

// DEY - Decrement Y Register
func (c *Cpu) DEY(addr uint16, mode AddressingMode) int {
	c.Y--
	c.Status.updateZN(c.Y)
	return 0
}

// LDA - Load Accumulator
func (c *Cpu) LDA(addr uint16, mode AddressingMode) int {
	c.A = c.operand(addr, mode)
	c.Status.updateZN(c.A)
	return 0
}

// LDX - Load X Register
func (c *Cpu) LDX(addr uint16, mode AddressingMode) int {
	c.X = c.operand(addr, mode)
	c.Status.updateZN(c.X)
	return 0
}

// LDY - Load Y Register
func (c *Cpu) LDY(addr uint16, mode AddressingMode) int {
	c.Y = c.operand(addr, mode)
	c.Status.updateZN(c.Y)
	return 0
}

// STA - Store Accumulator
func (c *Cpu) STA(addr uint16, mode AddressingMode) int { c.Write(addr, c.A); return 0 }

// STX - Store X Register
func (c *Cpu) STX(addr uint16, mode AddressingMode) int { c.Write(addr, c.X); return 0 }

// STY - Store Y Register
func (c *Cpu) STY(addr uint16, mode AddressingMode) int { c.Write(addr, c.Y); return 0 }

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX(addr uint16, mode AddressingMode) int {
	c.X = c.A
	c.Status.updateZN(c.X)
	return 0
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY(addr uint16, mode AddressingMode) int {
	c.Y = c.A
	c.Status.updateZN(c.Y)
	return 0
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA(addr uint16, mode AddressingMode) int {
	c.A = c.X
	c.Status.updateZN(c.A)
	return 0
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA(addr uint16, mode AddressingMode) int {
	c.A = c.Y
	c.Status.updateZN(c.A)
	return 0
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX(addr uint16, mode AddressingMode) int {
	c.X = c.SP
	c.Status.updateZN(c.X)
	return 0
}

// TXS - Transfer X to Stack Pointer. The sole transfer that leaves Z/N
// untouched.
func (c *Cpu) TXS(addr uint16, mode AddressingMode) int {
	c.SP = c.X
	return 0
}

// branch centralizes the taken/not-taken and page-cross cycle accounting
// shared by all relative-mode conditionals.
func (c *Cpu) branch(addr uint16, taken bool) int {
	if !taken {
		return 0
	}
	offset := signExtend(byte(addr))
	target := c.PC + uint16(offset)
	extra := 1
	if pageDiffers(c.PC, target) {
		extra = 2
	}
	c.PC = target
	return extra
}

func (c *Cpu) BPL(addr uint16, mode AddressingMode) int { return c.branch(addr, !c.Status.Negative) }
func (c *Cpu) BMI(addr uint16, mode AddressingMode) int { return c.branch(addr, c.Status.Negative) }
func (c *Cpu) BVC(addr uint16, mode AddressingMode) int { return c.branch(addr, !c.Status.Overflow) }
func (c *Cpu) BVS(addr uint16, mode AddressingMode) int { return c.branch(addr, c.Status.Overflow) }
func (c *Cpu) BCC(addr uint16, mode AddressingMode) int { return c.branch(addr, !c.Status.Carry) }
func (c *Cpu) BCS(addr uint16, mode AddressingMode) int { return c.branch(addr, c.Status.Carry) }
func (c *Cpu) BNE(addr uint16, mode AddressingMode) int { return c.branch(addr, !c.Status.Zero) }
func (c *Cpu) BEQ(addr uint16, mode AddressingMode) int { return c.branch(addr, c.Status.Zero) }

// BRA - Branch Always (65C02 addition, unconditional).
func (c *Cpu) BRA(addr uint16, mode AddressingMode) int { return c.branch(addr, true) }

// JMP - Jump. addr is already the resolved target (absolute or the
// indirectly-fetched pointer, page-wrap bug included).
func (c *Cpu) JMP(addr uint16, mode AddressingMode) int {
	c.PC = addr
	return 0
}

// JSR - Jump to Subroutine. Pushes the address of the last byte of the
// JSR instruction (PC-1, since PC already points past both operand
// bytes), high byte first.
func (c *Cpu) JSR(addr uint16, mode AddressingMode) int {
	c.pushWord(c.PC - 1)
	c.PC = addr
	return 0
}

// RTS - Return from Subroutine. Pulls the return address and adds one.
func (c *Cpu) RTS(addr uint16, mode AddressingMode) int {
	c.PC = c.pullWord() + 1
	return 0
}

// pullStatus pulls a packed status byte, ignoring the pulled B bit and
// leaving the unused bit forced to 1 — shared by PLP and RTI.
func (c *Cpu) pullStatus() {
	oldBreak := c.Status.Break
	c.Status.unpack(c.pullByte())
	c.Status.Break = oldBreak
	c.Status.Unused = true
}

// PHA - Push Accumulator
func (c *Cpu) PHA(addr uint16, mode AddressingMode) int { c.pushByte(c.A); return 0 }

// PLA - Pull Accumulator
func (c *Cpu) PLA(addr uint16, mode AddressingMode) int {
	c.A = c.pullByte()
	c.Status.updateZN(c.A)
	return 0
}

// PHP - Push Processor Status, with B and the unused bit forced to 1 in
// the pushed byte (the NMOS convention; see DESIGN.md).
func (c *Cpu) PHP(addr uint16, mode AddressingMode) int {
	c.pushByte(c.Status.packWithBreak(true))
	return 0
}

// PLP - Pull Processor Status
func (c *Cpu) PLP(addr uint16, mode AddressingMode) int {
	c.pullStatus()
	return 0
}

// CLC - Clear Carry Flag
func (c *Cpu) CLC(addr uint16, mode AddressingMode) int { c.Status.Carry = false; return 0 }

// SEC - Set Carry Flag
func (c *Cpu) SEC(addr uint16, mode AddressingMode) int { c.Status.Carry = true; return 0 }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI(addr uint16, mode AddressingMode) int {
	c.Status.DisableInterrupt = false
	return 0
}

// SEI - Set Interrupt Disable
func (c *Cpu) SEI(addr uint16, mode AddressingMode) int {
	c.Status.DisableInterrupt = true
	return 0
}

// CLD - Clear Decimal Mode
func (c *Cpu) CLD(addr uint16, mode AddressingMode) int { c.Status.Decimal = false; return 0 }

// SED - Set Decimal Flag
func (c *Cpu) SED(addr uint16, mode AddressingMode) int { c.Status.Decimal = true; return 0 }

// CLV - Clear Overflow Flag
func (c *Cpu) CLV(addr uint16, mode AddressingMode) int { c.Status.Overflow = false; return 0 }

// BRK - Force Interrupt. Advances past a dummy operand byte, then enters
// the interrupt sequence with B=1 in the pushed status, vectoring
// through the IRQ/BRK vector (0xFFFE).
func (c *Cpu) BRK(addr uint16, mode AddressingMode) int {
	c.PC++
	c.pushWord(c.PC)
	c.pushByte(c.Status.packWithBreak(true))
	c.Status.DisableInterrupt = true
	c.PC = c.readVector(vectorIrq)
	return 0
}

// RTI - Return from Interrupt. Pulls status (ignoring B), then PC; unlike
// RTS, does not add one.
func (c *Cpu) RTI(addr uint16, mode AddressingMode) int {
	c.pullStatus()
	c.PC = c.pullWord()
	return 0
}

// NOP - No Operation
func (c *Cpu) NOP(addr uint16, mode AddressingMode) int { return 0 }
