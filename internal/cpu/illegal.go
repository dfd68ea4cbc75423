package cpu

// Illegal (undocumented) opcode handlers. The CPU must accept these
// without faulting; combined read-modify-write illegals execute their
// documented composition, and the handful of highly unstable ones (the
// SHx/LAS/LXA family) use the common best-effort emulation formulas —
// exact replication of NMOS analog bus-conflict behaviour is out of
// scope per spec.md §1.

// iNOP - illegal NOP. The addressing mode has already consumed whatever
// operand bytes the opcode record says it should; there is nothing
// further to do.
func (c *Cpu) iNOP(addr uint16, mode AddressingMode) int { return 0 }

// LAX - Load A and X simultaneously.
func (c *Cpu) LAX(addr uint16, mode AddressingMode) int {
	v := c.operand(addr, mode)
	c.A = v
	c.X = v
	c.Status.updateZN(v)
	return 0
}

// SAX - Store A & X.
func (c *Cpu) SAX(addr uint16, mode AddressingMode) int {
	c.Write(addr, c.A&c.X)
	return 0
}

// SLO - ASL then ORA with the shifted value.
func (c *Cpu) SLO(addr uint16, mode AddressingMode) int {
	v := c.Read(addr)
	c.Status.Carry = v&0x80 != 0
	v <<= 1
	c.Write(addr, v)
	c.A |= v
	c.Status.updateZN(c.A)
	return 0
}

// RLA - ROL then AND with the rotated value.
func (c *Cpu) RLA(addr uint16, mode AddressingMode) int {
	v := c.Read(addr)
	carryIn := byte(0)
	if c.Status.Carry {
		carryIn = 1
	}
	c.Status.Carry = v&0x80 != 0
	v = (v << 1) | carryIn
	c.Write(addr, v)
	c.A &= v
	c.Status.updateZN(c.A)
	return 0
}

// SRE - LSR then EOR with the shifted value.
func (c *Cpu) SRE(addr uint16, mode AddressingMode) int {
	v := c.Read(addr)
	c.Status.Carry = v&0x01 != 0
	v >>= 1
	c.Write(addr, v)
	c.A ^= v
	c.Status.updateZN(c.A)
	return 0
}

// RRA - ROR then ADC with the rotated value.
func (c *Cpu) RRA(addr uint16, mode AddressingMode) int {
	v := c.Read(addr)
	carryIn := byte(0)
	if c.Status.Carry {
		carryIn = 0x80
	}
	c.Status.Carry = v&0x01 != 0
	v = (v >> 1) | carryIn
	c.Write(addr, v)
	return c.adcValue(v)
}

// DCP - DEC then CMP against the decremented value.
func (c *Cpu) DCP(addr uint16, mode AddressingMode) int {
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.Status.Carry = c.A >= v
	c.Status.Zero = c.A == v
	c.Status.Negative = (c.A-v)&0x80 != 0
	return 0
}

// ISC (a.k.a. ISB) - INC then SBC against the incremented value.
func (c *Cpu) ISC(addr uint16, mode AddressingMode) int {
	v := c.Read(addr) + 1
	c.Write(addr, v)
	return c.adcValue(^v)
}

// ANC - AND, then copy the resulting sign bit into Carry (as if the AND
// result had been shifted through an ASL).
func (c *Cpu) ANC(addr uint16, mode AddressingMode) int {
	c.A &= c.operand(addr, mode)
	c.Status.updateZN(c.A)
	c.Status.Carry = c.A&0x80 != 0
	return 0
}

// ALR (a.k.a. ASR) - AND, then LSR the accumulator.
func (c *Cpu) ALR(addr uint16, mode AddressingMode) int {
	c.A &= c.operand(addr, mode)
	c.Status.Carry = c.A&0x01 != 0
	c.A >>= 1
	c.Status.updateZN(c.A)
	return 0
}

// ARR - AND, then ROR the accumulator, with Carry taken from bit 6 of the
// rotated result and Overflow from bit 6 XOR bit 5 (the documented NMOS
// quirk).
func (c *Cpu) ARR(addr uint16, mode AddressingMode) int {
	c.A &= c.operand(addr, mode)
	carryIn := byte(0)
	if c.Status.Carry {
		carryIn = 0x80
	}
	c.A = (c.A >> 1) | carryIn
	c.Status.updateZN(c.A)
	c.Status.Carry = c.A&0x40 != 0
	c.Status.Overflow = (c.A&0x40)>>6^(c.A&0x20)>>5 != 0
	return 0
}

// LXA (a.k.a. ATX) - unstable on real hardware (ANDs with an open-bus
// "magic" constant); deterministically loads A and X from the operand.
func (c *Cpu) LXA(addr uint16, mode AddressingMode) int {
	v := c.operand(addr, mode)
	c.A = v
	c.X = v
	c.Status.updateZN(v)
	return 0
}

// SBX (a.k.a. AXS) - X = (A & X) - operand, without borrow-in; sets
// Carry if the subtraction did not borrow.
func (c *Cpu) SBX(addr uint16, mode AddressingMode) int {
	m := c.operand(addr, mode)
	base := c.A & c.X
	c.Status.Carry = base >= m
	c.X = base - m
	c.Status.updateZN(c.X)
	return 0
}

// highPlusOne is the "+1 to the address's high byte" term common to the
// unstable SHx/TAS/LAS family's best-effort formulas.
func highPlusOne(addr uint16) byte { return byte(addr>>8) + 1 }

// SHA (a.k.a. AHX) - stores A & X & (addr-high + 1).
func (c *Cpu) SHA(addr uint16, mode AddressingMode) int {
	c.Write(addr, c.A&c.X&highPlusOne(addr))
	return 0
}

// SHX - stores X & (addr-high + 1).
func (c *Cpu) SHX(addr uint16, mode AddressingMode) int {
	c.Write(addr, c.X&highPlusOne(addr))
	return 0
}

// SHY - stores Y & (addr-high + 1).
func (c *Cpu) SHY(addr uint16, mode AddressingMode) int {
	c.Write(addr, c.Y&highPlusOne(addr))
	return 0
}

// SHS (a.k.a. TAS) - SP = A & X; stores SP & (addr-high + 1).
func (c *Cpu) SHS(addr uint16, mode AddressingMode) int {
	c.SP = c.A & c.X
	c.Write(addr, c.SP&highPlusOne(addr))
	return 0
}

// LAS (a.k.a. LAR) - A = X = SP = memory & SP.
func (c *Cpu) LAS(addr uint16, mode AddressingMode) int {
	v := c.Read(addr) & c.SP
	c.A = v
	c.X = v
	c.SP = v
	c.Status.updateZN(v)
	return 0
}

// JAM (a.k.a. KIL/HLT) - locks the CPU up; a Reset (or Resume) clears it.
func (c *Cpu) JAM(addr uint16, mode AddressingMode) int {
	c.halted = true
	return 0
}
