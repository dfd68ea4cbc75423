package cpu

// Vector addresses for the three interrupt sources.
const (
	vectorNmi   uint16 = 0xfffa
	vectorReset uint16 = 0xfffc
	vectorIrq   uint16 = 0xfffe
)

func (c *Cpu) readVector(addr uint16) uint16 {
	lo := c.Read(addr)
	hi := c.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// handleReset loads the defined power-on/reset state: registers cleared,
// status loaded with I=1, D=0, SP decremented by 3 as if a return address
// and status had been pushed (nothing is actually written to the stack),
// PC loaded from the reset vector. Costs 7 cycles.
func (c *Cpu) handleReset() {
	c.A = 0
	c.X = 0
	c.Y = 0

	c.SP -= 3

	c.Status = StatusRegister{
		DisableInterrupt: true,
		Unused:           true,
	}

	c.PC = c.readVector(vectorReset)

	c.halted = false
	c.resetPending = false
	c.nmiPending = false
	c.irqPending = false
	c.nmiLastState = true

	c.cycleRemainder = 6 // 7 total, this call counts as the first
}

// handleNmi pushes PC then status (B=0), sets I, and vectors through
// 0xFFFA/B. Costs 7 cycles.
func (c *Cpu) handleNmi() {
	c.pushWord(c.PC)
	c.pushByte(c.Status.packWithBreak(false))
	c.Status.DisableInterrupt = true

	c.PC = c.readVector(vectorNmi)
	c.nmiPending = false
	c.cycleRemainder = 6
}

// handleIrq is identical to handleNmi but vectors through 0xFFFE/F and is
// only reached when the I flag is clear.
func (c *Cpu) handleIrq() {
	c.pushWord(c.PC)
	c.pushByte(c.Status.packWithBreak(false))
	c.Status.DisableInterrupt = true

	c.PC = c.readVector(vectorIrq)
	c.irqPending = false
	c.cycleRemainder = 6
}
