// Package cpu implements the MOS Technology 6502 core: register file,
// addressing modes, instruction execution, and the three-level
// RESET/NMI/IRQ interrupt priority scheme.
package cpu

import (
	"github.com/sixty502/emu/internal/errs"
)

// Memory is the narrow view of the system bus the CPU needs. It lets this
// package stay independent of the bus package's peripheral list and
// arbitration logic; the composer wires a concrete *bus.SystemBus in.
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

// historyDepth is how many fetched opcode addresses are retained for the
// IllegalOpcode diagnostic trail.
const historyDepth = 10

// Cpu orchestrates fetch/decode/execute against a Memory and tracks the
// interrupt latches described by the interrupt controller state machine.
type Cpu struct {
	Bus Memory

	A byte // accumulator
	X byte
	Y byte

	SP byte // stack pointer; addresses 0x0100 + SP
	PC uint16

	Status StatusRegister

	halted bool

	cycleRemainder int
	totalCycles    uint64

	pcHistory [historyDepth]uint16
	histNext  int

	resetPending bool
	nmiPending   bool
	irqPending   bool
	nmiLastState bool // shadow used for edge detection; true == line high
}

// NewCpu returns a Cpu wired to the given bus, with all latches clear and
// the NMI shadow line held high (its idle state).
func NewCpu(bus Memory) *Cpu {
	return &Cpu{Bus: bus, nmiLastState: true}
}

// Read delegates to the bus.
func (c *Cpu) Read(addr uint16) byte { return c.Bus.Read(addr) }

// Write delegates to the bus.
func (c *Cpu) Write(addr uint16, v byte) { c.Bus.Write(addr, v) }

// Halted reports whether fetch is suspended, either by a JAM/KIL opcode
// or by Halt.
func (c *Cpu) Halted() bool { return c.halted }

// TotalCycles is the number of clock ticks consumed since construction or
// the last Reset.
func (c *Cpu) TotalCycles() uint64 { return c.totalCycles }

func (c *Cpu) recordFetch(pc uint16) {
	c.pcHistory[c.histNext%historyDepth] = pc
	c.histNext++
}

// history returns the recorded PC trail, oldest first.
func (c *Cpu) history() []uint16 {
	n := historyDepth
	if c.histNext < historyDepth {
		n = c.histNext
	}
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		idx := (c.histNext - n + i) % historyDepth
		out[i] = c.pcHistory[idx]
	}
	return out
}

// pushByte pushes v onto the stack page (0x0100) and decrements SP,
// wrapping within its 8-bit range.
func (c *Cpu) pushByte(v byte) {
	c.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

// pullByte increments SP, wrapping, and reads the newly-addressed byte.
func (c *Cpu) pullByte() byte {
	c.SP++
	return c.Read(0x0100 | uint16(c.SP))
}

// pushWord pushes the high byte first, then the low byte, matching JSR
// and interrupt entry.
func (c *Cpu) pushWord(w uint16) {
	c.pushByte(byte(w >> 8))
	c.pushByte(byte(w))
}

// pullWord pulls the low byte first, then the high byte.
func (c *Cpu) pullWord() uint16 {
	lo := c.pullByte()
	hi := c.pullByte()
	return uint16(hi)<<8 | uint16(lo)
}

// Reset triggers the RESET handler at the next sample point. Reset has
// the highest interrupt priority and is not edge-triggered: asserting it
// repeatedly has no additional effect beyond the first.
func (c *Cpu) Reset() { c.resetPending = true }

// RequestNmi raises the NMI latch only on a high-to-low transition of the
// (shadow-tracked) NMI line, reproducing real edge-triggered behaviour:
// two RequestNmi calls without an intervening ReleaseNmi deliver exactly
// one NMI.
func (c *Cpu) RequestNmi() {
	if c.nmiLastState {
		c.nmiPending = true
	}
	c.nmiLastState = false
}

// ReleaseNmi restores the NMI line to its idle (high) state, arming the
// edge detector for the next RequestNmi.
func (c *Cpu) ReleaseNmi() { c.nmiLastState = true }

// RequestIrq asserts the level-triggered IRQ line.
func (c *Cpu) RequestIrq() { c.irqPending = true }

// ReleaseIrq deasserts the IRQ line without it having been serviced.
func (c *Cpu) ReleaseIrq() { c.irqPending = false }

// Halt suspends fetch; the CPU still consumes cycles via Step.
func (c *Cpu) Halt() { c.halted = true }

// Resume clears a halted CPU, e.g. after a monitor-driven restart.
func (c *Cpu) Resume() { c.halted = false }

// Step advances the clock by exactly one cycle, matching §4.6 of the
// specification: a halted CPU just consumes the tick, unless a RESET is
// pending, which is then serviced at once; mid-instruction cycles just
// decrement the remainder; otherwise interrupts are sampled and, if none
// are pending, the next instruction is fetched and fully executed (its
// remaining cycles are then owed on subsequent Steps).
func (c *Cpu) Step() error {
	c.totalCycles++

	if c.halted {
		if c.resetPending {
			c.handleReset()
		}
		return nil
	}

	if c.cycleRemainder > 0 {
		c.cycleRemainder--
		return nil
	}

	if c.resetPending {
		c.handleReset()
		return nil
	}
	if c.nmiPending {
		c.handleNmi()
		return nil
	}
	if c.irqPending && !c.Status.DisableInterrupt {
		c.handleIrq()
		return nil
	}

	return c.fetchDecodeExecute()
}

func (c *Cpu) fetchDecodeExecute() error {
	pc := c.PC
	c.recordFetch(pc)

	b := c.Read(c.PC)
	c.PC++

	op, ok := opcodeTable[b]
	if !ok {
		return &errs.IllegalOpcode{PC: pc, Byte: b, History: c.history()}
	}

	addr, pageCrossed := c.resolve(op.Mode)

	extra := op.Exec(c, addr, op.Mode)
	if pageCrossed && op.PageCrossPenalty {
		extra++
	}

	cycles := int(op.Cycles) + extra
	if cycles < 1 {
		cycles = 1
	}
	c.cycleRemainder = cycles - 1
	return nil
}

// ExecuteInstruction steps the CPU until the in-flight instruction (or
// interrupt handler) has fully retired, returning the first error
// encountered (normally nil). Once the CPU is halted it returns after a
// single Step.
func (c *Cpu) ExecuteInstruction() error {
	if err := c.Step(); err != nil {
		return err
	}
	for c.cycleRemainder > 0 && !c.halted {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run steps the CPU until stop returns true, or an error (almost always
// IllegalOpcode) is encountered. stop is polled before every Step, i.e.
// once per clock cycle, so a cooperative caller can interrupt a
// long-running program, e.g. on a signal.
func (c *Cpu) Run(stop func() bool) error {
	for !stop() {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}
