// Package acia implements a WDC 65C51-like memory-mapped serial
// interface: a four-register window bridging the emulated bus to a
// non-blocking host input/output stream.
package acia

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/sixty502/emu/internal/errs"
)

// Status register bit positions (§6 of the external-interfaces layout).
const (
	statusParity byte = 1 << iota
	statusFraming
	statusOverrun
	statusRDRF
	statusTDRE
	statusDCD
	statusDSR
	statusIRQ
)

// HostIO is the non-blocking host stream the ACIA bridges to. ReadByte
// returns (0, false, nil) when no byte is currently available; it must
// never block the scheduler.
type HostIO interface {
	ReadByte() (b byte, ok bool, err error)
	WriteByte(b byte) error
}

// Acia is the serial peripheral. Host I/O failures are logged and
// otherwise swallowed: per design, the ACIA continues with buffers
// unchanged rather than propagating the error up through Tick/Write.
type Acia struct {
	base uint16
	host HostIO
	log  *log.Logger

	rx []byte // receive FIFO

	command byte
	control byte

	rdrf    bool
	tdre    bool
	ctsb    bool // transmitter disabled when high
	dcd     bool
	dsr     bool
	irqPend bool

	rxIrqEnabled bool
}

// New returns an Acia occupying the four registers at base..base+3,
// bridged to host. A nil logger is replaced with a discarding one.
func New(base uint16, host HostIO, logger *log.Logger) *Acia {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &Acia{base: base, host: host, log: logger}
	a.Reset()
	return a
}

// register offsets within the four-byte window.
const (
	regData = iota
	regStatus
	regCommand
	regControl
)

// HandlesAddress reports whether addr is one of the four ACIA registers.
func (a *Acia) HandlesAddress(addr uint16) bool {
	return addr >= a.base && addr < a.base+4
}

// Read dispatches to the addressed register.
func (a *Acia) Read(addr uint16) byte {
	switch addr - a.base {
	case regData:
		return a.readData()
	case regStatus:
		return a.readStatus()
	default:
		return 0 // command/control are write-only
	}
}

// Write dispatches to the addressed register.
func (a *Acia) Write(addr uint16, v byte) {
	switch addr - a.base {
	case regData:
		a.writeData(v)
	case regCommand:
		a.writeCommand(v)
	case regControl:
		a.writeControl(v)
	}
}

func (a *Acia) readData() byte {
	if len(a.rx) == 0 {
		return 0
	}
	b := a.rx[0]
	a.rx = a.rx[1:]
	if len(a.rx) == 0 {
		a.rdrf = false
	}
	return b
}

func (a *Acia) readStatus() byte {
	a.refreshFlags()

	var s byte
	if a.parityErr() {
		s |= statusParity
	}
	if a.framingErr() {
		s |= statusFraming
	}
	if a.overrun() {
		s |= statusOverrun
	}
	if a.rdrf {
		s |= statusRDRF
	}
	if a.tdre {
		s |= statusTDRE
	}
	if a.dcd {
		s |= statusDCD
	}
	if a.dsr {
		s |= statusDSR
	}

	// Reading status is the documented acknowledgement: the IRQ bit in
	// the byte handed back is always clear, and the latch behind it
	// clears with it, regardless of whether it was set a moment ago.
	a.irqPend = false
	return s
}

// parityErr/framingErr/overrun are not modelled (no line noise source
// in an emulator); always false.
func (a *Acia) parityErr() bool  { return false }
func (a *Acia) framingErr() bool { return false }
func (a *Acia) overrun() bool    { return false }

func (a *Acia) writeData(v byte) {
	if a.ctsb {
		a.tdre = true
		return
	}
	a.tdre = false
	if a.host != nil {
		if err := a.host.WriteByte(v); err != nil {
			a.log.Warn("acia: host write failed", "err", &errs.HostIoFailure{Op: "write", Err: err})
		}
	}
	a.tdre = true
}

func (a *Acia) writeCommand(v byte) {
	a.command = v
	a.rxIrqEnabled = v&0x02 != 0 // IRD, bit 1
}

func (a *Acia) writeControl(v byte) {
	a.control = v
	// SBR (bits 0-3), RCS (bit 4), WL (bits 5-6), SBN (bit 7) are decoded
	// on demand by BaudRate/WordLength/StopBits below rather than cached
	// redundantly.
}

// BaudRate decodes the SBR nibble (bits 0-3) into the conventional 65C51
// divisor table index; callers needing an actual bps figure maintain
// their own table, since the chip's divisors depend on the driving
// crystal frequency.
func (a *Acia) BaudRate() byte { return a.control & 0x0f }

// ReceiverClockExternal reports the RCS bit (bit 4): true selects an
// externally supplied receiver clock instead of the baud generator.
func (a *Acia) ReceiverClockExternal() bool { return a.control&0x10 != 0 }

// WordLength decodes the WL field (bits 5-6) into the selected data-bit
// count: 8/7/6/5 for 00/01/10/11.
func (a *Acia) WordLength() int {
	switch (a.control >> 5) & 0x03 {
	case 0:
		return 8
	case 1:
		return 7
	case 2:
		return 6
	default:
		return 5
	}
}

// StopBits decodes SBN (bit 7) against the word length, per the 65C51's
// table (a 5-bit word with SBN set yields 1.5 stop bits rather than 2).
func (a *Acia) StopBits() float64 {
	if a.control&0x80 == 0 {
		return 1
	}
	if a.WordLength() == 5 {
		return 1.5
	}
	return 2
}

// refreshFlags recomputes RDRF from the receive buffer and DCD/DSR from
// whether a host stream is attached. TDRE is tracked directly by
// writeData and left untouched here.
func (a *Acia) refreshFlags() {
	a.rdrf = len(a.rx) > 0
	if a.host != nil {
		a.dcd = true
		a.dsr = true
	}
}

// Tick polls the host input stream non-blockingly, appends any received
// byte to the receive FIFO, and recomputes the pending-IRQ latch.
func (a *Acia) Tick() {
	if a.host != nil {
		for {
			b, ok, err := a.host.ReadByte()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					a.log.Warn("acia: host read failed", "err", &errs.HostIoFailure{Op: "read", Err: err})
				}
				break
			}
			if !ok {
				break
			}
			a.rx = append(a.rx, b)
			a.rdrf = true
		}
	}
	a.irqPend = a.rxIrqEnabled && a.rdrf
}

// IRQ reports the peripheral's current interrupt line state.
func (a *Acia) IRQ() bool { return a.irqPend }

// Reset clears queues, sets TDRE, zeroes command/control, drops CTSB,
// and defaults to 8N1.
func (a *Acia) Reset() {
	a.rx = nil
	a.tdre = true
	a.rdrf = false
	a.command = 0
	a.control = 0
	a.ctsb = false
	a.rxIrqEnabled = false
	a.irqPend = false
}
