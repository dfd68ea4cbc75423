package acia

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeHost is a deterministic in-memory stand-in for a terminal stream.
type fakeHost struct {
	in  []byte
	out []byte
}

func (h *fakeHost) ReadByte() (byte, bool, error) {
	if len(h.in) == 0 {
		return 0, false, nil
	}
	b := h.in[0]
	h.in = h.in[1:]
	return b, true, nil
}

func (h *fakeHost) WriteByte(b byte) error {
	h.out = append(h.out, b)
	return nil
}

type failingHost struct{}

func (failingHost) ReadByte() (byte, bool, error) { return 0, false, errors.New("boom") }
func (failingHost) WriteByte(b byte) error        { return errors.New("boom") }

func TestTransmitFlushesToHost(t *testing.T) {
	host := &fakeHost{}
	a := New(0xFE00, host, nil)

	a.Write(0xFE00, 'H')
	assert.Equal(t, []byte{'H'}, host.out)
	assert.True(t, a.Read(0xFE01)&statusTDRE != 0)
}

func TestTransmitBlockedWhenCtsbHigh(t *testing.T) {
	host := &fakeHost{}
	a := New(0xFE00, host, nil)
	a.ctsb = true

	a.Write(0xFE00, 'x')
	assert.Empty(t, host.out)
	assert.True(t, a.tdre)
}

func TestReceiveSetsRdrfAndClearsOnEmpty(t *testing.T) {
	host := &fakeHost{in: []byte{'x'}}
	a := New(0xFE00, host, nil)

	a.Tick()
	assert.True(t, a.Read(0xFE01)&statusRDRF != 0)

	got := a.Read(0xFE00)
	assert.Equal(t, byte('x'), got)
	assert.False(t, a.Read(0xFE01)&statusRDRF != 0)
}

func TestReceiveFifoOrderAndFlagClear(t *testing.T) {
	host := &fakeHost{in: []byte{1, 2, 3}}
	a := New(0xFE00, host, nil)
	a.Tick()

	for _, want := range []byte{1, 2, 3} {
		assert.Equal(t, want, a.Read(0xFE00))
	}
	assert.False(t, a.rdrf)
}

func TestStatusReadClearsIrqLatch(t *testing.T) {
	host := &fakeHost{in: []byte{1}}
	a := New(0xFE00, host, nil)
	a.Write(0xFE02, 0x02) // enable receiver IRQ (IRD bit)
	a.Tick()

	assert.True(t, a.IRQ())
	_ = a.Read(0xFE01) // status read acknowledges
	assert.False(t, a.IRQ())
}

func TestControlRegisterDecoding(t *testing.T) {
	a := New(0xFE00, nil, nil)
	a.Write(0xFE03, 0b1_01_1_0000) // SBN=1, WL=01(7 bits), RCS=1, SBR=0
	assert.Equal(t, 7, a.WordLength())
	assert.True(t, a.ReceiverClockExternal())
	assert.Equal(t, float64(2), a.StopBits())
}

func TestResetRestoresDefaults(t *testing.T) {
	a := New(0xFE00, &fakeHost{in: []byte{9}}, nil)
	a.Tick()
	a.Write(0xFE02, 0xFF)
	a.Reset()

	assert.True(t, a.tdre)
	assert.False(t, a.rdrf)
	assert.Equal(t, byte(0), a.command)
	assert.Equal(t, byte(0), a.control)
	assert.False(t, a.ctsb)
}

func TestHostIoFailureLeavesBuffersUnchanged(t *testing.T) {
	a := New(0xFE00, failingHost{}, nil)
	a.Tick() // read failure must not panic or append garbage
	assert.Empty(t, a.rx)

	a.Write(0xFE00, 'z') // write failure must not panic
	_ = io.EOF
}
