package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusPackUnpackRoundTrip(t *testing.T) {
	var s StatusRegister
	s.unpack(0b1010_0101)

	assert.True(t, s.Carry)
	assert.False(t, s.Zero)
	assert.True(t, s.DisableInterrupt)
	assert.False(t, s.Decimal)
	assert.False(t, s.Break)
	assert.True(t, s.Unused)
	assert.False(t, s.Overflow)
	assert.True(t, s.Negative)

	assert.Equal(t, byte(0b1010_0101), s.pack())
}

func TestStatusPackForcesUnusedBit(t *testing.T) {
	var s StatusRegister
	s.Unused = false
	assert.Equal(t, byte(0b0010_0000), s.pack())
}

func TestStatusPackWithBreakDoesNotMutateStoredBreak(t *testing.T) {
	var s StatusRegister
	s.Break = false

	pushed := s.packWithBreak(true)
	assert.True(t, pushed&0b0001_0000 != 0)
	assert.False(t, s.Break, "packWithBreak must not persist the override")
}

func TestStatusUpdateZN(t *testing.T) {
	var s StatusRegister
	s.updateZN(0)
	assert.True(t, s.Zero)
	assert.False(t, s.Negative)

	s.updateZN(0x80)
	assert.False(t, s.Zero)
	assert.True(t, s.Negative)

	s.updateZN(0x42)
	assert.False(t, s.Zero)
	assert.False(t, s.Negative)
}
