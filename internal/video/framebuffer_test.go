package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReadRoundTrip(t *testing.T) {
	f := NewDefault()
	f.Write(0x0500, 0x2A)
	assert.Equal(t, byte(0x2A), f.Read(0x0500))
}

func TestOutOfRangeReadReturnsFF(t *testing.T) {
	f := NewDefault()
	assert.Equal(t, byte(0xFF), f.Read(0x0000))
	assert.Equal(t, byte(0xFF), f.Read(0xFFFF))
}

func TestUnassignedInRangeOffsetReadsZero(t *testing.T) {
	f := New(0x0400, 0xF3FF) // window is exactly the 256*240 plane; its last byte was never written
	assert.Equal(t, byte(0), f.Read(0xF3FF))
}

func TestDirtyTrackingScenario(t *testing.T) {
	f := NewDefault()
	assert.False(t, f.IsDirty(false))

	f.Write(0x0400, 0x01)
	assert.True(t, f.IsDirty(false))

	assert.True(t, f.IsDirty(true))
	assert.False(t, f.IsDirty(true))
	assert.Equal(t, uint64(1), f.FrameCount())
}

func TestSetPixelGetPixel(t *testing.T) {
	f := NewDefault()
	f.SetPixel(10, 20, 0x55)
	assert.Equal(t, byte(0x55), f.GetPixel(10, 20))
	assert.Equal(t, byte(0), f.GetPixel(300, 300))
}

func TestNeverRaisesIrq(t *testing.T) {
	f := NewDefault()
	f.Write(0x0400, 1)
	f.Tick()
	assert.False(t, f.IRQ())
}
