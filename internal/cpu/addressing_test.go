package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveZeroPageXWraps(t *testing.T) {
	c, _ := newTestCpu()
	c.X = 0xff
	c.PC = 0x10
	c.Bus.Write(0x10, 0x80)

	addr, crossed := c.resolve(ZeroPageX)
	assert.Equal(t, uint16(0x7f), addr) // 0x80 + 0xff wraps within the zero page
	assert.False(t, crossed)
}

func TestResolveAbsoluteXPageCross(t *testing.T) {
	c, _ := newTestCpu()
	c.X = 0x01
	c.PC = 0x10
	c.Bus.Write(0x10, 0xff)
	c.Bus.Write(0x11, 0x02) // base = 0x02ff

	addr, crossed := c.resolve(AbsoluteX)
	assert.Equal(t, uint16(0x0300), addr)
	assert.True(t, crossed)
}

func TestResolveAbsoluteXNoPageCross(t *testing.T) {
	c, _ := newTestCpu()
	c.X = 0x01
	c.PC = 0x10
	c.Bus.Write(0x10, 0x00)
	c.Bus.Write(0x11, 0x02) // base = 0x0200

	addr, crossed := c.resolve(AbsoluteX)
	assert.Equal(t, uint16(0x0201), addr)
	assert.False(t, crossed)
}

func TestResolveIndirectXReadsZeroPagePointer(t *testing.T) {
	c, _ := newTestCpu()
	c.X = 0x04
	c.PC = 0x10
	c.Bus.Write(0x10, 0x20) // zp base
	c.Bus.Write(0x24, 0x00)
	c.Bus.Write(0x25, 0x04)

	addr, crossed := c.resolve(IndirectX)
	assert.Equal(t, uint16(0x0400), addr)
	assert.False(t, crossed)
}

func TestResolveIndirectYPageCross(t *testing.T) {
	c, _ := newTestCpu()
	c.Y = 0x01
	c.PC = 0x10
	c.Bus.Write(0x10, 0x20) // zp pointer
	c.Bus.Write(0x20, 0xff)
	c.Bus.Write(0x21, 0x02) // base = 0x02ff

	addr, crossed := c.resolve(IndirectY)
	assert.Equal(t, uint16(0x0300), addr)
	assert.True(t, crossed)
}

func TestReadIndirectWordPageWrapBug(t *testing.T) {
	c, _ := newTestCpu()
	c.Bus.Write(0x02ff, 0x34)
	c.Bus.Write(0x0200, 0x12) // hardware bug: high byte comes from 0x0200, not 0x0300

	got := c.readIndirectWord(0x02ff)
	assert.Equal(t, uint16(0x1234), got)
}

func TestModeLength(t *testing.T) {
	assert.Equal(t, byte(1), modeLength(Implied))
	assert.Equal(t, byte(1), modeLength(Accumulator))
	assert.Equal(t, byte(2), modeLength(Immediate))
	assert.Equal(t, byte(2), modeLength(ZeroPage))
	assert.Equal(t, byte(2), modeLength(Relative))
	assert.Equal(t, byte(3), modeLength(Absolute))
	assert.Equal(t, byte(3), modeLength(Indirect))
}
