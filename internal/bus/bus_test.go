package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCpu struct{ irqs int }

func (f *fakeCpu) RequestIrq() { f.irqs++ }

type fakePeripheral struct {
	lo, hi byte
	mem    map[uint16]byte
	ticks  int
	irq    bool
}

func (p *fakePeripheral) HandlesAddress(addr uint16) bool { return addr >= p.lo && addr <= p.hi }
func (p *fakePeripheral) Read(addr uint16) byte           { return p.mem[addr] }
func (p *fakePeripheral) Write(addr uint16, v byte)       { p.mem[addr] = v }
func (p *fakePeripheral) Tick()                           { p.ticks++ }
func (p *fakePeripheral) IRQ() bool                       { return p.irq }

func TestRamFallback(t *testing.T) {
	b := NewSystemBus(NewRAM(), nil)
	b.Write(0x0200, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0200))
}

func TestRomWindowFallbackAndWriteBlocked(t *testing.T) {
	rom := NewROM(0x8000, 0xFFFF)
	rom.LoadImage(0x8000, []byte{0xEA, 0xEA})
	b := NewSystemBus(NewRAM(), rom)

	assert.Equal(t, byte(0xEA), b.Read(0x8000))
	b.Write(0x8000, 0x00) // silently dropped
	assert.Equal(t, byte(0xEA), b.Read(0x8000))
}

func TestPeripheralArbitrationWinsOverRom(t *testing.T) {
	rom := NewROM(0x8000, 0xFFFF)
	p := &fakePeripheral{lo: 0x8000, hi: 0x8000, mem: map[uint16]byte{}}
	b := NewSystemBus(NewRAM(), rom)
	b.AddPeripheral(p)

	b.Write(0x8000, 0x7F)
	assert.Equal(t, byte(0x7F), b.Read(0x8000))
}

func TestFirstMatchingPeripheralWins(t *testing.T) {
	first := &fakePeripheral{lo: 0x00, hi: 0xFF, mem: map[uint16]byte{0x10: 1}}
	second := &fakePeripheral{lo: 0x00, hi: 0xFF, mem: map[uint16]byte{0x10: 2}}
	b := NewSystemBus(NewRAM(), nil)
	b.AddPeripheral(first)
	b.AddPeripheral(second)

	assert.Equal(t, byte(1), b.Read(0x10))
}

func TestReadWordLittleEndian(t *testing.T) {
	b := NewSystemBus(NewRAM(), nil)
	b.Write(0x10, 0x34)
	b.Write(0x11, 0x12)
	assert.Equal(t, uint16(0x1234), b.ReadWord(0x10))
}

func TestTickAggregatesEdgeTriggeredIrq(t *testing.T) {
	p := &fakePeripheral{lo: 0, hi: 0, mem: map[uint16]byte{}}
	cpu := &fakeCpu{}
	b := NewSystemBus(NewRAM(), nil)
	b.SetCpu(cpu)
	b.AddPeripheral(p)

	b.Tick() // irq still low
	assert.Equal(t, 0, cpu.irqs)

	p.irq = true
	b.Tick() // rising edge
	assert.Equal(t, 1, cpu.irqs)

	b.Tick() // held high, no new edge
	assert.Equal(t, 1, cpu.irqs)

	p.irq = false
	b.Tick()
	p.irq = true
	b.Tick() // second rising edge
	assert.Equal(t, 2, cpu.irqs)

	assert.Equal(t, 5, p.ticks)
}
