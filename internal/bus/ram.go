package bus

// RAM is a flat 64K byte store; addresses never claimed by a peripheral
// or the ROM window fall through to it. Absent entries read as zero,
// which Go's zero-valued array already guarantees.
type RAM struct {
	data [65536]byte
}

// NewRAM returns an empty 64K RAM.
func NewRAM() *RAM { return &RAM{} }

func (r *RAM) Read(addr uint16) byte     { return r.data[addr] }
func (r *RAM) Write(addr uint16, v byte) { r.data[addr] = v }
