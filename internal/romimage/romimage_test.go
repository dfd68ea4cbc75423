package romimage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/sixty502/emu/internal/bus"
)

func TestLoadBytesInstallsDirectly(t *testing.T) {
	rom := bus.NewROM(0x8000, 0xFFFF)
	LoadBytes(rom, 0x8000, []byte{0xEA, 0xEA})
	assert.Equal(t, byte(0xEA), rom.Read(0x8000))
}

func TestLoadBinaryFileOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bin")
	assert.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	rom := bus.NewROM(0x8000, 0xFFFF)
	err := LoadBinaryFile(rom, path, 0x0200)
	assert.Error(t, err)
}

func TestLoadBinaryFileInstalls(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bin")
	assert.NoError(t, os.WriteFile(path, []byte{0x11, 0x22}, 0o644))

	rom := bus.NewROM(0x8000, 0xFFFF)
	assert.NoError(t, LoadBinaryFile(rom, path, 0x8000))
	assert.Equal(t, byte(0x11), rom.Read(0x8000))
	assert.Equal(t, byte(0x22), rom.Read(0x8001))
}

func writeDescriptor(t *testing.T, dir, name string, loadAddr interface{}, priority int, payload []byte) {
	t.Helper()
	meta := map[string]interface{}{
		"name":         name,
		"load_address": loadAddr,
		"size":         len(payload),
		"priority":     priority,
	}
	raw, err := json.Marshal(meta)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), raw, 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, name+".bin"), payload, 0o644))
}

func TestLoadDirectoryAppliesAscendingPriority(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "low", "0x8000", 0, []byte{0xAA, 0xAA})
	writeDescriptor(t, dir, "high", float64(0x8000), 1, []byte{0xBB})

	rom := bus.NewROM(0x8000, 0xFFFF)
	logger := log.New(os.Stderr)
	assert.NoError(t, LoadDirectory(rom, dir, logger))

	// "high" (priority 1) applied after "low" (priority 0); its single
	// byte overwrites only the first byte of low's two-byte image.
	assert.Equal(t, byte(0xBB), rom.Read(0x8000))
	assert.Equal(t, byte(0xAA), rom.Read(0x8001))
}

func TestLoadDirectorySkipsInvalidMetadataWithoutAborting(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))
	writeDescriptor(t, dir, "good", "0x8000", 0, []byte{0x42})

	rom := bus.NewROM(0x8000, 0xFFFF)
	logger := log.New(os.Stderr)
	assert.NoError(t, LoadDirectory(rom, dir, logger))
	assert.Equal(t, byte(0x42), rom.Read(0x8000))
}

func TestStripVectorTrailer(t *testing.T) {
	data := append([]byte{0xEA, 0xEA}, 0x00, 0x10, 0x00, 0x80, 0x00, 0x90)
	program, nmi, reset, irq, ok := StripVectorTrailer(data)
	assert.True(t, ok)
	assert.Equal(t, []byte{0xEA, 0xEA}, program)
	assert.Equal(t, uint16(0x1000), nmi)
	assert.Equal(t, uint16(0x8000), reset)
	assert.Equal(t, uint16(0x9000), irq)
}
