// Package romimage loads ROM contents from direct byte arrays, raw
// binary files, or a directory of sidecar JSON descriptors applied in
// ascending priority order.
package romimage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/sixty502/emu/internal/bus"
	"github.com/sixty502/emu/internal/errs"
)

// Target is the subset of *bus.ROM the loader needs, named so tests can
// substitute a fake.
type Target interface {
	LoadImage(addr uint16, data []byte)
	InRange(addr uint16) bool
	Start() uint16
	End() uint16
}

var _ Target = (*bus.ROM)(nil)

// descriptor mirrors a sidecar JSON file's required keys.
type descriptor struct {
	Name        string      `json:"name"`
	LoadAddress interface{} `json:"load_address"`
	Size        int         `json:"size"`
	Priority    int         `json:"priority"`
}

// LoadBytes installs a direct byte array keyed by address into rom.
func LoadBytes(rom Target, addr uint16, data []byte) {
	rom.LoadImage(addr, data)
}

// LoadBinaryFile reads the raw 6502 binary at path and installs it
// starting at addr, truncating silently if it overruns the ROM window
// (bus.ROM.LoadImage already drops anything past its own end).
func LoadBinaryFile(rom Target, path string, addr uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(&errs.RomImageUnreadable{Name: filepath.Base(path), Path: path}, err.Error())
	}
	if !rom.InRange(addr) {
		return &errs.RomImageOutOfRange{Name: filepath.Base(path), Address: uint32(addr)}
	}
	rom.LoadImage(addr, data)
	return nil
}

// LoadDirectory scans dir for *.json sidecar descriptors, pairs each
// with its <basename>.bin payload, and applies them to rom in ascending
// priority order so that later (higher-priority) images win any
// overlapping bytes. Unreadable or invalid entries are logged and
// skipped rather than aborting the whole load.
func LoadDirectory(rom Target, dir string, logger *log.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, "read rom image directory")
	}

	var descs []struct {
		path string
		d    descriptor
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("rom metadata unreadable, skipping", "path", path, "err", err)
			continue
		}
		var d descriptor
		if err := json.Unmarshal(raw, &d); err != nil {
			logger.Warn("rom metadata invalid, skipping", "err", &errs.MetadataInvalid{Path: path, Reason: err.Error()})
			continue
		}
		if d.Name == "" {
			logger.Warn("rom metadata invalid, skipping", "err", &errs.MetadataInvalid{Path: path, Reason: "missing name"})
			continue
		}
		descs = append(descs, struct {
			path string
			d    descriptor
		}{path, d})
	}

	sort.Slice(descs, func(i, j int) bool { return descs[i].d.Priority < descs[j].d.Priority })

	for _, entry := range descs {
		addr, err := decodeAddress(entry.d.LoadAddress)
		if err != nil {
			logger.Warn("rom metadata invalid, skipping", "err", &errs.MetadataInvalid{Path: entry.path, Reason: err.Error()})
			continue
		}
		if !rom.InRange(addr) {
			logger.Warn("rom image out of range, skipping", "err", &errs.RomImageOutOfRange{Name: entry.d.Name, Address: uint32(addr)})
			continue
		}

		binPath := strings.TrimSuffix(entry.path, ".json") + ".bin"
		data, err := os.ReadFile(binPath)
		if err != nil {
			logger.Warn("rom image payload unreadable, skipping", "err", &errs.RomImageUnreadable{Name: entry.d.Name, Path: binPath})
			continue
		}
		if entry.d.Size > 0 && len(data) > entry.d.Size {
			data = data[:entry.d.Size]
		}
		rom.LoadImage(addr, data)
	}

	return nil
}

// decodeAddress accepts either a JSON number or a "0xNNNN" string.
func decodeAddress(v interface{}) (uint16, error) {
	switch val := v.(type) {
	case float64:
		return uint16(val), nil
	case string:
		s := strings.TrimPrefix(strings.TrimPrefix(val, "0x"), "0X")
		n, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return 0, errors.Wrap(err, "parse load_address")
		}
		return uint16(n), nil
	default:
		return 0, errors.New("load_address must be a number or hex string")
	}
}

// StripVectorTrailer removes a trailing 6-byte vector block (NMI, RESET,
// IRQ, little-endian, in that order) from a graphics program image and
// reports the three addresses separately, for the launcher to install at
// 0xFFFA-0xFFFF directly rather than through the ROM window.
func StripVectorTrailer(data []byte) (program []byte, nmi, reset, irq uint16, ok bool) {
	if len(data) < 6 {
		return data, 0, 0, 0, false
	}
	trailer := data[len(data)-6:]
	nmi = uint16(trailer[0]) | uint16(trailer[1])<<8
	reset = uint16(trailer[2]) | uint16(trailer[3])<<8
	irq = uint16(trailer[4]) | uint16(trailer[5])<<8
	return data[:len(data)-6], nmi, reset, irq, true
}
