// Package errs defines the composer-facing error kinds described in the
// error handling design: an illegal opcode is fatal, everything else is
// recoverable (logged and skipped by the directory loader and the ACIA,
// returned by the single-binary loaders).
package errs

import "fmt"

// IllegalOpcode is raised by the CPU when it fetches a byte with no
// corresponding entry in the opcode table. It is the one error kind the
// CPU itself does not recover from.
type IllegalOpcode struct {
	PC      uint16
	Byte    byte
	History []uint16 // last fetches, oldest first, capped at 10
}

func (e *IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at PC=0x%04X (history: %04X)", e.Byte, e.PC, e.History)
}

// RomImageOutOfRange means a ROM image's load address falls outside the
// ROM window. The directory loader logs a warning and skips the image;
// the single-binary loaders return it to their caller.
type RomImageOutOfRange struct {
	Name    string
	Address uint32
}

func (e *RomImageOutOfRange) Error() string {
	return fmt.Sprintf("rom image %q: load address 0x%04X outside ROM window", e.Name, e.Address)
}

// RomImageUnreadable reports a filesystem failure while loading an
// image's binary payload. It carries the image name and path only, not
// the underlying error.
type RomImageUnreadable struct {
	Name string
	Path string
}

func (e *RomImageUnreadable) Error() string {
	return fmt.Sprintf("rom image %q: cannot read payload %q", e.Name, e.Path)
}

// MetadataInvalid means a sidecar descriptor failed to parse or was
// missing a required field.
type MetadataInvalid struct {
	Path   string
	Reason string
}

func (e *MetadataInvalid) Error() string {
	return fmt.Sprintf("rom metadata %q invalid: %s", e.Path, e.Reason)
}

// HostIoFailure means the ACIA could not read or write the attached host
// stream during a tick. The ACIA logs and continues with buffers
// unchanged; this type exists so callers can distinguish the condition.
type HostIoFailure struct {
	Op  string // "read" or "write"
	Err error
}

func (e *HostIoFailure) Error() string {
	return fmt.Sprintf("acia host io failure during %s: %v", e.Op, e.Err)
}

func (e *HostIoFailure) Unwrap() error { return e.Err }
