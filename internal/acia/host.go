package acia

import (
	"bufio"
	"io"
	"os"
)

// StdioHost bridges the ACIA to the process's stdin/stdout, buffering
// stdin reads through a background goroutine so ReadByte never blocks
// the tick loop waiting on terminal input.
type StdioHost struct {
	in  chan byte
	out io.Writer
}

// NewStdioHost starts the stdin reader goroutine and returns a host
// wired to os.Stdin/os.Stdout.
func NewStdioHost() *StdioHost {
	h := &StdioHost{in: make(chan byte, 256), out: os.Stdout}
	go h.pump()
	return h
}

func (h *StdioHost) pump() {
	r := bufio.NewReader(os.Stdin)
	for {
		b, err := r.ReadByte()
		if err != nil {
			close(h.in)
			return
		}
		h.in <- b
	}
}

// ReadByte returns the next buffered stdin byte without blocking.
func (h *StdioHost) ReadByte() (byte, bool, error) {
	select {
	case b, ok := <-h.in:
		if !ok {
			return 0, false, io.EOF
		}
		return b, true, nil
	default:
		return 0, false, nil
	}
}

// WriteByte writes a single byte to stdout.
func (h *StdioHost) WriteByte(b byte) error {
	_, err := h.out.Write([]byte{b})
	return err
}
