// Package monitor implements an interactive bubbletea TUI for stepping
// the emulator one instruction per key press, generalized from a
// single-CPU debugger into one that also shows the framebuffer and ACIA
// state. It does not tick the bus, so peripherals are not clocked while
// stepping.
package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/sixty502/emu/internal/acia"
	"github.com/sixty502/emu/internal/cpu"
	"github.com/sixty502/emu/internal/video"
)

// Machine is the narrow slice of the composer's wiring the monitor
// drives and inspects.
type Machine struct {
	Cpu *cpu.Cpu
	Mem cpu.Memory // the system bus, addressed for the page table view
	Fb  *video.Framebuffer
	Ser *acia.Acia
}

type model struct {
	m      Machine
	prevPC uint16
	err    error
	halted bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.m.Cpu.PC
			if err := m.m.Cpu.ExecuteInstruction(); err != nil {
				m.err = err
				m.halted = true
				return m, nil
			}
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.m.Mem.Read(addr)
		if addr == m.m.Cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	s := m.m.Cpu.Status
	var flags string
	for _, flag := range []bool{
		s.Negative, s.Overflow, s.Unused, s.Break,
		s.Decimal, s.DisableInterrupt, s.Zero, s.Carry,
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (prev %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
cycles: %d
N V _ B D I Z C
`,
		m.m.Cpu.PC, m.prevPC,
		m.m.Cpu.A, m.m.Cpu.X, m.m.Cpu.Y, m.m.Cpu.SP,
		m.m.Cpu.TotalCycles(),
	) + flags
}

func (m model) peripherals() string {
	fbDirty := "-"
	if m.m.Fb != nil {
		fbDirty = fmt.Sprintf("%v (frame %d)", m.m.Fb.IsDirty(false), m.m.Fb.FrameCount())
	}
	serIrq := "-"
	if m.m.Ser != nil {
		serIrq = fmt.Sprintf("%v", m.m.Ser.IRQ())
	}
	return fmt.Sprintf("fb dirty: %s\nacia irq: %s", fbDirty, serIrq)
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}
	base := m.m.Cpu.PC &^ 0x0f
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderPage(base+uint16(i*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) View() string {
	if m.halted {
		return fmt.Sprintf("halted: %v\npress q to quit", m.err)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		m.peripherals(),
		"",
		spew.Sdump(m.m.Cpu.Status),
	)
}

// Run starts the interactive monitor loop against an already-wired
// Machine. The CPU is expected to already have PC positioned (via reset
// or a launcher-installed override) before Run is called.
func Run(mach Machine) error {
	p := tea.NewProgram(model{m: mach})
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
