package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sixty502/emu/internal/acia"
	"github.com/sixty502/emu/internal/bus"
	"github.com/sixty502/emu/internal/cpu"
	"github.com/sixty502/emu/internal/errs"
	"github.com/sixty502/emu/internal/monitor"
	"github.com/sixty502/emu/internal/romimage"
	"github.com/sixty502/emu/internal/via"
	"github.com/sixty502/emu/internal/video"
)

func main() {
	var (
		loadAddr    uint16
		resetVec    uint16
		useReset    bool
		aciaBase    uint16
		aciaVariant string
		enableVia   bool
		viaBase     uint16
		interactive bool
		romDir      string
	)

	rootCmd := &cobra.Command{
		Use:   "sixty502 [program.bin]",
		Short: "NMOS 6502 emulator: CPU core, ROM/RAM bus, ACIA serial, optional VIA timer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(os.Stderr)
			logger.SetLevel(log.InfoLevel)

			ram := bus.NewRAM()
			rom := bus.NewROM(0x8000, 0xFFFF)

			switch aciaVariant {
			case "c000":
				aciaBase = 0xC000
			default:
				aciaBase = 0xFE00
			}

			host := acia.NewStdioHost()
			serial := acia.New(aciaBase, host, logger)

			systemBus := bus.NewSystemBus(ram, rom)
			systemBus.AddPeripheral(serial)

			if enableVia {
				systemBus.AddPeripheral(via.New(viaBase))
			}

			fb := video.NewDefault()
			systemBus.AddPeripheral(fb)

			if len(args) == 1 {
				if err := loadProgram(rom, args[0], loadAddr, logger); err != nil {
					return err
				}
			} else if romDir != "" {
				if err := romimage.LoadDirectory(rom, romDir, logger); err != nil {
					return err
				}
			}

			if useReset {
				rom.LoadImage(0xFFFC, []byte{byte(resetVec), byte(resetVec >> 8)})
			}

			c := cpu.NewCpu(systemBus)
			systemBus.SetCpu(c)
			c.Reset()
			// the RESET vector is sampled on the first Step; drive it home
			// before anything else touches the bus.
			for i := 0; i < 7; i++ {
				if err := c.Step(); err != nil {
					return fmt.Errorf("reset sequence: %w", err)
				}
			}

			if interactive {
				return monitor.Run(monitor.Machine{
					Cpu: c,
					Mem: systemBus,
					Fb:  fb,
					Ser: serial,
				})
			}

			return run(c, systemBus, logger)
		},
	}

	rootCmd.Flags().Uint16Var(&loadAddr, "load-address", 0x8000, "address a supplied binary is installed at")
	rootCmd.Flags().Uint16Var(&resetVec, "reset-vector", 0x8000, "override the RESET vector (0xFFFC/D)")
	rootCmd.Flags().BoolVar(&useReset, "override-reset", false, "write --reset-vector into 0xFFFC/D before boot")
	rootCmd.Flags().StringVar(&aciaVariant, "acia-base", "fe00", "ACIA register base: fe00 or c000")
	rootCmd.Flags().BoolVar(&enableVia, "via", false, "attach a VIA timer peripheral")
	rootCmd.Flags().Uint16Var(&viaBase, "via-base", 0x6000, "VIA register base address")
	rootCmd.Flags().BoolVarP(&interactive, "monitor", "m", false, "drop into the interactive step monitor instead of free-running")
	rootCmd.Flags().StringVar(&romDir, "rom-dir", "", "directory of sidecar-described ROM images, applied instead of a single binary")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadProgram(rom *bus.ROM, path string, addr uint16, logger *log.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}

	if !rom.InRange(addr) {
		return &errs.RomImageOutOfRange{Name: filepath.Base(path), Address: uint32(addr)}
	}

	if program, nmi, reset, irq, ok := romimage.StripVectorTrailer(data); ok {
		logger.Debug("program carries a vector trailer, stripping and installing vectors",
			"nmi", nmi, "reset", reset, "irq", irq)
		rom.LoadImage(addr, program)
		rom.LoadImage(0xFFFA, []byte{byte(nmi), byte(nmi >> 8)})
		rom.LoadImage(0xFFFC, []byte{byte(reset), byte(reset >> 8)})
		rom.LoadImage(0xFFFE, []byte{byte(irq), byte(irq >> 8)})
		return nil
	}

	rom.LoadImage(addr, data)
	return nil
}

// run free-runs the composer loop: one CPU step, one bus tick, until the
// CPU halts on an illegal opcode or a JAM/KIL instruction.
func run(c *cpu.Cpu, systemBus *bus.SystemBus, logger *log.Logger) error {
	for !c.Halted() {
		if err := c.Step(); err != nil {
			logger.Error("cpu halted", "err", err)
			return err
		}
		systemBus.Tick()
	}
	logger.Info("cpu halted on JAM/KIL", "pc", c.PC, "cycles", c.TotalCycles())
	return nil
}
