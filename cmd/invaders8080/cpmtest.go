package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/n-ulricksen/invaders8080/cpu"
)

const cpmLoadOffset = 0x0100

// cpmBus is the CP/M test harness's memory: a flat 64 KiB image with the
// BDOS entry point at 0x0005 patched to "OUT 1; RET" so that test
// binaries written for CP/M surface their console output through port 1,
// and the first 0x100 bytes filled with HLT so a test that falls through
// its own entry point halts cleanly. Grounded directly on
// emulator_read_byte/_write_byte/_io_outb in the original CP/M harness.
type cpmBus struct {
	mem [0x10000]byte
}

func (b *cpmBus) ReadByte(addr uint16) byte       { return b.mem[addr] }
func (b *cpmBus) WriteByte(addr uint16, val byte) { b.mem[addr] = val }
func (b *cpmBus) IOIn(port byte) byte             { return 0 }

func newCPMTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpmtest <rom-path>",
		Short: "Run a CP/M-style 8080 test binary and report instruction/cycle counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCPMTest(args[0])
		},
	}
	return cmd
}

func runCPMTest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading test binary: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("loading test binary: empty file")
	}
	if len(data) > 0x10000-cpmLoadOffset {
		return fmt.Errorf("loading test binary: %d bytes exceeds the %d byte window at 0x0100", len(data), 0x10000-cpmLoadOffset)
	}

	bus := &cpmBus{}
	for i := 0; i < cpmLoadOffset; i++ {
		bus.mem[i] = 0x76 // HLT
	}
	copy(bus.mem[cpmLoadOffset:], data)

	// Patch the BDOS entry point: OUT 1 ; RET.
	bus.mem[0x0005] = 0xd3
	bus.mem[0x0006] = 0x01
	bus.mem[0x0007] = 0xc9

	c := cpu.New()
	c.PC = cpmLoadOffset

	h := &cpmHarness{bus: bus, cpu: c}
	var opcount uint64
	for !c.Halted {
		c.Step(h)
		opcount++
	}

	fmt.Printf("\n%d instructions executed on %d cycles\n", opcount, c.Cycles)
	return nil
}

// cpmHarness wraps cpmBus and the CPU together so that port-1 writes can
// inspect the CPU's C/D/E registers the way emulator_io_outb inspects
// cpu.c/cpu.e/cpu.d directly.
type cpmHarness struct {
	bus *cpmBus
	cpu *cpu.CPU
}

func (h *cpmHarness) ReadByte(addr uint16) byte       { return h.bus.ReadByte(addr) }
func (h *cpmHarness) WriteByte(addr uint16, val byte) { h.bus.WriteByte(addr, val) }
func (h *cpmHarness) IOIn(port byte) byte             { return h.bus.IOIn(port) }

func (h *cpmHarness) IOOut(port byte, val byte) {
	if port != 1 {
		return
	}
	switch h.cpu.C {
	case 2:
		fmt.Printf("%c", h.cpu.E)
	case 9:
		addr := h.cpu.DE()
		for {
			b := h.bus.ReadByte(addr)
			if b == '$' {
				break
			}
			fmt.Printf("%c", b)
			addr++
		}
	}
}
