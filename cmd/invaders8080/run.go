package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/n-ulricksen/invaders8080/arcade"
	"github.com/n-ulricksen/invaders8080/arcade/presenter"
	"github.com/n-ulricksen/invaders8080/arcade/sound"
)

func newRunCmd() *cobra.Command {
	var debug, logging, mono, silent bool

	cmd := &cobra.Command{
		Use:   "run <rom-path>",
		Short: "Run a Space Invaders ROM image in the arcade cabinet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArcade(args[0], debug, logging, mono, silent)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "show the CPU/disassembly debug overlay")
	cmd.Flags().BoolVar(&logging, "log", false, "log PC and cycle count to stderr once per frame")
	cmd.Flags().BoolVar(&mono, "mono", false, "force monochrome video, disabling the color overlay")
	cmd.Flags().BoolVar(&silent, "silent", false, "disable sound output")

	return cmd
}

func runArcade(romPath string, debug, logging, mono, silent bool) error {
	data, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	var sink arcade.SoundSink = sound.Null{}
	if !silent {
		beepSink, err := sound.NewBeep()
		if err != nil {
			fmt.Fprintf(os.Stderr, "invaders8080: sound disabled: %v\n", err)
		} else {
			sink = beepSink
		}
	}

	machine := arcade.NewMachine(sink)
	defer machine.Close()

	if err := machine.LoadROM(data); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	machine.SetColorOverlay(!mono)

	win, err := presenter.NewWindow(debug)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}

	prev := win.NowMS()
	quit := false
	for !win.Closed() && !quit {
		now := win.NowMS()
		dt := now - prev
		prev = now

		for _, ev := range win.PollEvents() {
			if ev.Kind == presenter.EventQuit {
				quit = true
				continue
			}
			handleEvent(machine, ev)
		}

		machine.Tick(dt)
		win.BlitARGB(machine.VideoBuffer())

		if debug {
			win.WriteDebugText(debugOverlay(machine))
		}

		if logging {
			fmt.Fprintf(os.Stderr, "pc=%#04x cycles=%d\n", machine.CPU.PC, machine.CPU.Cycles)
		}

		if dt < 16 {
			time.Sleep(time.Duration(16-dt) * time.Millisecond)
		}
	}

	return nil
}

// debugOverlay renders the CPU register file plus a short disassembly
// trace starting at PC, for the --debug overlay.
func debugOverlay(m *arcade.Machine) string {
	var buf bytes.Buffer

	c := m.CPU
	fmt.Fprintf(&buf, "PC:%04X SP:%04X\n", c.PC, c.SP)
	fmt.Fprintf(&buf, "A:%02X F:%02X\n", c.A, c.F)
	fmt.Fprintf(&buf, "B:%02X C:%02X D:%02X E:%02X\n", c.B, c.C, c.D, c.E)
	fmt.Fprintf(&buf, "H:%02X L:%02X\n", c.H, c.L)
	fmt.Fprintf(&buf, "cycles:%d\n\n", c.Cycles)

	lines := presenter.Disassemble(m.ReadByte, c.PC, 16)
	addr := c.PC
	for i := 0; i < 6; i++ {
		line, ok := lines[addr]
		if !ok {
			break
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		addr++
	}

	return buf.String()
}

func handleEvent(m *arcade.Machine, ev presenter.Event) {
	down := ev.Kind == presenter.EventKeyDown

	switch ev.Key {
	case presenter.KeyCoin:
		m.SetInput(1, arcade.BitCoin, down)
	case presenter.KeyP1Start:
		m.SetInput(1, arcade.BitP1Start, down)
	case presenter.KeyP2Start:
		m.SetInput(1, arcade.BitP2Start, down)
	case presenter.KeyFire:
		m.SetInput(1, arcade.BitFire, down)
		m.SetInput(2, arcade.BitFire, down)
	case presenter.KeyLeft:
		m.SetInput(1, arcade.BitLeft, down)
		m.SetInput(2, arcade.BitLeft, down)
	case presenter.KeyRight:
		m.SetInput(1, arcade.BitRight, down)
		m.SetInput(2, arcade.BitRight, down)
	case presenter.KeyToggleColor:
		if down {
			m.SetColorOverlay(!m.ColorOverlay())
		}
	case presenter.KeyTogglePause:
		if down {
			m.Pause(!m.Paused())
		}
	}
}
