// Package arcade implements the Space Invaders cabinet hardware around an
// Intel 8080: the 64 KiB memory map, the shift register, input ports, the
// video RAM to framebuffer conversion, and the wall-clock frame scheduler.
package arcade

import (
	"fmt"

	"github.com/n-ulricksen/invaders8080/cpu"
)

const (
	memSize = 0x10000

	romMin = 0x0000
	romMax = 0x1FFF

	ramMin = 0x2000
	ramMax = 0x23FF

	vramMin = 0x2400
	vramMax = 0x3FFF

	mirrorMin = 0x4000
	mirrorMax = 0x5FFF
	mirrorOff = 0x2000

	// romImageMax is the largest ROM image the combined 16 KiB loader
	// accepts; the arcade board has no bank switching.
	romImageMax = 0x4000
)

// Input port bit layout, per the cabinet wiring. BitFire/BitLeft/BitRight
// apply to both inp1 and inp2 (player 1 and player 2 respectively);
// BitCoin/BitP1Start/BitP2Start are only meaningful on inp1.
const (
	BitCoin    byte = 1 << 0
	BitP2Start byte = 1 << 1
	BitP1Start byte = 1 << 2
	bitAlways1 byte = 1 << 3
	BitFire    byte = 1 << 4
	BitLeft    byte = 1 << 5
	BitRight   byte = 1 << 6
)

// RST opcodes the scheduler delivers at vertical-blank boundaries.
const (
	rst1MidScreen byte = 0xCF
	rst2EndFrame  byte = 0xD7
)

const (
	clockHz         = 2_000_000
	cyclesPerInt    = 16_666
	framebufferW    = 224
	framebufferH    = 256
	vramBytes       = 7168
	vramLogicalW    = 256
)

// ARGB color constants for the video buffer, byte order as required by
// the presenter contract.
const (
	colorBlack = 0xFF000000
	colorWhite = 0xFFFFFFFF
	colorGreen = 0xFF00FF33
	colorRed   = 0xFFFF0000
)

// Machine is the Invaders cabinet: an i8080 plus its memory-mapped bus,
// input ports, shift register, and video RAM conversion. It implements
// cpu.Bus.
type Machine struct {
	CPU *cpu.CPU

	mem [memSize]byte

	inp0, inp1, inp2 byte

	shift0, shift1 byte
	shiftOffset    byte

	nextInt    byte
	colorFlag  bool
	pauseFlag  bool

	videoBuffer [framebufferW * framebufferH]uint32

	sink SoundSink

	cyclesSinceInt uint64
	closed         bool
}

// SoundSink receives discrete-sound port writes. A Machine with a nil sink
// drops them silently.
type SoundSink interface {
	Write(port byte, val byte)
	Close() error
}

// NewMachine returns a Machine with a fresh CPU, ready for LoadROM.
func NewMachine(sink SoundSink) *Machine {
	m := &Machine{
		CPU:       cpu.New(),
		nextInt:   rst1MidScreen,
		colorFlag: true,
		inp1:      bitAlways1,
		sink:      sink,
	}
	return m
}

// LoadROM copies a flat program image into the arcade ROM region. The
// image must be no larger than the 16 KiB ROM window; Space Invaders has
// no bank switching.
func (m *Machine) LoadROM(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("arcade: empty ROM image")
	}
	if len(data) > romImageMax {
		return fmt.Errorf("arcade: ROM image is %d bytes, exceeds %d byte window", len(data), romImageMax)
	}
	copy(m.mem[romMin:], data)
	return nil
}

// ReadByte implements cpu.Bus.
func (m *Machine) ReadByte(addr uint16) byte {
	a := int(addr)
	switch {
	case a <= ramMax:
		return m.mem[a]
	case a >= vramMin && a <= vramMax:
		return m.mem[a]
	case a >= mirrorMin && a <= mirrorMax:
		return m.mem[a-mirrorOff]
	default:
		return 0
	}
}

// WriteByte implements cpu.Bus. ROM and anything above the RAM/VRAM
// window silently drop writes, matching the real board.
func (m *Machine) WriteByte(addr uint16, val byte) {
	a := int(addr)
	switch {
	case a <= romMax:
		return
	case a >= ramMin && a <= vramMax:
		m.mem[a] = val
	default:
		return
	}
}

// IOIn implements cpu.Bus.
func (m *Machine) IOIn(port byte) byte {
	switch port {
	case 0:
		return m.inp0
	case 1:
		return m.inp1
	case 2:
		return m.inp2
	case 3:
		v := uint16(m.shift1)<<8 | uint16(m.shift0)
		return byte(v >> (8 - m.shiftOffset))
	default:
		return 0
	}
}

// IOOut implements cpu.Bus.
func (m *Machine) IOOut(port byte, val byte) {
	switch port {
	case 2:
		m.shiftOffset = val & 0x07
	case 3:
		if m.sink != nil {
			m.sink.Write(port, val)
		}
	case 4:
		m.shift0 = m.shift1
		m.shift1 = val
	case 5:
		if m.sink != nil {
			m.sink.Write(port, val)
		}
	case 6:
		// Watchdog reset, unused.
	}
}

// SetColorOverlay toggles the CRT color-overlay emulation. Disabled, lit
// pixels render plain white everywhere.
func (m *Machine) SetColorOverlay(on bool) { m.colorFlag = on }

// ColorOverlay reports whether the CRT color-overlay emulation is on.
func (m *Machine) ColorOverlay() bool { return m.colorFlag }

// Pause toggles whether Tick advances the CPU.
func (m *Machine) Pause(on bool) { m.pauseFlag = on }

// Paused reports the current pause state.
func (m *Machine) Paused() bool { return m.pauseFlag }

// SetInput sets or clears one of the named input bits for a player's
// port (1 or 2).
func (m *Machine) SetInput(playerPort int, bit byte, down bool) {
	var p *byte
	switch playerPort {
	case 1:
		p = &m.inp1
	case 2:
		p = &m.inp2
	default:
		return
	}
	if down {
		*p |= bit
	} else {
		*p &^= bit
	}
}

// VideoBuffer returns the current rotated 224x256 ARGB framebuffer.
func (m *Machine) VideoBuffer() []uint32 { return m.videoBuffer[:] }

// Tick advances the CPU by the cycle budget corresponding to dtMs
// milliseconds of wall-clock time, delivering the two vertical-blank
// interrupts per frame at the appropriate cycle thresholds and rendering
// the framebuffer at the end-of-frame interrupt.
func (m *Machine) Tick(dtMs int64) {
	if m.pauseFlag {
		return
	}

	budget := uint64(dtMs) * clockHz / 1000
	var done uint64

	for done < budget {
		before := m.CPU.Cycles
		m.CPU.Step(m)
		done += m.CPU.Cycles - before
		m.cyclesSinceInt += m.CPU.Cycles - before

		if m.cyclesSinceInt >= cyclesPerInt {
			m.cyclesSinceInt -= cyclesPerInt
			m.CPU.Interrupt(m.nextInt)

			if m.nextInt == rst2EndFrame {
				m.nextInt = rst1MidScreen
				m.renderVideo()
			} else {
				m.nextInt = rst2EndFrame
			}
		}
	}
}

// renderVideo converts the 7168-byte VRAM window into the rotated 224x256
// ARGB framebuffer, applying the color-overlay bands. Each VRAM byte's 8
// bits occupy 8 consecutive x positions of one row in the unrotated
// 256x224 logical screen (LSB first); rotating 90° counter-clockwise
// turns that horizontal run into a vertical one in the 224x256 display.
func (m *Machine) renderVideo() {
	for i := 0; i < vramBytes; i++ {
		b := m.mem[vramMin+i]

		for bit := 0; bit < 8; bit++ {
			bitIdx := i*8 + bit
			xLogical := bitIdx & (vramLogicalW - 1)
			yLogical := bitIdx / vramLogicalW

			xd := yLogical
			yd := (vramLogicalW - 1) - xLogical

			lit := b&(1<<uint(bit)) != 0
			m.videoBuffer[yd*framebufferW+xd] = m.pixelColor(xd, yd, lit)
		}
	}
}

// pixelColor applies the cabinet's color-overlay bands to a display
// coordinate. Unlit pixels are always black.
func (m *Machine) pixelColor(xd, yd int, lit bool) uint32 {
	if !lit {
		return colorBlack
	}
	if !m.colorFlag {
		return colorWhite
	}
	switch {
	case yd >= 240:
		if xd < 16 {
			return colorWhite
		}
		if xd < 102 {
			return colorGreen
		}
		return colorWhite
	case yd >= 184:
		return colorGreen
	case yd >= 64:
		return colorWhite
	case yd >= 32:
		return colorRed
	default:
		return colorWhite
	}
}

// Close releases the sound sink, if any. Idempotent.
func (m *Machine) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	if m.sink != nil {
		return m.sink.Close()
	}
	return nil
}
