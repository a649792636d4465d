package arcade

import "testing"

func TestMemoryMap(t *testing.T) {
	m := NewMachine(nil)
	if err := m.LoadROM([]byte{0xAA, 0xBB}); err != nil {
		t.Fatal(err)
	}

	if got := m.ReadByte(0x0000); got != 0xAA {
		t.Fatalf("ROM read: got %#02x, want 0xAA", got)
	}

	m.WriteByte(0x0000, 0xFF) // ROM writes are dropped
	if got := m.ReadByte(0x0000); got != 0xAA {
		t.Fatalf("ROM write should be ignored, got %#02x", got)
	}

	m.WriteByte(0x2100, 0x42) // work RAM
	if got := m.ReadByte(0x2100); got != 0x42 {
		t.Fatalf("RAM read/write: got %#02x, want 0x42", got)
	}

	m.WriteByte(0x2500, 0x11) // VRAM
	if got := m.ReadByte(0x2500); got != 0x11 {
		t.Fatalf("VRAM read/write: got %#02x, want 0x11", got)
	}

	if got := m.ReadByte(0x4500); got != 0x11 {
		t.Fatalf("mirror read of VRAM: got %#02x, want 0x11", got)
	}
	m.WriteByte(0x4500, 0x99)
	if got := m.ReadByte(0x2500); got != 0x11 {
		t.Fatalf("mirror write should be ignored, got %#02x", got)
	}

	if got := m.ReadByte(0x7000); got != 0 {
		t.Fatalf("unmapped read: got %#02x, want 0", got)
	}
	m.WriteByte(0x7000, 0xFF) // silently dropped, must not panic
}

func TestROMImageTooLarge(t *testing.T) {
	m := NewMachine(nil)
	if err := m.LoadROM(make([]byte, romImageMax+1)); err == nil {
		t.Fatal("expected error for oversized ROM image")
	}
}

func TestShiftRegister(t *testing.T) {
	m := NewMachine(nil)

	m.IOOut(4, 0x12) // shift1 = 0x12, shift0 = 0x00 (initial)
	m.IOOut(4, 0x34) // shift0 = 0x12, shift1 = 0x34

	m.IOOut(2, 0) // offset 0: top byte of the 16-bit register
	if got := m.IOIn(3); got != 0x34 {
		t.Fatalf("shift read at offset 0: got %#02x, want 0x34", got)
	}

	m.IOOut(2, 4)
	if got := m.IOIn(3); got != 0x41 {
		t.Fatalf("shift read at offset 4: got %#02x, want 0x41", got)
	}
}

func TestInputPorts(t *testing.T) {
	m := NewMachine(nil)

	if got := m.IOIn(1); got != bitAlways1 {
		t.Fatalf("inp1 reset state: got %#02x, want %#02x", got, bitAlways1)
	}

	m.SetInput(1, BitCoin, true)
	if got := m.IOIn(1); got&BitCoin == 0 {
		t.Fatalf("inp1 coin bit not set: %#02x", got)
	}
	m.SetInput(1, BitCoin, false)
	if got := m.IOIn(1); got&BitCoin != 0 {
		t.Fatalf("inp1 coin bit not cleared: %#02x", got)
	}

	m.SetInput(2, BitFire, true)
	if got := m.IOIn(2); got&BitFire == 0 {
		t.Fatalf("inp2 fire bit not set: %#02x", got)
	}
}

func TestVramRotationSinglePixel(t *testing.T) {
	m := NewMachine(nil)
	m.WriteByte(0x2400, 0x01)
	m.renderVideo()

	idx := 255*framebufferW + 0
	if m.videoBuffer[idx] == colorBlack {
		t.Fatal("expected lit pixel at display (0, 255)")
	}

	for i, c := range m.videoBuffer {
		if i == idx {
			continue
		}
		if c != colorBlack {
			t.Fatalf("unexpected lit pixel at index %d: %#08x", i, c)
		}
	}
}

func TestColorOverlayDisabledIsPlainWhite(t *testing.T) {
	m := NewMachine(nil)
	m.SetColorOverlay(false)
	if c := m.pixelColor(10, 250, true); c != colorWhite {
		t.Fatalf("expected white with overlay disabled, got %#08x", c)
	}
}

func TestPauseFreezesTick(t *testing.T) {
	m := NewMachine(nil)
	if err := m.LoadROM([]byte{0x00}); err != nil {
		t.Fatal(err)
	}
	m.Pause(true)
	before := m.CPU.Cycles
	m.Tick(16)
	if m.CPU.Cycles != before {
		t.Fatal("Tick should not advance CPU while paused")
	}
}
