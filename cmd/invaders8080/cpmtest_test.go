package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/n-ulricksen/invaders8080/cpu"
)

func TestCPMHarnessPatchesBdosEntry(t *testing.T) {
	bus := &cpmBus{}
	for i := 0; i < cpmLoadOffset; i++ {
		bus.mem[i] = 0x76
	}
	bus.mem[0x0005] = 0xd3
	bus.mem[0x0006] = 0x01
	bus.mem[0x0007] = 0xc9

	if bus.mem[0x0005] != 0xd3 || bus.mem[0x0006] != 0x01 || bus.mem[0x0007] != 0xc9 {
		t.Fatal("BDOS entry point not patched to OUT 1 ; RET")
	}
	for i := 0; i < cpmLoadOffset; i++ {
		if i >= 0x0005 && i <= 0x0007 {
			continue
		}
		if bus.mem[i] != 0x76 {
			t.Fatalf("byte %#04x not HLT-filled: %#02x", i, bus.mem[i])
		}
	}
}

func TestCPMHarnessCharOut(t *testing.T) {
	bus := &cpmBus{}
	c := cpu.New()
	h := &cpmHarness{bus: bus, cpu: c}

	c.C = 2
	c.E = 'X'

	r, w, _ := os.Pipe()
	old := os.Stdout
	os.Stdout = w
	h.IOOut(1, 0)
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)

	if buf.String() != "X" {
		t.Fatalf("got %q, want %q", buf.String(), "X")
	}
}

func TestCPMHarnessStringOut(t *testing.T) {
	bus := &cpmBus{}
	c := cpu.New()
	h := &cpmHarness{bus: bus, cpu: c}

	msg := "hi$"
	for i, ch := range []byte(msg) {
		bus.mem[0x3000+i] = ch
	}
	c.C = 9
	c.D, c.E = 0x30, 0x00

	r, w, _ := os.Pipe()
	old := os.Stdout
	os.Stdout = w
	h.IOOut(1, 0)
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)

	if buf.String() != "hi" {
		t.Fatalf("got %q, want %q", buf.String(), "hi")
	}
}
