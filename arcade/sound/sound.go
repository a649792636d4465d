// Package sound renders the cabinet's discrete sound-chip port writes
// (ports 3 and 5) as short synthesized tones. The arcade core never
// requires sound; a Null sink keeps everything silent.
package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Named discrete-sound bits the cabinet toggles on ports 3 and 5. The
// original hardware wires each bit to its own sound chip; nothing in the
// source decodes them by name, so this table is this package's own
// addition rather than a line-for-line port.
const (
	Port3UFO       byte = 1 << 0
	Port3Shot      byte = 1 << 1
	Port3PlayerDie byte = 1 << 2
	Port3InvaderDie byte = 1 << 3

	Port5Fleet1 byte = 1 << 0
	Port5Fleet2 byte = 1 << 1
	Port5Fleet3 byte = 1 << 2
	Port5Fleet4 byte = 1 << 3
	Port5ExtraLife byte = 1 << 4
)

const sampleRate = beep.SampleRate(44100)

// Null drops every sound write. The run command uses it when --silent is
// given or the audio device cannot be opened.
type Null struct{}

func (Null) Write(byte, byte) {}
func (Null) Close() error     { return nil }

// Beep plays a short square-wave tone through the system's default audio
// device for each newly-set bit on ports 3 and 5, using faiface/beep the
// way bradford-hamilton/chippy and danmrichards/chip8 do for this same
// class of 8-bit-era emulator.
type Beep struct {
	prev3, prev5 byte
	initialized  bool
}

// NewBeep opens the default audio device. Safe to call once per process;
// opening it twice returns an error from the underlying driver.
func NewBeep() (*Beep, error) {
	bufferSize := sampleRate.N(time.Second / 20)
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("sound: opening audio device: %w", err)
	}
	return &Beep{initialized: true}, nil
}

// Write decodes a port-3 or port-5 write into newly-raised bits and
// plays one tone per transition. Bits that were already set, or writes
// to any other port, are ignored.
func (b *Beep) Write(port byte, val byte) {
	switch port {
	case 3:
		rising := val &^ b.prev3
		b.prev3 = val
		b.playBits(rising, 880)
	case 5:
		rising := val &^ b.prev5
		b.prev5 = val
		b.playBits(rising, 440)
	}
}

func (b *Beep) playBits(rising byte, baseFreq float64) {
	for i := 0; i < 8; i++ {
		if rising&(1<<uint(i)) == 0 {
			continue
		}
		freq := baseFreq * (1 + float64(i)*0.25)
		speaker.Play(newTone(freq, 80*time.Millisecond))
	}
}

// Close releases the audio device.
func (b *Beep) Close() error {
	if !b.initialized {
		return nil
	}
	speaker.Close()
	return nil
}

// tone is a fixed-duration square wave streamer.
type tone struct {
	freq     float64
	samples  int
	streamed int
}

func newTone(freq float64, d time.Duration) *tone {
	return &tone{freq: freq, samples: sampleRate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.streamed >= t.samples {
		return 0, false
	}
	period := float64(sampleRate) / t.freq
	for i := range samples {
		if t.streamed >= t.samples {
			return i, i > 0
		}
		phase := float64(t.streamed) / period
		v := 0.2
		if int(phase)%2 == 1 {
			v = -0.2
		}
		samples[i][0] = v
		samples[i][1] = v
		t.streamed++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
