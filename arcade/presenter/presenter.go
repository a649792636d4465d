// Package presenter adapts the arcade core's abstract presenter contract
// (blit a pixel buffer, poll input events, report monotonic time) onto a
// concrete windowing toolkit.
package presenter

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// EventKind enumerates the presenter's event types.
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventKeyUp
)

// Key names the cabinet's logical inputs, independent of keyboard layout.
type Key int

const (
	KeyCoin Key = iota
	KeyP1Start
	KeyP2Start
	KeyFire
	KeyLeft
	KeyRight
	KeyToggleColor
	KeyTogglePause
	KeyUnknown
)

// Event is one input or lifecycle notification from the presenter.
type Event struct {
	Kind EventKind
	Key  Key
}

const (
	screenW    = 224
	screenH    = 256
	scale      = 2.5
	screenPosX = 400
	screenPosY = 200

	debugResW = 360
	debugResH = screenH * scale
)

// Window wraps a pixelgl.Window the way nes/display.go's Display wraps
// one: an image.RGBA backing buffer blitted through a pixel.Sprite each
// frame, plus an optional debug text overlay.
type Window struct {
	gameRgba  *image.RGBA
	debugRgba *image.RGBA

	window     *pixelgl.Window
	gameMatrix pixel.Matrix

	debugAtlas   *text.Atlas
	debugText    *text.Text
	debugEnabled bool

	keymap map[pixelgl.Button]Key
}

// NewWindow opens a window sized for the rotated 224x256 arcade display,
// optionally widened with a debug panel.
func NewWindow(debug bool) (*Window, error) {
	rect := image.Rect(0, 0, screenW, screenH)
	gameRgba := image.NewRGBA(rect)

	screenWidth := float64(screenW) * scale
	if debug {
		screenWidth += debugResW
	}

	cfg := pixelgl.WindowConfig{
		Title:    "invaders8080",
		Bounds:   pixel.R(0, 0, screenWidth, float64(screenH)*scale),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("presenter: creating window: %w", err)
	}

	pic := pixel.PictureDataFromImage(gameRgba)
	gameMatrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale))
	gameMatrix = gameMatrix.Scaled(pic.Bounds().Center().Scaled(scale), scale)

	var debugRgba *image.RGBA
	var atlas *text.Atlas
	var debugText *text.Text
	if debug {
		debugRgba = image.NewRGBA(image.Rect(0, 0, debugResW, int(debugResH)))
		atlas = text.NewAtlas(basicfont.Face7x13, text.ASCII)
		debugText = text.New(pixel.V(float64(screenW)*scale+8, float64(screenH)*scale-20), atlas)
	}

	return &Window{
		gameRgba:     gameRgba,
		debugRgba:    debugRgba,
		window:       win,
		gameMatrix:   gameMatrix,
		debugAtlas:   atlas,
		debugText:    debugText,
		debugEnabled: debug,
		keymap:       defaultKeymap(),
	}, nil
}

func defaultKeymap() map[pixelgl.Button]Key {
	return map[pixelgl.Button]Key{
		pixelgl.Key3:     KeyCoin,
		pixelgl.Key1:     KeyP1Start,
		pixelgl.Key2:     KeyP2Start,
		pixelgl.KeySpace: KeyFire,
		pixelgl.KeyA:     KeyLeft,
		pixelgl.KeyLeft:  KeyLeft,
		pixelgl.KeyD:     KeyRight,
		pixelgl.KeyRight: KeyRight,
		pixelgl.KeyE:     KeyToggleColor,
		pixelgl.KeyQ:     KeyTogglePause,
	}
}

// BlitARGB copies a 224x256 ARGB buffer into the backing image and
// presents it.
func (w *Window) BlitARGB(buf []uint32) {
	for y := 0; y < screenH; y++ {
		for x := 0; x < screenW; x++ {
			px := buf[y*screenW+x]
			w.gameRgba.SetRGBA(x, screenH-1-y, argbToRGBA(px))
		}
	}

	w.window.Clear(colornames.Black)

	pic := pixel.PictureDataFromImage(w.gameRgba)
	sprite := pixel.NewSprite(pic, pic.Bounds())
	sprite.Draw(w.window, w.gameMatrix)

	if w.debugEnabled {
		w.debugText.Draw(w.window, pixel.IM)
	}

	w.window.Update()
}

func argbToRGBA(v uint32) color.RGBA {
	return color.RGBA{
		A: byte(v >> 24),
		R: byte(v >> 16),
		G: byte(v >> 8),
		B: byte(v),
	}
}

// WriteDebugText replaces the debug overlay's text, when enabled.
func (w *Window) WriteDebugText(s string) {
	if !w.debugEnabled {
		return
	}
	w.debugText.Clear()
	w.debugText.WriteString(s)
}

// PollEvents drains quit and key transitions since the last call.
func (w *Window) PollEvents() []Event {
	var events []Event
	if w.window.Closed() {
		events = append(events, Event{Kind: EventQuit})
		return events
	}
	if w.window.JustPressed(pixelgl.KeyEscape) {
		events = append(events, Event{Kind: EventQuit})
	}

	for btn, key := range w.keymap {
		if key == KeyUnknown {
			continue
		}
		if w.window.JustPressed(btn) {
			events = append(events, Event{Kind: EventKeyDown, Key: key})
		}
		if w.window.JustReleased(btn) {
			events = append(events, Event{Kind: EventKeyUp, Key: key})
		}
	}

	return events
}

// NowMS returns a monotonic millisecond timestamp.
func (w *Window) NowMS() int64 {
	return time.Now().UnixMilli()
}

// Closed reports whether the underlying window has been closed.
func (w *Window) Closed() bool { return w.window.Closed() }
