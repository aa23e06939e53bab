package screen

import (
	"context"
	"sync"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// FrameSource hands out display snapshots.
type FrameSource interface {
	Frame() cpu.Display
}

// DefaultKeyMap lays the hex keypad over the left hand side of a QWERTY keyboard.
var DefaultKeyMap = map[uint8]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

type Window struct {
	*pixelgl.Window
	KeyMap map[uint8]pixelgl.Button

	scale float64
	imd   *imdraw.IMDraw
	keys  *keyState
}

// Run hands the main thread to the window system; fn runs with a usable GL context.
func Run(fn func()) {
	pixelgl.Run(fn)
}

func NewWindow(title string, scale float64) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, cpu.Width*scale, cpu.Height*scale),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, err
	}

	return &Window{
		Window: win,
		KeyMap: DefaultKeyMap,
		scale:  scale,
		imd:    imdraw.New(nil),
		keys:   &keyState{},
	}, nil
}

// Keypad is the key state last sampled by Loop, safe to read from another goroutine.
func (w *Window) Keypad() cpu.Keypad {
	return w.keys
}

// Loop presents frames at refresh Hz until the window closes or ctx is done.
func (w *Window) Loop(ctx context.Context, src FrameSource, refresh int) {
	tick := time.NewTicker(time.Second / time.Duration(refresh))
	defer tick.Stop()

	for !w.Closed() {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}

		w.pollKeys()
		w.Present(src.Frame())
	}
}

func (w *Window) pollKeys() {
	var keys cpu.Keys
	for key, button := range w.KeyMap {
		keys[key&0xF] = w.Pressed(button)
	}
	w.keys.set(keys)
}

// Present draws a frame, y grows downwards on the machine and upwards in pixel.
func (w *Window) Present(frame cpu.Display) {
	w.imd.Clear()
	w.imd.Color = colornames.White

	for y := 0; y < cpu.Height; y++ {
		top := float64(cpu.Height-y) * w.scale
		for x := 0; x < cpu.Width; x++ {
			if !frame.Pixel(x, y) {
				continue
			}
			left := float64(x) * w.scale
			w.imd.Push(pixel.V(left, top-w.scale), pixel.V(left+w.scale, top))
			w.imd.Rectangle(0)
		}
	}

	w.Clear(colornames.Black)
	w.imd.Draw(w.Window)
	w.Update()
}

type keyState struct {
	mu   sync.RWMutex
	keys cpu.Keys
}

func (k *keyState) set(keys cpu.Keys) {
	k.mu.Lock()
	k.keys = keys
	k.mu.Unlock()
}

func (k *keyState) Pressed(key uint8) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys.Pressed(key)
}
