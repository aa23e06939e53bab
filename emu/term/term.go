// Package term runs the machine in a terminal: goterm draws the display and
// keystrokes from a raw mode stdin drive the keypad.
package term

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	tm "github.com/buger/goterm"
)

// terminals only report key presses, a key counts as held this long after its last keystroke
const keyRepeatDuration = time.Second / 5

// FrameSource hands out display snapshots.
type FrameSource interface {
	Frame() cpu.Display
}

var DefaultKeyMap = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Keyboard turns a stream of keystrokes into held keys.
type Keyboard struct {
	KeyMap map[byte]uint8

	mu       sync.RWMutex
	lastSeen [16]time.Time
	now      func() time.Time
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		KeyMap: DefaultKeyMap,
		now:    time.Now,
	}
}

func (k *Keyboard) Pressed(key uint8) bool {
	if int(key) >= len(k.lastSeen) {
		return false
	}
	k.mu.RLock()
	defer k.mu.RUnlock()

	seen := k.lastSeen[key]
	return !seen.IsZero() && k.now().Sub(seen) < keyRepeatDuration
}

func (k *Keyboard) press(b byte) {
	key, ok := k.KeyMap[b]
	if !ok {
		return
	}
	k.mu.Lock()
	k.lastSeen[key] = k.now()
	k.mu.Unlock()
}

// Listen consumes keystrokes from r until ctx is done or r fails.
// r is expected to return periodically without data, as a raw terminal with VTIME set does.
func (k *Keyboard) Listen(ctx context.Context, r io.Reader) error {
	buf := make([]byte, 16)
	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			k.press(b)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Render turns a frame into text, two characters per pixel to keep the aspect ratio.
func Render(frame cpu.Display) string {
	var sb strings.Builder
	sb.Grow((cpu.Width*2 + 1) * cpu.Height * 3)
	for y := 0; y < cpu.Height; y++ {
		for x := 0; x < cpu.Width; x++ {
			if frame.Pixel(x, y) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Loop redraws the terminal at refresh Hz until ctx is done.
func Loop(ctx context.Context, src FrameSource, refresh int) {
	tick := time.NewTicker(time.Second / time.Duration(refresh))
	defer tick.Stop()

	var last cpu.Display
	first := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}

		frame := src.Frame()
		if !first && frame == last {
			continue
		}
		first = false
		last = frame

		tm.Clear()
		tm.MoveCursor(1, 1)
		tm.Print(Render(frame))
		tm.Flush()
	}
}
