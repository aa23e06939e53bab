package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplayDrawWraps(t *testing.T) {
	var d Display
	collision := d.Draw(62, 31, []uint8{0xC0 | 0x30, 0x80})

	assert.False(t, collision)
	assert.True(t, d.Pixel(62, 31))
	assert.True(t, d.Pixel(63, 31))
	assert.True(t, d.Pixel(0, 31))
	assert.True(t, d.Pixel(1, 31))
	assert.True(t, d.Pixel(62, 0))
	assert.False(t, d.Pixel(2, 31))
}

func TestDisplayCollisionOnlyOnTurnOff(t *testing.T) {
	var d Display
	assert.False(t, d.Draw(0, 0, []uint8{0x80}))

	// pixel 1 goes off to on, pixel 0 stays untouched
	assert.False(t, d.Draw(0, 0, []uint8{0x40}))

	assert.True(t, d.Draw(0, 0, []uint8{0xC0}))
	assert.False(t, d.Pixel(0, 0))
	assert.False(t, d.Pixel(1, 0))
}

func TestDisplayEmptySprite(t *testing.T) {
	var d Display
	assert.False(t, d.Draw(10, 10, nil))
	assert.Equal(t, Display{}, d)
}

func TestDisplayClear(t *testing.T) {
	var d Display
	d.Draw(5, 5, []uint8{0xFF, 0xFF})
	d.Clear()
	assert.Equal(t, Display{}, d)
}

func TestDisplayCellsAreFullIntensity(t *testing.T) {
	var d Display
	d.Draw(0, 0, []uint8{0x80})
	assert.Equal(t, PixelOn, d[0])
	assert.Equal(t, PixelOff, d[1])
}
