package cpu

const (
	Width  = 64
	Height = 32

	PixelOff uint8 = 0x00
	PixelOn  uint8 = 0xFF
)

// Display is the monochrome framebuffer, row-major, one cell per pixel.
type Display [Width * Height]uint8

func (d *Display) Clear() {
	*d = Display{}
}

// Draw XORs an 8 pixel wide sprite onto the display at (x0, y0), wrapping at the edges.
// It reports a collision when any pixel is switched from on to off.
func (d *Display) Draw(x0, y0 uint8, sprite []uint8) bool {
	collision := false
	for i, row := range sprite {
		y := (int(y0) + i) % Height
		for bit := 0; bit < 8; bit++ {
			if row&(0x80>>bit) == 0 {
				continue
			}
			x := (int(x0) + bit) % Width
			cell := &d[y*Width+x]
			if *cell == PixelOn {
				collision = true
			}
			*cell ^= PixelOn
		}
	}
	return collision
}

func (d *Display) Pixel(x, y int) bool {
	return d[(y%Height)*Width+x%Width] == PixelOn
}
