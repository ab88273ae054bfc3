package machine

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// spriteWidth is the fixed width of a CHIP-8 sprite row in pixels.
const spriteWidth = 8

// Frame is a snapshot of the display, indexed as frame[row][column].
type Frame [Height][Width]bool

// Display is the monochrome CHIP-8 frame buffer.
type Display struct {
	pixels Frame
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	d.pixels = Frame{}
}

// Pixel returns whether the pixel at column x and row y is on.
// Coordinates outside of the display are reported as off.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return d.pixels[y][x]
}

// DrawSprite XORs the sprite rows onto the display with the top left corner
// at column x and row y. Each row byte is drawn most significant bit first.
// Pixels that land outside of the display are dropped, the sprite does not
// wrap around. It returns whether any pixel was turned off by the draw.
func (d *Display) DrawSprite(x, y int, rows []byte) bool {
	collision := false

	for rowIndex, bits := range rows {
		row := y + rowIndex
		if row < 0 || row >= Height {
			continue
		}

		for bitIndex := range spriteWidth {
			if bits&(0x80>>bitIndex) == 0 {
				continue
			}

			col := x + bitIndex
			if col < 0 || col >= Width {
				continue
			}

			if d.pixels[row][col] {
				collision = true
			}
			d.pixels[row][col] = !d.pixels[row][col]
		}
	}

	return collision
}

// Snapshot returns a copy of the current display content.
func (d *Display) Snapshot() Frame {
	return d.pixels
}

// Lit returns the number of pixels that are on.
func (d *Display) Lit() int {
	count := 0
	for _, row := range d.pixels {
		for _, on := range row {
			if on {
				count++
			}
		}
	}
	return count
}
