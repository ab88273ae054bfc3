// Package renderer converts display frames to text.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
)

const (
	// On is the default rune of a lit pixel.
	On = '#'
	// Off is the default rune of an unlit pixel.
	Off = '.'
)

// Text returns the frame as text, one line per display row from top to
// bottom, using the on and off runes for lit and unlit pixels.
func Text(frame machine.Frame, on, off rune) string {
	var sb strings.Builder
	sb.Grow(machine.Height * (machine.Width + 1))

	for y := range machine.Height {
		for x := range machine.Width {
			if frame[y][x] {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write renders the frame using the default runes to the writer.
func Write(w io.Writer, frame machine.Frame) error {
	if _, err := io.WriteString(w, Text(frame, On, Off)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
