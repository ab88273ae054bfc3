// Package loader handles program file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/machine"
)

// Load resets the machine memory, writes the font table and copies the
// program image to the program start address. Images that do not fit into
// the memory above the program start address are rejected.
func Load(state *machine.State, program []byte) error {
	if len(program) > machine.MaxProgramSize {
		return fmt.Errorf("program of %d bytes exceeds %d bytes: %w",
			len(program), machine.MaxProgramSize, machine.ErrProgramTooLarge)
	}

	clear(state.Memory[:])
	copy(state.Memory[machine.FontStart:], machine.Font[:])
	copy(state.Memory[machine.ProgramStart:], program)
	return nil
}

// LoadFile reads a raw program image without any header from disk and loads
// it into the machine memory. It returns the size of the program image.
func LoadFile(state *machine.State, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("opening file %s: %w", path, err)
	}
	if err := Load(state, data); err != nil {
		return 0, fmt.Errorf("loading file %s: %w", path, err)
	}
	return len(data), nil
}
