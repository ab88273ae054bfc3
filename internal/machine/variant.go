package machine

import (
	"fmt"
	"strings"
)

// Variant selects the instruction set that an interpreter executes.
type Variant uint8

// Known CHIP-8 variants. Only Chip8 has an instruction set implementation.
const (
	Chip8 Variant = iota
	SuperChip
	MegaChip
)

var variantNames = map[Variant]string{
	Chip8:     "chip8",
	SuperChip: "superchip",
	MegaChip:  "megachip",
}

// String returns the lowercase name of the variant.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// ParseVariant returns the variant for the given name. Common aliases like
// "schip" are accepted.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "chip8", "chip-8":
		return Chip8, nil
	case "superchip", "super-chip", "schip":
		return SuperChip, nil
	case "megachip", "mega-chip", "mchip":
		return MegaChip, nil
	default:
		return Chip8, fmt.Errorf("unknown variant '%s'", name)
	}
}
