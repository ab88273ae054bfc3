// Package detector handles CHIP-8 variant detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles variant detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new variant detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the variant from options or file auto-detection.
// An explicitly specified variant takes precedence over the variant
// detected from the input filename extension.
func (d *Detector) Detect(opts options.Program) (machine.Variant, error) {
	if opts.System != "" {
		variant, err := machine.ParseVariant(opts.System)
		if err != nil {
			return variant, fmt.Errorf("parsing system option: %w", err)
		}
		return variant, nil
	}

	variant := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected variant",
		log.Stringer("variant", variant),
		log.String("file", opts.Input))
	return variant, nil
}

// detectFromFile determines the variant based on file extension.
func (d *Detector) detectFromFile(filename string) machine.Variant {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".sc8":
		return machine.SuperChip
	case ".mc8":
		return machine.MegaChip
	default:
		// .ch8, .rom and unknown extensions
		return machine.Chip8
	}
}
