// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrogolib/set"
)

// Parameters contains file path options.
type Parameters struct {
	Input string `arg:"positional" usage:"program file to run"`
}

// Flags contains behavior options.
type Flags struct {
	System string `flag:"s" usage:"variant: chip8, superchip, megachip (default: auto-detect)"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}

// RunFlags contains execution and output options.
type RunFlags struct {
	Cycles              uint64 `flag:"cycles" usage:"number of instructions to execute, 0 runs until the program stops"`
	InstructionsPerTick int    `flag:"ipt" usage:"instructions per 60 Hz timer tick" default:"10"`
	Seed                int64  `flag:"seed" usage:"random number seed, negative seeds from the time" default:"-1"`
	Key                 int    `flag:"key" usage:"key 0-15 pressed on every key wait, negative stops the run" default:"-1"`
	Breakpoints         string `flag:"break" usage:"comma separated hex addresses to stop at (e.g. 200,2a4)"`
	Trace               bool   `flag:"trace" usage:"log every executed instruction, requires -debug"`
	Disasm              bool   `flag:"disasm" usage:"print a disassembly listing instead of running"`
	Dump                bool   `flag:"dump" usage:"print the display after the run"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	RunFlags
}

// Run defines options to control a program run.
type Run struct {
	MaxCycles           uint64
	InstructionsPerTick int
	Seed                uint64
	Seeded              bool // use Seed instead of a time based seed
	AutoKey             int  // key delivered on key waits, negative to stop instead
	Breakpoints         set.Set[uint16]
	Trace               bool
}

// NewRun returns a new run options instance with default options.
func NewRun() Run {
	return Run{
		InstructionsPerTick: 10,
		AutoKey:             -1,
		Breakpoints:         set.New[uint16](),
	}
}
