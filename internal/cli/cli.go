// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/set"
)

// ParseFlags parses command line flags and returns program and run options
func ParseFlags() (options.Program, options.Run, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, options.Run{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Run{}, err
	}
	opts.Input = args[0]

	runOptions, err := createRunOptions(opts)
	if err != nil {
		return opts, options.Run{}, err
	}
	return opts, runOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// createRunOptions validates the program options and converts them to run options
func createRunOptions(opts options.Program) (options.Run, error) {
	runOptions := options.NewRun()

	if _, err := machine.ParseVariant(opts.System); err != nil {
		return runOptions, err
	}

	if opts.InstructionsPerTick <= 0 {
		return runOptions, fmt.Errorf("instructions per tick must be positive, got %d", opts.InstructionsPerTick)
	}
	if opts.Key >= keypad.KeyCount {
		return runOptions, fmt.Errorf("invalid key %d, valid keys are 0-%d", opts.Key, keypad.KeyCount-1)
	}

	breakpoints, err := parseBreakpoints(opts.Breakpoints)
	if err != nil {
		return runOptions, err
	}

	runOptions.MaxCycles = opts.Cycles
	runOptions.InstructionsPerTick = opts.InstructionsPerTick
	runOptions.AutoKey = max(opts.Key, -1)
	runOptions.Breakpoints = breakpoints
	runOptions.Trace = opts.Trace
	if opts.Seed >= 0 {
		runOptions.Seed = uint64(opts.Seed)
		runOptions.Seeded = true
	}
	return runOptions, nil
}

// parseBreakpoints parses a comma separated list of hex addresses
func parseBreakpoints(list string) (set.Set[uint16], error) {
	breakpoints := set.New[uint16]()
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "$")
		if field == "" {
			continue
		}

		address, err := strconv.ParseUint(field, 16, 16)
		if err != nil || address >= machine.MemorySize {
			return nil, fmt.Errorf("invalid breakpoint address '%s'", field)
		}
		breakpoints.Add(uint16(address))
	}
	return breakpoints, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.System, "s", "", "variant to run (chip8, superchip, megachip) - if not auto-detected from file extension")
	flags.Uint64Var(&opts.Cycles, "cycles", 0, "number of instructions to execute, 0 runs until the program halts or waits for a key")
	flags.IntVar(&opts.InstructionsPerTick, "ipt", 10, "instructions executed per 60 Hz timer tick")
	flags.Int64Var(&opts.Seed, "seed", -1, "seed of the random number generator, a negative value seeds from the current time")
	flags.IntVar(&opts.Key, "key", -1, "key 0-15 to press whenever the program waits for a key, a negative value stops the run instead")
	flags.StringVar(&opts.Breakpoints, "break", "", "comma separated hex addresses to stop the run at, for example 200,2a4")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the program instead of running it")
	flags.BoolVar(&opts.Dump, "dump", false, "print the display contents after the run")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
