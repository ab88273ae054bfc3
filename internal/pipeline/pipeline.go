// Package pipeline orchestrates the program run workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/renderer"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates loading and running or listing a program.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
}

// New creates a new program pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
	}
}

// Execute runs the complete pipeline. Depending on the options the loaded
// program is either listed as disassembly or executed, optionally followed
// by a dump of the display to the writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, runOpts options.Run, writer io.Writer) (runner.Result, error) {
	variant, err := p.detector.Detect(opts)
	if err != nil {
		return runner.Result{}, fmt.Errorf("detecting variant: %w", err)
	}

	state := machine.New()
	state.Variant = variant
	size, err := loader.LoadFile(state, opts.Input)
	if err != nil {
		return runner.Result{}, fmt.Errorf("loading program: %w", err)
	}

	p.printInfo(opts, variant, size)

	if opts.Disasm {
		if err := disasm.Listing(writer, state.Memory[:], machine.ProgramStart, size); err != nil {
			return runner.Result{}, fmt.Errorf("listing program: %w", err)
		}
		return runner.Result{}, nil
	}

	return p.ExecuteWithState(ctx, state, opts, runOpts, writer)
}

// ExecuteWithState runs a program that is already loaded into the state.
// This is useful for testing and programmatic usage where the program is already in memory.
func (p *Pipeline) ExecuteWithState(ctx context.Context, state *machine.State, opts options.Program,
	runOpts options.Run, writer io.Writer) (runner.Result, error) {

	keys := keypad.New()
	ip, err := p.createInterpreter(state, keys, runOpts)
	if err != nil {
		return runner.Result{}, fmt.Errorf("creating interpreter: %w", err)
	}

	r := runner.New(p.logger, ip, keys, runner.Options{
		MaxCycles:           runOpts.MaxCycles,
		InstructionsPerTick: runOpts.InstructionsPerTick,
		Breakpoints:         runOpts.Breakpoints,
		AutoKey:             runOpts.AutoKey,
	})
	result, runErr := r.Run(ctx)

	if !opts.Quiet {
		p.logger.Info("Run finished",
			log.Stringer("reason", result.Reason),
			log.Int("cycles", int(result.Cycles)),
			log.Hex("pc", result.PC))
	}

	if opts.Dump {
		if err := renderer.Write(writer, ip.Display()); err != nil {
			return result, fmt.Errorf("dumping display: %w", err)
		}
	}

	if runErr != nil {
		return result, fmt.Errorf("running program: %w", runErr)
	}
	return result, nil
}

// createInterpreter creates the interpreter for the variant of the state.
func (p *Pipeline) createInterpreter(state *machine.State, keys *keypad.Keypad, runOpts options.Run) (*interpreter.Interpreter, error) {
	interpreterOptions := []interpreter.Option{
		interpreter.WithKeypad(keys),
		interpreter.WithLogger(p.logger),
		interpreter.WithTrace(runOpts.Trace),
	}
	if runOpts.Seeded {
		interpreterOptions = append(interpreterOptions, interpreter.WithRandom(interpreter.NewRandom(runOpts.Seed)))
	}

	ip, err := interpreter.New(state, interpreterOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating %s interpreter: %w", state.Variant, err)
	}
	return ip, nil
}

// printInfo prints information about the program being processed.
func (p *Pipeline) printInfo(opts options.Program, variant machine.Variant, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing CHIP-8 program",
		log.String("file", opts.Input),
		log.Stringer("variant", variant),
		log.Int("size", size),
	)
}
