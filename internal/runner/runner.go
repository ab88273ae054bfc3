// Package runner drives the interpreter in headless batch runs.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// DefaultInstructionsPerTick results in 600 instructions per second
// against the 60 Hz timers.
const DefaultInstructionsPerTick = 10

// NoAutoKey disables the automatic key delivery on key waits.
const NoAutoKey = -1

// StopReason describes why a run ended.
type StopReason int

const (
	CycleLimit StopReason = iota
	Halted
	Canceled
	Breakpoint
	AwaitingKey
)

func (r StopReason) String() string {
	switch r {
	case CycleLimit:
		return "cycle limit"
	case Halted:
		return "halted"
	case Canceled:
		return "canceled"
	case Breakpoint:
		return "breakpoint"
	case AwaitingKey:
		return "awaiting key"
	default:
		return fmt.Sprintf("stop reason(%d)", int(r))
	}
}

// Options controls a run.
type Options struct {
	MaxCycles           uint64          // instructions to execute, 0 runs until the program stops
	InstructionsPerTick int             // instructions per timer tick, 0 uses the default
	Breakpoints         set.Set[uint16] // addresses to stop at before execution
	AutoKey             int             // key pressed on every key wait, NoAutoKey to stop instead
}

// Result summarizes a run.
type Result struct {
	Cycles uint64 // instructions completed during the run
	Reason StopReason
	Status interpreter.Status
	PC     uint16
}

// Runner executes a program on an interpreter and ticks its timers.
type Runner struct {
	logger *log.Logger
	ip     *interpreter.Interpreter
	keys   *keypad.Keypad
	opts   Options

	sinceTick int
}

// New returns a runner for the interpreter. The keypad is used to deliver
// the automatic key presses and has to be the keypad of the interpreter.
func New(logger *log.Logger, ip *interpreter.Interpreter, keys *keypad.Keypad, opts Options) *Runner {
	if opts.InstructionsPerTick <= 0 {
		opts.InstructionsPerTick = DefaultInstructionsPerTick
	}
	if opts.Breakpoints == nil {
		opts.Breakpoints = set.New[uint16]()
	}
	return &Runner{
		logger: logger,
		ip:     ip,
		keys:   keys,
		opts:   opts,
	}
}

// Run executes instructions until the cycle limit is reached, the program
// halts or awaits a key without an automatic key configured, a breakpoint
// address is reached or the context is canceled. Running again continues
// from where the previous run stopped.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := r.ip.Cycles()
	result := Result{}

	finish := func(reason StopReason, err error) (Result, error) {
		result.Cycles = r.ip.Cycles() - start
		result.Reason = reason
		result.Status = r.ip.Status()
		result.PC = r.ip.State().PC
		r.logger.Debug("Run stopped",
			log.Stringer("reason", reason),
			log.Int("cycles", int(result.Cycles)),
			log.Hex("pc", result.PC))
		return result, err
	}

	for first := true; ; first = false {
		if err := ctx.Err(); err != nil {
			return finish(Canceled, err)
		}
		if r.opts.MaxCycles > 0 && r.ip.Cycles()-start >= r.opts.MaxCycles {
			return finish(CycleLimit, nil)
		}
		if !first && r.ip.Status() == interpreter.Running && r.opts.Breakpoints.Contains(r.ip.State().PC) {
			return finish(Breakpoint, nil)
		}

		before := r.ip.Cycles()
		status, err := r.ip.Step()
		if err != nil {
			r.report(err)
			return finish(Halted, err)
		}
		if r.ip.Cycles() > before {
			r.tick()
		}

		if status == interpreter.AwaitingKey {
			if r.opts.AutoKey == NoAutoKey {
				return finish(AwaitingKey, nil)
			}
			if err := r.pressKey(uint8(r.opts.AutoKey)); err != nil {
				return finish(AwaitingKey, err)
			}
		}
	}
}

// tick decrements the timers after every InstructionsPerTick completed
// instructions.
func (r *Runner) tick() {
	r.sinceTick++
	if r.sinceTick < r.opts.InstructionsPerTick {
		return
	}
	r.sinceTick = 0
	r.ip.TickTimers()
}

func (r *Runner) pressKey(key uint8) error {
	if err := r.keys.KeyDown(key); err != nil {
		return fmt.Errorf("pressing automatic key: %w", err)
	}
	if err := r.keys.KeyUp(key); err != nil {
		return fmt.Errorf("releasing automatic key: %w", err)
	}
	return nil
}

// report logs details of an unsupported instruction that halted the program.
func (r *Runner) report(err error) {
	var execErr *interpreter.ExecutionError
	if !errors.As(err, &execErr) || !errors.Is(err, machine.ErrUnknownOpcode) {
		return
	}
	r.logger.Warn("Unsupported instruction",
		log.Hex("address", execErr.PC),
		log.Hex("opcode", execErr.Opcode))
}
