// Package interpreter implements the CHIP-8 fetch, decode and execute engine.
package interpreter

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/decoder"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// Keypad provides the key state to the key skip and key wait instructions.
type Keypad interface {
	// IsHeld returns whether the key is currently held down.
	IsHeld(key uint8) bool
	// TakePress removes and returns the oldest queued key press.
	TakePress() (uint8, bool)
	// ClearPresses drops all queued key presses.
	ClearPresses()
}

// ExecutionError is returned for fatal conditions that halt the interpreter.
// It wraps one of the machine error values.
type ExecutionError struct {
	PC     uint16 // address of the faulting instruction
	Opcode uint16 // instruction word, 0 if it could not be fetched
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing instruction %04x at address %04x: %v", e.Opcode, e.PC, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Interpreter executes CHIP-8 instructions against a machine state.
// It is not safe for concurrent use.
type Interpreter struct {
	state  *machine.State
	set    *InstructionSet
	keypad Keypad
	random RandomSource
	logger *log.Logger
	trace  bool

	status      Status
	err         error
	keyRegister uint8
	cycles      uint64
}

// Option configures an interpreter.
type Option func(*Interpreter)

// WithKeypad sets the keypad used by the input instructions.
func WithKeypad(k Keypad) Option {
	return func(ip *Interpreter) {
		ip.keypad = k
	}
}

// WithRandom sets the random source of the RND instruction.
func WithRandom(r RandomSource) Option {
	return func(ip *Interpreter) {
		ip.random = r
	}
}

// WithLogger sets the logger used for instruction tracing.
func WithLogger(logger *log.Logger) Option {
	return func(ip *Interpreter) {
		ip.logger = logger
	}
}

// WithTrace enables a debug log entry for every executed instruction.
func WithTrace(enabled bool) Option {
	return func(ip *Interpreter) {
		ip.trace = enabled
	}
}

// New returns an interpreter for the given state, using the instruction set
// of the state variant.
func New(state *machine.State, options ...Option) (*Interpreter, error) {
	set, err := lookupInstructionSet(state.Variant)
	if err != nil {
		return nil, err
	}

	ip := &Interpreter{
		state: state,
		set:   set,
	}
	for _, option := range options {
		option(ip)
	}

	if ip.keypad == nil {
		ip.keypad = keypad.New()
	}
	if ip.random == nil {
		ip.random = newTimeSeededRandom()
	}
	return ip, nil
}

// Step executes a single instruction. While the interpreter awaits a key
// press, Step completes the suspended key wait instruction if a press is
// available and returns AwaitingKey otherwise. After a fatal error the
// interpreter is halted and every call returns the same error.
func (ip *Interpreter) Step() (Status, error) {
	switch ip.status {
	case Halted:
		return Halted, ip.err
	case AwaitingKey:
		return ip.resumeKeyWait(), nil
	}

	pc := ip.state.PC
	ins, err := decoder.Fetch(ip.state.Memory[:], pc)
	if err != nil {
		return ip.halt(pc, 0, err)
	}

	handler, ok := ip.handler(ins)
	if !ok {
		return ip.halt(pc, ins.Opcode, machine.ErrUnknownOpcode)
	}

	if ip.trace && ip.logger != nil {
		ip.logger.Debug("Executing",
			log.Hex("pc", pc),
			log.Hex("opcode", ins.Opcode),
			log.String("code", disasm.Format(ins)))
	}

	effect, err := handler(ip, ins)
	if err != nil {
		return ip.halt(pc, ins.Opcode, err)
	}

	switch effect {
	case Advance:
		ip.state.PC = pc + decoder.OpcodeSize
	case Skip:
		ip.state.PC = pc + 2*decoder.OpcodeSize
	case Jump:
	case Wait:
		ip.status = AwaitingKey
		return ip.status, nil
	}

	ip.cycles++
	return ip.status, nil
}

// handler returns the handler of the active instruction set for the
// instruction.
func (ip *Interpreter) handler(ins decoder.Instruction) (Handler, bool) {
	op, ok := ip.set.Decode(ins)
	if !ok {
		return nil, false
	}
	handler, ok := ip.set.Handlers[op]
	return handler, ok && handler != nil
}

// resumeKeyWait completes the suspended key wait instruction if a key press
// is queued.
func (ip *Interpreter) resumeKeyWait() Status {
	key, ok := ip.keypad.TakePress()
	if !ok {
		return AwaitingKey
	}

	ip.state.V[ip.keyRegister] = key & 0x0F
	ip.state.PC += decoder.OpcodeSize
	ip.status = Running
	ip.cycles++
	return Running
}

func (ip *Interpreter) halt(pc, opcode uint16, err error) (Status, error) {
	ip.status = Halted
	ip.err = &ExecutionError{
		PC:     pc,
		Opcode: opcode,
		Err:    err,
	}
	return Halted, ip.err
}

// TickTimers decrements the delay and sound timers. It is independent of
// instruction execution and meant to be called at 60 Hz.
func (ip *Interpreter) TickTimers() {
	ip.state.TickTimers()
}

// Status returns the current execution status.
func (ip *Interpreter) Status() Status {
	return ip.status
}

// Err returns the error that halted the interpreter.
func (ip *Interpreter) Err() error {
	return ip.err
}

// State returns the machine state that the interpreter executes on.
func (ip *Interpreter) State() *machine.State {
	return ip.state
}

// Display returns a snapshot of the display.
func (ip *Interpreter) Display() machine.Frame {
	return ip.state.Display.Snapshot()
}

// Cycles returns the number of completed instructions.
func (ip *Interpreter) Cycles() uint64 {
	return ip.cycles
}
