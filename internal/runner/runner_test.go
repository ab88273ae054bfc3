package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

func newTestRunner(t *testing.T, opts Options, program ...uint16) (*Runner, *machine.State) {
	t.Helper()

	state := machine.New()
	for i, word := range program {
		address := machine.ProgramStart + 2*i
		state.Memory[address] = byte(word >> 8)
		state.Memory[address+1] = byte(word)
	}

	keys := keypad.New()
	ip, err := interpreter.New(state,
		interpreter.WithKeypad(keys),
		interpreter.WithRandom(interpreter.NewRandom(1)),
	)
	assert.NoError(t, err)

	return New(log.NewTestLogger(t), ip, keys, opts), state
}

func TestRun_CycleLimit(t *testing.T) {
	r, state := newTestRunner(t, Options{MaxCycles: 50, AutoKey: NoAutoKey}, 0x7001, 0x1200)

	result, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, CycleLimit, result.Reason)
	assert.Equal(t, uint64(50), result.Cycles)
	assert.Equal(t, interpreter.Running, result.Status)
	assert.Equal(t, uint8(25), state.V[0])

	result, err = r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint64(50), result.Cycles)
	assert.Equal(t, uint8(50), state.V[0])
}

func TestRun_Halted(t *testing.T) {
	r, _ := newTestRunner(t, Options{AutoKey: NoAutoKey}, 0x6005, 0x7003, 0x00EE)

	result, err := r.Run(context.Background())
	assert.True(t, errors.Is(err, machine.ErrStackUnderflow))
	assert.Equal(t, Halted, result.Reason)
	assert.Equal(t, interpreter.Halted, result.Status)
	assert.Equal(t, uint64(2), result.Cycles)
	assert.Equal(t, uint16(0x204), result.PC)
}

func TestRun_UnsupportedInstruction(t *testing.T) {
	r, _ := newTestRunner(t, Options{AutoKey: NoAutoKey}, 0x6005, 0xFFFF)

	result, err := r.Run(context.Background())
	assert.True(t, errors.Is(err, machine.ErrUnknownOpcode))
	assert.Equal(t, Halted, result.Reason)
	assert.Equal(t, uint64(1), result.Cycles)
}

func TestRun_Breakpoint(t *testing.T) {
	breakpoints := set.New[uint16]()
	breakpoints.Add(0x204)

	r, state := newTestRunner(t, Options{Breakpoints: breakpoints, AutoKey: NoAutoKey},
		0x6001, // 200
		0x6102, // 202
		0x6203, // 204
		0x1206, // 206
	)

	result, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Breakpoint, result.Reason)
	assert.Equal(t, uint16(0x204), result.PC)
	assert.Equal(t, uint64(2), result.Cycles)
	assert.Equal(t, uint8(0), state.V[2], "instruction at the breakpoint must not be executed")

	// continuing executes the instruction at the breakpoint
	r.opts.MaxCycles = 5
	result, err = r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, CycleLimit, result.Reason)
	assert.Equal(t, uint8(3), state.V[2])
}

func TestRun_Canceled(t *testing.T) {
	r, _ := newTestRunner(t, Options{AutoKey: NoAutoKey}, 0x1200)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, Canceled, result.Reason)
	assert.Equal(t, uint64(0), result.Cycles)
}

func TestRun_AwaitingKey(t *testing.T) {
	r, state := newTestRunner(t, Options{AutoKey: NoAutoKey}, 0x6001, 0xF30A, 0x1204)

	result, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, AwaitingKey, result.Reason)
	assert.Equal(t, interpreter.AwaitingKey, result.Status)
	assert.Equal(t, uint64(1), result.Cycles)
	assert.Equal(t, uint16(0x202), state.PC)

	assert.NoError(t, r.keys.KeyDown(0x7))
	r.opts.MaxCycles = 3
	result, err = r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, CycleLimit, result.Reason)
	assert.Equal(t, uint8(0x7), state.V[3])
}

func TestRun_AutoKey(t *testing.T) {
	r, state := newTestRunner(t, Options{MaxCycles: 4, AutoKey: 0xC}, 0xF00A, 0xF10A, 0x1204)

	result, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, CycleLimit, result.Reason)
	assert.Equal(t, uint8(0xC), state.V[0])
	assert.Equal(t, uint8(0xC), state.V[1])
	assert.Equal(t, uint16(0x204), state.PC)
}

func TestRun_TimerTicks(t *testing.T) {
	tests := []struct {
		name                string
		instructionsPerTick int
		cycles              uint64
		delay               uint8
	}{
		{"default rate", 0, 42, 56},
		{"every instruction", 1, 42, 19},
		{"timer floors at zero", 1, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{
				MaxCycles:           tt.cycles,
				InstructionsPerTick: tt.instructionsPerTick,
				AutoKey:             NoAutoKey,
			}
			// the delay timer is loaded by the second instruction
			r, state := newTestRunner(t, opts, 0x603C, 0xF015, 0x1204)

			_, err := r.Run(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, tt.delay, state.DelayTimer)
		})
	}
}

func TestStopReason_String(t *testing.T) {
	assert.Equal(t, "breakpoint", Breakpoint.String())
	assert.Equal(t, "awaiting key", AwaitingKey.String())
	assert.Equal(t, "stop reason(99)", StopReason(99).String())
}
