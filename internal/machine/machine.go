package machine

import "fmt"

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
//
// The display buffer (64×32 pixels) and stack are maintained separately from
// the 4KB main memory address space.
const (
	// MemorySize is the size of the addressable memory.
	MemorySize = 0x1000

	// ProgramStart is the memory address where CHIP-8 programs are loaded and
	// begin execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general-purpose V registers.
	RegisterCount = 16

	// FlagRegister is the index of VF, the carry/borrow/collision flag.
	FlagRegister = 0xF

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16
)

// State is the complete state of a CHIP-8 virtual machine.
type State struct {
	Memory [MemorySize]byte

	PC uint16 // program counter
	I  uint16 // index register

	V [RegisterCount]uint8 // variable registers V0-VF

	DelayTimer uint8
	SoundTimer uint8

	Display Display
	Variant Variant

	stack      [StackDepth]uint16
	stackDepth int
}

// New returns a new machine state with all fields at their power-on defaults.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the power-on defaults: memory, registers, timers, stack and
// display are zeroed and the program counter points to ProgramStart.
// The variant is kept.
func (s *State) Reset() {
	variant := s.Variant
	*s = State{
		PC:      ProgramStart,
		Variant: variant,
	}
}

// Push pushes a return address onto the call stack.
func (s *State) Push(address uint16) error {
	if s.stackDepth == StackDepth {
		return fmt.Errorf("pushing address %04x at depth %d: %w", address, s.stackDepth, ErrStackOverflow)
	}
	s.stack[s.stackDepth] = address
	s.stackDepth++
	return nil
}

// Pop removes the most recent return address from the call stack.
func (s *State) Pop() (uint16, error) {
	if s.stackDepth == 0 {
		return 0, ErrStackUnderflow
	}
	s.stackDepth--
	address := s.stack[s.stackDepth]
	s.stack[s.stackDepth] = 0
	return address, nil
}

// Stack returns a copy of the call stack, oldest entry first.
func (s *State) Stack() []uint16 {
	stack := make([]uint16, s.stackDepth)
	copy(stack, s.stack[:s.stackDepth])
	return stack
}

// StackDepth returns the number of return addresses on the call stack.
func (s *State) StackDepth() int {
	return s.stackDepth
}

// TickTimers decrements the delay and sound timers by one, stopping at zero.
// It is meant to be called by the host at 60 Hz, independent of instruction
// execution.
func (s *State) TickTimers() {
	if s.DelayTimer > 0 {
		s.DelayTimer--
	}
	if s.SoundTimer > 0 {
		s.SoundTimer--
	}
}

// SoundActive returns whether the buzzer should currently sound.
func (s *State) SoundActive() bool {
	return s.SoundTimer > 0
}

// MemoryBlock returns a slice of size bytes of memory starting at address.
// The slice aliases the memory, writes to it modify the state.
func (s *State) MemoryBlock(address uint16, size int) ([]byte, error) {
	end := int(address) + size
	if size < 0 || end > MemorySize {
		return nil, fmt.Errorf("accessing %d bytes at address %04x: %w", size, address, ErrMemoryOutOfBounds)
	}
	return s.Memory[address:end], nil
}
