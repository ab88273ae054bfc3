package machine

import "errors"

// Fatal conditions of the virtual machine. All of them halt execution and are
// returned to the driver wrapped with the faulting address, never as a panic.
var (
	// ErrFetchOutOfBounds is returned when the program counter would read an
	// instruction outside of the executable memory range.
	ErrFetchOutOfBounds = errors.New("instruction fetch out of bounds")

	// ErrStackUnderflow is returned for a return with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrStackOverflow is returned when call nesting exceeds StackDepth.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrUnknownOpcode is returned for instruction words that are not part of
	// the active instruction set.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrMemoryOutOfBounds is returned when an instruction accesses a memory
	// block that extends past the end of memory.
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")

	// ErrProgramTooLarge is returned by loaders for images that do not fit
	// into the program region.
	ErrProgramTooLarge = errors.New("program too large")

	// ErrUnsupportedVariant is returned when no instruction set is available
	// for the selected variant.
	ErrUnsupportedVariant = errors.New("unsupported instruction set variant")
)
