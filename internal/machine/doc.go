// Package machine provides the complete mutable state of one CHIP-8 virtual CPU.
//
// # Memory Layout
//
// CHIP-8 systems have 4KB of memory (0x000-0xFFF):
//   - 0x000-0x1FF: Interpreter area, holds the built-in font at FontStart
//   - ProgramStart-0xFFF: User program and data area
//
// # Registers
//
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as the
//     carry, borrow and collision flag
//   - I: 16-bit index register used as memory pointer
//   - PC: program counter, starts at ProgramStart
//   - a bounded return address stack of StackDepth entries
//   - delay and sound timers, decremented by TickTimers
//
// # Display
//
// The display is a 64x32 monochrome grid. Sprites are XOR-composited onto it,
// pixels outside of the grid are dropped.
//
// The state is mutated exclusively by the interpreter, one instruction at a
// time. It is not safe for concurrent use.
package machine
