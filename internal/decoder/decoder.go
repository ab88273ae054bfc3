// Package decoder provides CHIP-8 instruction fetching and decoding.
package decoder

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// OpcodeSize is the size of CHIP-8 instructions in bytes.
const OpcodeSize = 2

// Instruction is a decoded 16-bit CHIP-8 instruction word split into its
// four nibbles w, x, y, z and the derived operand fields.
type Instruction struct {
	Opcode uint16 // raw instruction word

	W uint8 // instruction group, highest nibble
	X uint8 // first register operand
	Y uint8 // second register operand
	Z uint8 // lowest nibble

	NN  uint8  // low byte
	NNN uint16 // low 12 bits, an address
}

// Decode splits the two instruction bytes into nibbles and operand fields.
func Decode(hi, lo byte) Instruction {
	return Instruction{
		Opcode: uint16(hi)<<8 | uint16(lo),
		W:      hi >> 4,
		X:      hi & 0x0F,
		Y:      lo >> 4,
		Z:      lo & 0x0F,
		NN:     lo,
		NNN:    uint16(hi&0x0F)<<8 | uint16(lo),
	}
}

// Fetch reads and decodes the instruction at address pc. The instruction and
// its second byte have to be inside the program region of memory.
func Fetch(memory []byte, pc uint16) (Instruction, error) {
	if pc < machine.ProgramStart || int(pc)+1 >= len(memory) {
		return Instruction{}, fmt.Errorf("reading instruction at address %04x: %w", pc, machine.ErrFetchOutOfBounds)
	}
	return Decode(memory[pc], memory[pc+1]), nil
}

// Mnemonic returns the instruction name of the official CHIP-8 instruction
// set that matches the instruction word, or an empty string for unknown words.
func Mnemonic(ins Instruction) string {
	op, ok := lookup(ins.Opcode)
	if !ok {
		return ""
	}
	return op.Instruction.Name
}

// lookup matches the instruction word against the opcode table of its
// instruction group.
func lookup(word uint16) (chip8.Opcode, bool) {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value && op.Instruction != nil {
			return op, true
		}
	}
	return chip8.Opcode{}, false
}
