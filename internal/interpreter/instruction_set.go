package interpreter

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/decoder"
	"github.com/retroenv/retrochip8/internal/machine"
)

// Opcode identifies a decoded instruction independent of its operands.
type Opcode uint8

// Opcodes of the base CHIP-8 instruction set.
const (
	OpInvalid Opcode = iota
	OpCls            // 00E0
	OpRet            // 00EE
	OpJp             // 1nnn
	OpCall           // 2nnn
	OpSeByte         // 3xnn
	OpSneByte        // 4xnn
	OpSeReg          // 5xy0
	OpLdByte         // 6xnn
	OpAddByte        // 7xnn
	OpLdReg          // 8xy0
	OpOr             // 8xy1
	OpAnd            // 8xy2
	OpXor            // 8xy3
	OpAddReg         // 8xy4
	OpSub            // 8xy5
	OpShr            // 8xy6
	OpSubn           // 8xy7
	OpShl            // 8xyE
	OpSneReg         // 9xy0
	OpLdI            // Annn
	OpJpV0           // Bnnn
	OpRnd            // Cxnn
	OpDrw            // Dxyn
	OpSkp            // Ex9E
	OpSknp           // ExA1
	OpLdVxDT         // Fx07
	OpLdKey          // Fx0A
	OpLdDTVx         // Fx15
	OpLdSTVx         // Fx18
	OpAddI           // Fx1E
	OpLdFont         // Fx29
	OpBcd            // Fx33
	OpStore          // Fx55
	OpLoad           // Fx65

	opCount
)

var opcodePatterns = [opCount]string{
	OpInvalid: "????",
	OpCls:     "00E0",
	OpRet:     "00EE",
	OpJp:      "1nnn",
	OpCall:    "2nnn",
	OpSeByte:  "3xnn",
	OpSneByte: "4xnn",
	OpSeReg:   "5xy0",
	OpLdByte:  "6xnn",
	OpAddByte: "7xnn",
	OpLdReg:   "8xy0",
	OpOr:      "8xy1",
	OpAnd:     "8xy2",
	OpXor:     "8xy3",
	OpAddReg:  "8xy4",
	OpSub:     "8xy5",
	OpShr:     "8xy6",
	OpSubn:    "8xy7",
	OpShl:     "8xyE",
	OpSneReg:  "9xy0",
	OpLdI:     "Annn",
	OpJpV0:    "Bnnn",
	OpRnd:     "Cxnn",
	OpDrw:     "Dxyn",
	OpSkp:     "Ex9E",
	OpSknp:    "ExA1",
	OpLdVxDT:  "Fx07",
	OpLdKey:   "Fx0A",
	OpLdDTVx:  "Fx15",
	OpLdSTVx:  "Fx18",
	OpAddI:    "Fx1E",
	OpLdFont:  "Fx29",
	OpBcd:     "Fx33",
	OpStore:   "Fx55",
	OpLoad:    "Fx65",
}

// String returns the opcode pattern, for example "8xy4".
func (o Opcode) String() string {
	if o < opCount {
		return opcodePatterns[o]
	}
	return fmt.Sprintf("opcode(%d)", uint8(o))
}

// Effect tells the interpreter how to update the program counter after a
// handler has executed.
type Effect uint8

const (
	// Advance moves to the next instruction.
	Advance Effect = iota
	// Skip skips the next instruction.
	Skip
	// Jump keeps the program counter that the handler has set.
	Jump
	// Wait suspends the interpreter until a key press is available.
	Wait
)

// Handler executes one decoded instruction against the interpreter state.
// Handlers must not modify the program counter unless they return Jump, and
// must not modify any state before returning an error.
type Handler func(ip *Interpreter, ins decoder.Instruction) (Effect, error)

// InstructionSet is the decode and execute table of one variant.
type InstructionSet struct {
	Variant machine.Variant

	// Decode maps an instruction word to an opcode of this set.
	Decode func(ins decoder.Instruction) (Opcode, bool)

	// Handlers contains the behavior for every opcode that Decode returns.
	Handlers map[Opcode]Handler
}

var instructionSets = map[machine.Variant]*InstructionSet{}

// Register makes an instruction set available for its variant, replacing
// any previously registered set. It is not safe to call concurrently with New.
func Register(set *InstructionSet) {
	instructionSets[set.Variant] = set
}

func lookupInstructionSet(variant machine.Variant) (*InstructionSet, error) {
	set, ok := instructionSets[variant]
	if !ok {
		return nil, fmt.Errorf("variant '%s': %w", variant, machine.ErrUnsupportedVariant)
	}
	return set, nil
}
