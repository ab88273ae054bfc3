package interpreter

import (
	"github.com/retroenv/retrochip8/internal/decoder"
	"github.com/retroenv/retrochip8/internal/machine"
)

func init() {
	Register(&InstructionSet{
		Variant:  machine.Chip8,
		Decode:   decodeChip8,
		Handlers: chip8Handlers,
	})
}

var chip8Handlers = map[Opcode]Handler{
	OpCls:     cls,
	OpRet:     ret,
	OpJp:      jp,
	OpCall:    call,
	OpSeByte:  seByte,
	OpSneByte: sneByte,
	OpSeReg:   seReg,
	OpLdByte:  ldByte,
	OpAddByte: addByte,
	OpLdReg:   ldReg,
	OpOr:      or,
	OpAnd:     and,
	OpXor:     xor,
	OpAddReg:  addReg,
	OpSub:     sub,
	OpShr:     shr,
	OpSubn:    subn,
	OpShl:     shl,
	OpSneReg:  sneReg,
	OpLdI:     ldI,
	OpJpV0:    jpV0,
	OpRnd:     rnd,
	OpDrw:     drw,
	OpSkp:     skp,
	OpSknp:    sknp,
	OpLdVxDT:  ldVxDT,
	OpLdKey:   ldKey,
	OpLdDTVx:  ldDTVx,
	OpLdSTVx:  ldSTVx,
	OpAddI:    addI,
	OpLdFont:  ldFont,
	OpBcd:     bcd,
	OpStore:   store,
	OpLoad:    load,
}

// decodeChip8 maps an instruction word to a base CHIP-8 opcode. The groups
// 0, 8, E and F are sub keyed by their low nibble or low byte.
func decodeChip8(ins decoder.Instruction) (Opcode, bool) {
	switch ins.W {
	case 0x0:
		switch ins.Opcode {
		case 0x00E0:
			return OpCls, true
		case 0x00EE:
			return OpRet, true
		}
	case 0x1:
		return OpJp, true
	case 0x2:
		return OpCall, true
	case 0x3:
		return OpSeByte, true
	case 0x4:
		return OpSneByte, true
	case 0x5:
		if ins.Z == 0 {
			return OpSeReg, true
		}
	case 0x6:
		return OpLdByte, true
	case 0x7:
		return OpAddByte, true
	case 0x8:
		return decodeALU(ins.Z)
	case 0x9:
		if ins.Z == 0 {
			return OpSneReg, true
		}
	case 0xA:
		return OpLdI, true
	case 0xB:
		return OpJpV0, true
	case 0xC:
		return OpRnd, true
	case 0xD:
		return OpDrw, true
	case 0xE:
		switch ins.NN {
		case 0x9E:
			return OpSkp, true
		case 0xA1:
			return OpSknp, true
		}
	case 0xF:
		return decodeMisc(ins.NN)
	}
	return OpInvalid, false
}

func decodeALU(z uint8) (Opcode, bool) {
	switch z {
	case 0x0:
		return OpLdReg, true
	case 0x1:
		return OpOr, true
	case 0x2:
		return OpAnd, true
	case 0x3:
		return OpXor, true
	case 0x4:
		return OpAddReg, true
	case 0x5:
		return OpSub, true
	case 0x6:
		return OpShr, true
	case 0x7:
		return OpSubn, true
	case 0xE:
		return OpShl, true
	default:
		return OpInvalid, false
	}
}

func decodeMisc(nn uint8) (Opcode, bool) {
	switch nn {
	case 0x07:
		return OpLdVxDT, true
	case 0x0A:
		return OpLdKey, true
	case 0x15:
		return OpLdDTVx, true
	case 0x18:
		return OpLdSTVx, true
	case 0x1E:
		return OpAddI, true
	case 0x29:
		return OpLdFont, true
	case 0x33:
		return OpBcd, true
	case 0x55:
		return OpStore, true
	case 0x65:
		return OpLoad, true
	default:
		return OpInvalid, false
	}
}
