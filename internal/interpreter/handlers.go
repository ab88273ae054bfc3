package interpreter

import (
	"github.com/retroenv/retrochip8/internal/decoder"
	"github.com/retroenv/retrochip8/internal/machine"
)

// flag converts a condition to the value stored in VF.
func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}

// skipIf returns Skip if the condition is true, otherwise Advance.
func skipIf(condition bool) Effect {
	if condition {
		return Skip
	}
	return Advance
}

// Flow control.

func cls(ip *Interpreter, _ decoder.Instruction) (Effect, error) {
	ip.state.Display.Clear()
	return Advance, nil
}

func ret(ip *Interpreter, _ decoder.Instruction) (Effect, error) {
	address, err := ip.state.Pop()
	if err != nil {
		return Advance, err
	}
	ip.state.PC = address
	return Jump, nil
}

func jp(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.PC = ins.NNN
	return Jump, nil
}

func call(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	if err := ip.state.Push(ip.state.PC + decoder.OpcodeSize); err != nil {
		return Advance, err
	}
	ip.state.PC = ins.NNN
	return Jump, nil
}

func jpV0(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.PC = ins.NNN + uint16(ip.state.V[0])
	return Jump, nil
}

// Conditional skips.

func seByte(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	return skipIf(ip.state.V[ins.X] == ins.NN), nil
}

func sneByte(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	return skipIf(ip.state.V[ins.X] != ins.NN), nil
}

func seReg(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	return skipIf(ip.state.V[ins.X] == ip.state.V[ins.Y]), nil
}

func sneReg(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	return skipIf(ip.state.V[ins.X] != ip.state.V[ins.Y]), nil
}

func skp(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	return skipIf(ip.keypad.IsHeld(ip.state.V[ins.X] & 0x0F)), nil
}

func sknp(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	return skipIf(!ip.keypad.IsHeld(ip.state.V[ins.X] & 0x0F)), nil
}

// Register loads and arithmetic. Instructions that set VF read all operands
// first and write VF last, so that VF can be an operand itself.

func ldByte(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.V[ins.X] = ins.NN
	return Advance, nil
}

func addByte(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.V[ins.X] += ins.NN
	return Advance, nil
}

func ldReg(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.V[ins.X] = ip.state.V[ins.Y]
	return Advance, nil
}

func or(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.V[ins.X] |= ip.state.V[ins.Y]
	return Advance, nil
}

func and(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.V[ins.X] &= ip.state.V[ins.Y]
	return Advance, nil
}

func xor(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.V[ins.X] ^= ip.state.V[ins.Y]
	return Advance, nil
}

func addReg(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	x, y := ip.state.V[ins.X], ip.state.V[ins.Y]
	sum := uint16(x) + uint16(y)
	ip.state.V[ins.X] = uint8(sum)
	ip.state.V[machine.FlagRegister] = flag(sum > 0xFF)
	return Advance, nil
}

func sub(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	x, y := ip.state.V[ins.X], ip.state.V[ins.Y]
	ip.state.V[ins.X] = x - y
	ip.state.V[machine.FlagRegister] = flag(x < y)
	return Advance, nil
}

func subn(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	x, y := ip.state.V[ins.X], ip.state.V[ins.Y]
	ip.state.V[ins.X] = y - x
	ip.state.V[machine.FlagRegister] = flag(y < x)
	return Advance, nil
}

func shr(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	x := ip.state.V[ins.X]
	ip.state.V[ins.X] = x >> 1
	ip.state.V[machine.FlagRegister] = x & 0x01
	return Advance, nil
}

func shl(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	x := ip.state.V[ins.X]
	ip.state.V[ins.X] = x << 1
	ip.state.V[machine.FlagRegister] = x >> 7
	return Advance, nil
}

func rnd(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.V[ins.X] = ip.random.Byte() & ins.NN
	return Advance, nil
}

// Index register, memory and display.

func ldI(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.I = ins.NNN
	return Advance, nil
}

func addI(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.I += uint16(ip.state.V[ins.X])
	return Advance, nil
}

func ldFont(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.I = machine.FontAddress(ip.state.V[ins.X])
	return Advance, nil
}

func drw(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	rows, err := ip.state.MemoryBlock(ip.state.I, int(ins.Z))
	if err != nil {
		return Advance, err
	}
	x, y := int(ip.state.V[ins.X]), int(ip.state.V[ins.Y])
	collision := ip.state.Display.DrawSprite(x, y, rows)
	ip.state.V[machine.FlagRegister] = flag(collision)
	return Advance, nil
}

func bcd(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	block, err := ip.state.MemoryBlock(ip.state.I, 3)
	if err != nil {
		return Advance, err
	}
	value := ip.state.V[ins.X]
	block[0] = value / 100
	block[1] = value / 10 % 10
	block[2] = value % 10
	return Advance, nil
}

// store copies V0..Vx to memory at I. I is not modified.
func store(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	block, err := ip.state.MemoryBlock(ip.state.I, int(ins.X)+1)
	if err != nil {
		return Advance, err
	}
	copy(block, ip.state.V[:ins.X+1])
	return Advance, nil
}

// load copies memory at I to V0..Vx. I is not modified.
func load(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	block, err := ip.state.MemoryBlock(ip.state.I, int(ins.X)+1)
	if err != nil {
		return Advance, err
	}
	copy(ip.state.V[:ins.X+1], block)
	return Advance, nil
}

// Timers and input.

func ldVxDT(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.V[ins.X] = ip.state.DelayTimer
	return Advance, nil
}

func ldDTVx(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.DelayTimer = ip.state.V[ins.X]
	return Advance, nil
}

func ldSTVx(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.state.SoundTimer = ip.state.V[ins.X]
	return Advance, nil
}

// ldKey suspends execution, the register write and program counter advance
// happen once a key press is available.
func ldKey(ip *Interpreter, ins decoder.Instruction) (Effect, error) {
	ip.keyRegister = ins.X
	ip.keypad.ClearPresses()
	return Wait, nil
}
