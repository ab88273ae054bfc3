// Package disasm formats CHIP-8 instructions as assembly text.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/decoder"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Format returns the assembly text of the instruction, for example
// "ld V0, $05". Words that are not part of the instruction set are returned
// as a .word directive.
func Format(ins decoder.Instruction) string {
	name := decoder.Mnemonic(ins)
	if name == "" {
		return fmt.Sprintf(".word $%04X", ins.Opcode)
	}
	if params := formatParams(name, ins); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// Listing writes a linear disassembly of size bytes of memory starting at
// address start. Every line contains the address, the instruction bytes and
// the instruction text. Call and jump destinations inside the range get a
// label line, destinations that are not on an instruction boundary are
// written as label assignments before the listing.
func Listing(w io.Writer, memory []byte, start uint16, size int) error {
	end := int(start) + size
	if end > len(memory) {
		end = len(memory)
	}
	labels := branchDestinations(memory, int(start), end)

	for _, address := range sortedAddresses(labels) {
		if (int(address)-int(start))%decoder.OpcodeSize == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s = $%04X\n", labels[address], address); err != nil {
			return fmt.Errorf("writing label assignment: %w", err)
		}
	}

	for address := int(start); address < end; address += decoder.OpcodeSize {
		if label, ok := labels[uint16(address)]; ok {
			if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		var line string
		if address+1 >= end {
			line = fmt.Sprintf("%04X  %02X     .byte $%02X\n", address, memory[address], memory[address])
		} else {
			ins := decoder.Decode(memory[address], memory[address+1])
			line = fmt.Sprintf("%04X  %02X %02X  %s\n", address, memory[address], memory[address+1], Format(ins))
		}
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}
	return nil
}

// formatParams formats the operands of a CHIP-8 instruction.
func formatParams(name string, ins decoder.Instruction) string {
	switch name {
	case chip8.ClsInst.Name, chip8.RetInst.Name:
		return "" // No parameters
	case chip8.JpInst.Name:
		return formatJump(ins)
	case chip8.CallInst.Name:
		return fmt.Sprintf("$%03X", ins.NNN)
	case chip8.SeInst.Name, chip8.SneInst.Name:
		return formatCompare(ins)
	case chip8.LdInst.Name:
		return formatLoad(ins)
	case chip8.AddInst.Name:
		return formatAdd(ins)
	case chip8.OrInst.Name, chip8.AndInst.Name, chip8.XorInst.Name, chip8.SubInst.Name, chip8.SubnInst.Name:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case chip8.ShrInst.Name, chip8.ShlInst.Name, chip8.SkpInst.Name, chip8.SknpInst.Name:
		return fmt.Sprintf("V%X", ins.X)
	case chip8.RndInst.Name:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case chip8.DrwInst.Name:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.Z)
	}
	return ""
}

// formatJump formats jump instructions (JP addr, JP V0+addr).
func formatJump(ins decoder.Instruction) string {
	if ins.W == 0xB {
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	}
	return fmt.Sprintf("$%03X", ins.NNN)
}

// formatCompare formats comparison instructions (SE, SNE).
func formatCompare(ins decoder.Instruction) string {
	switch ins.W {
	case 0x3, 0x4:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	default:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	}
}

// formatLoad formats the load instructions of all groups.
func formatLoad(ins decoder.Instruction) string {
	switch ins.W {
	case 0x6:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case 0x8:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case 0xA:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case 0xF:
		return formatLoadMisc(ins)
	}
	return ""
}

func formatLoadMisc(ins decoder.Instruction) string {
	switch ins.NN {
	case 0x07:
		return fmt.Sprintf("V%X, DT", ins.X)
	case 0x0A:
		return fmt.Sprintf("V%X, K", ins.X)
	case 0x15:
		return fmt.Sprintf("DT, V%X", ins.X)
	case 0x18:
		return fmt.Sprintf("ST, V%X", ins.X)
	case 0x29:
		return fmt.Sprintf("F, V%X", ins.X)
	case 0x33:
		return fmt.Sprintf("B, V%X", ins.X)
	case 0x55:
		return fmt.Sprintf("[I], V%X", ins.X)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return ""
}

// formatAdd formats add instructions (ADD Vx, byte/Vy, ADD I, Vx).
func formatAdd(ins decoder.Instruction) string {
	switch ins.W {
	case 0x7:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case 0x8:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case 0xF:
		return fmt.Sprintf("I, V%X", ins.X)
	}
	return ""
}
