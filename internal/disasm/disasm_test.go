package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/decoder"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func decode(opcode uint16) decoder.Instruction {
	return decoder.Decode(byte(opcode>>8), byte(opcode))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected string
	}{
		{"jump", 0x1234, chip8.JpInst.Name + " $234"},
		{"jump with offset", 0xB300, chip8.JpInst.Name + " V0, $300"},
		{"call", 0x2ABC, chip8.CallInst.Name + " $ABC"},
		{"skip equal byte", 0x3A10, chip8.SeInst.Name + " VA, $10"},
		{"skip not equal registers", 0x9120, chip8.SneInst.Name + " V1, V2"},
		{"load byte", 0x6005, chip8.LdInst.Name + " V0, $05"},
		{"load register", 0x8560, chip8.LdInst.Name + " V5, V6"},
		{"load index", 0xA200, chip8.LdInst.Name + " I, $200"},
		{"add byte", 0x7003, chip8.AddInst.Name + " V0, $03"},
		{"add register", 0x8014, chip8.AddInst.Name + " V0, V1"},
		{"xor", 0x8233, chip8.XorInst.Name + " V2, V3"},
		{"shift right", 0x8406, chip8.ShrInst.Name + " V4"},
		{"random", 0xC10F, chip8.RndInst.Name + " V1, $0F"},
		{"draw", 0xD015, chip8.DrwInst.Name + " V0, V1, $5"},
		{"skip key", 0xE29E, chip8.SkpInst.Name + " V2"},
		{"unknown", 0xE000, ".word $E000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(decode(tt.opcode)))
		})
	}
}

func TestListing(t *testing.T) {
	memory := make([]byte, 0x1000)
	copy(memory[0x200:], []byte{0x60, 0x05, 0x70, 0x03, 0xAB})

	var buf bytes.Buffer
	err := Listing(&buf, memory, 0x200, 5)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "0200  60 05  "+chip8.LdInst.Name+" V0, $05", lines[0])
	assert.Equal(t, "0202  70 03  "+chip8.AddInst.Name+" V0, $03", lines[1])
	assert.Equal(t, "0204  AB     .byte $AB", lines[2])
}

func TestListingClampsToMemory(t *testing.T) {
	memory := make([]byte, 0x1000)

	var buf bytes.Buffer
	err := Listing(&buf, memory, 0xFFC, 100)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestListingLabels(t *testing.T) {
	memory := make([]byte, 0x1000)
	copy(memory[0x200:], []byte{
		0x22, 0x06, // 200: call 206
		0x12, 0x04, // 202: jump 204
		0x12, 0x09, // 204: jump 209
		0x60, 0x01, // 206: V0 := 1
		0x12, 0x00, // 208: jump 200
	})

	var buf bytes.Buffer
	err := Listing(&buf, memory, 0x200, 10)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 9)
	assert.Equal(t, "_label_0209 = $0209", lines[0])
	assert.Equal(t, "_label_0200:", lines[1])
	assert.Equal(t, "_label_0204:", lines[4])
	assert.Equal(t, "_func_0206:", lines[6])
	assert.Equal(t, "0206  60 01  "+chip8.LdInst.Name+" V0, $01", lines[7])
}

func TestBranchDestinations(t *testing.T) {
	memory := []byte{
		0x10, 0x02, // jump 002
		0x20, 0x02, // call 002
		0x1F, 0xFF, // jump outside the range
	}

	labels := branchDestinations(memory, 0, len(memory))
	assert.Len(t, labels, 1)
	assert.Equal(t, "_func_0002", labels[0x0002])
}
