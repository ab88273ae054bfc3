package disasm

import (
	"fmt"
	"slices"

	"github.com/retroenv/retrochip8/internal/decoder"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// branchDestinations returns the label names of all call and jump
// destinations of the instructions in memory[start:end] that are inside
// the range. Call destinations take precedence over jump labels.
func branchDestinations(memory []byte, start, end int) map[uint16]string {
	labels := map[uint16]string{}
	for address := start; address+1 < end; address += decoder.OpcodeSize {
		ins := decoder.Decode(memory[address], memory[address+1])
		if int(ins.NNN) < start || int(ins.NNN) >= end {
			continue
		}

		switch ins.W {
		case 0x1:
			if _, ok := labels[ins.NNN]; !ok {
				labels[ins.NNN] = fmt.Sprintf(labelNaming, ins.NNN)
			}
		case 0x2:
			labels[ins.NNN] = fmt.Sprintf(funcNaming, ins.NNN)
		}
	}
	return labels
}

// sortedAddresses returns the label addresses in ascending order.
func sortedAddresses(labels map[uint16]string) []uint16 {
	addresses := make([]uint16, 0, len(labels))
	for address := range labels {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)
	return addresses
}
