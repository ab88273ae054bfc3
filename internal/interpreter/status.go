package interpreter

import "fmt"

// Status is the execution state of an interpreter.
type Status uint8

const (
	// Running means the next Step fetches and executes an instruction.
	Running Status = iota
	// AwaitingKey means a key wait instruction is suspended until a key press
	// is delivered by the keypad.
	AwaitingKey
	// Halted means a fatal error occurred, execution can not continue.
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	case Halted:
		return "halted"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}
