// Package keypad implements the 16-key CHIP-8 hex keypad.
package keypad

import (
	"errors"
	"fmt"
	"sync"

	"github.com/retroenv/retrogolib/set"
)

// KeyCount is the number of keys on the keypad, addressed 0x0-0xF.
const KeyCount = 16

// ErrInvalidKey is returned for key codes outside of 0x0-0xF.
var ErrInvalidKey = errors.New("invalid key")

// Keypad tracks held keys and queues key press events.
// It is safe for concurrent use, events can be delivered from an input
// goroutine while the interpreter polls it.
type Keypad struct {
	mu      sync.Mutex
	held    set.Set[uint8]
	presses []uint8
}

// New returns a keypad with no keys held.
func New() *Keypad {
	return &Keypad{
		held: set.New[uint8](),
	}
}

// KeyDown marks the key as held. A transition from released to held
// queues a press event.
func (k *Keypad) KeyDown(key uint8) error {
	if err := validate(key); err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.held.Contains(key) {
		return nil
	}
	k.held.Add(key)
	k.presses = append(k.presses, key)
	return nil
}

// KeyUp marks the key as released.
func (k *Keypad) KeyUp(key uint8) error {
	if err := validate(key); err != nil {
		return err
	}

	k.mu.Lock()
	delete(k.held, key)
	k.mu.Unlock()
	return nil
}

// IsHeld returns whether the key is currently held down.
func (k *Keypad) IsHeld(key uint8) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held.Contains(key)
}

// TakePress removes and returns the oldest queued key press.
func (k *Keypad) TakePress() (uint8, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if len(k.presses) == 0 {
		return 0, false
	}
	key := k.presses[0]
	k.presses = k.presses[1:]
	return key, true
}

// ClearPresses drops all queued key presses. Held keys are kept.
func (k *Keypad) ClearPresses() {
	k.mu.Lock()
	k.presses = nil
	k.mu.Unlock()
}

func validate(key uint8) error {
	if key >= KeyCount {
		return fmt.Errorf("key %02x: %w", key, ErrInvalidKey)
	}
	return nil
}
