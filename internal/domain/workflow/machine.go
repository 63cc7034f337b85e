// Package workflow implements the guarded state machine that governs a
// document's life from "no file" to submitted or failed. Transitions are
// declared up front through a builder; firing an undeclared trigger is an
// error and leaves the current state untouched.
package workflow

import (
	"context"
	"fmt"
)

// GuardFunc decides whether a declared transition may fire for this context
type GuardFunc func(ctx context.Context) bool

// Machine tracks the current state and validates transitions against the
// declared configuration. It is not safe for concurrent use; a document
// instance processes one external event at a time.
type Machine struct {
	current     State
	transitions map[State]map[Trigger][]transition
}

type transition struct {
	to    State
	guard GuardFunc
}

// State returns the current state
func (m *Machine) State() State {
	return m.current
}

// CanFire returns true if the trigger is declared for the current state.
// Guards are not evaluated here; they may still reject the transition in Fire.
func (m *Machine) CanFire(trigger Trigger) bool {
	return len(m.transitions[m.current][trigger]) > 0
}

// Fire executes the trigger, moving to the first declared target whose guard
// passes. The state is unchanged on error.
func (m *Machine) Fire(ctx context.Context, trigger Trigger) error {
	candidates := m.transitions[m.current][trigger]
	if len(candidates) == 0 {
		return fmt.Errorf("%w: cannot fire %s from %s", ErrInvalidTransition, trigger, m.current)
	}

	for _, t := range candidates {
		if t.guard == nil || t.guard(ctx) {
			m.current = t.to
			return nil
		}
	}

	return fmt.Errorf("%w: trigger %s from %s", ErrGuardFailed, trigger, m.current)
}

// PermittedTriggers returns the triggers declared for the current state
func (m *Machine) PermittedTriggers() []Trigger {
	declared := m.transitions[m.current]
	triggers := make([]Trigger, 0, len(declared))
	for trigger := range declared {
		triggers = append(triggers, trigger)
	}
	return triggers
}
