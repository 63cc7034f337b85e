package workflow

import "fmt"

// Builder declares the transition table for a machine. Configure each source
// state, then Build as many independent machine instances as needed; built
// machines do not share mutable state with the builder or each other.
type Builder struct {
	transitions map[State]map[Trigger][]transition
}

// StateConfig declares transitions out of one source state
type StateConfig struct {
	builder *Builder
	from    State
}

// NewBuilder creates an empty transition-table builder
func NewBuilder() *Builder {
	return &Builder{transitions: make(map[State]map[Trigger][]transition)}
}

// Configure returns the configuration for the given source state
func (b *Builder) Configure(state State) *StateConfig {
	if !state.IsValid() {
		panic(fmt.Sprintf("workflow: invalid state %q", state))
	}
	if b.transitions[state] == nil {
		b.transitions[state] = make(map[Trigger][]transition)
	}
	return &StateConfig{builder: b, from: state}
}

// Permit declares an unconditional transition for the trigger
func (c *StateConfig) Permit(trigger Trigger, to State) *StateConfig {
	return c.PermitIf(trigger, to, nil)
}

// PermitIf declares a transition taken only when the guard passes. Multiple
// declarations for one trigger are tried in declaration order.
func (c *StateConfig) PermitIf(trigger Trigger, to State, guard GuardFunc) *StateConfig {
	if !to.IsValid() {
		panic(fmt.Sprintf("workflow: invalid target state %q", to))
	}
	c.builder.transitions[c.from][trigger] = append(c.builder.transitions[c.from][trigger], transition{
		to:    to,
		guard: guard,
	})
	return c
}

// Build creates a machine starting at the given state
func (b *Builder) Build(initial State) *Machine {
	if !initial.IsValid() {
		panic(fmt.Sprintf("workflow: invalid initial state %q", initial))
	}

	table := make(map[State]map[Trigger][]transition, len(b.transitions))
	for state, byTrigger := range b.transitions {
		copied := make(map[Trigger][]transition, len(byTrigger))
		for trigger, candidates := range byTrigger {
			copied[trigger] = append([]transition(nil), candidates...)
		}
		table[state] = copied
	}

	return &Machine{current: initial, transitions: table}
}
