package checkout

import "fmt"

// State is a step of one checkout attempt.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateTokenizing State = "tokenizing"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateError
}

var transitions = map[State][]State{
	StateIdle:       {StateValidating},
	StateValidating: {StateTokenizing, StateError},
	StateTokenizing: {StateSubmitting, StateError},
	StateSubmitting: {StateSuccess, StateError},
}

func canTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// transition is the only place the checkout state changes.
func transition(from, to State) (State, error) {
	if !canTransition(from, to) {
		return from, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return to, nil
}
