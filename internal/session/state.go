package session

import "fmt"

// State is the lifecycle stage of a quiz session.
type State int

const (
	Running     State = iota + 1 // Presenting cards.
	Exited                       // User typed the exit token or input ended.
	Interrupted                  // Cancelled by an external signal.
	Completed                    // The mode ran out of cards.
)

var stateNames = [...]string{
	Running:     "Running",
	Exited:      "Exited",
	Interrupted: "Interrupted",
	Completed:   "Completed",
}

// Compile-time interface check.
var _ fmt.Stringer = State(0)

// String returns the state name, or "State(n)" for invalid values.
func (s State) String() string {
	if s >= Running && s <= Completed {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further cards will be presented in this state.
func (s State) Terminal() bool {
	return s == Exited || s == Interrupted || s == Completed
}
