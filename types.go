package tablefsm

import "strconv"

type StateID int
type EventID int

// NoState marks an unset destination in a Rule. Build replaces it with the
// table's InvalidState.
const NoState StateID = -1

// DefaultMaxActions is the action list capacity used when WithMaxActions is not given.
const DefaultMaxActions = 2

// Action is a client callback run as part of a transition.
// A nil Action is the invalid sentinel and is never stored in a built table.
type Action[C, P any] func(client C, params P)

// Guard selects between the two branches of a conditional transition.
type Guard[C, P any] func(client C, params P) bool

func (s StateID) String() string {
	return "state(" + strconv.Itoa(int(s)) + ")"
}

func (e EventID) String() string {
	return "event(" + strconv.Itoa(int(e)) + ")"
}
