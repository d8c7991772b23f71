package tablefsm

// Entry is the resolved decision for one (state, event) cell.
// Secondary is only meaningful when Guard is non-nil.
type Entry[C, P any] struct {
	Guard     Guard[C, P]
	Primary   Branch[C, P]
	Secondary Branch[C, P]
}

// IsNoop reports whether the entry keeps state s unchanged and runs nothing.
func (e Entry[C, P]) IsNoop(s StateID) bool {
	return e.Guard == nil && e.Primary.Target == s && e.Primary.Actions.IsEmpty()
}

// Table is the dense State x Event dispatch table produced by Build.
// It is never mutated after Build returns and may be shared by any number of
// machines and goroutines.
type Table[C, P any] struct {
	states     int
	events     int
	initial    StateID
	maxActions int
	precedence Precedence
	stateNames []string
	eventNames []string
	cells      []Entry[C, P] // row-major: cells[state*events+event]
}

func (t *Table[C, P]) StateCount() int { return t.states }
func (t *Table[C, P]) EventCount() int { return t.events }
func (t *Table[C, P]) MaxActions() int { return t.maxActions }

func (t *Table[C, P]) InitialState() StateID { return t.initial }

// InvalidState is the sentinel one past the last valid state.
func (t *Table[C, P]) InvalidState() StateID { return StateID(t.states) }

func (t *Table[C, P]) Precedence() Precedence { return t.precedence }

func (t *Table[C, P]) ValidState(s StateID) bool {
	return s >= 0 && int(s) < t.states
}

func (t *Table[C, P]) ValidEvent(e EventID) bool {
	return e >= 0 && int(e) < t.events
}

// Lookup returns the entry for (s, e). ok is false when either is out of range.
func (t *Table[C, P]) Lookup(s StateID, e EventID) (Entry[C, P], bool) {
	if !t.ValidState(s) || !t.ValidEvent(e) {
		return Entry[C, P]{}, false
	}
	return *t.cell(s, e), true
}

// Each calls fn for every cell in state-major order until fn returns false.
func (t *Table[C, P]) Each(fn func(s StateID, e EventID, entry Entry[C, P]) bool) {
	for s := 0; s < t.states; s++ {
		for e := 0; e < t.events; e++ {
			if !fn(StateID(s), EventID(e), *t.cell(StateID(s), EventID(e))) {
				return
			}
		}
	}
}

// StateName returns the configured label for s, or s.String() if none.
func (t *Table[C, P]) StateName(s StateID) string {
	if s >= 0 && int(s) < len(t.stateNames) && t.stateNames[s] != "" {
		return t.stateNames[s]
	}
	if s == t.InvalidState() {
		return "invalid"
	}
	return s.String()
}

// EventName returns the configured label for e, or e.String() if none.
func (t *Table[C, P]) EventName(e EventID) string {
	if e >= 0 && int(e) < len(t.eventNames) && t.eventNames[e] != "" {
		return t.eventNames[e]
	}
	return e.String()
}

// cell assumes s and e are in range.
func (t *Table[C, P]) cell(s StateID, e EventID) *Entry[C, P] {
	return &t.cells[int(s)*t.events+int(e)]
}
