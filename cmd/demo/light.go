package main

import (
	"context"
	"log/slog"

	"github.com/comalice/tablefsm"
	"github.com/comalice/tablefsm/internal/extensibility"
)

const (
	red tablefsm.StateID = iota
	green
	yellow
	flashing
	stateCount
)

const (
	timer tablefsm.EventID = iota
	fault
	reset
	eventCount
)

// Signal is the parameter passed with every event.
type Signal struct {
	Cycle int
}

// Light is one traffic light. Each machine owns its own Light; the table is
// shared.
type Light struct {
	name    string
	logger  *slog.Logger
	changes int
	cycles  int
	faults  int
}

func (l *Light) announce(s Signal) {
	l.changes++
	l.logger.LogAttrs(context.Background(), slog.LevelDebug, "light changed",
		slog.String("light", l.name),
		slog.Int("cycle", s.Cycle),
		slog.Int("changes", l.changes),
	)
}

func (l *Light) completeCycle(Signal) { l.cycles++ }

func (l *Light) recordFault(s Signal) {
	l.faults++
	l.logger.LogAttrs(context.Background(), slog.LevelWarn, "light fault",
		slog.String("light", l.name),
		slog.Int("cycle", s.Cycle),
		slog.Int("faults", l.faults),
	)
}

// repaired holds until the light has faulted three times.
func (l *Light) repaired(Signal) bool { return l.faults < 3 }

// newTable builds the traffic light table. Callbacks are wrapped so that a
// debug logger shows every action and guard.
func newTable(logger *slog.Logger) (*tablefsm.Table[*Light, Signal], error) {
	type action = tablefsm.Action[*Light, Signal]
	announce := extensibility.LoggedAction[*Light, Signal]("announce", (*Light).announce, logger)
	complete := extensibility.LoggedAction[*Light, Signal]("completeCycle", (*Light).completeCycle, logger)
	recordFault := extensibility.LoggedAction[*Light, Signal]("recordFault", (*Light).recordFault, logger)
	repaired := extensibility.LoggedGuard[*Light, Signal]("repaired", (*Light).repaired, logger)

	return tablefsm.NewBuilder[*Light, Signal](int(stateCount), int(eventCount),
		tablefsm.WithStateNames("red", "green", "yellow", "flashing"),
		tablefsm.WithEventNames("timer", "fault", "reset"),
	).
		DefaultTransition(fault, flashing, recordFault).
		Transition(red, timer, green, announce).
		Transition(green, timer, yellow, announce).
		Transition(yellow, timer, red, announce, complete).
		ConditionalTransition(flashing, reset, repaired,
			red, []action{announce},
			flashing, []action{recordFault}).
		Build()
}
