package tablefsm

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// BranchTaken identifies which branch of an entry a trigger executed.
type BranchTaken uint8

const (
	BranchPrimary BranchTaken = iota
	BranchSecondary
)

func (b BranchTaken) String() string {
	if b == BranchSecondary {
		return "secondary"
	}
	return "primary"
}

// Record describes one dispatched trigger.
type Record struct {
	MachineID string      `json:"machineID" yaml:"machineID"`
	Event     EventID     `json:"event" yaml:"event"`
	From      StateID     `json:"from" yaml:"from"`
	To        StateID     `json:"to" yaml:"to"`
	Branch    BranchTaken `json:"branch" yaml:"branch"`
	Actions   int         `json:"actions" yaml:"actions"`
	Timestamp time.Time   `json:"timestamp" yaml:"timestamp"`
}

// Observer is notified after the actions of a dispatched trigger have run.
// It is called synchronously on the goroutine that called Trigger.
type Observer interface {
	Observe(rec Record)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Record)

func (f ObserverFunc) Observe(rec Record) { f(rec) }

// Machine dispatches events for one client against a shared Table.
//
// A Machine is not safe for concurrent use. Callers that trigger one machine
// from several goroutines must serialize the calls, for example with the
// realtime package.
type Machine[C, P any] struct {
	table    *Table[C, P]
	client   C
	current  StateID
	id       string
	logger   *slog.Logger
	observer Observer
}

var discardLogger = slog.New(slog.DiscardHandler)

// New binds client to table. The machine starts in the table's initial
// state unless WithStartState says otherwise.
func New[C, P any](table *Table[C, P], client C, opts ...Option) *Machine[C, P] {
	cfg := machineConfig{logger: discardLogger}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Machine[C, P]{
		table:    table,
		client:   client,
		current:  table.InitialState(),
		id:       cfg.id,
		logger:   cfg.logger,
		observer: cfg.observer,
	}
	if cfg.initial != nil {
		m.current = *cfg.initial
	}
	if m.id == "" {
		m.id = uuid.NewString()
	}
	return m
}

// Trigger dispatches event with params.
//
// An out-of-range current state or event makes the call a no-op. Otherwise the
// guard, if any, picks a branch, the machine moves to that branch's target and
// only then runs the branch's actions in order. An action that calls Trigger
// again therefore sees the new state.
func (m *Machine[C, P]) Trigger(event EventID, params P) {
	ctx := context.Background()
	debug := m.logger.Enabled(ctx, slog.LevelDebug)

	from := m.current
	if !m.table.ValidState(from) || !m.table.ValidEvent(event) {
		if debug {
			m.logger.LogAttrs(ctx, slog.LevelDebug, "trigger ignored",
				slog.String("machine", m.id),
				slog.Int("state", int(from)),
				slog.Int("event", int(event)),
			)
		}
		return
	}

	entry := m.table.cell(from, event)
	branch, taken := &entry.Primary, BranchPrimary
	if entry.Guard != nil && !entry.Guard(m.client, params) {
		branch, taken = &entry.Secondary, BranchSecondary
	}

	m.current = branch.Target
	if debug {
		m.logger.LogAttrs(ctx, slog.LevelDebug, "transition",
			slog.String("machine", m.id),
			slog.String("event", m.table.EventName(event)),
			slog.String("from", m.table.StateName(from)),
			slog.String("to", m.table.StateName(branch.Target)),
			slog.String("branch", taken.String()),
		)
	}

	branch.Actions.CallFor(m.client, params)

	if m.observer != nil {
		m.observer.Observe(Record{
			MachineID: m.id,
			Event:     event,
			From:      from,
			To:        branch.Target,
			Branch:    taken,
			Actions:   branch.Actions.Len(),
			Timestamp: time.Now(),
		})
	}
}

// SetCurrentState overwrites the current state without validation and
// without running any action.
func (m *Machine[C, P]) SetCurrentState(s StateID) {
	m.current = s
}

func (m *Machine[C, P]) GetCurrentState() StateID {
	return m.current
}

func (m *Machine[C, P]) Client() C { return m.client }

func (m *Machine[C, P]) Table() *Table[C, P] { return m.table }

func (m *Machine[C, P]) ID() string { return m.id }
