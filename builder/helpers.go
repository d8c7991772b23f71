// Package builder provides option-style helpers that expand into tablefsm
// rules, grouped by source state.
package builder

import (
	"github.com/comalice/tablefsm"
)

// ID shortcut
type ID = tablefsm.StateID

// transition accumulates one outbound transition before it becomes a rule.
type transition[C, P any] struct {
	event     tablefsm.EventID
	target    ID
	guard     tablefsm.Guard[C, P]
	actions   []tablefsm.Action[C, P]
	elseTo    ID
	elseActs  []tablefsm.Action[C, P]
	hasElseTo bool
}

// Option pattern for configuring the rules of one state
type Option[C, P any] func(src ID, rules *[]tablefsm.Rule[C, P])

// State expands opts into the rules leaving src, in option order.
func State[C, P any](src ID, opts ...Option[C, P]) []tablefsm.Rule[C, P] {
	var rules []tablefsm.Rule[C, P]
	for _, opt := range opts {
		opt(src, &rules)
	}
	return rules
}

// On adds an outbound transition to target. With a guard it becomes a
// conditional transition whose false branch goes to the WithElse target, or
// stays in the source state when there is none.
func On[C, P any](event tablefsm.EventID, target ID, opts ...TransOption[C, P]) Option[C, P] {
	return func(src ID, rules *[]tablefsm.Rule[C, P]) {
		t := &transition[C, P]{event: event, target: target}
		for _, opt := range opts {
			opt(t)
		}
		if t.guard == nil {
			*rules = append(*rules, tablefsm.Transition(src, t.event, t.target, t.actions...))
			return
		}
		elseTo := src
		if t.hasElseTo {
			elseTo = t.elseTo
		}
		*rules = append(*rules, tablefsm.ConditionalTransition(src, t.event, t.guard,
			t.target, t.actions, elseTo, t.elseActs))
	}
}

type TransOption[C, P any] func(*transition[C, P])

func WithGuard[C, P any](g tablefsm.Guard[C, P]) TransOption[C, P] {
	return func(t *transition[C, P]) { t.guard = g }
}

// WithAction appends actions run when the transition (or its guard) holds.
func WithAction[C, P any](acts ...tablefsm.Action[C, P]) TransOption[C, P] {
	return func(t *transition[C, P]) { t.actions = append(t.actions, acts...) }
}

// WithElse sets where a guarded transition goes when its guard fails.
func WithElse[C, P any](target ID, acts ...tablefsm.Action[C, P]) TransOption[C, P] {
	return func(t *transition[C, P]) {
		t.elseTo = target
		t.hasElseTo = true
		t.elseActs = append(t.elseActs, acts...)
	}
}

// Cycle links states into a ring on event: each state moves to the next and
// the last one back to the first.
func Cycle[C, P any](event tablefsm.EventID, states []ID, acts ...tablefsm.Action[C, P]) []tablefsm.Rule[C, P] {
	rules := make([]tablefsm.Rule[C, P], 0, len(states))
	for i, s := range states {
		rules = append(rules, tablefsm.Transition(s, event, states[(i+1)%len(states)], acts...))
	}
	return rules
}

// Concat joins rule groups in order. Later groups win where they overlap.
func Concat[C, P any](groups ...[]tablefsm.Rule[C, P]) []tablefsm.Rule[C, P] {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]tablefsm.Rule[C, P], 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
