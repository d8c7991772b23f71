// Package testutil provides stub clients and runtime adapters for tests.
package testutil

import (
	"sync"

	"github.com/comalice/tablefsm"
)

// Call is one recorded action or guard invocation.
type Call struct {
	Name   string
	Params any
	State  tablefsm.StateID // machine state seen by the callback, if a probe is set
}

// Recorder is a stub client. Actions built with Action append to its call log
// and guards built with Guard answer from a script set with SetGuard.
type Recorder struct {
	mu      sync.Mutex
	calls   []Call
	guards  map[string][]bool
	guarded []string
	probe   func() tablefsm.StateID
}

func NewRecorder() *Recorder {
	return &Recorder{guards: make(map[string][]bool)}
}

// Probe makes every recorded call capture the state returned by fn.
// Typically fn is a machine's GetCurrentState.
func (r *Recorder) Probe(fn func() tablefsm.StateID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probe = fn
}

// SetGuard scripts the answers of the named guard. Answers are consumed in
// order and the last one repeats. A guard with no script answers true.
func (r *Recorder) SetGuard(name string, answers ...bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guards[name] = answers
}

// Names returns the names of recorded action calls in call order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// Calls returns a copy of the recorded action calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// GuardCalls returns the names of evaluated guards in evaluation order.
func (r *Recorder) GuardCalls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.guarded))
	copy(out, r.guarded)
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.guarded = nil
}

func (r *Recorder) record(name string, params any) {
	r.mu.Lock()
	probe := r.probe
	r.mu.Unlock()

	c := Call{Name: name, Params: params, State: tablefsm.NoState}
	if probe != nil {
		c.State = probe()
	}

	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

func (r *Recorder) answer(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guarded = append(r.guarded, name)
	script := r.guards[name]
	switch len(script) {
	case 0:
		return true
	case 1:
		return script[0]
	default:
		r.guards[name] = script[1:]
		return script[0]
	}
}

// Action returns an action that records name and its params on the client.
func Action[P any](name string) tablefsm.Action[*Recorder, P] {
	return func(r *Recorder, p P) {
		r.record(name, p)
	}
}

// Guard returns a guard answering from the client's script for name.
func Guard[P any](name string) tablefsm.Guard[*Recorder, P] {
	return func(r *Recorder, _ P) bool {
		return r.answer(name)
	}
}
