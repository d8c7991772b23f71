package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/comalice/tablefsm"
	"github.com/comalice/tablefsm/realtime"
)

var ErrNotStable = errors.New("runtime did not settle before timeout")

// RuntimeAdapter provides a common interface for driving a machine directly
// and through the tick-based runtime.
// This allows running the same test suite on both.
type RuntimeAdapter[P any] interface {
	Start(ctx context.Context) error
	Stop() error
	SendEvent(event tablefsm.EventID, params P) error
	IsInState(state tablefsm.StateID) bool
	GetCurrentState() tablefsm.StateID
	WaitForStability(timeout time.Duration) error
}

// DirectAdapter triggers the machine synchronously on the caller's goroutine.
type DirectAdapter[C, P any] struct {
	m *tablefsm.Machine[C, P]
}

func NewDirectAdapter[C, P any](m *tablefsm.Machine[C, P]) *DirectAdapter[C, P] {
	return &DirectAdapter[C, P]{m: m}
}

func (a *DirectAdapter[C, P]) Start(context.Context) error { return nil }

func (a *DirectAdapter[C, P]) Stop() error { return nil }

func (a *DirectAdapter[C, P]) SendEvent(event tablefsm.EventID, params P) error {
	a.m.Trigger(event, params)
	return nil
}

func (a *DirectAdapter[C, P]) IsInState(state tablefsm.StateID) bool {
	return a.m.GetCurrentState() == state
}

func (a *DirectAdapter[C, P]) GetCurrentState() tablefsm.StateID {
	return a.m.GetCurrentState()
}

// WaitForStability returns at once: every SendEvent has completed.
func (a *DirectAdapter[C, P]) WaitForStability(time.Duration) error { return nil }

// TickBasedAdapter wraps the tick-based runtime
type TickBasedAdapter[C, P any] struct {
	rt       *realtime.Runtime[C, P]
	tickRate time.Duration
}

// NewTickBasedAdapter creates a new adapter for the tick-based runtime
func NewTickBasedAdapter[C, P any](m *tablefsm.Machine[C, P], tickRate time.Duration) *TickBasedAdapter[C, P] {
	return &TickBasedAdapter[C, P]{
		rt: realtime.NewRuntime(m, realtime.Config{
			TickRate: tickRate,
		}),
		tickRate: tickRate,
	}
}

func (a *TickBasedAdapter[C, P]) Start(ctx context.Context) error {
	return a.rt.Start(ctx)
}

func (a *TickBasedAdapter[C, P]) Stop() error {
	return a.rt.Stop()
}

func (a *TickBasedAdapter[C, P]) SendEvent(event tablefsm.EventID, params P) error {
	return a.rt.SendEvent(event, params)
}

func (a *TickBasedAdapter[C, P]) IsInState(state tablefsm.StateID) bool {
	return a.rt.GetCurrentState() == state
}

func (a *TickBasedAdapter[C, P]) GetCurrentState() tablefsm.StateID {
	return a.rt.GetCurrentState()
}

// WaitForStability waits until the queue is drained and the tick that
// drained it has finished.
func (a *TickBasedAdapter[C, P]) WaitForStability(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	poll := a.tickRate / 4
	if poll <= 0 {
		poll = time.Millisecond
	}

	for a.rt.Pending() > 0 {
		if time.Now().After(deadline) {
			return ErrNotStable
		}
		time.Sleep(poll)
	}
	tick := a.rt.GetTickNumber()
	for a.rt.GetTickNumber() <= tick {
		if time.Now().After(deadline) {
			return ErrNotStable
		}
		time.Sleep(poll)
	}
	return nil
}
