// Package extensibility holds event sources and callback decorators that plug
// external inputs and cross-cutting behaviour into tablefsm machines.
package extensibility

import (
	"context"
	"time"

	"github.com/comalice/tablefsm"
)

// Input is one event with its parameters, as produced by an event source.
type Input[P any] struct {
	Event  tablefsm.EventID
	Params P
}

// EventSource is anything that produces inputs on a channel. The channel is
// closed when the source is exhausted or stopped.
type EventSource[P any] interface {
	Events() <-chan Input[P]
}

// ChannelEventSource is an EventSource implementation backed by a Go channel.
// Provides a simple way to feed external events into a machine via Send.
type ChannelEventSource[P any] struct {
	ch chan Input[P]
}

// NewChannelEventSource creates a new ChannelEventSource with the given channel.
// The channel should be buffered if backpressure handling is needed.
func NewChannelEventSource[P any](ch chan Input[P]) *ChannelEventSource[P] {
	return &ChannelEventSource[P]{ch: ch}
}

// Events returns the receive-only channel for events.
func (s *ChannelEventSource[P]) Events() <-chan Input[P] {
	return s.ch
}

// Send blocks until the input is accepted or ctx is done.
func (s *ChannelEventSource[P]) Send(ctx context.Context, event tablefsm.EventID, params P) error {
	select {
	case s.ch <- Input[P]{Event: event, Params: params}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the underlying channel. Send must not be called afterwards.
func (s *ChannelEventSource[P]) Close() {
	close(s.ch)
}

// TimerEventSource generates periodic events using time.Ticker.
// Useful for timeout and heartbeat events.
type TimerEventSource[P any] struct {
	ch     chan Input[P]
	input  Input[P]
	ticker *time.Ticker
	stop   chan struct{}
}

// NewTimerEventSource creates a TimerEventSource that emits event with params
// every d. Ticks are dropped while the consumer lags behind.
func NewTimerEventSource[P any](event tablefsm.EventID, params P, d time.Duration) *TimerEventSource[P] {
	t := &TimerEventSource[P]{
		ch:     make(chan Input[P], 10),
		input:  Input[P]{Event: event, Params: params},
		ticker: time.NewTicker(d),
		stop:   make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *TimerEventSource[P]) run() {
	for {
		select {
		case <-t.ticker.C:
			select {
			case t.ch <- t.input:
			default:
				// drop if full
			}
		case <-t.stop:
			t.ticker.Stop()
			close(t.ch)
			return
		}
	}
}

// Events returns the event channel.
func (t *TimerEventSource[P]) Events() <-chan Input[P] {
	return t.ch
}

// Stop stops the ticker and closes the channel. It must be called once.
func (t *TimerEventSource[P]) Stop() {
	close(t.stop)
}

// Forward pumps src into sink until the source channel closes, ctx is done or
// sink returns an error. It returns nil when the source is exhausted.
func Forward[P any](ctx context.Context, src EventSource[P], sink func(tablefsm.EventID, P) error) error {
	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-events:
			if !ok {
				return nil
			}
			if err := sink(in.Event, in.Params); err != nil {
				return err
			}
		}
	}
}
