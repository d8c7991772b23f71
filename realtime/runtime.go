package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/comalice/tablefsm"
)

var (
	ErrQueueFull      = errors.New("event queue full")
	ErrAlreadyStarted = errors.New("runtime already started")
)

// Runtime owns a tablefsm.Machine and feeds it batched events from a single
// goroutine, one batch per tick. SendEvent may be called from any goroutine.
type Runtime[C, P any] struct {
	machine *tablefsm.Machine[C, P]
	logger  *slog.Logger

	// Tick-specific fields
	tickRate time.Duration
	ticker   *time.Ticker
	tickNum  uint64
	procMu   sync.Mutex // held while a batch is dispatched
	state    atomic.Int64

	// Event batching
	eventBatch  []EventWithMeta[P]
	batchMu     sync.Mutex
	sequenceNum uint64

	// Control
	tickCtx    context.Context
	tickCancel context.CancelFunc
	stopped    chan struct{}
}

// Config configures the real-time runtime
type Config struct {
	TickRate         time.Duration // Fixed tick rate (e.g., 16.67ms for 60 FPS)
	MaxEventsPerTick int           // Event queue capacity (default: 1000)
	Logger           *slog.Logger  // Receives recovered action panics (default: discard)
}

// NewRuntime wraps machine. After this call the machine must only be driven
// through the runtime.
func NewRuntime[C, P any](machine *tablefsm.Machine[C, P], cfg Config) *Runtime[C, P] {
	if cfg.MaxEventsPerTick == 0 {
		cfg.MaxEventsPerTick = 1000
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = 16667 * time.Microsecond // Default 60 FPS
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	rt := &Runtime[C, P]{
		machine:    machine,
		logger:     cfg.Logger,
		tickRate:   cfg.TickRate,
		eventBatch: make([]EventWithMeta[P], 0, cfg.MaxEventsPerTick),
	}
	rt.state.Store(int64(machine.GetCurrentState()))
	return rt
}

// Start begins tick-based execution. A runtime can only be started once.
func (rt *Runtime[C, P]) Start(ctx context.Context) error {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()
	if rt.stopped != nil {
		return ErrAlreadyStarted
	}

	rt.tickCtx, rt.tickCancel = context.WithCancel(ctx)
	rt.ticker = time.NewTicker(rt.tickRate)
	rt.stopped = make(chan struct{})

	go rt.tickLoop(rt.tickCtx, rt.ticker, rt.stopped)

	return nil
}

// Stop gracefully stops the runtime. Events still queued stay queued and are
// dispatched by a later Tick call.
func (rt *Runtime[C, P]) Stop() error {
	rt.batchMu.Lock()
	cancel, ticker, stopped := rt.tickCancel, rt.ticker, rt.stopped
	rt.batchMu.Unlock()

	if stopped == nil {
		return nil
	}
	cancel()
	ticker.Stop()

	// Wait for tick loop to exit
	<-stopped
	return nil
}

// tickLoop is the main tick execution loop
func (rt *Runtime[C, P]) tickLoop(ctx context.Context, ticker *time.Ticker, stopped chan struct{}) {
	defer close(stopped)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rt.Tick()
		}
	}
}

// SendEvent queues an event for the next tick (thread-safe)
func (rt *Runtime[C, P]) SendEvent(event tablefsm.EventID, params P) error {
	return rt.SendEventWithPriority(event, params, 0)
}

// SendEventWithPriority queues an event with priority. Higher priorities are
// dispatched first within a tick.
func (rt *Runtime[C, P]) SendEventWithPriority(event tablefsm.EventID, params P, priority int) error {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()

	if len(rt.eventBatch) >= cap(rt.eventBatch) {
		return ErrQueueFull
	}

	rt.eventBatch = append(rt.eventBatch, EventWithMeta[P]{
		Event:       event,
		Params:      params,
		SequenceNum: rt.sequenceNum,
		Priority:    priority,
	})
	rt.sequenceNum++

	return nil
}

// GetTickNumber returns the current tick count
func (rt *Runtime[C, P]) GetTickNumber() uint64 {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()
	return rt.tickNum
}

// GetCurrentState returns the machine state after the last dispatched event.
// Safe to call from any goroutine.
func (rt *Runtime[C, P]) GetCurrentState() tablefsm.StateID {
	return tablefsm.StateID(rt.state.Load())
}

// Pending returns the number of queued events.
func (rt *Runtime[C, P]) Pending() int {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()
	return len(rt.eventBatch)
}
