package realtime

import (
	"context"
	"log/slog"
)

// Tick processes one complete tick synchronously: it drains the batch,
// orders it and dispatches every event to the machine. The tick loop calls
// Tick on every ticker fire; tests may call it directly.
func (rt *Runtime[C, P]) Tick() {
	rt.procMu.Lock()
	defer rt.procMu.Unlock()

	// Phase 1: Collect events atomically
	events := rt.collectEvents()

	// Phase 2: Sort for deterministic order
	sortEvents(events)

	// Phase 3: Dispatch in order
	rt.processEvents(events)

	rt.batchMu.Lock()
	rt.tickNum++
	rt.batchMu.Unlock()
}

// collectEvents atomically retrieves and clears the event batch
func (rt *Runtime[C, P]) collectEvents() []EventWithMeta[P] {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()

	events := rt.eventBatch
	rt.eventBatch = make([]EventWithMeta[P], 0, cap(rt.eventBatch))

	return events
}

// processEvents processes all events for this tick
func (rt *Runtime[C, P]) processEvents(events []EventWithMeta[P]) {
	for _, ev := range events {
		rt.dispatch(ev)
	}
}

// dispatch triggers one event. A panicking action is logged and does not
// stop the rest of the batch; the machine keeps the state it was given
// before the actions ran.
func (rt *Runtime[C, P]) dispatch(ev EventWithMeta[P]) {
	defer func() {
		if r := recover(); r != nil {
			rt.logger.LogAttrs(context.Background(), slog.LevelError, "action panicked",
				slog.String("machine", rt.machine.ID()),
				slog.Int("event", int(ev.Event)),
				slog.Uint64("sequence", ev.SequenceNum),
				slog.Any("panic", r),
			)
		}
		rt.state.Store(int64(rt.machine.GetCurrentState()))
	}()

	rt.machine.Trigger(ev.Event, ev.Params)
}
