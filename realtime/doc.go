// Package realtime provides a tick-based, serialized runtime for tablefsm
// machines.
//
// A tablefsm.Machine has no locking. The Runtime takes ownership of one
// machine and becomes the only goroutine that calls Trigger on it:
//   - Events are batched and processed at fixed tick boundaries
//   - Deterministic event ordering via priority, then sequence number
//   - SendEvent is safe to call from any number of goroutines
//   - GetCurrentState is safe to call from any goroutine
//
// # Example Usage
//
//	m := tablefsm.New(table, client)
//	rt := realtime.NewRuntime(m, realtime.Config{
//		TickRate: 16667 * time.Microsecond, // 60 FPS
//	})
//	rt.Start(ctx)
//	defer rt.Stop()
//	rt.SendEvent(Coin, struct{}{})
//
// # Event Ordering Guarantees
//
// Within one tick events are ordered by:
//  1. Priority (higher priority processed first)
//  2. Sequence number (FIFO for same priority)
//
// Given the same sequence of SendEvent calls the machine runs the same way,
// regardless of timing. Re-entrant Trigger calls made by actions are not
// queued; they run immediately on the tick goroutine, as with a bare machine.
//
// # Failure handling
//
// A panicking action is recovered and logged. The machine stays in the state
// the transition had already moved it to and the rest of the batch runs.
//
// # Trade-offs vs a bare Machine
//
// Higher latency (up to one tick) in exchange for safe concurrent senders.
// Tick can be called directly for step-by-step tests.
package realtime
