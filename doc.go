// Package tablefsm resolves declarative transition rules into a dense
// state x event dispatch table and runs clients against it.
//
// A client declares its states and events as small contiguous integers,
// supplies actions and guards as plain functions taking the client and a
// parameter value, and lists the rules that connect them:
//
//	const (
//		Locked tablefsm.StateID = iota
//		Unlocked
//		stateCount
//	)
//
//	const (
//		Coin tablefsm.EventID = iota
//		Push
//		eventCount
//	)
//
//	table := tablefsm.NewBuilder[*Turnstile, struct{}](int(stateCount), int(eventCount)).
//		DefaultAction(Push, (*Turnstile).Beep).
//		Transition(Locked, Coin, Unlocked, (*Turnstile).Unlock).
//		Transition(Unlocked, Push, Locked, (*Turnstile).Lock).
//		MustBuild()
//
//	m := tablefsm.New(table, &Turnstile{})
//	m.Trigger(Coin, struct{}{})
//
// # Rules and precedence
//
// There are four rule kinds: DefaultAction, DefaultTransition, Transition and
// ConditionalTransition. Build applies them in the order given and each rule
// overwrites the cells it touches. The two default kinds touch the event's
// cell in every state, so they must come before the state-specific rules they
// are meant to be overridden by. A default declared later silently wins.
// WithPrecedence(PrecedenceSpecificity) applies rules by rank instead.
//
// Cells no rule touches keep the machine where it is and run nothing.
//
// # Dispatch
//
// Trigger looks up the current cell, evaluates its guard if there is one,
// stores the chosen branch's target state and then runs that branch's
// actions in order. Out-of-range states or events make Trigger a no-op.
//
// # Concurrency
//
// A Table is immutable after Build and may be shared freely. A Machine has no
// internal locking; use one machine per goroutine or serialize Trigger calls,
// for instance with the realtime package.
package tablefsm
