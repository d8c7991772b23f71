package production

import (
	"github.com/comalice/tablefsm"
)

const (
	locked tablefsm.StateID = iota
	unlocked
	broken
)

const (
	coin tablefsm.EventID = iota
	push
	kick
)

type turnstile struct {
	coins int
	alarm bool
}

func (t *turnstile) accept(int)     { t.coins++ }
func (t *turnstile) soundAlarm(int) { t.alarm = true }
func (t *turnstile) sturdy(int) bool {
	return !t.alarm
}

func turnstileTable() *tablefsm.Table[*turnstile, int] {
	return tablefsm.NewBuilder[*turnstile, int](3, 3,
		tablefsm.WithStateNames("locked", "unlocked", "broken"),
		tablefsm.WithEventNames("coin", "push", "kick"),
	).
		DefaultAction(coin, (*turnstile).accept).
		Transition(locked, coin, unlocked, (*turnstile).accept).
		Transition(unlocked, push, locked).
		ConditionalTransition(locked, kick, (*turnstile).sturdy,
			locked, []tablefsm.Action[*turnstile, int]{(*turnstile).soundAlarm},
			broken, nil).
		MustBuild()
}
