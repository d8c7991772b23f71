package tablefsm

import "slices"

// ActionList is an ordered group of actions invoked together as one unit.
// The zero value is an empty list. Copying an ActionList is cheap and the
// copy shares the same immutable backing storage. The list itself has no
// capacity limit; Build rejects lists longer than the table's MaxActions.
type ActionList[C, P any] struct {
	actions []Action[C, P]
}

// NewActionList copies actions into a new list.
func NewActionList[C, P any](actions ...Action[C, P]) ActionList[C, P] {
	if len(actions) == 0 {
		return ActionList[C, P]{}
	}
	return ActionList[C, P]{actions: slices.Clip(slices.Clone(actions))}
}

func (l ActionList[C, P]) Len() int {
	return len(l.actions)
}

func (l ActionList[C, P]) IsEmpty() bool {
	return len(l.actions) == 0
}

// At returns the i-th action. It panics if i is out of range.
func (l ActionList[C, P]) At(i int) Action[C, P] {
	return l.actions[i]
}

// CallFor invokes every action in insertion order with the same client and params.
func (l ActionList[C, P]) CallFor(client C, params P) {
	for _, a := range l.actions {
		a(client, params)
	}
}

// firstNil reports the index of the first nil action, or -1.
func (l ActionList[C, P]) firstNil() int {
	for i, a := range l.actions {
		if a == nil {
			return i
		}
	}
	return -1
}
