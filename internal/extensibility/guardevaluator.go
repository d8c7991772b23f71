package extensibility

import "github.com/comalice/tablefsm"

// Not negates guard.
func Not[C, P any](guard tablefsm.Guard[C, P]) tablefsm.Guard[C, P] {
	return func(client C, params P) bool {
		return !guard(client, params)
	}
}

// All holds when every guard holds. Evaluation stops at the first false one.
// All of nothing is true.
func All[C, P any](guards ...tablefsm.Guard[C, P]) tablefsm.Guard[C, P] {
	return func(client C, params P) bool {
		for _, g := range guards {
			if !g(client, params) {
				return false
			}
		}
		return true
	}
}

// Any holds when at least one guard holds. Evaluation stops at the first true
// one. Any of nothing is false.
func Any[C, P any](guards ...tablefsm.Guard[C, P]) tablefsm.Guard[C, P] {
	return func(client C, params P) bool {
		for _, g := range guards {
			if g(client, params) {
				return true
			}
		}
		return false
	}
}
