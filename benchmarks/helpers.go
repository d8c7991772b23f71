// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"github.com/comalice/tablefsm"
	"github.com/comalice/tablefsm/internal/production"
)

// Counter is the benchmark client.
type Counter struct {
	N int
}

// Params is the benchmark parameter type.
type Params struct {
	Value int
}

type (
	Rule   = tablefsm.Rule[*Counter, Params]
	Action = tablefsm.Action[*Counter, Params]
)

func Inc(c *Counter, _ Params) { c.N++ }

func Add(c *Counter, p Params) { c.N += p.Value }

func Even(c *Counter, _ Params) bool { return c.N%2 == 0 }

// Tick is the event every generated ring uses to advance.
const Tick tablefsm.EventID = 0

// GenRingRules creates n states cycling via Tick, each transition running Inc.
func GenRingRules(n int) []Rule {
	if n < 1 {
		n = 1
	}
	rules := make([]Rule, 0, n)
	for i := 0; i < n; i++ {
		rules = append(rules, tablefsm.Transition(tablefsm.StateID(i), Tick, tablefsm.StateID((i+1)%n), Action(Inc)))
	}
	return rules
}

// GenDenseRules creates a table where every (state, event) cell is written by
// a default and then by a specific transition.
func GenDenseRules(states, events int) []Rule {
	rules := make([]Rule, 0, events+states*events)
	for e := 0; e < events; e++ {
		rules = append(rules, tablefsm.DefaultAction(tablefsm.EventID(e), Action(Inc)))
	}
	for s := 0; s < states; s++ {
		for e := 0; e < events; e++ {
			rules = append(rules, tablefsm.Transition(tablefsm.StateID(s), tablefsm.EventID(e),
				tablefsm.StateID((s+e)%states), Action(Inc), Action(Add)))
		}
	}
	return rules
}

// GenGuardedRules creates a two-state flip-flop whose transitions are guarded
// by Even.
func GenGuardedRules() []Rule {
	guard := tablefsm.Guard[*Counter, Params](Even)
	return []Rule{
		tablefsm.ConditionalTransition(0, Tick, guard, 1, []Action{Inc}, 0, []Action{Inc}),
		tablefsm.ConditionalTransition(1, Tick, guard, 0, []Action{Inc}, 1, []Action{Inc}),
	}
}

// MustRing builds a ring table of n states.
func MustRing(n int) *tablefsm.Table[*Counter, Params] {
	return tablefsm.MustBuild(n, 1, GenRingRules(n))
}

// GenDescriptionYAML generates the YAML export of a dense table.
func GenDescriptionYAML(states, events int) []byte {
	table := tablefsm.MustBuild(states, events, GenDenseRules(states, events))
	v := &production.DefaultVisualizer{}
	data, err := v.ExportYAML(production.Describe("dense", table))
	if err != nil {
		panic(err)
	}
	return data
}
