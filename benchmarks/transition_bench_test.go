package benchmarks

import (
	"testing"

	"github.com/comalice/tablefsm"
)

func BenchmarkSimpleTransition(b *testing.B) {
	m := tablefsm.New(MustRing(2), &Counter{})
	p := Params{Value: 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Trigger(Tick, p)
	}
}

func BenchmarkMultiActionTransition(b *testing.B) {
	table := tablefsm.MustBuild(4, 4, GenDenseRules(4, 4))
	m := tablefsm.New(table, &Counter{})
	p := Params{Value: 2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Trigger(tablefsm.EventID(i&3), p)
	}
}

func BenchmarkGuardedTransition(b *testing.B) {
	table := tablefsm.MustBuild(2, 1, GenGuardedRules())
	m := tablefsm.New(table, &Counter{})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Trigger(Tick, Params{})
	}
}

func BenchmarkIgnoredEvent(b *testing.B) {
	m := tablefsm.New(MustRing(2), &Counter{})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Trigger(99, Params{})
	}
}

func BenchmarkObservedTransition(b *testing.B) {
	n := 0
	obs := tablefsm.ObserverFunc(func(tablefsm.Record) { n++ })
	m := tablefsm.New(MustRing(2), &Counter{}, tablefsm.WithObserver(obs))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Trigger(Tick, Params{})
	}
}
