package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/tablefsm"
)

// TestAdapterInterface runs the same round trip through both adapters.
func TestAdapterInterface(t *testing.T) {
	const (
		stateA tablefsm.StateID = iota
		stateB
	)
	const (
		event1 tablefsm.EventID = iota
		event2
	)

	table := tablefsm.NewBuilder[*Recorder, string](2, 2).
		Transition(stateA, event1, stateB, Action[string]("a->b")).
		Transition(stateB, event2, stateA, Action[string]("b->a")).
		MustBuild()

	tests := []struct {
		name    string
		adapter func(*tablefsm.Machine[*Recorder, string]) RuntimeAdapter[string]
	}{
		{
			name: "Direct",
			adapter: func(m *tablefsm.Machine[*Recorder, string]) RuntimeAdapter[string] {
				return NewDirectAdapter(m)
			},
		},
		{
			name: "TickBased",
			adapter: func(m *tablefsm.Machine[*Recorder, string]) RuntimeAdapter[string] {
				return NewTickBasedAdapter(m, 5*time.Millisecond)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder()
			a := tt.adapter(tablefsm.New(table, rec))

			require.NoError(t, a.Start(context.Background()))
			defer a.Stop()

			assert.True(t, a.IsInState(stateA))

			require.NoError(t, a.SendEvent(event1, "x"))
			require.NoError(t, a.WaitForStability(time.Second))
			assert.Equal(t, stateB, a.GetCurrentState())

			require.NoError(t, a.SendEvent(event2, "y"))
			require.NoError(t, a.WaitForStability(time.Second))
			assert.True(t, a.IsInState(stateA))

			assert.Equal(t, []string{"a->b", "b->a"}, rec.Names())
		})
	}
}
