package tablefsm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comalice/tablefsm"
	"github.com/comalice/tablefsm/testutil"
)

const (
	s1 tablefsm.StateID = iota
	s2
	s3
	s4
	numStates
)

const (
	e1 tablefsm.EventID = iota
	e2
	numEvents
)

type (
	rule   = tablefsm.Rule[*testutil.Recorder, int]
	action = tablefsm.Action[*testutil.Recorder, int]
)

var (
	transition  = tablefsm.Transition[*testutil.Recorder, int]
	conditional = tablefsm.ConditionalTransition[*testutil.Recorder, int]

	actA = testutil.Action[int]("A")
	actB = testutil.Action[int]("B")
	actC = testutil.Action[int]("C")
)

// newMachine builds a table from rules and binds a fresh recorder to it,
// starting in start.
func newMachine(t *testing.T, start tablefsm.StateID, rules ...rule) (*tablefsm.Machine[*testutil.Recorder, int], *testutil.Recorder) {
	t.Helper()
	table, err := tablefsm.Build(int(numStates), int(numEvents), rules)
	require.NoError(t, err)
	rec := testutil.NewRecorder()
	return tablefsm.New(table, rec, tablefsm.WithStartState(start)), rec
}
