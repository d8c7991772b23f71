package production

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/tablefsm"
	"github.com/comalice/tablefsm/internal/extensibility"
	"github.com/comalice/tablefsm/internal/primitives"
)

func TestDescribe(t *testing.T) {
	desc := Describe("turnstile", turnstileTable())

	require.NoError(t, desc.Validate())
	assert.Equal(t, "turnstile", desc.ID)
	assert.Equal(t, []string{"locked", "unlocked", "broken"}, desc.States)
	assert.Equal(t, []string{"coin", "push", "kick"}, desc.Events)
	assert.Equal(t, 0, desc.Initial)
	assert.Equal(t, 2, desc.MaxActions)
	assert.Equal(t, "declaration-order", desc.Precedence)

	byCell := map[[2]int]primitives.CellDescription{}
	for _, c := range desc.Cells {
		byCell[[2]int{c.State, c.Event}] = c
	}

	// coin in every state runs accept; only locked moves.
	for s := 0; s < 3; s++ {
		c, ok := byCell[[2]int{s, int(coin)}]
		require.True(t, ok, "coin cell for state %d", s)
		require.Len(t, c.Primary.Actions, 1)
		assert.Contains(t, c.Primary.Actions[0], "accept")
	}
	assert.Equal(t, int(unlocked), byCell[[2]int{int(locked), int(coin)}].Primary.Target)

	pushCell := byCell[[2]int{int(unlocked), int(push)}]
	assert.Equal(t, int(locked), pushCell.Primary.Target)
	assert.Empty(t, pushCell.Primary.Actions)

	kickCell := byCell[[2]int{int(locked), int(kick)}]
	assert.Contains(t, kickCell.Guard, "sturdy")
	require.NotNil(t, kickCell.Secondary)
	assert.Equal(t, int(broken), kickCell.Secondary.Target)

	// Untouched cells are left out.
	_, ok := byCell[[2]int{int(locked), int(push)}]
	assert.False(t, ok)
	assert.Len(t, desc.Cells, 5)
}

func TestDescribeUsesLoggedNames(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	accept := extensibility.LoggedAction[*turnstile, int]("accept coin", (*turnstile).accept, logger)
	alarm := extensibility.LoggedAction[*turnstile, int]("alarm", (*turnstile).soundAlarm, logger)
	sturdy := extensibility.LoggedGuard[*turnstile, int]("sturdy", (*turnstile).sturdy, logger)

	table := tablefsm.NewBuilder[*turnstile, int](3, 3).
		Transition(locked, coin, unlocked, accept).
		ConditionalTransition(locked, kick, sturdy,
			locked, []tablefsm.Action[*turnstile, int]{alarm},
			broken, nil).
		MustBuild()

	desc := Describe("logged", table)
	require.Len(t, desc.Cells, 2)

	byCell := map[[2]int]primitives.CellDescription{}
	for _, c := range desc.Cells {
		byCell[[2]int{c.State, c.Event}] = c
	}
	assert.Equal(t, []string{"accept coin"}, byCell[[2]int{int(locked), int(coin)}].Primary.Actions)

	kickCell := byCell[[2]int{int(locked), int(kick)}]
	assert.Equal(t, "sturdy", kickCell.Guard)
	assert.Equal(t, []string{"alarm"}, kickCell.Primary.Actions)
}

func TestDescribeVersionIsStable(t *testing.T) {
	a := Describe("t", turnstileTable())
	b := Describe("t", turnstileTable())
	assert.Equal(t, primitives.ComputeVersion(&a), primitives.ComputeVersion(&b))
}

func TestFuncName(t *testing.T) {
	assert.Equal(t, "", funcName(nil))
	assert.Equal(t, "production.TestFuncName", funcName(TestFuncName))
}
