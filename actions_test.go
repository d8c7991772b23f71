package tablefsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionListCallForOrder(t *testing.T) {
	var got []string
	mk := func(name string) Action[*[]string, int] {
		return func(c *[]string, p int) {
			*c = append(*c, name)
			assert.Equal(t, 7, p)
		}
	}

	l := NewActionList(mk("a"), mk("b"), mk("c"))
	l.CallFor(&got, 7)

	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 3, l.Len())
	assert.False(t, l.IsEmpty())
}

func TestActionListEmpty(t *testing.T) {
	var zero ActionList[int, int]
	assert.True(t, zero.IsEmpty())
	assert.NotPanics(t, func() { zero.CallFor(0, 0) })

	assert.True(t, NewActionList[int, int]().IsEmpty())
}

func TestActionListCopiesInput(t *testing.T) {
	called := ""
	a := Action[int, int](func(int, int) { called = "a" })
	b := Action[int, int](func(int, int) { called = "b" })

	in := []Action[int, int]{a}
	l := NewActionList(in...)
	in[0] = b

	l.At(0)(0, 0)
	assert.Equal(t, "a", called)
}

func TestActionListFirstNil(t *testing.T) {
	a := Action[int, int](func(int, int) {})
	assert.Equal(t, -1, NewActionList(a, a).firstNil())
	assert.Equal(t, 1, NewActionList(a, nil).firstNil())
}
