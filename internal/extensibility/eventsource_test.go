package extensibility

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/tablefsm"
)

func TestChannelEventSource(t *testing.T) {
	s := NewChannelEventSource(make(chan Input[string], 1))

	require.NoError(t, s.Send(context.Background(), 3, "data"))
	assert.Equal(t, Input[string]{Event: 3, Params: "data"}, <-s.Events())
}

func TestChannelEventSource_SendHonoursContext(t *testing.T) {
	s := NewChannelEventSource(make(chan Input[int]))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Send(ctx, 1, 1), context.Canceled)
}

func TestTimerEventSource(t *testing.T) {
	s := NewTimerEventSource[string](7, "data", 10*time.Millisecond)
	defer s.Stop()

	for i := 0; i < 2; i++ {
		select {
		case in := <-s.Events():
			assert.Equal(t, tablefsm.EventID(7), in.Event)
			assert.Equal(t, "data", in.Params)
		case <-time.After(time.Second):
			t.Fatalf("no event %d received", i)
		}
	}
}

func TestTimerEventSource_Stop(t *testing.T) {
	s := NewTimerEventSource[any](0, nil, time.Millisecond)
	s.Stop()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-s.Events():
			return !ok
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}

func TestForward(t *testing.T) {
	ch := make(chan Input[int], 3)
	ch <- Input[int]{Event: 0, Params: 1}
	ch <- Input[int]{Event: 1, Params: 2}
	close(ch)

	var got []Input[int]
	err := Forward(context.Background(), NewChannelEventSource(ch), func(e tablefsm.EventID, p int) error {
		got = append(got, Input[int]{Event: e, Params: p})
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []Input[int]{{Event: 0, Params: 1}, {Event: 1, Params: 2}}, got)
}

func TestForward_SinkError(t *testing.T) {
	ch := make(chan Input[int], 2)
	ch <- Input[int]{}
	ch <- Input[int]{}

	errSink := errors.New("sink full")
	calls := 0
	err := Forward(context.Background(), NewChannelEventSource(ch), func(tablefsm.EventID, int) error {
		calls++
		return errSink
	})

	assert.ErrorIs(t, err, errSink)
	assert.Equal(t, 1, calls)
}

func TestForward_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Forward(ctx, NewChannelEventSource(make(chan Input[int])), func(tablefsm.EventID, int) error {
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
