package eventbus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiger-punch-sports-club/ecsreg/eventbus"
)

type entityDestroyed struct{ Index uint32 }
type scoreChanged struct{ Delta int }

func TestEmitIsInvisibleUntilSwapAndDispatch(t *testing.T) {
	b := eventbus.NewBus()
	var got []entityDestroyed
	eventbus.Subscribe(b, func(e entityDestroyed) { got = append(got, e) })

	eventbus.Emit(b, entityDestroyed{Index: 1})
	b.Dispatch()
	require.Empty(t, got, "emit before swap must not be visible yet")

	b.SwapBuffers()
	b.Dispatch()
	require.Equal(t, []entityDestroyed{{Index: 1}}, got)
}

func TestDispatchReplaysFrontBufferUntilNextSwap(t *testing.T) {
	b := eventbus.NewBus()
	calls := 0
	eventbus.Subscribe(b, func(e scoreChanged) { calls++ })

	eventbus.Emit(b, scoreChanged{Delta: 5})
	b.SwapBuffers()
	b.Dispatch()
	b.Dispatch()
	require.Equal(t, 2, calls, "dispatch replays the front buffer until the next swap")
}

func TestMultipleHandlersAllFire(t *testing.T) {
	b := eventbus.NewBus()
	var a, c int
	eventbus.Subscribe(b, func(e scoreChanged) { a++ })
	eventbus.Subscribe(b, func(e scoreChanged) { c++ })

	eventbus.Emit(b, scoreChanged{Delta: 1})
	b.SwapBuffers()
	b.Dispatch()

	require.Equal(t, 1, a)
	require.Equal(t, 1, c)
}

func TestDistinctTypesDoNotCrossDeliver(t *testing.T) {
	b := eventbus.NewBus()
	var destroyed []entityDestroyed
	var scores []scoreChanged
	eventbus.Subscribe(b, func(e entityDestroyed) { destroyed = append(destroyed, e) })
	eventbus.Subscribe(b, func(e scoreChanged) { scores = append(scores, e) })

	eventbus.Emit(b, entityDestroyed{Index: 7})
	b.SwapBuffers()
	b.Dispatch()

	require.Len(t, destroyed, 1)
	require.Empty(t, scores)
}
