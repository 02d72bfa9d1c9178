package host

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchUsesSubscribersAtCallTime(t *testing.T) {
	var ev Events

	var first, late []float64
	ev.OnPointerMove(func(p PointerEvent) {
		first = append(first, p.PageX)
		if len(first) == 1 {
			ev.OnPointerMove(func(p PointerEvent) { late = append(late, p.PageX) })
		}
	})

	ev.PushPointer(PointerEvent{PageX: 1, Valid: true})
	ev.PushPointer(PointerEvent{PageX: 2, Valid: true})
	ev.Dispatch()
	require.Equal(t, []float64{1, 2}, first)
	require.Empty(t, late, "a subscriber added mid-dispatch waits for the next poll")

	ev.PushPointer(PointerEvent{PageX: 3, Valid: true})
	ev.Dispatch()
	require.Equal(t, []float64{1, 2, 3}, first)
	require.Equal(t, []float64{3}, late)
}

func TestDispatchAllKinds(t *testing.T) {
	var ev Events
	var got []string
	ev.OnPointerMove(func(PointerEvent) { got = append(got, "pointer") })
	ev.OnOrientation(func(OrientationEvent) { got = append(got, "orientation") })
	ev.OnResize(func() { got = append(got, "resize") })
	require.True(t, ev.HasOrientationListeners())

	ev.PushResize()
	ev.PushOrientation(OrientationEvent{Gamma: 3, Valid: true})
	ev.PushPointer(PointerEvent{PageX: 4, Valid: true})
	ev.Dispatch()
	require.Equal(t, []string{"resize", "orientation", "pointer"}, got)
}
