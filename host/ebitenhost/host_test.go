package ebitenhost

import (
	"testing"

	"github.com/automoto/testarossa/host"
	"github.com/stretchr/testify/require"
)

func resizeCounter(h *Host) *int {
	n := new(int)
	h.OnResize(func() { *n++ })
	return n
}

func TestLayoutFirstSizeIsNotAResize(t *testing.T) {
	h := New()
	n := resizeCounter(h)

	h.Layout(1280, 720)
	h.Dispatch()
	require.Zero(t, *n)
	require.Equal(t, host.Size{Width: 1280, Height: 720}, h.ContainerSize())
}

func TestLayoutSameSizeIsNotAResize(t *testing.T) {
	h := New()
	n := resizeCounter(h)

	h.Layout(1280, 720)
	h.Layout(1280, 720)
	h.Layout(1280, 720)
	h.Dispatch()
	require.Zero(t, *n)
}

func TestLayoutChangeQueuesOneResize(t *testing.T) {
	h := New()
	n := resizeCounter(h)

	h.Layout(1280, 720)
	h.Layout(800, 600)
	require.Zero(t, *n, "delivered on dispatch only")
	h.Dispatch()
	require.Equal(t, 1, *n)
	require.Equal(t, host.Size{Width: 800, Height: 600}, h.ContainerSize())
}

func TestLayoutAfterEmptySize(t *testing.T) {
	h := New()
	n := resizeCounter(h)

	h.Layout(1280, 720)
	h.Layout(0, 0)
	h.Dispatch()
	require.Zero(t, *n, "an empty size is not announced")
	require.True(t, h.ContainerSize().Empty())

	h.Layout(800, 600)
	h.Dispatch()
	require.Equal(t, 1, *n)

	// back to the announced size through an empty one: nothing changed
	h.Layout(0, 0)
	h.Layout(800, 600)
	h.Dispatch()
	require.Equal(t, 1, *n)
}

func TestLayoutStartingEmpty(t *testing.T) {
	h := New()
	n := resizeCounter(h)

	h.Layout(0, 0)
	h.Layout(390, 844)
	h.Dispatch()
	require.Equal(t, 1, *n, "the first real size after an empty canvas is announced")
}
