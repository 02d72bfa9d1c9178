// Package ebitenhost implements host.Environment on top of ebiten. Sizes come
// from the game's Layout, pointer moves from cursor/touch polling, and device
// orientation from the browser when built for js/wasm.
package ebitenhost

import (
	"sync"

	"github.com/automoto/testarossa/host"
	"github.com/hajimehoshi/ebiten/v2"
)

var _ host.Environment = (*Host)(nil)

type Host struct {
	host.Events

	mu        sync.Mutex
	container host.Size
	notified  host.Size // last non-empty size subscribers were told about
	laidOut   bool

	orientationOnce sync.Once

	cursorX    int
	cursorSeen bool
	touchIDs   []ebiten.TouchID
}

func New() *Host {
	return &Host{}
}

// Layout records the outside size ebiten reports. After the first layout, a
// non-empty size that differs from the last notified one queues a resize
// notification; empty sizes are recorded but never announced.
func (h *Host) Layout(outsideWidth, outsideHeight int) {
	size := host.Size{Width: outsideWidth, Height: outsideHeight}

	h.mu.Lock()
	h.container = size
	first := !h.laidOut
	h.laidOut = true
	changed := !size.Empty() && size != h.notified
	if first || changed {
		h.notified = size
	}
	h.mu.Unlock()

	if changed && !first {
		h.PushResize()
	}
}

func (h *Host) ContainerSize() host.Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.container
}

func (h *Host) WindowSize() host.Size {
	return windowSize()
}

func (h *Host) TouchCapable() bool {
	return touchCapable()
}

// OnOrientation subscribes fn and, on first use, starts listening to the
// platform's orientation sensor.
func (h *Host) OnOrientation(fn func(host.OrientationEvent)) {
	h.Events.OnOrientation(fn)
	h.orientationOnce.Do(func() {
		listenOrientation(h.PushOrientation)
	})
}

// Poll samples the pointer and delivers every queued event.
func (h *Host) Poll() {
	h.samplePointer()
	h.Dispatch()
}

// samplePointer queues a pointer move when the cursor (or first touch) x
// changed since the last frame.
func (h *Host) samplePointer() {
	x, ok := h.pointerX()
	if !ok {
		return
	}
	if h.cursorSeen && x == h.cursorX {
		return
	}
	h.cursorX = x
	h.cursorSeen = true
	h.PushPointer(host.PointerEvent{PageX: float64(x), Valid: true})
}

func (h *Host) pointerX() (int, bool) {
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	if len(h.touchIDs) > 0 {
		x, _ := ebiten.TouchPosition(h.touchIDs[0])
		return x, true
	}

	x, y := ebiten.CursorPosition()
	size := h.ContainerSize()
	if size.Empty() || x < 0 || y < 0 || x >= size.Width || y >= size.Height {
		// cursor outside the window: keep the last target
		return 0, false
	}
	return x, true
}
