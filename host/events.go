package host

import (
	"slices"
	"sync"
)

type eventKind int

const (
	eventPointer eventKind = iota
	eventOrientation
	eventResize
)

type event struct {
	kind        eventKind
	pointer     PointerEvent
	orientation OrientationEvent
}

// Events is an event queue plus subscriber lists. Push methods are safe to call
// from any goroutine; Dispatch must be called from the game thread.
type Events struct {
	mu          sync.Mutex
	queue       []event
	pointer     []func(PointerEvent)
	orientation []func(OrientationEvent)
	resize      []func()
}

func (e *Events) OnPointerMove(fn func(PointerEvent)) {
	e.mu.Lock()
	e.pointer = append(e.pointer, fn)
	e.mu.Unlock()
}

func (e *Events) OnOrientation(fn func(OrientationEvent)) {
	e.mu.Lock()
	e.orientation = append(e.orientation, fn)
	e.mu.Unlock()
}

func (e *Events) OnResize(fn func()) {
	e.mu.Lock()
	e.resize = append(e.resize, fn)
	e.mu.Unlock()
}

// HasOrientationListeners reports whether anything subscribed to orientation.
func (e *Events) HasOrientationListeners() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.orientation) > 0
}

func (e *Events) PushPointer(ev PointerEvent) {
	e.push(event{kind: eventPointer, pointer: ev})
}

func (e *Events) PushOrientation(ev OrientationEvent) {
	e.push(event{kind: eventOrientation, orientation: ev})
}

func (e *Events) PushResize() {
	e.push(event{kind: eventResize})
}

func (e *Events) push(ev event) {
	e.mu.Lock()
	e.queue = append(e.queue, ev)
	e.mu.Unlock()
}

// Dispatch delivers every queued event, in arrival order, to the subscribers
// registered at the time of the call.
func (e *Events) Dispatch() {
	e.mu.Lock()
	queue := e.queue
	e.queue = nil
	pointer := slices.Clone(e.pointer)
	orientation := slices.Clone(e.orientation)
	resize := slices.Clone(e.resize)
	e.mu.Unlock()

	for _, ev := range queue {
		switch ev.kind {
		case eventPointer:
			for _, fn := range pointer {
				fn(ev.pointer)
			}
		case eventOrientation:
			for _, fn := range orientation {
				fn(ev.orientation)
			}
		case eventResize:
			for _, fn := range resize {
				fn()
			}
		}
	}
}
