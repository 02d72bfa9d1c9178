// Package host defines the environment the scene runs in: container and
// window sizes, touch capability and input/resize event subscription.
//
// Events are queued as they arrive and delivered to subscribers only when the
// frame loop calls Poll, so every subscriber runs on the game thread.
package host

// Size is a width/height pair in CSS/device-independent pixels.
type Size struct {
	Width  int
	Height int
}

// Empty reports whether either dimension is unusable.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// PointerEvent is a pointer move. PageX is window-relative.
// Valid is false when the source event carried no coordinate.
type PointerEvent struct {
	PageX float64
	Valid bool
}

// OrientationEvent is a device orientation change. Gamma is the left/right
// tilt in degrees. Valid is false when the source event carried no angle.
type OrientationEvent struct {
	Gamma float64
	Valid bool
}

// Environment is the capability set the scene needs from its host.
type Environment interface {
	// ContainerSize is the drawing surface's size; may be zero before the
	// host has laid it out.
	ContainerSize() Size
	// WindowSize is the enclosing window's size; pointer coordinates are
	// relative to it.
	WindowSize() Size
	TouchCapable() bool

	OnPointerMove(fn func(PointerEvent))
	OnOrientation(fn func(OrientationEvent))
	OnResize(fn func())

	// Poll delivers queued events. Called once per frame before the scene
	// updates.
	Poll()
}
