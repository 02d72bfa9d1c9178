package host

import (
	"context"
	"fmt"
	"sync"
	"time"
)

var _ Environment = (*Headless)(nil)

// Headless is a scripted Environment with no display. Tests and the
// -headless run mode drive it by queuing events directly.
type Headless struct {
	Events

	sizeMu    sync.Mutex
	container Size
	window    Size
	touch     bool
}

func NewHeadless(container, window Size, touch bool) *Headless {
	return &Headless{
		container: container,
		window:    window,
		touch:     touch,
	}
}

func (h *Headless) ContainerSize() Size {
	h.sizeMu.Lock()
	defer h.sizeMu.Unlock()
	return h.container
}

func (h *Headless) WindowSize() Size {
	h.sizeMu.Lock()
	defer h.sizeMu.Unlock()
	return h.window
}

func (h *Headless) TouchCapable() bool { return h.touch }

// Resize changes both sizes and queues a resize notification.
func (h *Headless) Resize(container, window Size) {
	h.sizeMu.Lock()
	h.container = container
	h.window = window
	h.sizeMu.Unlock()
	h.PushResize()
}

// MovePointer queues a pointer move to window-relative x.
func (h *Headless) MovePointer(x float64) {
	h.PushPointer(PointerEvent{PageX: x, Valid: true})
}

// Tilt queues a device orientation change.
func (h *Headless) Tilt(gamma float64) {
	h.PushOrientation(OrientationEvent{Gamma: gamma, Valid: true})
}

func (h *Headless) Poll() { h.Dispatch() }

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz     int
	Frames uint64 // stop after N frames (0 = run until ctx is done)
}

// RunHeadless calls frame at Hz until ctx is done, frame fails, or the frame
// budget is spent. frame runs to completion before the next tick is taken.
func RunHeadless(ctx context.Context, frame func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := frame(); err != nil {
				return err
			}
			n++
			if cfg.Frames > 0 && n >= cfg.Frames {
				return nil
			}
		}
	}
}
