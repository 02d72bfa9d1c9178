package systems

import (
	"github.com/automoto/testarossa/archetypes"
	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/gamemath"
	"github.com/automoto/testarossa/host"
	"github.com/automoto/testarossa/logging"
	"github.com/automoto/testarossa/tags"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SelectInputMode picks device orientation for touch devices with a small
// viewport and the pointer for everything else.
func SelectInputMode(touchCapable bool, viewportWidth int) cfg.InputModeID {
	if touchCapable && viewportWidth <= cfg.Input.TouchMaxWidth {
		return cfg.InputModeOrientation
	}
	return cfg.InputModePointer
}

// AttachInput selects the session's input source and subscribes to it. Only
// the first call subscribes; later calls return the mode already chosen.
func AttachInput(e *ecs.ECS, env host.Environment) cfg.InputModeID {
	srcEntry, ok := components.InputSource.First(e.World)
	if !ok {
		srcEntry = archetypes.InputSource.Spawn(e)
	}
	src := components.InputSource.Get(srcEntry)
	if src.Mode != cfg.InputModeNone {
		return src.Mode
	}

	width := 0
	if vpEntry, ok := tags.Viewport.First(e.World); ok {
		width = components.Viewport.Get(vpEntry).Width
	}
	src.Mode = SelectInputMode(env.TouchCapable(), width)

	switch src.Mode {
	case cfg.InputModeOrientation:
		env.OnOrientation(func(ev host.OrientationEvent) {
			countSample(e, ApplyOrientation(e, ev))
		})
	default:
		env.OnPointerMove(func(ev host.PointerEvent) {
			countSample(e, ApplyPointer(e, ev))
		})
	}

	logging.L().Named("input").Info("input source attached",
		zap.Stringer("mode", src.Mode),
		zap.Int("viewportWidth", width))
	return src.Mode
}

func countSample(e *ecs.ECS, applied bool) {
	srcEntry, ok := components.InputSource.First(e.World)
	if !ok {
		return
	}
	src := components.InputSource.Get(srcEntry)
	if applied {
		src.Samples++
	} else {
		src.Rejected++
	}
}

// ApplyPointer turns a pointer move into the car's steering target. Events
// without a usable coordinate leave the target alone.
func ApplyPointer(e *ecs.ECS, ev host.PointerEvent) bool {
	if !ev.Valid {
		return false
	}
	vpEntry, ok := tags.Viewport.First(e.World)
	if !ok {
		return false
	}
	center := components.Viewport.Get(vpEntry).HorizontalCenter

	target, ok := gamemath.PointerTarget(ev.PageX, center, cfg.Motion.StreetFactor)
	if !ok {
		return false
	}
	return setTarget(e, target)
}

// ApplyOrientation turns a device tilt into the car's steering target.
func ApplyOrientation(e *ecs.ECS, ev host.OrientationEvent) bool {
	if !ev.Valid {
		return false
	}
	target, ok := gamemath.TiltTarget(ev.Gamma, cfg.Motion.TiltScale, cfg.Motion.StreetFactor)
	if !ok {
		return false
	}
	return setTarget(e, target)
}

func setTarget(e *ecs.ECS, target float64) bool {
	carEntry, ok := tags.Car.First(e.World)
	if !ok {
		return false
	}
	components.Motion.Get(carEntry).TargetX = target
	return true
}
