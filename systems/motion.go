package systems

import (
	"math"

	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/gamemath"
	"github.com/automoto/testarossa/tags"
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/yohamta/donburi/ecs"
)

var mon = monkit.Package()

// UpdateMotion advances the car one frame toward its steering target.
// The filter runs once per rendered frame, so perceived speed follows the
// display refresh rate.
func UpdateMotion(e *ecs.ECS) {
	carEntry, ok := tags.Car.First(e.World)
	if !ok {
		return
	}
	motion := components.Motion.Get(carEntry)

	next := Smoothing().Step(gamemath.MotionState{
		PositionX: motion.PositionX,
		RotationY: motion.RotationY,
		TargetX:   motion.TargetX,
	})
	motion.PositionX = next.PositionX
	motion.RotationY = next.RotationY
	motion.Frame++

	mon.Counter("frames").Inc(1)
	mon.FloatVal("lag").Observe(math.Abs(motion.TargetX - motion.PositionX))
}

// Smoothing returns the filter configured in config.Motion.
func Smoothing() gamemath.Smoothing {
	return gamemath.Smoothing{
		Damping:      cfg.Motion.Damping,
		RotationGain: cfg.Motion.RotationGain,
	}
}
