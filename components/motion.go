package components

import (
	"github.com/yohamta/donburi"
)

// MotionData is the car's steering state. TargetX is written by the input
// sampler; PositionX and RotationY only by the motion integrator.
type MotionData struct {
	PositionX float64
	RotationY float64
	TargetX   float64
	Frame     uint64 // integrator steps taken
}

var Motion = donburi.NewComponentType[MotionData]()
