package gamemath

// MotionState is the car's lateral position and yaw plus the steering target
// they are pulled toward.
type MotionState struct {
	PositionX float64
	RotationY float64
	TargetX   float64
}

// Smoothing is a fixed-fraction-per-frame exponential filter. Damping is the
// per-frame divisor and must be > 1 for the filter to approach without
// overshooting.
type Smoothing struct {
	Damping      float64
	RotationGain float64
}

// Approach moves current toward target by 1/damping of the remaining distance.
func Approach(current, target, damping float64) float64 {
	return current + (target-current)/damping
}

// Step advances one frame. Position approaches the target; the desired yaw is
// proportional to the lag left after that move, and rotation approaches it
// with the same damping.
func (s Smoothing) Step(st MotionState) MotionState {
	pos := Approach(st.PositionX, st.TargetX, s.Damping)
	desired := -(st.TargetX - pos) * s.RotationGain
	rot := Approach(st.RotationY, desired, s.Damping)

	return MotionState{
		PositionX: pos,
		RotationY: rot,
		TargetX:   st.TargetX,
	}
}
