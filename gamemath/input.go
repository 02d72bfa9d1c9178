package gamemath

import "math"

// PointerTarget maps a window-relative pointer x to a lateral target.
// ok is false when pageX is not a finite number.
func PointerTarget(pageX, horizontalCenter, streetFactor float64) (target float64, ok bool) {
	if !finite(pageX) || !finite(horizontalCenter) {
		return 0, false
	}
	return (pageX - horizontalCenter) * streetFactor, true
}

// TiltTarget maps a left/right device tilt in degrees to a lateral target.
// ok is false when gamma is not a finite number.
func TiltTarget(gamma, tiltScale, streetFactor float64) (target float64, ok bool) {
	if !finite(gamma) {
		return 0, false
	}
	return (gamma * tiltScale) * streetFactor, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
