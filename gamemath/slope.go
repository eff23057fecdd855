// Package gamemath holds geometry helpers shared by the sandbox mover and
// its tests. It deliberately depends on resolv only, never on ebiten.
package gamemath

import (
	"math"

	"github.com/solarlune/resolv"
)

// SurfaceY returns the ramp surface height at the object's horizontal
// center. upRightTag and upLeftTag are the resolv tags that mark which way
// the ramp ascends.
func SurfaceY(object, ramp *resolv.Object, upRightTag, upLeftTag string) float64 {
	centerX := object.X + object.W/2
	relativeX := Clamp(centerX-ramp.X, 0, ramp.W)
	t := relativeX / ramp.W

	if ramp.HasTags(upRightTag) {
		return ramp.Y + ramp.H*(1-t)
	}
	if ramp.HasTags(upLeftTag) {
		return ramp.Y + ramp.H*t
	}
	return ramp.Y
}

// SignedAngle returns the ramp's surface angle from horizontal in radians.
// Ramps ascending to the right are positive, ascending to the left negative,
// untagged rectangles flat.
func SignedAngle(ramp *resolv.Object, upRightTag, upLeftTag string) float64 {
	angle := math.Atan2(ramp.H, ramp.W)
	if ramp.HasTags(upRightTag) {
		return angle
	}
	if ramp.HasTags(upLeftTag) {
		return -angle
	}
	return 0
}

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
