package systems

import (
	"github.com/mossbank/ramble/components"
	"github.com/mossbank/ramble/gamemath"
	"github.com/mossbank/ramble/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// slopeSnapDepth is how far below the feet a ramp may be and still
	// capture the actor, keeping them glued while walking downhill.
	slopeSnapDepth = 6.0
	// slopeClimbLimit caps how far a ramp surface may be above the feet
	// and still be stepped onto in one tick.
	slopeClimbLimit = 8.0
	// surfaceOffset keeps actors a hair above the surface for stable
	// repeated contact checks.
	surfaceOffset = 0.1
)

// UpdateCollisions moves every actor by its speed, resolving contact with
// solids and ramps. It is the authority on the OnGround and SlopeAngle
// signals: both are rewritten here each tick, and while ground-snapping
// down a ramp SpeedY is set to the actual descent so the pose resolver sees
// how fast the actor is really dropping.
func UpdateCollisions(e *ecs.ECS) {
	components.Kinematics.Each(e.World, func(entry *donburi.Entry) {
		kin := components.Kinematics.Get(entry)
		obj := components.Object.Get(entry)

		resolveHorizontal(kin, obj.Object)
		resolveVertical(kin, obj.Object)
	})
}

func resolveHorizontal(kin *components.KinematicsData, object *resolv.Object) {
	dx := kin.SpeedX
	if dx == 0 {
		return
	}

	// Ramps never block horizontally; the vertical pass snaps onto them.
	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			object.X += contact.X()
			object.Update()
			kin.SpeedX = 0
			return
		}
	}

	object.X += dx
	object.Update()
}

func resolveVertical(kin *components.KinematicsData, object *resolv.Object) {
	kin.OnGround = false
	kin.SlopeAngle = 0
	dy := kin.SpeedY

	// Ramp contact, unless moving upward (jumping off a slope).
	if dy >= 0 && snapToRamp(kin, object, dy) {
		return
	}

	if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			object.Y += contact.Y()
			object.Update()
			if dy > 0 {
				kin.OnGround = true
			}
			kin.SpeedY = 0
			return
		}
	}

	object.Y += dy
	object.Update()
}

func snapToRamp(kin *components.KinematicsData, object *resolv.Object, dy float64) bool {
	check := object.Check(0, dy+slopeSnapDepth, tags.ResolvRamp)
	if check == nil {
		return false
	}
	ramps := check.ObjectsByTags(tags.ResolvRamp)
	if len(ramps) == 0 {
		return false
	}

	ramp := ramps[0]
	surface := gamemath.SurfaceY(object, ramp, tags.SlopeUpRight, tags.SlopeUpLeft)
	target := surface - object.H - surfaceOffset
	drop := target - object.Y

	// Out of reach: too high to step onto, or further down than this
	// tick's travel plus the stickiness margin.
	if drop < -slopeClimbLimit || drop > dy+slopeSnapDepth {
		return false
	}

	object.Y = target
	object.Update()
	kin.OnGround = true
	kin.SlopeAngle = gamemath.SignedAngle(ramp, tags.SlopeUpRight, tags.SlopeUpLeft)
	if drop > 0 {
		kin.SpeedY = drop
	} else {
		kin.SpeedY = 0
	}
	return true
}
