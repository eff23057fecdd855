package systems

import (
	"github.com/mossbank/ramble/anim"
	"github.com/mossbank/ramble/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePoses runs each actor's animation resolver on the kinematics the
// collision system finalized this tick. It must run after UpdateCollisions
// and before any renderer reads decisions: physics update, then resolve,
// then render.
func UpdatePoses(e *ecs.ECS) {
	components.Pose.Each(e.World, func(entry *donburi.Entry) {
		pose := components.Pose.Get(entry)
		kin := components.Kinematics.Get(entry)

		k := anim.Kinematics{
			VelX:       kin.SpeedX,
			VelY:       kin.SpeedY,
			OnGround:   kin.OnGround,
			SlopeAngle: kin.SlopeAngle,
		}

		pose.Prev = pose.Decision
		pose.Decision = resolveFor(entry, pose, k)
	})
}

// resolveFor picks the resolution mode: input-aware for actors carrying
// directional input backed by the stock resolver, physics-only through the
// capability interface for everything else.
func resolveFor(entry *donburi.Entry, pose *components.PoseData, k anim.Kinematics) anim.Decision {
	if entry.HasComponent(components.DirInput) {
		if r, ok := pose.Resolver.(*anim.Resolver); ok {
			return r.ResolveWithInput(k, components.DirInput.Get(entry).Flags())
		}
	}
	return pose.Resolver.Resolve(k)
}
