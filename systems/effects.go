package systems

import (
	"github.com/mossbank/ramble/anim"
	"github.com/mossbank/ramble/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects drives squash and stretch from pose transitions: stretching
// on takeoff, squashing on landing, easing back to normal.
func UpdateEffects(e *ecs.ECS) {
	components.SquashStretch.Each(e.World, func(entry *donburi.Entry) {
		ss := components.SquashStretch.Get(entry)
		pose := components.Pose.Get(entry)

		if tookOff(pose) {
			ss.TweenX = gween.New(0.8, 1, 12, ease.OutQuad)
			ss.TweenY = gween.New(1.2, 1, 12, ease.OutQuad)
		}
		if landed(pose) {
			ss.TweenX = gween.New(1.25, 1, 12, ease.OutQuad)
			ss.TweenY = gween.New(0.75, 1, 12, ease.OutQuad)
		}

		ss.ScaleX, ss.TweenX = advanceScale(ss.TweenX)
		ss.ScaleY, ss.TweenY = advanceScale(ss.TweenY)
	})
}

func tookOff(pose *components.PoseData) bool {
	return pose.Decision.State == anim.StateJump && pose.Prev.State != anim.StateJump
}

func landed(pose *components.PoseData) bool {
	airborne := pose.Prev.State == anim.StateJump || pose.Prev.State == anim.StateFall
	grounded := pose.Decision.State != anim.StateJump && pose.Decision.State != anim.StateFall
	return airborne && grounded
}

func advanceScale(tw *gween.Tween) (float64, *gween.Tween) {
	if tw == nil {
		return 1, nil
	}
	v, done := tw.Update(1)
	if done {
		return 1, nil
	}
	return float64(v), tw
}
