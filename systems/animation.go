package systems

import (
	"github.com/mossbank/ramble/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations maps each actor's pose decision to its clip and advances
// playback.
func UpdateAnimations(e *ecs.ECS) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		animData := components.Animation.Get(entry)
		pose := components.Pose.Get(entry)

		animData.SetClip(pose.Decision.State)
		if clip := animData.Clip(); clip != nil {
			clip.Advance()
		}
	})
}
