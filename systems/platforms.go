package systems

import (
	"github.com/mossbank/ramble/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances floating platform tween sequences and moves the
// platform objects to the tweened X, restarting each sequence when it
// completes so the glide loops forever.
func UpdatePlatforms(e *ecs.ECS) {
	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		obj := components.Object.Get(entry)

		x, _, done := tw.Update(1)
		obj.X = float64(x)
		obj.Update()
		if done {
			tw.Reset()
		}
	})
}
