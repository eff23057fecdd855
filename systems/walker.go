package systems

import (
	"github.com/mossbank/ramble/components"
	cfg "github.com/mossbank/ramble/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWalkers paces AI walkers between their patrol bounds. The walker
// only sets horizontal intent; gravity, collision and animation are handled
// by the shared systems, so a walker descending a steep ramp slides exactly
// like the player would.
func UpdateWalkers(e *ecs.ECS) {
	components.Walker.Each(e.World, func(entry *donburi.Entry) {
		walker := components.Walker.Get(entry)
		kin := components.Kinematics.Get(entry)
		obj := components.Object.Get(entry)

		if obj.X <= walker.MinX {
			walker.Dir = 1
		} else if obj.X+obj.W >= walker.MaxX {
			walker.Dir = -1
		}

		kin.SpeedX = cfg.Walker.PatrolSpeed * walker.Dir
	})
}
