package systems

import (
	"github.com/mossbank/ramble/components"
	cfg "github.com/mossbank/ramble/config"
	"github.com/mossbank/ramble/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement is the sandbox mover: friction, directional acceleration,
// jumping and gravity. It only produces the kinematic signals the pose
// resolver consumes; it makes no animation decisions itself.
func UpdateMovement(e *ecs.ECS) {
	components.Kinematics.Each(e.World, func(entry *donburi.Entry) {
		kin := components.Kinematics.Get(entry)

		if entry.HasComponent(components.DirInput) {
			in := components.DirInput.Get(entry)

			applyFriction(kin)
			if in.Right {
				kin.SpeedX += cfg.Mover.Acceleration
			}
			if in.Left {
				kin.SpeedX -= cfg.Mover.Acceleration
			}

			if in.Up && !in.PrevUp && kin.OnGround {
				kin.SpeedY = -cfg.Mover.JumpSpeed
			}
		}

		kin.SpeedX = gamemath.Clamp(kin.SpeedX, -cfg.Mover.MaxSpeed, cfg.Mover.MaxSpeed)

		kin.SpeedY += cfg.Mover.Gravity
		if kin.SpeedY > cfg.Mover.MaxFallSpeed {
			kin.SpeedY = cfg.Mover.MaxFallSpeed
		}
	})
}

func applyFriction(kin *components.KinematicsData) {
	switch {
	case kin.SpeedX > cfg.Mover.Friction:
		kin.SpeedX -= cfg.Mover.Friction
	case kin.SpeedX < -cfg.Mover.Friction:
		kin.SpeedX += cfg.Mover.Friction
	default:
		kin.SpeedX = 0
	}
}
