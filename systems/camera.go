package systems

import (
	"github.com/mossbank/ramble/components"
	cfg "github.com/mossbank/ramble/config"
	"github.com/mossbank/ramble/gamemath"
	"github.com/mossbank/ramble/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, clamped to the level
// bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	targetX := obj.X + obj.W/2
	targetY := obj.Y + obj.H/2
	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.LerpSpeed
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.LerpSpeed

	// Keep the view inside the level. The logical screen size is fixed.
	w, h := cfg.Window.Width, cfg.Window.Height
	halfW, halfH := float64(w)/2, float64(h)/2
	if cfg.Level.Width > float64(w) {
		camera.Position.X = gamemath.Clamp(camera.Position.X, halfW, cfg.Level.Width-halfW)
	} else {
		camera.Position.X = cfg.Level.Width / 2
	}
	if cfg.Level.Height > float64(h) {
		camera.Position.Y = gamemath.Clamp(camera.Position.Y, halfH, cfg.Level.Height-halfH)
	} else {
		camera.Position.Y = cfg.Level.Height / 2
	}
}
