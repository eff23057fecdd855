package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossbank/ramble/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard into every DirInput component. Arrows and
// WASD are both live. Must run before UpdateMovement and UpdatePoses.
func UpdateInput(e *ecs.ECS) {
	components.DirInput.Each(e.World, func(entry *donburi.Entry) {
		in := components.DirInput.Get(entry)
		in.PrevUp = in.Up
		in.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
		in.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
		in.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
		in.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	})
}
