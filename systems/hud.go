package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/mossbank/ramble/anim"
	"github.com/mossbank/ramble/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

var hudFace = basicfont.Face7x13

// DrawHUD renders the controls hint and, when the overlay is enabled, the
// live resolver readout for every actor.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	text.Draw(screen, "arrows/wasd move, up jumps and resists slides, f1 overlay",
		hudFace, 8, 16, color.White)

	settingsEntry, ok := components.Settings.First(e.World)
	if !ok || !components.Settings.Get(settingsEntry).ShowOverlay {
		return
	}

	y := 36
	components.Pose.Each(e.World, func(entry *donburi.Entry) {
		pose := components.Pose.Get(entry)
		kin := components.Kinematics.Get(entry)

		name := "walker"
		if entry.HasComponent(components.DirInput) {
			name = "player"
		}

		line := fmt.Sprintf("%s: %s %s  vel=(%.1f, %.1f) ground=%v slope=%.2f",
			name, pose.Decision.State, pose.Decision.Facing,
			kin.SpeedX, kin.SpeedY, kin.OnGround, kin.SlopeAngle)
		text.Draw(screen, line, hudFace, 8, y, color.White)
		y += 16

		if r, ok := pose.Resolver.(*anim.Resolver); ok {
			mem := fmt.Sprintf("  memory: facing=%s state=%s", r.LastFacing(), r.LastState())
			text.Draw(screen, mem, hudFace, 8, y, color.RGBA{0xa0, 0xa0, 0xa0, 0xff})
			y += 16
		}
	})
}
