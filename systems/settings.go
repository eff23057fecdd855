package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossbank/ramble/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles runtime toggles: F1 flips the debug overlay and
// persists the choice.
func UpdateSettings(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)

	pressed := ebiten.IsKeyPressed(ebiten.KeyF1)
	if pressed && !settings.PrevToggleKey {
		settings.ShowOverlay = !settings.ShowOverlay
		SaveSettings(&SavedSettings{ShowOverlay: settings.ShowOverlay})
	}
	settings.PrevToggleKey = pressed
}
