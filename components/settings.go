package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime-toggleable sandbox settings.
type SettingsData struct {
	ShowOverlay bool

	// Previous tick's key state for edge detection.
	PrevToggleKey bool
}

var Settings = donburi.NewComponentType[SettingsData]()
