package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Walker   = donburi.NewTag().SetName("Walker")
	Wall     = donburi.NewTag().SetName("Wall")
	Ramp     = donburi.NewTag().SetName("Ramp")
	Platform = donburi.NewTag().SetName("Platform")
)

// Resolv tags for collision queries
const (
	ResolvSolid    = "solid"
	ResolvRamp     = "ramp"
	ResolvPlatform = "platform"

	// Slope ascent direction tags
	SlopeUpRight = "up_right"
	SlopeUpLeft  = "up_left"
)
