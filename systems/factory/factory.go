package factory

import (
	"image/color"

	"github.com/mossbank/ramble/anim"
	"github.com/mossbank/ramble/archetypes"
	"github.com/mossbank/ramble/assets"
	"github.com/mossbank/ramble/assets/animations"
	"github.com/mossbank/ramble/components"
	cfg "github.com/mossbank/ramble/config"
	"github.com/mossbank/ramble/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellW, cellH int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellW, cellH),
	})
	return space
}

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Camera.Spawn(ecs)
}

func CreateSettings(ecs *ecs.ECS, showOverlay bool) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{ShowOverlay: showOverlay})
	return settings
}

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	object := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	object.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: object})
	addToSpace(ecs, object)
	return wall
}

// CreateRamp adds a sloped surface. upRight selects a surface ascending to
// the right; otherwise it ascends to the left.
func CreateRamp(ecs *ecs.ECS, x, y, w, h float64, upRight bool) *donburi.Entry {
	ramp := archetypes.Ramp.Spawn(ecs)
	dir := tags.SlopeUpLeft
	if upRight {
		dir = tags.SlopeUpRight
	}
	object := resolv.NewObject(x, y, w, h, tags.ResolvRamp, dir)
	object.Data = ramp
	components.Object.SetValue(ramp, components.ObjectData{Object: object})
	addToSpace(ecs, object)
	return ramp
}

// CreatePlatform adds a floating platform that glides horizontally by
// travel px and back, forever.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h, travel float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object := resolv.NewObject(x, y, w, h, tags.ResolvSolid, tags.ResolvPlatform)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	addToSpace(ecs, object)

	// Three seconds out, three seconds back, at 60 ticks per second.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(x), float32(x+travel), 180, ease.InOutQuad),
		gween.New(float32(x+travel), float32(x), 180, ease.InOutQuad),
	)
	components.Tween.Set(platform, tw)
	return platform
}

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	object := resolv.NewObject(x, y, cfg.CollisionWidth, cfg.CollisionHeight, "player")
	object.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: object})
	addToSpace(ecs, object)

	components.Pose.SetValue(player, components.PoseData{Resolver: anim.NewResolver()})
	components.Animation.SetValue(player, newActorAnimation(color.RGBA{0x46, 0x82, 0xb4, 0xff}))
	components.SquashStretch.SetValue(player, components.SquashStretchData{ScaleX: 1, ScaleY: 1})
	return player
}

func CreateWalker(ecs *ecs.ECS, x, y, minX, maxX float64) *donburi.Entry {
	walker := archetypes.Walker.Spawn(ecs)
	object := resolv.NewObject(x, y, cfg.CollisionWidth, cfg.CollisionHeight, "walker")
	object.Data = walker
	components.Object.SetValue(walker, components.ObjectData{Object: object})
	addToSpace(ecs, object)

	components.Walker.SetValue(walker, components.WalkerData{MinX: minX, MaxX: maxX, Dir: 1})
	components.Pose.SetValue(walker, components.PoseData{Resolver: anim.NewResolver()})
	components.Animation.SetValue(walker, newActorAnimation(color.RGBA{0xb2, 0x22, 0x22, 0xff}))
	components.SquashStretch.SetValue(walker, components.SquashStretchData{ScaleX: 1, ScaleY: 1})
	return walker
}

func newActorAnimation(base color.RGBA) components.AnimationData {
	clips := make(map[anim.State]*animations.Clip, len(cfg.ActorClips))
	for state, def := range cfg.ActorClips {
		clips[state] = animations.NewClip(def.First, def.Last, def.TicksPerFrame)
	}
	return components.AnimationData{
		Clips:       clips,
		Frames:      assets.BuildActorFrames(base),
		Current:     anim.StateIdle,
		FrameWidth:  cfg.FrameWidth,
		FrameHeight: cfg.FrameHeight,
	}
}

func addToSpace(ecs *ecs.ECS, object *resolv.Object) {
	if entry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(entry).Add(object)
	}
}
