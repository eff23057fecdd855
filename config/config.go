package config

import (
	"github.com/mossbank/ramble/anim"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all sandbox entities and renderers live on.
const Default ecs.LayerID = 0

// MoverConfig tunes the sandbox mover that drives actor kinematics.
// Speeds are px per tick, matching the resolver's velocity units.
type MoverConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"maxSpeed"`
	Friction     float64 `yaml:"friction"`
	Gravity      float64 `yaml:"gravity"`
	JumpSpeed    float64 `yaml:"jumpSpeed"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
}

// WalkerConfig tunes the AI walker.
type WalkerConfig struct {
	// PatrolSpeed should exceed anim.FacingThreshold so a patrolling
	// walker reads as running, not idle.
	PatrolSpeed float64 `yaml:"patrolSpeed"`
}

// WindowConfig holds the startup window parameters.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig tunes the follow camera.
type CameraConfig struct {
	// LerpSpeed is the per-tick fraction of remaining distance covered.
	LerpSpeed float64 `yaml:"lerpSpeed"`
}

// LevelConfig describes the sandbox level bounds.
type LevelConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ClipDef describes one animation clip: inclusive frame range within a
// spritesheet strip and ticks spent per frame.
type ClipDef struct {
	First         int
	Last          int
	TicksPerFrame float32
}

var (
	Mover  MoverConfig
	Walker WalkerConfig
	Window WindowConfig
	Camera CameraConfig
	Level  LevelConfig

	// ActorClips maps motion states to their clip definitions. Every
	// resolvable state has a clip so the render layer never has to guess.
	ActorClips map[anim.State]ClipDef
)

// Actor sprite dimensions (px). Collision boxes are slightly narrower than
// the drawn frame so sprites overlap walls a little.
const (
	FrameWidth      = 32
	FrameHeight     = 40
	CollisionWidth  = 20
	CollisionHeight = 38
)

func init() {
	Mover = MoverConfig{
		Acceleration: 0.35,
		MaxSpeed:     4.0,
		Friction:     0.2,
		Gravity:      0.4,
		JumpSpeed:    10.0,
		MaxFallSpeed: 10.0,
	}

	Walker = WalkerConfig{
		PatrolSpeed: 2.5,
	}

	Window = WindowConfig{
		Width:  1280,
		Height: 720,
		Title:  "Ramble",
	}

	Camera = CameraConfig{
		LerpSpeed: 0.08,
	}

	Level = LevelConfig{
		Width:  1280,
		Height: 480,
	}

	ActorClips = map[anim.State]ClipDef{
		anim.StateIdle:  {First: 0, Last: 3, TicksPerFrame: 10},
		anim.StateRun:   {First: 0, Last: 5, TicksPerFrame: 6},
		anim.StateJump:  {First: 0, Last: 1, TicksPerFrame: 8},
		anim.StateFall:  {First: 0, Last: 1, TicksPerFrame: 8},
		anim.StateSlide: {First: 0, Last: 3, TicksPerFrame: 8},
	}
}
