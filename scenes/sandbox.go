package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/mossbank/ramble/config"
	"github.com/mossbank/ramble/systems"
	"github.com/mossbank/ramble/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene is the single scene of the sandbox: a small level with a
// keyboard-driven player and a patrolling walker, built to exercise every
// motion state the pose resolver can produce.
type SandboxScene struct {
	ecs         *ecs.ECS
	showOverlay bool
	once        sync.Once
}

func NewSandboxScene(showOverlay bool) *SandboxScene {
	return &SandboxScene{showOverlay: showOverlay}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x22, 0x28, 0xff})
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Strict tick order: input and intent, then the mover and collision,
	// then pose resolution, then everything that reads decisions.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateWalkers)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdatePlatforms)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdatePoses)
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawActors)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	s.ecs = e

	factory.CreateSpace(e, int(cfg.Level.Width), int(cfg.Level.Height), 16, 16)
	factory.CreateCamera(e)
	factory.CreateSettings(e, s.showOverlay)

	s.buildLevel(e)

	factory.CreatePlayer(e, 80, 300)
	factory.CreateWalker(e, 600, 380, 120, 760)
}

// buildLevel lays out the sandbox geometry: a floor with bounding walls, a
// gentle ramp onto a plateau, a steep 45-degree drop off it (the slide
// showcase), a taller 45-degree climb to a ledge, and a gliding platform.
func (s *SandboxScene) buildLevel(e *ecs.ECS) {
	floorTop := cfg.Level.Height - 40

	factory.CreateWall(e, 0, floorTop, cfg.Level.Width, 40)
	factory.CreateWall(e, 0, 0, 16, floorTop)
	factory.CreateWall(e, cfg.Level.Width-16, 0, 16, floorTop)

	// Gentle climb (~14 degrees): descending it at run speed stays below
	// the slide threshold.
	factory.CreateRamp(e, 200, floorTop-32, 128, 32, true)
	factory.CreateWall(e, 328, floorTop-32, 96, 32)
	// Steep drop off the plateau: 45 degrees, slides when descended fast.
	factory.CreateRamp(e, 424, floorTop-32, 32, 32, false)

	// Tall 45-degree climb to a ledge on the right.
	factory.CreateRamp(e, 900, floorTop-96, 96, 96, true)
	factory.CreateWall(e, 996, floorTop-96, 80, 96)

	factory.CreatePlatform(e, 560, floorTop-110, 96, 16, 160)
}
