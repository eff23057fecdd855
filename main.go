package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossbank/ramble/config"
	"github.com/mossbank/ramble/scenes"
	"github.com/mossbank/ramble/systems"
)

type Game struct {
	scene *scenes.SandboxScene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.Window.Width, config.Window.Height
}

func main() {
	if err := config.LoadFile("ramble.yaml"); err != nil {
		log.Printf("Warning: Could not load config overrides: %v", err)
	}

	showOverlay := false
	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			showOverlay = saved.ShowOverlay
		}
	}

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)

	game := &Game{scene: scenes.NewSandboxScene(showOverlay)}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
