package main

import (
	"log"
	"time"

	"github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/input"
	"github.com/automoto/space-kitsune/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "space-kitsune"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(seed uint64) *Game {
	return &Game{
		scene: scenes.NewFlightScene(input.NewKeyboard(), seed),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Space Kitsune")
	ebiten.SetTPS(config.C.TPS)

	// Load the saved tuning profile, defaults stay in place on any failure
	if store, err := config.OpenTuningStore(appName); err != nil {
		log.Printf("Warning: Could not open tuning store: %v", err)
	} else if _, err := config.LoadTuning(store); err != nil {
		log.Printf("Warning: Could not apply tuning: %v", err)
	}

	if err := ebiten.RunGame(NewGame(uint64(time.Now().UnixNano()))); err != nil {
		log.Fatal(err)
	}
}
