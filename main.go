package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/cross/config"
	"github.com/automoto/cross/fonts"
	"github.com/automoto/cross/scenes"
	"github.com/automoto/cross/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewCrossScene(g)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Close releases the active scene when it holds resources.
func (g *Game) Close() {
	if c, ok := g.scene.(interface{ Close() }); ok {
		c.Close()
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	outline := flag.Bool("debug", false, "Draw the body outline, touched solids and the HUD")
	tuning := flag.String("tuning", "", "YAML file overriding physics and camera tuning")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	freeFly := flag.Bool("freefly-toggle", false, "Allow switching to the free-fly profile with F2")
	flag.Parse()

	config.Debug.Outline = *outline
	config.Debug.AllowProfileToggle = *freeFly
	config.Debug.TuningPath = *tuning
	config.Debug.WatchTuning = *watch

	if *tuning != "" {
		t, err := config.LoadTuning(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle(config.C.AppName)
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence; saved settings are applied by the scene
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game := NewGame()
	defer game.Close()
	if err := ebiten.RunGame(game); err != nil {
		log.Printf("Game error: %v", err)
	}
}
