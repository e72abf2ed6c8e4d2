package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"invaders/arcade"
	"invaders/autopilot"
	"invaders/config"
	"invaders/game"
	"invaders/sound"
)

func main() {
	envFile := flag.String("env", "", "env file with INVADERS_* overrides (default .env if present)")
	pilotPath := flag.String("autopilot", "", "let a script play: \"builtin\" or a path to a .js file")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	mute := flag.Bool("mute", false, "start with sound off")
	profiles := flag.String("profiles", "", "directory for CPU profiles captured on FPS drops (disabled when empty)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	var pilot *autopilot.Pilot
	if *pilotPath != "" {
		pilot, err = autopilot.Load(*pilotPath, cfg)
		if err != nil {
			log.Fatalf("Failed to load autopilot: %v", err)
		}
		log.Printf("autopilot %s in control", *pilotPath)
	}

	sm := sound.NewManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sm.Cleanup()
	sm.SetMuted(*mute)

	app := arcade.NewApp(g, arcade.Options{
		Pilot:       pilot,
		Sound:       sm,
		ProfilesDir: *profiles,
		Seed:        cfg.Seed,
	})

	ebiten.SetWindowSize(arcade.ScreenWidth*2/3, arcade.ScreenHeight*2/3)
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
