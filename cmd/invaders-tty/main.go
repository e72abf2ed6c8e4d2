// Command invaders-tty plays the game in a terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"invaders/autopilot"
	"invaders/config"
	"invaders/game"
	"invaders/sound"
)

const (
	logDir      = "logs"
	logFileName = "invaders-tty.log"
)

func main() {
	envFile := flag.String("env", "", "env file with INVADERS_* overrides (default .env if present)")
	pilotPath := flag.String("autopilot", "", "let a script play: \"builtin\" or a path to a .js file")
	mute := flag.Bool("mute", false, "start with sound off")
	fps := flag.Int("fps", 60, "ticks per second")
	logging := flag.Bool("log", false, "write logs to "+filepath.Join(logDir, logFileName))
	flag.Parse()

	// The terminal owns stdout, so logs go to a file or nowhere
	if logFile := setupLogging(*logging); logFile != nil {
		defer logFile.Close()
	}

	if err := run(*envFile, *pilotPath, *mute, *fps); err != nil {
		fmt.Fprintf(os.Stderr, "invaders-tty: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging redirects the standard logger to the log file, or discards it
func setupLogging(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func run(envFile, pilotPath string, mute bool, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}

	var pilot *autopilot.Pilot
	if pilotPath != "" {
		if pilot, err = autopilot.Load(pilotPath, cfg); err != nil {
			return err
		}
	}

	sm := sound.NewManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sm.Cleanup()
	sm.SetMuted(mute)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before a panic reaches the user
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ninvaders-tty crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop(ctx, screen, g, pilot, sm, time.Second/time.Duration(fps))
}

func loop(ctx context.Context, screen tcell.Screen, g *game.Game, pilot *autopilot.Pilot, sm *sound.Manager, period time.Duration) error {
	cfg := g.Config()
	dt := period.Seconds()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Fini was called
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	var ctl controls
	snap := g.Snapshot()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !ctl.handleKey(ev, time.Now()) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			if ctl.toggleMute() {
				sm.SetMuted(!sm.Muted())
			}

			intents := ctl.intents(snap.State, cfg.PlayerSlow, now)
			if pilot != nil {
				intents = pilot.Intents(snap, dt)
			}
			for _, e := range intents {
				g.Push(e)
			}

			g.Tick(dt)
			sm.Handle(g.DrainEvents())

			snap = g.Snapshot()
			draw(screen, &snap, cfg, sm.Muted())
		}
	}
}
