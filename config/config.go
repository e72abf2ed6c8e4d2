// Package config builds a game.Config from defaults, an optional .env file and
// INVADERS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"invaders/game"
)

// DefaultFile is read when Load is called without a path
const DefaultFile = ".env"

// Environment variables understood by Load
const (
	EnvSeed            = "INVADERS_SEED"
	EnvLives           = "INVADERS_LIVES"
	EnvDebug           = "INVADERS_DEBUG"
	EnvAlienSpeedStart = "INVADERS_ALIEN_SPEED_START"
	EnvAlienSpeedMax   = "INVADERS_ALIEN_SPEED_MAX"
	EnvPlayerSpeed     = "INVADERS_PLAYER_SPEED"
	EnvBunkers         = "INVADERS_BUNKERS"
	EnvLeaderBoard     = "INVADERS_LEADERBOARD"
)

// LookupFunc returns the value of a variable and whether it is set
type LookupFunc func(key string) (string, bool)

// Load returns the default configuration overlaid with the variables found in
// the process environment and in the env file at path. Process variables win
// over the file. A missing default file is not an error, a missing explicit one is.
func Load(path string) (game.Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	fileVars, err := godotenv.Read(path)
	switch {
	case err == nil:
		log.Printf("loaded %d variables from %s", len(fileVars), path)
	case !explicit && errors.Is(err, fs.ErrNotExist):
		fileVars = nil
	default:
		return game.Config{}, fmt.Errorf("read env file %s: %w", path, err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	return Apply(game.DefaultConfig(), lookup)
}

// Apply overlays the variables returned by lookup on cfg and validates the result
func Apply(cfg game.Config, lookup LookupFunc) (game.Config, error) {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v, ok := lookup(EnvLives); ok {
		lives, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLives, err)
		}
		cfg.Lives = uint8(lives)
	}

	if v, ok := lookup(EnvDebug); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvAlienSpeedStart, &cfg.AlienSpeedStart},
		{EnvAlienSpeedMax, &cfg.AlienSpeedMax},
		{EnvPlayerSpeed, &cfg.PlayerSpeed},
	}
	for _, f := range floats {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = parsed
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvBunkers, &cfg.Bunkers},
		{EnvLeaderBoard, &cfg.LeaderBoard},
	}
	for _, i := range ints {
		v, ok := lookup(i.key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", i.key, err)
		}
		*i.dst = parsed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
