// Package config loads renderer tunables from a TOML file, falling
// back to sensible defaults the same way the teacher's theme loader
// does: stat the file, decode on a copy of the defaults, log and keep
// the defaults on any error.
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"ansirender/color"
	"ansirender/style"
)

// Config holds the renderer tunables a user can override from
// ~/.config/ansirender/config.toml.
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig controls the frame driver and default node styling.
type RenderConfig struct {
	Padding       int    `toml:"padding"`
	TargetFPS     int    `toml:"target_fps"`
	DefaultBorder string `toml:"default_border"`
	Background    string `toml:"background"`
	Foreground    string `toml:"foreground"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Padding:       5,
			TargetFPS:     60,
			DefaultBorder: "simple",
			Background:    "#000000",
			Foreground:    "#ffffff",
		},
	}
}

// Load attempts to read ~/.config/ansirender/config.toml and decode it
// over the defaults, falling back to DefaultConfig on any error.
func Load() Config {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("config: could not get user home directory: %v, using defaults", err)
		return cfg
	}

	path := filepath.Join(home, ".config", "ansirender", "config.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("config: no config file at %s, using defaults", path)
		return cfg
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		log.Printf("config: failed to decode %s: %v, using defaults", path, err)
		return DefaultConfig()
	}

	log.Printf("config: loaded %s", path)
	return cfg
}

// BorderStyle maps DefaultBorder's name to a style.Border preset,
// falling back to style.SimpleBorder for an unrecognised name.
func (r RenderConfig) BorderStyle() style.Border {
	switch r.DefaultBorder {
	case "empty":
		return style.EmptyBorder
	case "double":
		return style.DoubleBorder
	case "rounded":
		return style.RoundedBorder
	default:
		return style.SimpleBorder
	}
}

// Colors parses Background and Foreground as HTML colour strings.
func (r RenderConfig) Colors() (background, foreground color.Color, err error) {
	background, err = color.FromHTML(r.Background)
	if err != nil {
		return color.Color{}, color.Color{}, err
	}
	foreground, err = color.FromHTML(r.Foreground)
	if err != nil {
		return color.Color{}, color.Color{}, err
	}
	return background, foreground, nil
}
