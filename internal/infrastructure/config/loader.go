package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownMode is returned when a mode name is not in play.json
var ErrUnknownMode = errors.New("unknown mode")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Play     *PlayConfig
	Terminal *TerminalConfig
}

// Loader loads game configuration from JSON and TOML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPlay loads and validates play.json
func (l *Loader) LoadPlay() (*PlayConfig, error) {
	data, err := fs.ReadFile(l.fsys, "play.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read play.json: %w", err)
	}

	var cfg PlayConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse play.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid play.json: %w", err)
	}

	return &cfg, nil
}

// LoadTerminal loads terminal.toml.
// Keys the struct does not know about are rejected.
func (l *Loader) LoadTerminal() (*TerminalConfig, error) {
	data, err := fs.ReadFile(l.fsys, "terminal.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to read terminal.toml: %w", err)
	}

	var cfg TerminalConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse terminal.toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("terminal.toml: unknown keys %s", strings.Join(keys, ", "))
	}

	if cfg.TickMs <= 0 {
		return nil, fmt.Errorf("invalid terminal.toml: tickMs must be positive, got %d", cfg.TickMs)
	}
	if cfg.CellAspect <= 0 {
		return nil, fmt.Errorf("invalid terminal.toml: cellAspect must be positive, got %g", cfg.CellAspect)
	}

	return &cfg, nil
}

// LoadAll loads all configurations (play, terminal)
func (l *Loader) LoadAll() (*GameConfig, error) {
	play, err := l.LoadPlay()
	if err != nil {
		return nil, err
	}

	terminal, err := l.LoadTerminal()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Play:     play,
		Terminal: terminal,
	}, nil
}

// Validate checks the values the game loop relies on
func (c *PlayConfig) Validate() error {
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius)
	}
	b := c.Bounds
	if b.Left >= b.Right || b.Bottom >= b.Top {
		return fmt.Errorf("bounds are inverted or empty: %+v", b)
	}
	if len(c.Modes) == 0 {
		return errors.New("no modes defined")
	}
	for name, m := range c.Modes {
		if m.RoundSeconds <= 0 {
			return fmt.Errorf("mode %q: roundSeconds must be positive, got %d", name, m.RoundSeconds)
		}
		if m.TargetScore < 0 {
			return fmt.Errorf("mode %q: targetScore must not be negative, got %d", name, m.TargetScore)
		}
		if m.RestartDelay < 0 {
			return fmt.Errorf("mode %q: restartDelay must not be negative, got %g", name, m.RestartDelay)
		}
	}
	return nil
}

// Mode returns the named rule set
func (c *PlayConfig) Mode(name string) (ModeConfig, error) {
	m, ok := c.Modes[name]
	if !ok {
		return ModeConfig{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownMode, name, strings.Join(c.ModeNames(), ", "))
	}
	return m, nil
}

// ModeNames returns the configured mode names in sorted order
func (c *PlayConfig) ModeNames() []string {
	names := make([]string, 0, len(c.Modes))
	for name := range c.Modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
