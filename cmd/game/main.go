package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/clickball/configs"
	"github.com/younwookim/clickball/internal/application/game"
	"github.com/younwookim/clickball/internal/application/scene"
	"github.com/younwookim/clickball/internal/application/scene/playing"
	"github.com/younwookim/clickball/internal/application/scene/title"
	"github.com/younwookim/clickball/internal/infrastructure/config"
	"github.com/younwookim/clickball/internal/infrastructure/sound"
	"github.com/younwookim/clickball/internal/infrastructure/sound/ebitenaudio"
)

func main() {
	// Parse command line flags
	modeFlag := flag.String("mode", "", "Start straight into a mode (classic or match); empty shows the title")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and print the outcome")
	flag.Parse()

	// Load configurations using embedded filesystem
	loader := config.NewFSLoader(configs.FS, "configs")
	cfg, err := loader.LoadPlay()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(cfg, *replayFlag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	player := newSoundPlayer(cfg.Audio)
	first, err := initialScene(cfg, *modeFlag, *recordFlag, player)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	d := cfg.Display
	g := game.New(first, d.ScreenWidth, d.ScreenHeight, d.Resizable)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(d.ScreenWidth, d.ScreenHeight)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.TPS)
	if d.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// initialScene wires the title and playing scenes together. Escape in
// a game goes back to a fresh title; only the first game is recorded.
func initialScene(cfg *config.PlayConfig, mode, recordPath string, player sound.Player) (scene.Scene, error) {
	var newTitle func() scene.Scene
	start := func(m string) (scene.Scene, error) {
		opts := playing.Options{RecordPath: recordPath, Sound: player, Back: newTitle}
		p, err := playing.New(cfg, m, opts)
		if err != nil {
			return nil, err
		}
		recordPath = ""
		return p, nil
	}
	newTitle = func() scene.Scene {
		return title.New(cfg, start, nil)
	}

	if mode != "" {
		return start(mode)
	}
	return newTitle(), nil
}

// newSoundPlayer falls back to silence when audio is off or unavailable
func newSoundPlayer(cfg config.AudioConfig) sound.Player {
	if !cfg.Enabled {
		return sound.Nop{}
	}
	p, err := ebitenaudio.NewPlayer(cfg)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		return sound.Nop{}
	}
	return p
}
