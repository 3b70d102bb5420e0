package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/clickball/configs"
	"github.com/younwookim/clickball/internal/infrastructure/config"
	"github.com/younwookim/clickball/internal/infrastructure/sound"
	"github.com/younwookim/clickball/internal/infrastructure/terminal"
)

func main() {
	modeFlag := flag.String("mode", "classic", "Mode to play (classic or match); 1/2 switch while playing")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	logFlag := flag.String("log", "", "Write log output to file (the screen is in use)")
	flag.Parse()

	cfg, err := config.NewFSLoader(configs.FS, "configs").LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if _, err := cfg.Play.Mode(*modeFlag); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	p, c, err := run(cfg, *modeFlag, *muteFlag, *logFlag)
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
	log.Printf("Final score: player %d, computer %d", p, c)
}

// run owns the terminal until the player quits and returns the final scores
func run(cfg *config.GameConfig, mode string, mute bool, logPath string) (player, computer int, err error) {
	closeLog := redirectLog(logPath)
	defer closeLog()

	sp, closeSound := newSoundPlayer(cfg.Play.Audio, mute)
	defer closeSound()

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, 0, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, 0, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	app, err := terminal.NewApp(screen, cfg, mode, sp)
	if err != nil {
		return 0, 0, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil {
		return 0, 0, err
	}

	player, computer = app.Session().Scores()
	return player, computer, nil
}

// redirectLog keeps log output off the terminal while the game owns it
func redirectLog(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}

// newSoundPlayer falls back to silence when muted or when the speaker
// cannot be opened
func newSoundPlayer(cfg config.AudioConfig, mute bool) (sound.Player, func()) {
	if mute || !cfg.Enabled {
		return sound.Nop{}, func() {}
	}
	p, err := sound.NewBeepPlayer(cfg)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		return sound.Nop{}, func() {}
	}
	return p, p.Close
}
