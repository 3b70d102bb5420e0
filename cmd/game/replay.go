package main

import (
	"fmt"
	"log"

	"github.com/younwookim/clickball/internal/application/replay"
	"github.com/younwookim/clickball/internal/infrastructure/config"
)

// runReplay loads a recording and runs it without a window
func runReplay(cfg *config.PlayConfig, filename string) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	result, err := replay.SimulateWithConfig(cfg, *data)
	if err != nil {
		return err
	}

	log.Print(describeResult(data.Mode, result))
	return nil
}

// describeResult formats the outcome of a replay as one line
func describeResult(mode string, r replay.Result) string {
	final := r.Final
	outcome := "in progress"
	if final.Over() {
		outcome = final.ResultText()
	}
	return fmt.Sprintf("Replay %s: %d frames, %d restarts, player %d, computer %d, %s",
		mode, r.Frames, r.Restarts, final.PlayerScore, final.ComputerScore, outcome)
}
