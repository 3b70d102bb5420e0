// Package configs embeds the game's tuning files.
// They are compiled into the binaries; there is no run-time override.
package configs

import "embed"

// FS holds play.json and terminal.toml
//
//go:embed play.json terminal.toml
var FS embed.FS
