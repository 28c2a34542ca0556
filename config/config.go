// Package config loads runtime configuration for the editing engine from
// the environment (optionally via a .env file), the way a host application
// wires it up at startup.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/oxhq/composer/ustring"
)

// Config holds the engine's runtime configuration.
type Config struct {
	// HistoryLimit bounds the undo/redo stack depth (§4.F).
	HistoryLimit int
	// Width selects the code-unit model the document measures positions in
	// (§3.3): utf16 to match a JS/contentEditable host, utf32 for a Go or
	// Python host that counts runes.
	Width ustring.Width
}

// Load reads COMPOSER_HISTORY_LIMIT and COMPOSER_CODE_UNIT_WIDTH from the
// environment, loading a ".env" file first if one is present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HistoryLimit: 100,
		Width:        ustring.U16,
	}

	if raw := os.Getenv("COMPOSER_HISTORY_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}

	if raw := os.Getenv("COMPOSER_CODE_UNIT_WIDTH"); raw == "utf32" {
		cfg.Width = ustring.U32
	}

	return cfg
}
