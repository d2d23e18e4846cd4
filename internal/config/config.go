// Package config reads worder's settings from the environment.
//
//	WORDER_WORDS_DIR  directory holding the word<N> lists (default ".")
//	LOG_LEVEL         zerolog level name (default "warn")
//	NO_COLOR          any value disables colored tiles
package config

import (
	"os"

	"github.com/rs/zerolog"
)

type Config struct {
	WordsDir string
	LogLevel zerolog.Level
	NoColor  bool
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load builds a Config from the environment. An unknown LOG_LEVEL falls
// back to warn.
func Load() *Config {
	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn"))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	return &Config{
		WordsDir: getEnv("WORDER_WORDS_DIR", "."),
		LogLevel: lvl,
		NoColor:  os.Getenv("NO_COLOR") != "",
	}
}
