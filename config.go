package main

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultLogPath = "$HOME/.local/share/orgview/debug.log"

// Config holds the optional environment settings. The document path is the
// only command-line input and is not part of it.
type Config struct {
	Debug   bool
	LogFile string
}

// loadConfig reads an optional .env file, then the environment.
func loadConfig() Config {
	// Load .env file (ignore error if not found)
	_ = godotenv.Load()
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) Config {
	path := getenv("ORGVIEW_LOG_FILE")
	if path == "" {
		path = defaultLogPath
	}
	return Config{
		Debug:   getenv("ORGVIEW_DEBUG") != "",
		LogFile: os.Expand(path, getenv),
	}
}
