package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names read at startup.
const (
	EnvServerURL = "COZYPARK_SERVER_URL"
	EnvColor     = "COZYPARK_COLOR"
	EnvLogFile   = "COZYPARK_LOG_FILE"
	EnvLogLevel  = "COZYPARK_LOG_LEVEL"
)

// Env holds the runtime overrides read from the environment.
type Env struct {
	ServerURL string
	Color     string
	LogFile   string
	LogLevel  string
}

// LoadEnv loads the given dotenv files (missing files are fine) and returns
// the overrides found in the process environment.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Env{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return Env{
		ServerURL: getEnv(EnvServerURL, Network.ServerURL),
		Color:     os.Getenv(EnvColor),
		LogFile:   getEnv(EnvLogFile, "cozypark.log"),
		LogLevel:  getEnv(EnvLogLevel, "info"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
