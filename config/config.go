package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the small set of knobs the demo needs. Everything has a
// default so the app runs with no environment at all.
type Config struct {
	Addr          string
	DatabaseDSN   string
	SessionSecret string
}

// Load reads a local .env file when present, then the process
// environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Can't find .env file, using environment variables from system")
	}

	return Config{
		Addr:          getenv("ADDR", ":8080"),
		DatabaseDSN:   getenv("DATABASE_DSN", ":memory:"),
		SessionSecret: getenv("SESSION_SECRET", "gamerental-demo-secret"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
