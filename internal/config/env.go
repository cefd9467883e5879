package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mvp-kit/vite-sitemap-plugin/internal/logfields"
)

// loadEnvFiles loads environment variables from the first readable
// .env/.env.local file. Existing process environment variables are not
// overwritten (godotenv.Load semantics). Absence of both files is fine.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			slog.Debug("failed to load env file", logfields.File(envPath), logfields.Error(err))
			continue
		}
		slog.Debug("loaded environment variables", logfields.File(envPath))
		return
	}
}
