package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
	API APIConfig
}

type AppConfig struct {
	Port             string
	Environment      string
	LogFilePath      string
	SessionFilePath  string
	EphemeralSession bool
}

type APIConfig struct {
	BaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:             getEnv("APP_PORT", "5173"),
			Environment:      getEnv("GO_ENV", "development"),
			LogFilePath:      getEnv("LOG_FILE_PATH", "lumera.log"),
			SessionFilePath:  getEnv("SESSION_FILE_PATH", defaultSessionPath()),
			EphemeralSession: getEnv("EPHEMERAL_SESSION", "false") == "true",
		},
		API: APIConfig{
			BaseURL: getEnv("LUMERA_API_BASE_URL", "http://localhost:3001/api"),
		},
	}
}

// defaultSessionPath mirrors the browser's localStorage: durable, per-user,
// survives restarts.
func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "lumera_session.json"
	}
	return filepath.Join(dir, "lumera", "session.json")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
