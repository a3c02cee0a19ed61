package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	// FirebaseConfig holds the service-account JSON inline (FIREBASE_CONFIG).
	FirebaseConfig string
	// FirebaseCredentialsFile is the local-file fallback for the credential.
	FirebaseCredentialsFile string
	// Serverless suppresses binding a listening socket; the host mounts the
	// engine itself.
	Serverless bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getEnv("PORT", "3000"),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		FirebaseConfig:          os.Getenv("FIREBASE_CONFIG"),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		Serverless:              os.Getenv("SERVERLESS") != "",
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	return cfg
}

// HasFirebase reports whether any push-gateway credential was supplied.
func (c *Config) HasFirebase() bool {
	return c.FirebaseConfig != "" || c.FirebaseCredentialsFile != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
