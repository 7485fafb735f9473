package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config параметры приложения из окружения
type Config struct {
	Port          string
	SessionSecret string
}

// Load читает .env (если есть) и окружение. Порт по умолчанию 5000.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "5000"),
		SessionSecret: getEnv("SESSION_SECRET", "dev_secret_key"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
