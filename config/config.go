package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	DatabaseURL   string
	PhotoDir      string
	StoreTimeout  time.Duration
	OpsAddr       string
	Debug         bool
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		PhotoDir:      getEnvString("PHOTO_DIR", "profile_photos"),
		StoreTimeout:  getEnvDuration("STORE_TIMEOUT", 5*time.Second),
		OpsAddr:       getEnvString("OPS_ADDR", ":8080"),
		Debug:         os.Getenv("DEBUG") == "true",
	}

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
