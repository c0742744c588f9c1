package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPollinationsURL = "https://text.pollinations.ai"
	defaultServerURL       = "http://localhost:5000"
)

// Config хранит параметры запуска прокси-сервера.
type Config struct {
	Env                 string
	HTTPPort            string
	LogLevel            string
	UsePollinations     bool
	PollinationsBaseURL string
	AllowedOrigins      []string
}

// ClientConfig хранит параметры CLI клиента.
type ClientConfig struct {
	ServerURL   string
	Timeout     time.Duration
	StoragePath string
	RedisAddr   string
	RedisPrefix string
}

// Load читает переменные окружения и возвращает готовую конфигурацию сервера.
func Load() (*Config, error) {
	loadDotEnv()

	env := getEnv("APP_ENV", "development")
	if env != "development" && env != "production" {
		return nil, fmt.Errorf("config: неизвестное значение APP_ENV %q", env)
	}

	cfg := &Config{
		Env:      env,
		HTTPPort: getEnv("PORT", "5000"),
		LogLevel: getEnv("LOG_LEVEL", ""),
		// Включается только строкой "true", любое другое значение означает выключенный провайдер.
		UsePollinations:     getEnv("USE_POLLINATIONS", "") == "true",
		PollinationsBaseURL: strings.TrimRight(getEnv("POLLINATIONS_BASE_URL", defaultPollinationsURL), "/"),
	}

	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		return nil, fmt.Errorf("config: PORT должен быть числом, получено %q", cfg.HTTPPort)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
		if env == "development" {
			cfg.LogLevel = "debug"
		}
	}

	cfg.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", ""))

	return cfg, nil
}

// LoadClient читает конфигурацию CLI клиента.
func LoadClient() (*ClientConfig, error) {
	loadDotEnv()

	storagePath := getEnv("PROPOSAL_STORAGE_PATH", "")
	if storagePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: не удалось определить каталог конфигурации: %w", err)
		}
		storagePath = filepath.Join(dir, "proposal", "storage.json")
	}

	timeout, err := time.ParseDuration(getEnv("PROPOSAL_TIMEOUT", "120s"))
	if err != nil {
		return nil, fmt.Errorf("config: не удалось распарсить PROPOSAL_TIMEOUT: %w", err)
	}

	return &ClientConfig{
		ServerURL:   strings.TrimRight(getEnv("PROPOSAL_SERVER_URL", defaultServerURL), "/"),
		Timeout:     timeout,
		StoragePath: storagePath,
		RedisAddr:   strings.TrimSpace(getEnv("REDIS_ADDR", "")),
		RedisPrefix: getEnv("REDIS_PREFIX", "proposal:"),
	}, nil
}

// loadDotEnv загружает .env только если он существует, иначе используем системные переменные.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("config: не удалось прочитать .env: %v", err)
	}
}

// getEnv возвращает значение переменной окружения или дефолт.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// splitList разбирает список через запятую, пустые элементы отбрасываются.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
