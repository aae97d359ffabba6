package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"lumina-path/internal/domain/entity"
)

type Config struct {
	HTTPAddr      string
	TelegramToken string
	ReportPrefix  string
	ReportLayout  string
	LogLevel      string
	MaxUploadMB   int
	CORSOrigins   []string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		ReportPrefix:  getEnv("REPORT_PREFIX", entity.DefaultReportPrefix),
		ReportLayout:  os.Getenv("REPORT_LAYOUT"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		MaxUploadMB:   20,
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
	}

	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("MAX_UPLOAD_MB must be a positive integer, got %q", v)
		}
		cfg.MaxUploadMB = n
	}

	return cfg, nil
}

// MaxUploadBytes лимит тела запроса в байтах.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
