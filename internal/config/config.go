package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host             string
	Port             int
	AllowOrigins     []string
	LogLevel         string
	LogFile          string
	MaxUploadMB      int
	MenuCacheSize    int
	SuggestLimit     int
	SuggestThreshold float64
	ShutdownTimeout  time.Duration
}

// Load читает переменные окружения; .env в рабочем каталоге подхватывается, если есть.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Host:             getenv("HOST", "127.0.0.1"),
		Port:             getenvInt("PORT", 8082),
		AllowOrigins:     splitList(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFile:          getenv("LOG_FILE", "logs/menu-service.log"),
		MaxUploadMB:      getenvInt("MAX_UPLOAD_MB", 32),
		MenuCacheSize:    getenvInt("MENU_CACHE_SIZE", 256),
		SuggestLimit:     getenvInt("SUGGEST_LIMIT", 5),
		SuggestThreshold: getenvFloat("SUGGEST_THRESHOLD", 0.6),
		ShutdownTimeout:  getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// MaxUploadBytes — лимит тела запроса.
func (c Config) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) << 20 }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	n, err := strconv.Atoi(getenv(k, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvFloat(k string, def float64) float64 {
	f, err := strconv.ParseFloat(getenv(k, ""), 64)
	if err != nil || f < 0 || f > 1 {
		return def
	}
	return f
}

func getenvDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getenv(k, ""))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
