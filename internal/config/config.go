package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the storefront binary reads from the environment.
type Config struct {
	ListenAddr      string
	WhatsAppContact string // destination number, digits only
	SessionSecret   string
	SessionTTL      time.Duration
	SubmitDebounce  time.Duration
	KafkaBrokers    []string // empty disables hand-off publishing
	KafkaTopic      string
	AllowedOrigins  []string
	WebDir          string // static SPA assets; empty disables serving
}

var ErrSessionSecret = errors.New("SESSION_SECRET must be set and at least 32 characters long")

// Load reads configuration from the environment, with a .env file as a
// convenience for local runs.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		WhatsAppContact: getEnv("WHATSAPP_CONTACT", "2348035771482"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		SessionTTL:      getDuration("SESSION_TTL", 30*time.Minute),
		SubmitDebounce:  getDuration("SUBMIT_DEBOUNCE", time.Second),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "storefront-orders"),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "*")),
		WebDir:          os.Getenv("WEB_DIR"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = splitList(brokers)
	}

	if len(cfg.SessionSecret) < 32 {
		return Config{}, ErrSessionSecret
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
