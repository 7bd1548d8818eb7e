package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     int
	LogLevel string

	// APIKey gates the honeypot endpoints. Empty disables auth.
	APIKey string

	// CallbackURL receives the final intelligence report.
	CallbackURL     string
	CallbackRetries int
	CallbackTimeout time.Duration

	GroqAPIKey string
	GroqModel  string

	NatsURL   string
	NatsToken string

	// Session storage: DatabaseURL wins over RedisURL; with neither set
	// sessions live in memory.
	DatabaseURL    string
	RedisURL       string
	SessionIdleTTL time.Duration

	GeneratorTimeout time.Duration

	// Engagement policy knobs.
	PhaseTrustMax      int
	PhaseProbingMax    int
	PhaseExtractionMax int
	MaxMessages        int
	MinMessages        int
	IntelThreshold     int
	HistoryWindow      int
}

func Load() Config {
	return Config{
		Port:             envInt("HONEYPOT_PORT", 8080),
		LogLevel:         envStr("LOG_LEVEL", "info"),
		APIKey:           envStr("HONEYPOT_API_KEY", ""),
		CallbackURL:      envStr("CALLBACK_URL", "https://hackathon.guvi.in/api/updateHoneyPotFinalResult"),
		CallbackRetries:  envInt("CALLBACK_RETRIES", 3),
		CallbackTimeout:  envDuration("CALLBACK_TIMEOUT", 10*time.Second),
		GroqAPIKey:       envStr("GROQ_API_KEY", ""),
		GroqModel:        envStr("GROQ_MODEL", "llama-3.3-70b-versatile"),
		NatsURL:          envStr("NATS_URL", ""),
		NatsToken:        envStr("NATS_TOKEN", ""),
		DatabaseURL:      envStr("DATABASE_URL", ""),
		RedisURL:         envStr("REDIS_URL", ""),
		SessionIdleTTL:   envDuration("SESSION_IDLE_TTL", time.Hour),
		GeneratorTimeout: envDuration("GENERATOR_TIMEOUT", 15*time.Second),

		PhaseTrustMax:      envInt("PHASE_TRUST_MAX", 2),
		PhaseProbingMax:    envInt("PHASE_PROBING_MAX", 5),
		PhaseExtractionMax: envInt("PHASE_EXTRACTION_MAX", 8),
		MaxMessages:        envInt("MAX_MESSAGES", 20),
		MinMessages:        envInt("MIN_MESSAGES", 8),
		IntelThreshold:     envInt("INTEL_THRESHOLD", 3),
		HistoryWindow:      envInt("HISTORY_WINDOW", 6),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
