package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string

	SessionSecret string
	SessionTTL    time.Duration
	BcryptCost    int

	RateLimit       int
	RateLimitWindow time.Duration

	GeminiBaseURL string
	GeminiAPIKey  string
	GeminiModel   string

	MailFrom string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "gridle"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "gridle"),
		DbName:         getEnv("MYSQL_DATABASE", "gridle"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),

		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-change-me"),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		BcryptCost:    getInt("BCRYPT_COST", 12),

		RateLimit:       getInt("RATE_LIMIT", 60),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", time.Minute),

		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL_ID", "gemini-1.5-flash"),

		MailFrom: getEnv("MAIL_FROM", "no-reply@gridle.local"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
