package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables.
type Config struct {
	Port         string
	GinMode      string
	FrontendURLs []string

	AmadeusEnv          string
	AmadeusClientID     string
	AmadeusClientSecret string

	ORSAPIKey string

	InterpretAPIKey string
	InterpretModel  string

	RedisURL        string
	CacheTTL        time.Duration
	AirportsPerCity int
}

// Load reads the .env file (if any) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", ""),
		FrontendURLs: splitCSV(os.Getenv("FRONTEND_URL")),

		AmadeusEnv:          getEnv("AMADEUS_ENV", "test"),
		AmadeusClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		AmadeusClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),

		ORSAPIKey: os.Getenv("ORS_API_KEY"),

		InterpretAPIKey: os.Getenv("OPENAI_API_KEY"),
		InterpretModel:  getEnv("OPENAI_MODEL", ""),

		RedisURL:        os.Getenv("REDIS_URL"),
		CacheTTL:        time.Duration(getEnvInt("CACHE_TTL_SECONDS", 21600)) * time.Second,
		AirportsPerCity: getEnvInt("AIRPORTS_PER_CITY", 2),
	}
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
