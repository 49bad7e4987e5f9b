package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// TailwindCSSURL is the Tailwind play CDN script used for styling.
	TailwindCSSURL = "https://cdn.tailwindcss.com"
	// HTMXURL is the htmx build loaded on every page.
	HTMXURL = "https://unpkg.com/htmx.org@1.9.12"
)

// Server settings. Defaults are overridden by Load.
var (
	ServerPort         = "8080"
	SiteName           = "LaunchKit"
	BaseURL            = "http://localhost:8080"
	ServerRateLimitMax = 120
	ServerRateLimitExp = time.Minute
	PageCacheTTL       = time.Hour
)

// Load reads a .env file if one exists and applies environment overrides.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("PORT", ServerPort)
	SiteName = getEnv("SITE_NAME", SiteName)
	BaseURL = getEnv("BASE_URL", BaseURL)
	ServerRateLimitMax = getEnvAsInt("RATE_LIMIT_MAX", ServerRateLimitMax)
	ServerRateLimitExp = getEnvAsDuration("RATE_LIMIT_WINDOW", ServerRateLimitExp)
	PageCacheTTL = getEnvAsDuration("PAGE_CACHE_TTL", PageCacheTTL)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
