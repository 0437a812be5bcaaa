package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Language is one UI language offered to clients
type Language struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Config struct {
	Port           string
	APIHost        string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	JWTSecret      string
	JWTExpireHours int
	DefaultCulture string
	Languages      []Language
}

// LoadConfig loads configuration from environment variables (.env file if present)
func LoadConfig() *Config {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		APIHost:        getEnv("API_HOST", "localhost"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "techstock"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpireHours: getEnvAsInt("JWT_EXPIRE_HOURS", 24),
		DefaultCulture: getEnv("DEFAULT_CULTURE", "fr"),
		Languages:      SupportedLanguages(),
	}
}

// SupportedLanguages returns the fixed language set offered by the API.
// Constructed once at startup and passed down; handlers never mutate it.
func SupportedLanguages() []Language {
	return []Language{
		{ID: "en", Name: "English"},
		{ID: "fr", Name: "Français"},
		{ID: "nl", Name: "Nederlands"},
	}
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt gets environment variable as integer with fallback
func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}
