package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Groq    GroqConfig
	Gemini  GeminiConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type GroqConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxResumeChars int
	Timeout        time.Duration
}

type GeminiConfig struct {
	APIKey         string
	Model          string
	MaxResumeChars int
	Timeout        time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENVIRONMENT", "development"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Groq: GroqConfig{
			APIKey:         getEnv("GROQ_API_KEY", ""),
			BaseURL:        getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:          getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
			MaxResumeChars: getEnvAsInt("GROQ_MAX_RESUME_CHARS", 6000),
			Timeout:        getEnvAsDuration("GROQ_TIMEOUT", "10s"),
		},
		Gemini: GeminiConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			MaxResumeChars: getEnvAsInt("GEMINI_MAX_RESUME_CHARS", 5000),
			Timeout:        getEnvAsDuration("GEMINI_TIMEOUT", "15s"),
		},
	}
}

// AllowedOrigins returns the CORS origin list for the current environment:
// the configured frontend domains in production, localhost dev servers
// otherwise.
func (c *Config) AllowedOrigins() string {
	if c.Server.Env == "production" {
		return getEnv("ALLOWED_ORIGINS", "https://smarthire.vercel.app")
	}

	return strings.Join([]string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}, ",")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
