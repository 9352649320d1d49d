package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "./uploads", cfg.Storage.UploadPath)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)

	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.BaseURL)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
	assert.Equal(t, 6000, cfg.Groq.MaxResumeChars)
	assert.Equal(t, 10*time.Second, cfg.Groq.Timeout)

	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 5000, cfg.Gemini.MaxResumeChars)
	assert.Equal(t, 15*time.Second, cfg.Gemini.Timeout)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_TIMEOUT", "3s")
	t.Setenv("GEMINI_MAX_RESUME_CHARS", "1234")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "gsk_test", cfg.Groq.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Groq.Timeout)
	assert.Equal(t, 1234, cfg.Gemini.MaxResumeChars)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
}

func TestLoadIgnoresInvalidNumericValues(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("GROQ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 10*time.Second, cfg.Groq.Timeout)
}

func TestAllowedOrigins(t *testing.T) {
	dev := &Config{Server: ServerConfig{Env: "development"}}
	assert.Contains(t, dev.AllowedOrigins(), "http://localhost:5173")
	assert.Contains(t, dev.AllowedOrigins(), "http://localhost:3000")

	prod := &Config{Server: ServerConfig{Env: "production"}}
	assert.Equal(t, "https://smarthire.vercel.app", prod.AllowedOrigins())

	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")
	assert.Equal(t, "https://app.example.com", prod.AllowedOrigins())
}
