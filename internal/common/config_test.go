package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, int64(1<<20), cfg.Upload.MaxSizeBytes)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, "pdftotext", cfg.Extract.Pdftotext)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_EXPIRY", "30m")
	t.Setenv("OPENAI_TIMEOUT", "5s")
	t.Setenv("UPLOAD_MAX_BYTES", "2048")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionExpiry)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, int64(2048), cfg.Upload.MaxSizeBytes)
}

func TestLoadConfigIgnoresBadDuration(t *testing.T) {
	t.Setenv("SESSION_EXPIRY", "not-a-duration")
	cfg := LoadConfig()
	assert.Equal(t, 24*time.Hour, cfg.Server.SessionExpiry)
}
