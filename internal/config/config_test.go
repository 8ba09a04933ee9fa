package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LLM_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.LLM.Enabled)
	assert.False(t, cfg.LLM.Available())
	assert.Equal(t, 6000, cfg.LLM.PromptCharLimit)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 18.0, cfg.Risk.SuspiciousThreshold)
	assert.Equal(t, 40.0, cfg.Risk.FraudLikelyThreshold)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_ENABLED", "false")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("WORKER_POOL_SIZE", "not-a-number")
	t.Setenv("RISK_SUSPICIOUS_THRESHOLD", "20.5")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.LLM.Enabled)
	assert.False(t, cfg.LLM.Available())
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 4, cfg.Worker.PoolSize)
	assert.Equal(t, 20.5, cfg.Risk.SuspiciousThreshold)
}

func TestLLMConfig_Available(t *testing.T) {
	assert.True(t, LLMConfig{Enabled: true, APIKey: "k"}.Available())
	assert.False(t, LLMConfig{Enabled: true}.Available())
	assert.False(t, LLMConfig{APIKey: "k"}.Available())
}
