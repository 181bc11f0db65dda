package datachat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"RUN_MODE", "API_PORT", "FORWARDER_PORT", "STATIC_DIR", "OPENAI_MODEL",
		"OPENAI_BASE_URL", "OPENAI_TIMEOUT_SECONDS", "SESSION_STORE",
		"SESSION_TTL_MINUTES", "REDIS_HOST", "REDIS_PORT", "REDIS_DB", "NATS_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := loadAppConfig()

	assert.Equal(t, "prod", cfg.Mode)
	assert.Equal(t, ":8000", cfg.ApiPort)
	assert.Equal(t, ":8001", cfg.ForwarderPort)
	assert.Equal(t, "client/build", cfg.StaticDir)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIConfig.Model)
	assert.Empty(t, cfg.OpenAIConfig.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.OpenAIConfig.Timeout)
	assert.Equal(t, SessionStoreMemory, cfg.SessionConfig.Store)
	assert.Equal(t, time.Hour, cfg.SessionConfig.TTL)
	assert.Equal(t, "localhost", cfg.RedisConfig.Host)
	assert.Equal(t, "6379", cfg.RedisConfig.Port)
	assert.Equal(t, 0, cfg.RedisConfig.DB)
	assert.Empty(t, cfg.NatsURL)
}

func TestLoadAppConfig_Overrides(t *testing.T) {
	t.Setenv("RUN_MODE", "dev")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "5")
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("SESSION_TTL_MINUTES", "15")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("NATS_URL", "nats://localhost:4222")

	cfg := loadAppConfig()

	assert.Equal(t, "dev", cfg.Mode)
	assert.Equal(t, "sk-test", cfg.OpenAIConfig.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAIConfig.Model)
	assert.Equal(t, 5*time.Second, cfg.OpenAIConfig.Timeout)
	assert.Equal(t, SessionStoreRedis, cfg.SessionConfig.Store)
	assert.Equal(t, 15*time.Minute, cfg.SessionConfig.TTL)
	assert.Equal(t, 3, cfg.RedisConfig.DB)
	assert.Equal(t, "nats://localhost:4222", cfg.NatsURL)
}

func TestGetIntEnvOrDefault(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 7},
		{"valid", "42", 42},
		{"not a number", "abc", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATACHAT_TEST_INT", tt.value)
			assert.Equal(t, tt.want, getIntEnvOrDefault("DATACHAT_TEST_INT", 7))
		})
	}
}
