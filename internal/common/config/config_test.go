// internal/common/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "hotel-voicebot/internal/common/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "voicebot-server", cfg.App.Name)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "₹", cfg.Hotel.CurrencySymbol)
	assert.Equal(t, 2, cfg.NLP.KeywordOverrideThreshold)
	assert.Equal(t, "voicebot:queries", cfg.Analytics.RedisKey)
	assert.Equal(t, 10, cfg.Analytics.RecentLimit)
	assert.Equal(t, 5, cfg.Analytics.TopIntents)
	assert.Equal(t, 2, cfg.Hotel.Proximity.CityCenterKM)
	assert.Equal(t, 15, cfg.Hotel.Proximity.AirportKM)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: test-bot
  environment: test
server:
  port: 8081
hotel:
  currency_symbol: "$"
nlp:
  keyword_override_threshold: 3
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test-bot", cfg.App.Name)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "$", cfg.Hotel.CurrencySymbol)
	assert.Equal(t, 3, cfg.NLP.KeywordOverrideThreshold)

	// Unset fields still get defaults.
	assert.Equal(t, "voicebot:queries", cfg.Analytics.RedisKey)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile_InvalidPort(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: -1
`)

	cfg, err := LoadFromFile(path)

	require.Error(t, err)
	assert.Nil(t, cfg)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeConfigInvalid, stdErr.Code)
}

func TestLoadFromFile_RedisRequiredWhenEnabled(t *testing.T) {
	path := writeConfigFile(t, `
analytics:
  redis_enabled: true
`)

	cfg, err := LoadFromFile(path)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 5000}
	assert.Equal(t, "127.0.0.1:5000", cfg.Addr())

	cfg = ServerConfig{Port: 8080}
	assert.Equal(t, ":8080", cfg.Addr())
}
