package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.ListenAddr)
	assert.NotEmpty(t, cfg.DataPath)
	assert.NotEmpty(t, cfg.BaseURL)
	// BASE_URL is normalized without a trailing slash so QR links join cleanly.
	assert.False(t, cfg.BaseURL[len(cfg.BaseURL)-1] == '/')
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BASE_URL", "https://boxes.example.com/")
	t.Setenv("ADMIN_PIN", "4242")

	cfg := Load()
	assert.Equal(t, "https://boxes.example.com", cfg.BaseURL)
	assert.Equal(t, "4242", cfg.AdminPIN)
}
