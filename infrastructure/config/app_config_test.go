package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadContentConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DEFAULT_PAGE_SIZE", "")
		t.Setenv("DECORATION_CONCURRENCY", "")
		t.Setenv("REQUEST_TIMEOUT", "")

		cfg := LoadContentConfigFromEnv()

		assert.Equal(t, 30, cfg.DefaultPageSize)
		assert.Equal(t, 8, cfg.DecorationConcurrency)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DEFAULT_PAGE_SIZE", "50")
		t.Setenv("DECORATION_CONCURRENCY", "2")
		t.Setenv("REQUEST_TIMEOUT", "5s")

		cfg := LoadContentConfigFromEnv()

		assert.Equal(t, 50, cfg.DefaultPageSize)
		assert.Equal(t, 2, cfg.DecorationConcurrency)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	})

	t.Run("malformed values keep defaults", func(t *testing.T) {
		t.Setenv("DEFAULT_PAGE_SIZE", "many")
		t.Setenv("REQUEST_TIMEOUT", "soon")

		cfg := LoadContentConfigFromEnv()

		assert.Equal(t, 30, cfg.DefaultPageSize)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})
}

func TestLoadSessionConfigFromEnv(t *testing.T) {
	t.Setenv("SESSION_COOKIE_NAME", "admin")
	t.Setenv("SESSION_TTL", "")

	cfg := LoadSessionConfigFromEnv()

	assert.Equal(t, "admin", cfg.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.TTL)
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"yes", false, true},
		{" ON ", false, true},
		{"0", true, false},
		{"off", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseBool(tt.in, tt.def), "parseBool(%q, %v)", tt.in, tt.def)
	}
}
