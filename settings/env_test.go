package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smtpbridge/settings"
)

func TestLoad(t *testing.T) {
	// t.Setenv is process-wide, so no t.Parallel here.

	t.Run("set variables become typed entries", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("SMTP_USER", "user@example.com")
		t.Setenv("SMTP_PASSWORD", "secret")
		t.Setenv("SMTP_PORT", "2525")
		t.Setenv("SMTP_DEBUG", "true")

		tbl, err := settings.Load()
		require.NoError(t, err)

		host, ok := tbl.String(settings.Host)
		require.True(t, ok)
		assert.Equal(t, "smtp.example.com", host)

		port, ok := tbl.Int(settings.Port)
		require.True(t, ok)
		assert.Equal(t, 2525, port)

		debug, ok := tbl.Bool(settings.Debug)
		require.True(t, ok)
		assert.True(t, debug)
	})

	t.Run("unset variables stay absent", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "smtp.example.com")

		tbl, err := settings.Load()
		require.NoError(t, err)

		assert.True(t, tbl.Has(settings.Host))
		assert.False(t, tbl.Has(settings.Port))
		assert.False(t, tbl.Has(settings.From))
		assert.False(t, tbl.Has(settings.Disable))
	})

	t.Run("malformed integer is a load error", func(t *testing.T) {
		t.Setenv("SMTP_PORT", "not-a-number")

		_, err := settings.Load()
		require.Error(t, err)
	})

	t.Run("repeated loads yield equal tables", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("SMTP_PORT", "465")

		first, err := settings.Load()
		require.NoError(t, err)
		second, err := settings.Load()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
