package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 9, cfg.SlotDayStartHour)
	assert.Equal(t, 17, cfg.SlotDayEndHour)
	assert.Equal(t, 5, cfg.SlotMaxQuantity)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SLOT_DAY_START_HOUR", "8")
	t.Setenv("SLOT_DAY_END_HOUR", "20")
	t.Setenv("SLOT_MAX_QUANTITY", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 8, cfg.SlotDayStartHour)
	assert.Equal(t, 20, cfg.SlotDayEndHour)
	assert.Equal(t, 3, cfg.SlotMaxQuantity)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SLOT_DAY_START_HOUR", "nine")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvertedWindow(t *testing.T) {
	t.Setenv("SLOT_DAY_START_HOUR", "18")
	t.Setenv("SLOT_DAY_END_HOUR", "9")
	_, err := Load()
	assert.Error(t, err)
}
