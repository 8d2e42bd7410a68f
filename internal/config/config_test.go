package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tripgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, loc, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 60.0, cfg.HourHeight)
	assert.Equal(t, 7, cfg.VisibleDayCount)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_OverridesAndThresholds(t *testing.T) {
	path := writeConfig(t, `
hour_height: 48
visible_day_count: 3
allows_tap_to_create: true
default_scroll_hour: 8
timezone: Asia/Tokyo
full_day:
  midnight_start_min_hours: 6
  absolute_min_hours: 12
`)

	cfg, loc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 48.0, cfg.HourHeight)
	assert.Equal(t, 3, cfg.VisibleDayCount)
	assert.True(t, cfg.AllowsTapToCreate)
	assert.Equal(t, 8, cfg.DefaultScrollHour)
	assert.Equal(t, 6*time.Hour, cfg.FullDay.MidnightStartMin)
	assert.Equal(t, 12*time.Hour, cfg.FullDay.AbsoluteMin)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestLoad_BadTimezone(t *testing.T) {
	path := writeConfig(t, "timezone: Not/AZone\n")
	_, _, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "hour_height: [nope")
	_, _, err := Load(path)
	assert.Error(t, err)
}
