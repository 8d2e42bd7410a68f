// Package config loads tripgrid configuration from an optional YAML file,
// with defaults matching engine.DefaultConfig.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/jhale/tripgrid/internal/engine"
	"github.com/jhale/tripgrid/internal/layout"
	"gopkg.in/yaml.v3"
)

// File mirrors the on-disk YAML layout.
type File struct {
	HourHeight        float64 `yaml:"hour_height"`
	VisibleDayCount   int     `yaml:"visible_day_count"`
	AllowsTapToCreate bool    `yaml:"allows_tap_to_create"`
	DefaultScrollHour int     `yaml:"default_scroll_hour"`
	Timezone          string  `yaml:"timezone"`

	FullDay struct {
		MidnightStartMinHours int `yaml:"midnight_start_min_hours"`
		AbsoluteMinHours      int `yaml:"absolute_min_hours"`
	} `yaml:"full_day"`
}

// Load reads the YAML file at path and resolves it into an engine Config
// plus the display timezone. A missing file is not an error: defaults and
// the system's local zone apply.
func Load(path string) (engine.Config, *time.Location, error) {
	cfg := engine.DefaultConfig()
	loc := time.Local

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, loc, nil
	}
	if err != nil {
		return cfg, loc, fmt.Errorf("reading config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, loc, fmt.Errorf("parsing config: %w", err)
	}

	if f.HourHeight > 0 {
		cfg.HourHeight = f.HourHeight
	}
	if f.VisibleDayCount > 0 {
		cfg.VisibleDayCount = f.VisibleDayCount
	}
	cfg.AllowsTapToCreate = f.AllowsTapToCreate
	if f.DefaultScrollHour > 0 {
		cfg.DefaultScrollHour = f.DefaultScrollHour
	}
	if f.FullDay.MidnightStartMinHours > 0 || f.FullDay.AbsoluteMinHours > 0 {
		th := layout.DefaultThresholds()
		if f.FullDay.MidnightStartMinHours > 0 {
			th.MidnightStartMin = time.Duration(f.FullDay.MidnightStartMinHours) * time.Hour
		}
		if f.FullDay.AbsoluteMinHours > 0 {
			th.AbsoluteMin = time.Duration(f.FullDay.AbsoluteMinHours) * time.Hour
		}
		cfg.FullDay = th
	}
	if f.Timezone != "" {
		loc, err = time.LoadLocation(f.Timezone)
		if err != nil {
			return cfg, time.Local, fmt.Errorf("resolving timezone %q: %w", f.Timezone, err)
		}
	}
	return cfg, loc, nil
}
