// Package config loads server configuration from YAML, with working
// defaults when no file is given.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kintai/attendance-engine/engine"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Attendance AttendanceConfig `yaml:"attendance"`
	Sweeper    SweeperConfig    `yaml:"sweeper"`
}

type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AttendanceConfig tunes the time-bucket thresholds and the lateness
// grace applied to exports. Pointer fields distinguish "absent" from
// an explicit zero (a zero break, a night window ending at midnight);
// absent fields fall back to the statutory defaults on normalization.
type AttendanceConfig struct {
	BreakAfterMinutes        *int `yaml:"break_after_minutes"`
	BreakMinutes             *int `yaml:"break_minutes"`
	OvertimeAfterMinutes     *int `yaml:"overtime_after_minutes"`
	OvertimeFlagAfterMinutes *int `yaml:"overtime_flag_after_minutes"`
	NightStartHour           *int `yaml:"night_start_hour"`
	NightEndHour             *int `yaml:"night_end_hour"`
	ExportGraceMinutes       *int `yaml:"export_grace_minutes"`
}

// SweeperConfig controls the stale open-session sweep.
type SweeperConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Interval    time.Duration `yaml:"-"`
	MaxOpen     time.Duration `yaml:"-"`
	IntervalRaw string        `yaml:"interval"`
	MaxOpenRaw  string        `yaml:"max_open"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{
		Server:   ServerConfig{ListenAddr: ":8080"},
		Database: DatabaseConfig{Path: "./data/attendance.db"},
		Sweeper: SweeperConfig{
			Enabled:  true,
			Interval: 30 * time.Minute,
			MaxOpen:  18 * time.Hour,
		},
	}
	cfg.Attendance.applyDefaults()
	return cfg
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8080"
	}
	if c.Database.Path == "" {
		return fmt.Errorf("config: database.path must be set")
	}
	c.Attendance.applyDefaults()

	if *c.Attendance.NightStartHour <= *c.Attendance.NightEndHour {
		return fmt.Errorf("config: attendance night window must wrap midnight (start %d, end %d)",
			*c.Attendance.NightStartHour, *c.Attendance.NightEndHour)
	}

	return c.Sweeper.validateAndNormalize()
}

func (a *AttendanceConfig) applyDefaults() {
	def := engine.DefaultClassifierConfig()
	setIfNil(&a.BreakAfterMinutes, def.BreakAfterMinutes)
	setIfNil(&a.BreakMinutes, def.BreakMinutes)
	setIfNil(&a.OvertimeAfterMinutes, def.OvertimeAfterMinutes)
	setIfNil(&a.OvertimeFlagAfterMinutes, def.OvertimeFlagAfterMinutes)
	setIfNil(&a.NightStartHour, def.NightStartHour)
	setIfNil(&a.NightEndHour, def.NightEndHour)
	setIfNil(&a.ExportGraceMinutes, engine.ExportGraceMinutes)
}

func setIfNil(field **int, value int) {
	if *field == nil {
		*field = &value
	}
}

func (s *SweeperConfig) validateAndNormalize() error {
	var err error
	if s.Interval, err = parseDurationOr(s.IntervalRaw, 30*time.Minute); err != nil {
		return fmt.Errorf("config: sweeper.interval: %w", err)
	}
	if s.MaxOpen, err = parseDurationOr(s.MaxOpenRaw, 18*time.Hour); err != nil {
		return fmt.Errorf("config: sweeper.max_open: %w", err)
	}
	return nil
}

func parseDurationOr(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}

// ClassifierConfig maps the attendance section onto the engine's
// classifier thresholds. Call only after normalization.
func (a AttendanceConfig) ClassifierConfig() engine.ClassifierConfig {
	return engine.ClassifierConfig{
		BreakAfterMinutes:        *a.BreakAfterMinutes,
		BreakMinutes:             *a.BreakMinutes,
		OvertimeAfterMinutes:     *a.OvertimeAfterMinutes,
		OvertimeFlagAfterMinutes: *a.OvertimeFlagAfterMinutes,
		NightStartHour:           *a.NightStartHour,
		NightEndHour:             *a.NightEndHour,
	}
}

// GraceMinutes returns the export lateness grace. Call only after
// normalization.
func (a AttendanceConfig) GraceMinutes() int {
	return *a.ExportGraceMinutes
}
