package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log   LogConfig
	Grid  GridConfig
	Clash ClashConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// GridConfig defines the fixed weekly time axis the planner renders against.
type GridConfig struct {
	StartMinute  int
	EndMinute    int
	StepMinutes  int
	ShowWeekends bool
}

// ClashConfig tunes clash detection behaviour.
type ClashConfig struct {
	// VenueToleranceMinutes widens venue-clash matching to back-to-back
	// bookings within the window. Zero means only true overlaps count.
	// Pending product clarification; keep zero until decided.
	VenueToleranceMinutes int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	gridStart, err := parseClock(v.GetString("PLANNER_GRID_START"), 8*60)
	if err != nil {
		return nil, fmt.Errorf("PLANNER_GRID_START: %w", err)
	}
	gridEnd, err := parseClock(v.GetString("PLANNER_GRID_END"), 22*60)
	if err != nil {
		return nil, fmt.Errorf("PLANNER_GRID_END: %w", err)
	}

	cfg.Grid = GridConfig{
		StartMinute:  gridStart,
		EndMinute:    gridEnd,
		StepMinutes:  v.GetInt("PLANNER_GRID_STEP_MINUTES"),
		ShowWeekends: v.GetBool("PLANNER_SHOW_WEEKENDS"),
	}

	cfg.Clash = ClashConfig{
		VenueToleranceMinutes: v.GetInt("PLANNER_VENUE_TOLERANCE_MINUTES"),
	}

	if err := cfg.Grid.Validate(); err != nil {
		return nil, err
	}
	if cfg.Clash.VenueToleranceMinutes < 0 {
		return nil, fmt.Errorf("PLANNER_VENUE_TOLERANCE_MINUTES must not be negative")
	}

	return cfg, nil
}

// Validate checks the grid axis is well formed.
func (g GridConfig) Validate() error {
	if g.StepMinutes <= 0 {
		return fmt.Errorf("grid step must be positive, got %d", g.StepMinutes)
	}
	if g.EndMinute <= g.StartMinute {
		return fmt.Errorf("grid end (%d) must be after grid start (%d)", g.EndMinute, g.StartMinute)
	}
	if (g.EndMinute-g.StartMinute)%g.StepMinutes != 0 {
		return fmt.Errorf("grid range %d-%d is not divisible by step %d", g.StartMinute, g.EndMinute, g.StepMinutes)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("PLANNER_GRID_START", "08:00")
	v.SetDefault("PLANNER_GRID_END", "22:00")
	v.SetDefault("PLANNER_GRID_STEP_MINUTES", 30)
	v.SetDefault("PLANNER_SHOW_WEEKENDS", false)
	v.SetDefault("PLANNER_VENUE_TOLERANCE_MINUTES", 0)
}

// parseClock coerces an "HH:MM" string into minutes since midnight.
func parseClock(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", raw)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM, got %q", raw)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM, got %q", raw)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock value out of range: %q", raw)
	}
	return hours*60 + minutes, nil
}
