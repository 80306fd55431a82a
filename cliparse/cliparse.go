package cliparse

import (
	"errors"
	"flag"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/danielhkuo/lucky-wheel/models"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"3318"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	AdminKeySalt string `env:"ADMIN_KEY_SALT"`
	InstanceID   string `env:"INSTANCE_ID" envDefault:"lucky-wheel"`
	SeedFile     string `env:"SEED_FILE"`

	// Spin-up animation
	SpinDuration float64 `env:"SPIN_DURATION" envDefault:"5"` // seconds
	SpinTurns    float64 `env:"SPIN_TURNS" envDefault:"6"`
	BaseSpeed    float64 `env:"SPIN_BASE_SPEED" envDefault:"3"` // rad/s floor

	// Lock animation overrides (zero = package default)
	StopExtraRevs     float64       `env:"STOP_EXTRA_REVS"`
	StopDuration      time.Duration `env:"STOP_DURATION"`
	StopNextExtraRevs float64       `env:"STOP_NEXT_EXTRA_REVS"`
	StopNextDuration  time.Duration `env:"STOP_NEXT_DURATION"`
	StopFinalPause    time.Duration `env:"STOP_FINAL_PAUSE"`
}

// StopConfig assembles the lock animation settings with defaults filled.
func (c Config) StopConfig() models.StopConfig {
	return models.StopConfig{
		ExtraRevs:     c.StopExtraRevs,
		Duration:      c.StopDuration,
		NextExtraRevs: c.StopNextExtraRevs,
		NextDuration:  c.StopNextDuration,
		FinalPause:    c.StopFinalPause,
	}.Normalize()
}

// ParseFlags reads environment variables, then lets CLI flags override
// them, then validates the result
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("lucky-wheel", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "YAML seed file for candidates and prizes")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", cfg.AdminKeySalt, "Admin key salt (prefer env)")

	// Animation tuning
	fs.Float64Var(&cfg.SpinDuration, "spin-duration", cfg.SpinDuration, "Free spin duration in seconds")
	fs.Float64Var(&cfg.SpinTurns, "spin-turns", cfg.SpinTurns, "Revolutions per free spin")
	fs.Float64Var(&cfg.BaseSpeed, "base-speed", cfg.BaseSpeed, "Minimum peak angular velocity (rad/s)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			cfg.DatabaseURL = "file:lucky-wheel.db"
		} else {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if cfg.SpinDuration <= 0 || cfg.SpinTurns <= 0 || cfg.BaseSpeed <= 0 {
		return Config{}, errors.New("spin duration, turns, and base speed must be positive")
	}

	return cfg, nil
}
