// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("ADMIN_KEY_SALT", "test-salt")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_KEY_SALT", "env-salt")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AdminKeySalt != "s1" {
		t.Errorf("CLI should override env: got salt %q", cfg.AdminKeySalt)
	}
}

func TestParseFlags_SqliteDefaults(t *testing.T) {
	t.Setenv("ADMIN_KEY_SALT", "test-salt")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite default, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:lucky-wheel.db" {
		t.Errorf("expected default sqlite URL, got %s", cfg.DatabaseURL)
	}
	if cfg.SpinDuration != 5 || cfg.SpinTurns != 6 || cfg.BaseSpeed != 3 {
		t.Errorf("unexpected spin defaults: %v %v %v", cfg.SpinDuration, cfg.SpinTurns, cfg.BaseSpeed)
	}
}

func TestParseFlags_MissingSalt(t *testing.T) {
	if _, err := ParseFlags([]string{"-d", "file:test.db"}); err == nil {
		t.Error("expected error when ADMIN_KEY_SALT missing")
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	t.Setenv("ADMIN_KEY_SALT", "test-salt")

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("expected error when postgres has no DATABASE_URL")
	}
}

func TestParseFlags_BadDatabaseType(t *testing.T) {
	t.Setenv("ADMIN_KEY_SALT", "test-salt")

	if _, err := ParseFlags([]string{"-t", "mysql", "-d", "x"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestStopConfigDefaults(t *testing.T) {
	t.Setenv("ADMIN_KEY_SALT", "test-salt")
	t.Setenv("STOP_DURATION", "2s")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	stop := cfg.StopConfig()
	if stop.Duration != 2*time.Second {
		t.Errorf("expected 2s stop duration, got %v", stop.Duration)
	}
	// unset fields take defaults
	if stop.ExtraRevs != 3.0 {
		t.Errorf("expected default extra revs, got %v", stop.ExtraRevs)
	}
	if stop.FinalPause != 1200*time.Millisecond {
		t.Errorf("expected default final pause, got %v", stop.FinalPause)
	}
}
