package config

import (
	"log"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"SNAKE_SCORE_FILE", "SNAKE_STATS_FILE", "SNAKE_LOG_FILE", "SNAKE_SEED", "SNAKE_CELL_SIZE", "SNAKE_FPS"} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScoreFile != filepath.Join("data", "scores.bin") {
		t.Errorf("ScoreFile = %q", cfg.ScoreFile)
	}
	if cfg.CellSize != 20 || cfg.FPS != 60 {
		t.Errorf("CellSize %d FPS %d", cfg.CellSize, cfg.FPS)
	}
	if cfg.Seed == 0 {
		t.Errorf("seed should be picked from the clock")
	}
}

func TestEnvFileAndFlags(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SNAKE_SCORE_FILE=/tmp/from-env.bin\nSNAKE_SEED=77\nSNAKE_CELL_SIZE=16\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set, even empty ones
	for _, k := range []string{"SNAKE_SCORE_FILE", "SNAKE_SEED", "SNAKE_CELL_SIZE"} {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range []string{"SNAKE_SCORE_FILE", "SNAKE_SEED", "SNAKE_CELL_SIZE"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := Load(envFile, []string{"-cell", "24", "-stats", ""})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScoreFile != "/tmp/from-env.bin" {
		t.Errorf("ScoreFile = %q", cfg.ScoreFile)
	}
	if cfg.Seed != 77 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.CellSize != 24 {
		t.Errorf("flag should win over env, CellSize = %d", cfg.CellSize)
	}
	if cfg.StatsFile != "" {
		t.Errorf("StatsFile = %q", cfg.StatsFile)
	}
}

func TestInvalidValues(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "none.env")

	t.Setenv("SNAKE_FPS", "fast")
	if _, err := Load(missing, nil); err == nil {
		t.Errorf("expected an error for a non-numeric SNAKE_FPS")
	}

	t.Setenv("SNAKE_FPS", "")
	if _, err := Load(missing, []string{"-cell", "0"}); err == nil {
		t.Errorf("expected an error for a zero cell size")
	}
	if _, err := Load(missing, []string{"-bogus"}); err == nil {
		t.Errorf("expected an error for an unknown flag")
	}
}

func TestOpenLog(t *testing.T) {
	cfg := Config{}
	c, err := cfg.OpenLog()
	if err != nil || c == nil {
		t.Fatalf("OpenLog without file: %v", err)
	}
	c.Close()

	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "snake.log")
	c, err = cfg.OpenLog()
	if err != nil {
		t.Fatalf("OpenLog: %v", err)
	}
	defer func() {
		c.Close()
		log.SetOutput(os.Stderr)
	}()
	if _, err := os.Stat(cfg.LogFile); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
