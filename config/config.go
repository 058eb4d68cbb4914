// Package config collects the runtime settings from a .env file, the
// environment and the command line, in increasing order of precedence.
package config

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	ScoreFile string
	StatsFile string
	LogFile   string
	Seed      uint64
	CellSize  int
	FPS       int
}

func defaults() Config {
	return Config{
		ScoreFile: filepath.Join("data", "scores.bin"),
		StatsFile: filepath.Join("data", "stats.json"),
		CellSize:  20,
		FPS:       60,
	}
}

// Load reads envFile (a missing file is not an error), then the SNAKE_*
// environment variables, then args.
func Load(envFile string, args []string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("config: %v", err)
	}

	cfg := defaults()
	if v := os.Getenv("SNAKE_SCORE_FILE"); v != "" {
		cfg.ScoreFile = v
	}
	if v := os.Getenv("SNAKE_STATS_FILE"); v != "" {
		cfg.StatsFile = v
	}
	if v := os.Getenv("SNAKE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if err := envUint("SNAKE_SEED", &cfg.Seed); err != nil {
		return cfg, err
	}
	if err := envInt("SNAKE_CELL_SIZE", &cfg.CellSize); err != nil {
		return cfg, err
	}
	if err := envInt("SNAKE_FPS", &cfg.FPS); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ScoreFile, "scores", cfg.ScoreFile, "Binary high-score file")
	fs.StringVar(&cfg.StatsFile, "stats", cfg.StatsFile, "JSON game history file, empty to disable")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write the log to this file instead of stderr")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 picks one from the clock")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames per second of the render loop")
	if err := fs.Parse(args); err != nil {
		return cfg, errors.Wrap(err, "parse flags")
	}

	if cfg.CellSize <= 0 {
		return cfg, errors.Errorf("cell size must be positive, got %d", cfg.CellSize)
	}
	if cfg.FPS <= 0 {
		return cfg, errors.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

// OpenLog points the standard logger at cfg.LogFile. The returned closer is
// a no-op when logging stays on stderr.
func (cfg Config) OpenLog() (io.Closer, error) {
	if cfg.LogFile == "" {
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	log.SetOutput(f)
	return f, nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrapf(err, "%s", key)
	}
	*dst = n
	return nil
}

func envUint(key string, dst *uint64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "%s", key)
	}
	*dst = n
	return nil
}
