package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the attrbench configuration.
type Config struct {
	EnvFile    string     `env:"ATTRBENCH_ENV_FILE"    envDefault:".env"`
	NX         int        `env:"ATTRBENCH_NX"          envDefault:"256"`
	NY         int        `env:"ATTRBENCH_NY"          envDefault:"256"`
	Rounds     int        `env:"ATTRBENCH_ROUNDS"      envDefault:"5"`
	SplitEvery int        `env:"ATTRBENCH_SPLIT_EVERY" envDefault:"7"`
	PolicyFile string     `env:"ATTRBENCH_POLICY_FILE"`
	Profile    string     `env:"ATTRBENCH_PROFILE"`
	LogLevel   slog.Level `env:"ATTRBENCH_LOG_LEVEL"   envDefault:"info"`
}

// loadEnvFile loads variables from path into the environment, if the file exists.
// Variables that are already set are not overwritten.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}

	return nil
}

// ParseConfig parses the environment and flags into a Config. Variables
// from the env file are applied before the environment is parsed.
func ParseConfig(flags *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	flags.IntVar(&cfg.NX, "nx", cfg.NX, "number of cells in x direction")
	flags.IntVar(&cfg.NY, "ny", cfg.NY, "number of cells in y direction")
	flags.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "number of workload rounds")
	flags.IntVar(&cfg.SplitEvery, "split-every", cfg.SplitEvery, "split every n-th cell")
	flags.StringVar(&cfg.PolicyFile, "policies", cfg.PolicyFile, "path to a yaml container policy file")
	flags.StringVar(&cfg.Profile, "profile", cfg.Profile, "profile mode: cpu, mem or trace")
	flags.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.NX <= 0 || c.NY <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.NX, c.NY)
	}

	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}

	if c.SplitEvery <= 0 {
		return fmt.Errorf("split-every must be positive, got %d", c.SplitEvery)
	}

	switch c.Profile {
	case "", "cpu", "mem", "trace":
	default:
		return fmt.Errorf("unknown profile mode %q", c.Profile)
	}

	return nil
}
