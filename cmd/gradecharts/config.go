package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/corhuila/gradecharts/src/charts"
)

// Environment variables providing flag defaults.
const (
	envData      = "GRADECHARTS_DATA"
	envOutputDir = "GRADECHARTS_OUTPUT_DIR"
	envDPI       = "GRADECHARTS_DPI"
	envBins      = "GRADECHARTS_BINS"
	envLogLevel  = "GRADECHARTS_LOG_LEVEL"
)

type config struct {
	DataPath  string
	OutputDir string
	DPI       int
	Bins      int
	LogLevel  string
}

// loadEnvFile applies a dotenv file without overriding variables already set.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// configFromEnv builds the flag defaults from the environment.
func configFromEnv() (config, error) {
	cfg := config{
		DataPath:  readString(envData, "data/grades.csv"),
		OutputDir: readString(envOutputDir, charts.DefaultOutputDir),
		LogLevel:  readString(envLogLevel, "info"),
	}
	var err error
	if cfg.DPI, err = readInt(envDPI, charts.DefaultDPI, 1, 1200); err != nil {
		return config{}, err
	}
	if cfg.Bins, err = readInt(envBins, 10, 1, 200); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func readString(key, fallback string) string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	return strings.TrimSpace(raw)
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return parsed, nil
}
