package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shelfscore/internal/config"
	"shelfscore/internal/spec"
)

// loadConfig resolves and loads the config. An explicit path must
// exist; without one the config file is searched upward from the
// working directory, falling back to built-in defaults when absent.
func loadConfig(configPath string) (spec.Config, error) {
	if strings.TrimSpace(configPath) != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return spec.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		return config.Load(abs)
	}
	found, err := config.FindConfigPath("")
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return spec.Config{}, err
	}
	return config.Load(found)
}

// resolveOutputDir picks the runs directory: an explicit flag wins,
// otherwise the configured output dir relative to the working
// directory.
func resolveOutputDir(inputDir string, cfg spec.Config) (string, error) {
	if strings.TrimSpace(inputDir) != "" {
		return filepath.Abs(inputDir)
	}
	dir := cfg.Output.Dir
	if dir == "" {
		dir = config.DefaultOutputDir
	}
	if filepath.IsAbs(dir) {
		return dir, nil
	}
	return filepath.Abs(dir)
}
