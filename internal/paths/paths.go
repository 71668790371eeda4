package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// GlobalConfigPath returns the path of the global treehouse config file.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "treehouse", "config.toml"), nil
}

// DefaultStateDir returns the default treehouse state directory.
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "state", "treehouse"), nil
}

// DefaultLogPath returns the default path of the treehouse log file.
func DefaultLogPath() (string, error) {
	stateDir, err := DefaultStateDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(stateDir, "th.log"), nil
}
