// Package config handles loading treehouse.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/treehouse/internal/paths"
)

// LocalConfigName is the per-directory config file name.
const LocalConfigName = "treehouse.toml"

// Default values used when the config files leave a field unset.
const (
	DefaultDataFile = "tasks.json"
	DefaultLogLevel = "info"
	DefaultWidth    = 80
)

// Config represents the merged treehouse configuration.
type Config struct {
	Data Data `toml:"data"`
	Log  Log  `toml:"log"`
	UI   UI   `toml:"ui"`
}

// Data contains persistence-related configuration.
type Data struct {
	// File is the path of the JSON file holding the task list.
	// Relative paths are resolved against the working directory.
	File string `toml:"file"`
}

// Log contains logging-related configuration.
type Log struct {
	// Level is the minimum log level (debug, info, warn, error, fatal).
	Level string `toml:"level"`

	// File is the log sink path. Empty selects the default state-dir
	// location; "off" disables logging entirely.
	File string `toml:"file"`
}

// UI contains terminal-output configuration.
type UI struct {
	// Width is the wrap width for task listings. Zero means auto-detect
	// from the terminal, falling back to DefaultWidth.
	Width int `toml:"width"`
}

// Load loads configuration from the working directory and the global config
// file. Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(dir, LocalConfigName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, localCfg, globalMeta, localMeta)
	return merged, nil
}

// DataFile returns the configured task file path, or DefaultDataFile.
func (c *Config) DataFile() string {
	if c.Data.File == "" {
		return DefaultDataFile
	}
	return c.Data.File
}

// LogLevel returns the configured log level name, or DefaultLogLevel.
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return DefaultLogLevel
	}
	return c.Log.Level
}

// LogFile returns the configured log sink path. The second return is false
// when logging is disabled. An empty configured path selects the default
// state-dir location.
func (c *Config) LogFile() (string, bool) {
	if strings.EqualFold(c.Log.File, "off") {
		return "", false
	}
	if c.Log.File != "" {
		return c.Log.File, true
	}

	path, err := paths.DefaultLogPath()
	if err != nil {
		return "", false
	}
	return path, true
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.Data.File = mergeString(localMeta.IsDefined("data", "file"), localCfg.Data.File, globalCfg.Data.File)
	merged.Log.Level = mergeString(localMeta.IsDefined("log", "level"), localCfg.Log.Level, globalCfg.Log.Level)
	merged.Log.File = mergeString(localMeta.IsDefined("log", "file"), localCfg.Log.File, globalCfg.Log.File)
	merged.UI.Width = mergeInt(localMeta.IsDefined("ui", "width"), localCfg.UI.Width, globalCfg.UI.Width)

	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}

func mergeInt(localDefined bool, localValue, globalValue int) int {
	if localDefined {
		return localValue
	}
	return globalValue
}
