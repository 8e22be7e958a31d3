package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// configFileName is looked up in the working directory when no
// explicit --config path is given
const configFileName = "passcheck.toml"

// Settings holds user-configurable options
type Settings struct {
	// WeakWordlist is the path to the commonly-used-passwords list.
	// Empty disables the weak-list gate.
	WeakWordlist string `mapstructure:"weak_wordlist"`
	// BannedWordlist is the path to the breached-passwords list.
	// Empty disables the banned-list gate.
	BannedWordlist string `mapstructure:"banned_wordlist"`
	// CacheSize bounds the evaluation memoization cache
	CacheSize int `mapstructure:"cache_size"`
	// LogLevel is one of "debug", "info", "warn", "error"
	LogLevel string `mapstructure:"log_level"`
	// GeneratorLength is the default generated password length
	GeneratorLength int `mapstructure:"generator_length"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		CacheSize:       defaultCacheSize,
		LogLevel:        "info",
		GeneratorLength: defaultGeneratorLength,
	}
}

// parseLogLevel maps a settings string to a slog level, defaulting to Info
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config manages application settings loaded from an optional TOML file
type Config struct {
	mu       sync.RWMutex
	path     string
	settings *Settings
	watcher  *fsnotify.Watcher
	onReload func() // Callback when the config file changes
}

// NewConfig loads settings from path, or from passcheck.toml in the
// working directory, or falls back to defaults when neither exists
func NewConfig(path string, onReload func()) (*Config, error) {
	c := &Config{onReload: onReload}

	if path != "" {
		c.path = path
	} else if _, err := os.Stat(configFileName); err == nil {
		c.path = configFileName
		slog.Info("found config", "path", configFileName)
	} else {
		slog.Info("no config found, using defaults")
	}

	if err := c.load(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return c, nil
}

// load reads the configuration
func (c *Config) load() error {
	v := viper.New()
	v.SetConfigType("toml")

	defaults := DefaultSettings()
	v.SetDefault("weak_wordlist", defaults.WeakWordlist)
	v.SetDefault("banned_wordlist", defaults.BannedWordlist)
	v.SetDefault("cache_size", defaults.CacheSize)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("generator_length", defaults.GeneratorLength)

	if c.path != "" {
		v.SetConfigFile(c.path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", c.path, err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return fmt.Errorf("unmarshaling config: %w", err)
	}

	c.mu.Lock()
	c.settings = settings
	c.mu.Unlock()
	return nil
}

// GetSettings returns the current settings
func (c *Config) GetSettings() *Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Watch starts watching the config file for changes
func (c *Config) Watch(ctx context.Context) error {
	if c.path == "" {
		return nil // Nothing to watch
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	c.watcher = watcher

	dir := filepath.Dir(c.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) == filepath.Clean(c.path) {
					if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
						slog.Info("config file changed", "path", c.path)
						if err := c.load(); err != nil {
							slog.Error("failed to reload config", "error", err)
						} else if c.onReload != nil {
							c.onReload()
						}
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watcher error", "error", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}
