package main

import (
	"context"
	"log/slog"
	"sync"
)

// App holds the application state shared by the CLI commands
type App struct {
	checker *Checker
	store   *WordlistStore
	config  *Config
	results *ResultLog
}

// CheckRecord is one entry of the exportable result log.
// The raw password is retained in cleartext, matching the behavior of
// the system this reimplements.
type CheckRecord struct {
	Password string `json:"password"`
	Strength string `json:"strength"`
	Message  string `json:"message"`
}

// ResultLog accumulates check records for later export
type ResultLog struct {
	mu      sync.RWMutex
	records []CheckRecord
}

// NewResultLog creates an empty result log
func NewResultLog() *ResultLog {
	return &ResultLog{}
}

// Append adds a record
func (l *ResultLog) Append(record CheckRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
}

// Records returns a copy of the accumulated records
func (l *ResultLog) Records() []CheckRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]CheckRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of accumulated records
func (l *ResultLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Global app instance
var globalApp *App

// SetupApp builds the application from the config at configPath
// (empty means passcheck.toml in the working directory, or defaults)
func SetupApp(configPath string) error {
	store := NewWordlistStore()

	cfg, err := NewConfig(configPath, func() {
		slog.Info("reloading configuration, clearing cache")
		if globalApp == nil {
			return
		}
		settings := globalApp.config.GetSettings()
		checker, err := buildChecker(globalApp.store, settings)
		if err != nil {
			slog.Error("failed to rebuild checker, keeping previous", "error", err)
			return
		}
		globalApp.checker = checker
	})
	if err != nil {
		return err
	}

	settings := cfg.GetSettings()
	logLevel.Set(parseLogLevel(settings.LogLevel))

	checker, err := buildChecker(store, settings)
	if err != nil {
		return err
	}

	globalApp = &App{
		checker: checker,
		store:   store,
		config:  cfg,
		results: NewResultLog(),
	}

	// Start watching the config file
	go func() {
		if err := cfg.Watch(context.Background()); err != nil {
			slog.Error("failed to watch config", "error", err)
		}
	}()

	return nil
}

// buildChecker constructs a checker from settings. A fresh checker
// starts with an empty memoization cache, so configuration changes can
// never serve results computed under the old configuration. Wordlists
// already loaded by the store are reused as first read.
func buildChecker(store *WordlistStore, settings *Settings) (*Checker, error) {
	return NewChecker(store, settings.WeakWordlist, settings.BannedWordlist,
		NewZxcvbnOracle(), settings.CacheSize)
}

// CheckAndRecord evaluates a password, appends it to the result log and
// emits the per-check log event (one event per check, label only)
func (a *App) CheckAndRecord(password string) StrengthResult {
	result := a.checker.Check(password)
	a.results.Append(CheckRecord{
		Password: password,
		Strength: result.Strength,
		Message:  result.Message,
	})
	slog.Info("password checked", "strength", result.Strength)
	return result
}
