package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"marketloop-backend/application/services"
)

// RankingWatcher watches the ranking configuration file for changes so that
// scoring weights and overfetch factors can be tuned without a redeploy.
// Invalid files are logged and ignored; the last good config stays active.
type RankingWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	current  RankingConfig
	mu       sync.RWMutex
	onChange []func(RankingConfig)
	debounce *time.Timer
	logger   *zap.Logger
	stopCh   chan struct{}
}

// NewRankingWatcher loads the initial ranking config and prepares a watcher.
func NewRankingWatcher(configPath string, logger *zap.Logger) (*RankingWatcher, error) {
	current, err := loadRankingConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial ranking config: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(configPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch ranking config: %w", err)
	}

	// Also watch the directory for atomic saves (rename operations)
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		logger.Warn("Failed to watch ranking config directory", zap.Error(err))
	}

	return &RankingWatcher{
		path:    configPath,
		watcher: watcher,
		current: current,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}, nil
}

// Start begins watching for configuration changes
func (w *RankingWatcher) Start() {
	go w.watchLoop()
	w.logger.Info("Ranking config watcher started", zap.String("path", w.path))
}

// Stop stops watching for configuration changes. A pending debounced reload
// is cancelled so nothing fires after teardown.
func (w *RankingWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()
	w.logger.Info("Ranking config watcher stopped")
}

// Current returns the active ranking config.
func (w *RankingWatcher) Current() RankingConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// TuningProvider exposes the live config to the scoring services.
func (w *RankingWatcher) TuningProvider() services.TuningProvider {
	return func() services.Tuning {
		return w.Current().Tuning()
	}
}

// OnChange registers a callback invoked after each successful reload.
func (w *RankingWatcher) OnChange(fn func(RankingConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

func (w *RankingWatcher) watchLoop() {
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Debounce editor write bursts; only the last event reloads
			w.mu.Lock()
			if w.debounce != nil {
				w.debounce.Stop()
			}
			w.debounce = time.AfterFunc(200*time.Millisecond, w.reload)
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Ranking config watcher error", zap.Error(err))
		}
	}
}

func (w *RankingWatcher) reload() {
	loaded, err := loadRankingConfig(w.path)
	if err != nil {
		w.logger.Warn("Ignoring invalid ranking config update", zap.Error(err))
		return
	}

	w.mu.Lock()
	w.current = loaded
	callbacks := make([]func(RankingConfig), len(w.onChange))
	copy(callbacks, w.onChange)
	w.mu.Unlock()

	w.logger.Info("Ranking config reloaded", zap.String("path", w.path))
	for _, fn := range callbacks {
		fn(loaded)
	}
}

func loadRankingConfig(path string) (RankingConfig, error) {
	cfg := DefaultRankingConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read ranking config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse ranking config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid ranking config: %w", err)
	}

	return cfg, nil
}
