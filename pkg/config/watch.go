package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/rhq-project/rhq-in-go/pkg/logger"
)

// Watch reloads the global configuration whenever the config file is
// written, created or renamed into place, and passes the new config to
// onChange. The directory is watched so editors that replace the file are
// seen. Watch blocks until ctx is done.
func Watch(ctx context.Context, onChange func(*RhqConfig)) error {
	path := Get().ConfigFilePath()
	log := logger.Named("config")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := Reload(); err != nil {
				log.Warn("configuration reload failed", zap.String("file", path), zap.Error(err))
				continue
			}
			cfg := Get()
			if err := cfg.Validate(); err != nil {
				log.Warn("reloaded configuration is invalid", zap.String("file", path), zap.Error(err))
			}
			log.Info("configuration reloaded", zap.String("file", path))
			if onChange != nil {
				onChange(cfg)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("configuration watcher error", zap.Error(err))
		case <-ctx.Done():
			return nil
		}
	}
}
