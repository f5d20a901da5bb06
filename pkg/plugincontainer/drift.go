package plugincontainer

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/rhq-project/rhq-in-go/pkg/configmgmt"
	"github.com/rhq-project/rhq-in-go/pkg/logger"
	"github.com/rhq-project/rhq-in-go/pkg/model"
)

// DriftHandler is called with a resource's configuration after one of its
// raw files changed on disk.
type DriftHandler func(resourceID int, c *model.Configuration)

// DriftWatcher reloads a resource's configuration whenever a file backing
// one of its raw configurations is written.
type DriftWatcher struct {
	strategies *configmgmt.Factory
	handler    DriftHandler
	watcher    *fsnotify.Watcher
	log        *zap.Logger

	mu    sync.Mutex
	paths map[string]int
}

// NewDriftWatcher returns a watcher reporting to handler.
func NewDriftWatcher(strategies *configmgmt.Factory, handler DriftHandler) (*DriftWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &DriftWatcher{
		strategies: strategies,
		handler:    handler,
		watcher:    w,
		log:        logger.Named("drift"),
		paths:      map[string]int{},
	}, nil
}

// Watch loads the configuration of resourceID and watches each raw file.
// Resources without raw configurations are not watched.
func (d *DriftWatcher) Watch(ctx context.Context, resourceID int) error {
	strategy, err := d.strategies.For(resourceID)
	if err != nil {
		return err
	}
	c, err := strategy.Load(ctx, resourceID)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, raw := range c.RawConfigurations {
		path := filepath.Clean(raw.Path)
		if err := d.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch file %s: %w", path, err)
		}
		d.paths[path] = resourceID
	}
	return nil
}

// Run dispatches file events until ctx is done and then closes the watcher.
func (d *DriftWatcher) Run(ctx context.Context) error {
	defer func() { _ = d.watcher.Close() }()

	for {
		select {
		case event, ok := <-d.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				d.changed(ctx, filepath.Clean(event.Name))
			}
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return nil
			}
			d.log.Warn("watcher error", zap.Error(err))
		case <-ctx.Done():
			return nil
		}
	}
}

func (d *DriftWatcher) changed(ctx context.Context, path string) {
	d.mu.Lock()
	resourceID, ok := d.paths[path]
	d.mu.Unlock()
	if !ok {
		return
	}

	strategy, err := d.strategies.For(resourceID)
	if err != nil {
		d.log.Warn("no strategy for drifted resource", zap.Int("resource", resourceID), zap.Error(err))
		return
	}
	c, err := strategy.Load(ctx, resourceID)
	if err != nil {
		d.log.Warn("reloading drifted configuration", zap.Int("resource", resourceID), zap.String("path", path), zap.Error(err))
		return
	}
	d.log.Info("configuration drift detected", zap.Int("resource", resourceID), zap.String("path", path))
	if d.handler != nil {
		d.handler(resourceID, c)
	}
}
