package plugincontainer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rhq-project/rhq-in-go/pkg/configmgmt"
	"github.com/rhq-project/rhq-in-go/pkg/logger"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

var (
	// ErrNoComponent is returned for a resource without a started component.
	ErrNoComponent = errors.New("no component registered for resource")
	// ErrFacetNotSupported is returned when a component lacks a facet.
	ErrFacetNotSupported = errors.New("component does not implement facet")
)

type entry struct {
	rc          pluginapi.ResourceContext
	ampsVersion string
	component   pluginapi.ResourceComponent
	lock        *facetLock
}

// Container is the agent side registry of started resource components.
type Container struct {
	mu      sync.RWMutex
	entries map[int]*entry
	log     *zap.Logger
}

var _ configmgmt.ComponentService = (*Container)(nil)

// New returns an empty container.
func New() *Container {
	return &Container{
		entries: map[int]*entry{},
		log:     logger.Named("plugincontainer"),
	}
}

// Register starts component for the resource described by rc. ampsVersion
// is the plugin API version the component's plugin was built against.
func (c *Container) Register(ctx context.Context, rc pluginapi.ResourceContext, ampsVersion string, component pluginapi.ResourceComponent) error {
	c.mu.Lock()
	if _, ok := c.entries[rc.ResourceID]; ok {
		c.mu.Unlock()
		return fmt.Errorf("resource %d already has a component", rc.ResourceID)
	}
	c.mu.Unlock()

	if err := component.Start(ctx, rc); err != nil {
		return fmt.Errorf("starting component of resource %d: %w", rc.ResourceID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[rc.ResourceID]; ok {
		component.Stop()
		return fmt.Errorf("resource %d already has a component", rc.ResourceID)
	}
	c.entries[rc.ResourceID] = &entry{
		rc:          rc,
		ampsVersion: ampsVersion,
		component:   component,
		lock:        newFacetLock(),
	}
	c.log.Info("component started",
		zap.Int("resource", rc.ResourceID),
		zap.String("type", rc.ResourceType.Name),
		zap.String("plugin", rc.ResourceType.Plugin))
	return nil
}

// Unregister stops and forgets the component of resourceID.
func (c *Container) Unregister(resourceID int) {
	c.mu.Lock()
	e, ok := c.entries[resourceID]
	delete(c.entries, resourceID)
	c.mu.Unlock()

	if ok {
		e.component.Stop()
		c.log.Info("component stopped", zap.Int("resource", resourceID))
	}
}

// ResourceIDs returns the registered resources in ascending order.
func (c *Container) ResourceIDs() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]int, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Shutdown stops every component.
func (c *Container) Shutdown() {
	for _, id := range c.ResourceIDs() {
		c.Unregister(id)
	}
}

func (c *Container) lookup(resourceID int) (*entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[resourceID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoComponent, resourceID)
	}
	return e, nil
}

func (c *Container) ResourceType(resourceID int) (model.ResourceType, error) {
	e, err := c.lookup(resourceID)
	if err != nil {
		return model.ResourceType{}, err
	}
	return e.rc.ResourceType, nil
}

func (c *Container) AmpsVersion(resourceID int) (string, error) {
	e, err := c.lookup(resourceID)
	if err != nil {
		return "", err
	}
	return e.ampsVersion, nil
}

func (c *Container) ConfigurationFacet(resourceID int, lock pluginapi.FacetLockType, timeout time.Duration) (pluginapi.ConfigurationFacet, error) {
	e, err := c.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	facet, ok := e.component.(pluginapi.ConfigurationFacet)
	if !ok {
		return nil, fmt.Errorf("%w: ConfigurationFacet on resource %d", ErrFacetNotSupported, resourceID)
	}
	return &lockedConfigurationFacet{
		facetCall: facetCall{lock: e.lock, lockType: lock, timeout: timeout},
		facet:     facet,
	}, nil
}

func (c *Container) ResourceConfigurationFacet(resourceID int, lock pluginapi.FacetLockType, timeout time.Duration) (pluginapi.ResourceConfigurationFacet, error) {
	e, err := c.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	facet, ok := e.component.(pluginapi.ResourceConfigurationFacet)
	if !ok {
		return nil, fmt.Errorf("%w: ResourceConfigurationFacet on resource %d", ErrFacetNotSupported, resourceID)
	}
	return &lockedResourceFacet{
		facetCall: facetCall{lock: e.lock, lockType: lock, timeout: timeout},
		facet:     facet,
	}, nil
}
