package configmgmt

import (
	"context"
	"fmt"
	"time"

	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

// DefaultFacetTimeout bounds how long a strategy waits for a facet lock.
const DefaultFacetTimeout = 60 * time.Second

// ComponentService gives strategies access to the components hosted by the
// plugin container.
type ComponentService interface {
	// ResourceType returns the type of the resource's component.
	ResourceType(resourceID int) (model.ResourceType, error)
	// AmpsVersion returns the AMPS version of the plugin defining the
	// resource's type.
	AmpsVersion(resourceID int) (string, error)
	// ConfigurationFacet returns the legacy configuration facet. Each call on
	// the facet holds lock on the resource for at most timeout.
	ConfigurationFacet(resourceID int, lock pluginapi.FacetLockType, timeout time.Duration) (pluginapi.ConfigurationFacet, error)
	// ResourceConfigurationFacet returns the structured and raw facet.
	ResourceConfigurationFacet(resourceID int, lock pluginapi.FacetLockType, timeout time.Duration) (pluginapi.ResourceConfigurationFacet, error)
}

// Strategy loads and updates the configuration of a resource.
type Strategy interface {
	Load(ctx context.Context, resourceID int) (*model.Configuration, error)
	Update(ctx context.Context, resourceID int, c *model.Configuration) error
}

type support struct {
	components ComponentService
	timeout    time.Duration
}

func (s support) configurationFacet(resourceID int, lock pluginapi.FacetLockType) (pluginapi.ConfigurationFacet, error) {
	f, err := s.components.ConfigurationFacet(resourceID, lock, s.timeout)
	if err != nil {
		return nil, fmt.Errorf("configuration facet of resource %d: %w", resourceID, err)
	}
	return f, nil
}

func (s support) resourceFacet(resourceID int, lock pluginapi.FacetLockType) (pluginapi.ResourceConfigurationFacet, error) {
	f, err := s.components.ResourceConfigurationFacet(resourceID, lock, s.timeout)
	if err != nil {
		return nil, fmt.Errorf("resource configuration facet of resource %d: %w", resourceID, err)
	}
	return f, nil
}
