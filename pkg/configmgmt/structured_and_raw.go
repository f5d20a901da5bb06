package configmgmt

import (
	"context"
	"fmt"

	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

// StructuredAndRaw manages resource types exposing both representations.
type StructuredAndRaw struct {
	support
}

var _ Strategy = (*StructuredAndRaw)(nil)

// Load returns the structured configuration with the raw files attached.
func (s *StructuredAndRaw) Load(ctx context.Context, resourceID int) (*model.Configuration, error) {
	facet, err := s.resourceFacet(resourceID, pluginapi.FacetLockTypeRead)
	if err != nil {
		return nil, err
	}
	c, err := facet.LoadStructuredConfiguration(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading structured configuration of resource %d: %w", resourceID, err)
	}
	if c == nil {
		return nil, fmt.Errorf("resource %d: %w", resourceID, configuration.ErrNullConfiguration)
	}
	if err := addRaws(ctx, facet, c); err != nil {
		return nil, fmt.Errorf("loading raw configurations of resource %d: %w", resourceID, err)
	}
	return c, nil
}

// Update persists the structured configuration, then every raw file.
func (s *StructuredAndRaw) Update(ctx context.Context, resourceID int, c *model.Configuration) error {
	facet, err := s.resourceFacet(resourceID, pluginapi.FacetLockTypeWrite)
	if err != nil {
		return err
	}
	if err := facet.PersistStructuredConfiguration(ctx, c); err != nil {
		return &configuration.UpdateError{Message: err.Error()}
	}
	return persistRaws(ctx, facet, c)
}
