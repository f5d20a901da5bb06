package configmgmt

import (
	"context"
	"fmt"

	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

// Structured manages resource types with only structured configuration.
type Structured struct {
	support
}

var _ Strategy = (*Structured)(nil)

func (s *Structured) Load(ctx context.Context, resourceID int) (*model.Configuration, error) {
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
	return c, nil
}

func (s *Structured) Update(ctx context.Context, resourceID int, c *model.Configuration) error {
	facet, err := s.resourceFacet(resourceID, pluginapi.FacetLockTypeWrite)
	if err != nil {
		return err
	}
	if err := facet.PersistStructuredConfiguration(ctx, c); err != nil {
		return &configuration.UpdateError{Message: err.Error()}
	}
	return nil
}
