package configmgmt

import (
	"context"
	"fmt"

	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

// Raw manages resource types whose configuration is a set of files.
type Raw struct {
	support
}

var _ Strategy = (*Raw)(nil)

// Load returns a configuration holding only the raw files. A plugin
// returning no raws yields an empty configuration.
func (r *Raw) Load(ctx context.Context, resourceID int) (*model.Configuration, error) {
	facet, err := r.resourceFacet(resourceID, pluginapi.FacetLockTypeRead)
	if err != nil {
		return nil, err
	}
	c := model.NewConfiguration()
	if err := addRaws(ctx, facet, c); err != nil {
		return nil, fmt.Errorf("loading raw configurations of resource %d: %w", resourceID, err)
	}
	return c, nil
}

func (r *Raw) Update(ctx context.Context, resourceID int, c *model.Configuration) error {
	facet, err := r.resourceFacet(resourceID, pluginapi.FacetLockTypeWrite)
	if err != nil {
		return err
	}
	return persistRaws(ctx, facet, c)
}

func addRaws(ctx context.Context, facet pluginapi.ResourceConfigurationFacet, c *model.Configuration) error {
	raws, err := facet.LoadRawConfigurations(ctx)
	if err != nil {
		return err
	}
	for _, raw := range raws {
		c.AddRawConfiguration(raw)
	}
	return nil
}

func persistRaws(ctx context.Context, facet pluginapi.ResourceConfigurationFacet, c *model.Configuration) error {
	for i := range c.RawConfigurations {
		raw := &c.RawConfigurations[i]
		if err := facet.PersistRawConfiguration(ctx, raw); err != nil {
			return &configuration.UpdateError{Message: fmt.Sprintf("%s: %v", raw.Path, err)}
		}
	}
	return nil
}
