package configmgmt

import (
	"context"
	"fmt"
	"time"

	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

// MergeService reconciles the structured and raw representations of a
// configuration through the plugin.
type MergeService struct {
	support
}

// NewMergeService returns a merge service over components.
func NewMergeService(components ComponentService, timeout time.Duration) *MergeService {
	if timeout <= 0 {
		timeout = DefaultFacetTimeout
	}
	return &MergeService{support{components: components, timeout: timeout}}
}

// Merge updates c in place. With fromStructured each raw file the plugin
// currently has is regenerated from the properties of c and stored in c.
// Otherwise every raw file of c is folded into its properties.
func (m *MergeService) Merge(ctx context.Context, c *model.Configuration, resourceID int, fromStructured bool) error {
	if c == nil {
		return fmt.Errorf("resource %d: %w", resourceID, configuration.ErrNullConfiguration)
	}
	facet, err := m.resourceFacet(resourceID, pluginapi.FacetLockTypeRead)
	if err != nil {
		return err
	}
	if fromStructured {
		return mergeStructuredIntoRaws(ctx, facet, c)
	}
	return mergeRawsIntoStructured(ctx, facet, c)
}

func mergeStructuredIntoRaws(ctx context.Context, facet pluginapi.ResourceConfigurationFacet, c *model.Configuration) error {
	raws, err := facet.LoadRawConfigurations(ctx)
	if err != nil {
		return fmt.Errorf("loading raw configurations: %w", err)
	}
	for _, raw := range raws {
		raw := raw
		if err := facet.MergeRawConfiguration(ctx, c, &raw); err != nil {
			return fmt.Errorf("merging into %s: %w", raw.Path, err)
		}
		raw.SHA256 = raw.Checksum()
		c.AddRawConfiguration(raw)
	}
	return nil
}

func mergeRawsIntoStructured(ctx context.Context, facet pluginapi.ResourceConfigurationFacet, c *model.Configuration) error {
	if c.Properties == nil {
		c.Properties = model.Properties{}
	}
	for i := range c.RawConfigurations {
		raw := &c.RawConfigurations[i]
		if err := facet.MergeStructuredConfiguration(ctx, raw, c); err != nil {
			return fmt.Errorf("merging %s: %w", raw.Path, err)
		}
	}
	return nil
}

// Validate asks the plugin to check c. With structured the properties are
// validated, otherwise each raw file. Rejections are returned as
// *configuration.ValidationError.
func (m *MergeService) Validate(ctx context.Context, c *model.Configuration, resourceID int, structured bool) error {
	if c == nil {
		return fmt.Errorf("resource %d: %w", resourceID, configuration.ErrNullConfiguration)
	}
	facet, err := m.resourceFacet(resourceID, pluginapi.FacetLockTypeRead)
	if err != nil {
		return err
	}
	if structured {
		if err := facet.ValidateStructuredConfiguration(ctx, c); err != nil {
			return &configuration.ValidationError{Err: err}
		}
		return nil
	}
	for i := range c.RawConfigurations {
		raw := &c.RawConfigurations[i]
		if err := facet.ValidateRawConfiguration(ctx, raw); err != nil {
			return &configuration.ValidationError{Path: raw.Path, Err: err}
		}
	}
	return nil
}
