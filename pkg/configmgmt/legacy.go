package configmgmt

import (
	"context"
	"fmt"

	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

// Legacy manages plugins built before AMPS 2.1 through ConfigurationFacet.
type Legacy struct {
	support
}

var _ Strategy = (*Legacy)(nil)

func (l *Legacy) Load(ctx context.Context, resourceID int) (*model.Configuration, error) {
	facet, err := l.configurationFacet(resourceID, pluginapi.FacetLockTypeRead)
	if err != nil {
		return nil, err
	}
	c, err := facet.LoadResourceConfiguration(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading configuration of resource %d: %w", resourceID, err)
	}
	if c == nil {
		return nil, fmt.Errorf("resource %d: %w", resourceID, configuration.ErrNullConfiguration)
	}
	return c, nil
}

// Update hands c to the plugin and maps the reported status: SUCCESS is nil,
// INPROGRESS is configuration.ErrUpdateInProgress and FAILURE a
// *configuration.UpdateError.
func (l *Legacy) Update(ctx context.Context, resourceID int, c *model.Configuration) error {
	facet, err := l.configurationFacet(resourceID, pluginapi.FacetLockTypeWrite)
	if err != nil {
		return err
	}
	report := pluginapi.NewConfigurationUpdateReport(c)
	facet.UpdateResourceConfiguration(ctx, report)

	switch report.Status {
	case model.UpdateStatusSuccess, model.UpdateStatusNoChange:
		return nil
	case model.UpdateStatusInProgress:
		return configuration.ErrUpdateInProgress
	default:
		return &configuration.UpdateError{Message: report.ErrorMessage}
	}
}
