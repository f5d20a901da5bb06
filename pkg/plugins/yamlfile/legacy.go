package yamlfile

import (
	"context"

	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

// LegacyResourceType describes resources managed by LegacyComponent.
func LegacyResourceType() model.ResourceType {
	rt := ResourceType()
	rt.Name = "Legacy YAML File"
	rt.ConfigFormat = model.ConfigFormatStructured
	return rt
}

// LegacyComponent exposes the same file through the pre 2.1
// ConfigurationFacet only.
type LegacyComponent struct {
	c *Component
}

var (
	_ pluginapi.ResourceComponent  = (*LegacyComponent)(nil)
	_ pluginapi.ConfigurationFacet = (*LegacyComponent)(nil)
)

func NewLegacy() *LegacyComponent {
	return &LegacyComponent{c: New()}
}

func (l *LegacyComponent) Start(ctx context.Context, rc pluginapi.ResourceContext) error {
	return l.c.Start(ctx, rc)
}

func (l *LegacyComponent) Stop() {
	l.c.Stop()
}

func (l *LegacyComponent) LoadResourceConfiguration(ctx context.Context) (*model.Configuration, error) {
	return l.c.LoadStructuredConfiguration(ctx)
}

func (l *LegacyComponent) UpdateResourceConfiguration(ctx context.Context, report *pluginapi.ConfigurationUpdateReport) {
	if err := l.c.ValidateStructuredConfiguration(ctx, report.Configuration); err != nil {
		report.SetFailure(err.Error())
		return
	}
	if err := l.c.PersistStructuredConfiguration(ctx, report.Configuration); err != nil {
		report.SetFailure(err.Error())
		return
	}
	report.SetSuccess()
}
