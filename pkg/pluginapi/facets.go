package pluginapi

import (
	"context"

	"github.com/rhq-project/rhq-in-go/pkg/model"
)

//go:generate go run github.com/dmarkham/enumer -type FacetLockType -trimprefix FacetLockType -transform upper -output facet_lock_type.gen.go

// FacetLockType is the resource lock held while a facet method runs.
type FacetLockType int

const (
	// FacetLockTypeNone calls the facet without locking.
	FacetLockTypeNone FacetLockType = iota
	// FacetLockTypeRead is shared with other readers.
	FacetLockTypeRead
	// FacetLockTypeWrite is exclusive.
	FacetLockTypeWrite
)

// ResourceContext is handed to a component when it is started.
type ResourceContext struct {
	ResourceID          int
	ResourceKey         string
	ResourceType        model.ResourceType
	PluginConfiguration model.Properties
}

// ResourceComponent is the plugin object managing one resource.
type ResourceComponent interface {
	Start(ctx context.Context, rc ResourceContext) error
	Stop()
}

// ConfigurationUpdateReport carries the outcome of a legacy configuration
// update back from the plugin.
type ConfigurationUpdateReport struct {
	Configuration *model.Configuration
	Status        model.UpdateStatus
	ErrorMessage  string
}

// NewConfigurationUpdateReport starts a report in progress.
func NewConfigurationUpdateReport(c *model.Configuration) *ConfigurationUpdateReport {
	return &ConfigurationUpdateReport{Configuration: c, Status: model.UpdateStatusInProgress}
}

// SetSuccess marks the update applied.
func (r *ConfigurationUpdateReport) SetSuccess() {
	r.Status = model.UpdateStatusSuccess
	r.ErrorMessage = ""
}

// SetFailure marks the update failed with message.
func (r *ConfigurationUpdateReport) SetFailure(message string) {
	r.Status = model.UpdateStatusFailure
	r.ErrorMessage = message
}

// ConfigurationFacet is the configuration interface of plugins built against
// AMPS versions before 2.1. It only knows structured configuration.
type ConfigurationFacet interface {
	LoadResourceConfiguration(ctx context.Context) (*model.Configuration, error)
	// UpdateResourceConfiguration applies report.Configuration and records
	// the outcome in the report.
	UpdateResourceConfiguration(ctx context.Context, report *ConfigurationUpdateReport)
}

// ResourceConfigurationFacet is the configuration interface of plugins built
// against AMPS 2.1 and later. Which methods are meaningful depends on the
// configuration format of the resource type.
type ResourceConfigurationFacet interface {
	LoadStructuredConfiguration(ctx context.Context) (*model.Configuration, error)
	LoadRawConfigurations(ctx context.Context) ([]model.RawConfiguration, error)

	// MergeRawConfiguration regenerates to from the structured from.
	MergeRawConfiguration(ctx context.Context, from *model.Configuration, to *model.RawConfiguration) error
	// MergeStructuredConfiguration folds the raw from into the structured to.
	MergeStructuredConfiguration(ctx context.Context, from *model.RawConfiguration, to *model.Configuration) error

	ValidateStructuredConfiguration(ctx context.Context, c *model.Configuration) error
	ValidateRawConfiguration(ctx context.Context, raw *model.RawConfiguration) error

	PersistStructuredConfiguration(ctx context.Context, c *model.Configuration) error
	PersistRawConfiguration(ctx context.Context, raw *model.RawConfiguration) error
}
