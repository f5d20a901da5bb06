package configmgmt

import (
	"fmt"
	"time"

	"github.com/blang/semver/v4"
	"go.uber.org/zap"

	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/logger"
	"github.com/rhq-project/rhq-in-go/pkg/model"
)

// StructuredAndRawAmpsVersion is the first AMPS version whose plugins
// implement ResourceConfigurationFacet.
var StructuredAndRawAmpsVersion = semver.MustParse("2.1.0")

// VersionError is returned for a plugin AMPS version that does not parse.
type VersionError struct {
	ResourceID int
	Version    string
	Err        error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("resource %d: malformed AMPS version %q: %v", e.ResourceID, e.Version, e.Err)
}

func (e *VersionError) Unwrap() error {
	return e.Err
}

// Factory picks the strategy for a resource.
type Factory struct {
	components ComponentService
	timeout    time.Duration
	log        *zap.Logger
}

// NewFactory returns a factory whose strategies wait at most timeout for a
// facet lock. A non-positive timeout uses DefaultFacetTimeout.
func NewFactory(components ComponentService, timeout time.Duration) *Factory {
	if timeout <= 0 {
		timeout = DefaultFacetTimeout
	}
	return &Factory{
		components: components,
		timeout:    timeout,
		log:        logger.Named("configmgmt"),
	}
}

// IsLegacy reports whether the AMPS version predates
// ResourceConfigurationFacet.
func IsLegacy(ampsVersion string) (bool, error) {
	v, err := semver.ParseTolerant(ampsVersion)
	if err != nil {
		return false, err
	}
	return v.LT(StructuredAndRawAmpsVersion), nil
}

// For returns the strategy managing the configuration of resourceID.
func (f *Factory) For(resourceID int) (Strategy, error) {
	s := support{components: f.components, timeout: f.timeout}

	version, err := f.components.AmpsVersion(resourceID)
	if err != nil {
		return nil, fmt.Errorf("AMPS version of resource %d: %w", resourceID, err)
	}
	legacy, err := IsLegacy(version)
	if err != nil {
		return nil, &VersionError{ResourceID: resourceID, Version: version, Err: err}
	}
	if legacy {
		f.log.Debug("using legacy configuration management", zap.Int("resource", resourceID), zap.String("amps", version))
		return &Legacy{s}, nil
	}

	rt, err := f.components.ResourceType(resourceID)
	if err != nil {
		return nil, fmt.Errorf("resource type of resource %d: %w", resourceID, err)
	}
	f.log.Debug("selecting configuration management",
		zap.Int("resource", resourceID),
		zap.String("amps", version),
		zap.Stringer("format", rt.ConfigFormat))

	switch rt.ConfigFormat {
	case model.ConfigFormatStructured:
		return &Structured{s}, nil
	case model.ConfigFormatRaw:
		return &Raw{s}, nil
	case model.ConfigFormatStructuredAndRaw:
		return &StructuredAndRaw{s}, nil
	default:
		return nil, fmt.Errorf("resource type %s: %w", rt.Name, configuration.ErrConfigurationNotSupported)
	}
}
