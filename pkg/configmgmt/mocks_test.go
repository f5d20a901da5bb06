package configmgmt

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

// mockComponents implements ComponentService using testify/mock
type mockComponents struct {
	mock.Mock
}

func (m *mockComponents) ResourceType(resourceID int) (model.ResourceType, error) {
	args := m.Called(resourceID)
	return args.Get(0).(model.ResourceType), args.Error(1)
}

func (m *mockComponents) AmpsVersion(resourceID int) (string, error) {
	args := m.Called(resourceID)
	return args.String(0), args.Error(1)
}

func (m *mockComponents) ConfigurationFacet(resourceID int, lock pluginapi.FacetLockType, timeout time.Duration) (pluginapi.ConfigurationFacet, error) {
	args := m.Called(resourceID, lock, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pluginapi.ConfigurationFacet), args.Error(1)
}

func (m *mockComponents) ResourceConfigurationFacet(resourceID int, lock pluginapi.FacetLockType, timeout time.Duration) (pluginapi.ResourceConfigurationFacet, error) {
	args := m.Called(resourceID, lock, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pluginapi.ResourceConfigurationFacet), args.Error(1)
}

// mockLegacyFacet implements pluginapi.ConfigurationFacet
type mockLegacyFacet struct {
	mock.Mock
}

func (m *mockLegacyFacet) LoadResourceConfiguration(ctx context.Context) (*model.Configuration, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Configuration), args.Error(1)
}

func (m *mockLegacyFacet) UpdateResourceConfiguration(ctx context.Context, report *pluginapi.ConfigurationUpdateReport) {
	m.Called(report)
}

// mockFacet implements pluginapi.ResourceConfigurationFacet
type mockFacet struct {
	mock.Mock
}

func (m *mockFacet) LoadStructuredConfiguration(ctx context.Context) (*model.Configuration, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Configuration), args.Error(1)
}

func (m *mockFacet) LoadRawConfigurations(ctx context.Context) ([]model.RawConfiguration, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RawConfiguration), args.Error(1)
}

func (m *mockFacet) MergeRawConfiguration(ctx context.Context, from *model.Configuration, to *model.RawConfiguration) error {
	return m.Called(from, to).Error(0)
}

func (m *mockFacet) MergeStructuredConfiguration(ctx context.Context, from *model.RawConfiguration, to *model.Configuration) error {
	return m.Called(from, to).Error(0)
}

func (m *mockFacet) ValidateStructuredConfiguration(ctx context.Context, c *model.Configuration) error {
	return m.Called(c).Error(0)
}

func (m *mockFacet) ValidateRawConfiguration(ctx context.Context, raw *model.RawConfiguration) error {
	return m.Called(raw).Error(0)
}

func (m *mockFacet) PersistStructuredConfiguration(ctx context.Context, c *model.Configuration) error {
	return m.Called(c).Error(0)
}

func (m *mockFacet) PersistRawConfiguration(ctx context.Context, raw *model.RawConfiguration) error {
	return m.Called(raw).Error(0)
}
