package plugincontainer

import (
	"context"
	"time"

	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

type facetCall struct {
	lock     *facetLock
	lockType pluginapi.FacetLockType
	timeout  time.Duration
}

func (c facetCall) run(ctx context.Context, fn func() error) error {
	release, err := c.lock.acquire(ctx, c.lockType, c.timeout)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}

// lockedConfigurationFacet holds the resource lock around every call.
type lockedConfigurationFacet struct {
	facetCall
	facet pluginapi.ConfigurationFacet
}

func (f *lockedConfigurationFacet) LoadResourceConfiguration(ctx context.Context) (c *model.Configuration, err error) {
	err = f.run(ctx, func() error {
		c, err = f.facet.LoadResourceConfiguration(ctx)
		return err
	})
	return c, err
}

func (f *lockedConfigurationFacet) UpdateResourceConfiguration(ctx context.Context, report *pluginapi.ConfigurationUpdateReport) {
	err := f.run(ctx, func() error {
		f.facet.UpdateResourceConfiguration(ctx, report)
		return nil
	})
	if err != nil {
		report.SetFailure(err.Error())
	}
}

type lockedResourceFacet struct {
	facetCall
	facet pluginapi.ResourceConfigurationFacet
}

func (f *lockedResourceFacet) LoadStructuredConfiguration(ctx context.Context) (c *model.Configuration, err error) {
	err = f.run(ctx, func() error {
		c, err = f.facet.LoadStructuredConfiguration(ctx)
		return err
	})
	return c, err
}

func (f *lockedResourceFacet) LoadRawConfigurations(ctx context.Context) (raws []model.RawConfiguration, err error) {
	err = f.run(ctx, func() error {
		raws, err = f.facet.LoadRawConfigurations(ctx)
		return err
	})
	return raws, err
}

func (f *lockedResourceFacet) MergeRawConfiguration(ctx context.Context, from *model.Configuration, to *model.RawConfiguration) error {
	return f.run(ctx, func() error { return f.facet.MergeRawConfiguration(ctx, from, to) })
}

func (f *lockedResourceFacet) MergeStructuredConfiguration(ctx context.Context, from *model.RawConfiguration, to *model.Configuration) error {
	return f.run(ctx, func() error { return f.facet.MergeStructuredConfiguration(ctx, from, to) })
}

func (f *lockedResourceFacet) ValidateStructuredConfiguration(ctx context.Context, c *model.Configuration) error {
	return f.run(ctx, func() error { return f.facet.ValidateStructuredConfiguration(ctx, c) })
}

func (f *lockedResourceFacet) ValidateRawConfiguration(ctx context.Context, raw *model.RawConfiguration) error {
	return f.run(ctx, func() error { return f.facet.ValidateRawConfiguration(ctx, raw) })
}

func (f *lockedResourceFacet) PersistStructuredConfiguration(ctx context.Context, c *model.Configuration) error {
	return f.run(ctx, func() error { return f.facet.PersistStructuredConfiguration(ctx, c) })
}

func (f *lockedResourceFacet) PersistRawConfiguration(ctx context.Context, raw *model.RawConfiguration) error {
	return f.run(ctx, func() error { return f.facet.PersistRawConfiguration(ctx, raw) })
}
