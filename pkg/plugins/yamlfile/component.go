package yamlfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/rhq-project/rhq-in-go/pkg/logger"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

const (
	// PluginName is the name the plugin registers its types under.
	PluginName = "yamlfile"
	// AmpsVersion is the plugin API version of Component.
	AmpsVersion = "2.1"
	// LegacyAmpsVersion is the plugin API version of LegacyComponent.
	LegacyAmpsVersion = "2.0"
	// PathProperty is the plugin configuration property naming the file.
	PathProperty = "path"
)

// ResourceType describes resources managed by Component.
func ResourceType() model.ResourceType {
	return model.ResourceType{
		Name:                  "YAML File",
		Plugin:                PluginName,
		Category:              model.CategoryService,
		ConfigFormat:          model.ConfigFormatStructuredAndRaw,
		SupportsConfiguration: true,
	}
}

// Component manages one YAML file through ResourceConfigurationFacet.
type Component struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

var (
	_ pluginapi.ResourceComponent          = (*Component)(nil)
	_ pluginapi.ResourceConfigurationFacet = (*Component)(nil)
)

// New returns a component that is configured when started.
func New() *Component {
	return &Component{}
}

func (c *Component) Start(ctx context.Context, rc pluginapi.ResourceContext) error {
	path := rc.PluginConfiguration[PathProperty]
	if path == "" {
		return fmt.Errorf("plugin configuration property %q is required", PathProperty)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.path = filepath.Clean(path)
	c.log = logger.Named(PluginName).With(zap.Int("resource", rc.ResourceID), zap.String("path", c.path))
	return nil
}

func (c *Component) Stop() {}

// Path returns the managed file.
func (c *Component) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.path
}

func (c *Component) read() (string, error) {
	data, err := os.ReadFile(c.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Component) write(contents string) error {
	if err := os.WriteFile(c.Path(), []byte(contents), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", c.Path(), err)
	}
	if c.log != nil {
		c.log.Info("configuration written")
	}
	return nil
}

func (c *Component) LoadStructuredConfiguration(ctx context.Context) (*model.Configuration, error) {
	contents, err := c.read()
	if err != nil {
		return nil, err
	}
	doc, err := parse(contents)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", c.Path(), err)
	}
	cfg := model.NewConfiguration()
	flatten(doc, "", cfg.Properties)
	return cfg, nil
}

func (c *Component) LoadRawConfigurations(ctx context.Context) ([]model.RawConfiguration, error) {
	contents, err := c.read()
	if err != nil {
		return nil, err
	}
	return []model.RawConfiguration{model.NewRawConfiguration(c.Path(), contents)}, nil
}

// MergeRawConfiguration writes the properties of from into the document held
// by to. Keys missing from from are left alone.
func (c *Component) MergeRawConfiguration(ctx context.Context, from *model.Configuration, to *model.RawConfiguration) error {
	doc, err := parse(to.Contents)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", to.Path, err)
	}
	if err := apply(doc, from.Properties); err != nil {
		return err
	}
	contents, err := render(doc)
	if err != nil {
		return err
	}
	to.Contents = contents
	return nil
}

// MergeStructuredConfiguration copies every value of from into to.
func (c *Component) MergeStructuredConfiguration(ctx context.Context, from *model.RawConfiguration, to *model.Configuration) error {
	doc, err := parse(from.Contents)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", from.Path, err)
	}
	props := model.Properties{}
	flatten(doc, "", props)
	for k, v := range props {
		to.Put(k, v)
	}
	return nil
}

// ValidateStructuredConfiguration checks that the properties form a
// document.
func (c *Component) ValidateStructuredConfiguration(ctx context.Context, cfg *model.Configuration) error {
	doc, err := parse("")
	if err != nil {
		return err
	}
	return apply(doc, cfg.Properties)
}

func (c *Component) ValidateRawConfiguration(ctx context.Context, raw *model.RawConfiguration) error {
	if filepath.Clean(raw.Path) != c.Path() {
		return fmt.Errorf("unknown raw configuration %s", raw.Path)
	}
	_, err := parse(raw.Contents)
	return err
}

func (c *Component) PersistStructuredConfiguration(ctx context.Context, cfg *model.Configuration) error {
	contents, err := c.read()
	if err != nil {
		return err
	}
	raw := model.NewRawConfiguration(c.Path(), contents)
	if err := c.MergeRawConfiguration(ctx, cfg, &raw); err != nil {
		return err
	}
	if raw.Contents == contents {
		return nil
	}
	return c.write(raw.Contents)
}

func (c *Component) PersistRawConfiguration(ctx context.Context, raw *model.RawConfiguration) error {
	if err := c.ValidateRawConfiguration(ctx, raw); err != nil {
		return err
	}
	current, err := c.read()
	if err != nil {
		return err
	}
	if current == raw.Contents {
		return nil
	}
	return c.write(raw.Contents)
}
