package model

import (
	"crypto/sha256"
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

//go:generate go run github.com/dmarkham/enumer -type ConfigFormat -trimprefix ConfigFormat -transform snake -json -yaml -sql -output config_format.gen.go
//go:generate go run github.com/dmarkham/enumer -type UpdateStatus -trimprefix UpdateStatus -transform upper -json -sql -output update_status.gen.go

// ConfigFormat declares which representations of a resource configuration a
// plugin understands.
type ConfigFormat int

const (
	ConfigFormatNone ConfigFormat = iota
	ConfigFormatStructured
	ConfigFormatRaw
	ConfigFormatStructuredAndRaw
)

// IsStructuredSupported reports whether the format carries properties.
func (f ConfigFormat) IsStructuredSupported() bool {
	return f == ConfigFormatStructured || f == ConfigFormatStructuredAndRaw
}

// IsRawSupported reports whether the format carries raw files.
func (f ConfigFormat) IsRawSupported() bool {
	return f == ConfigFormatRaw || f == ConfigFormatStructuredAndRaw
}

// UpdateStatus is the lifecycle state of a configuration update.
type UpdateStatus int

const (
	UpdateStatusInProgress UpdateStatus = iota
	UpdateStatusSuccess
	UpdateStatusFailure
	UpdateStatusNoChange
)

// Properties holds the structured form of a configuration as flat
// name/value pairs.
type Properties map[string]string

// Value stores the properties as a JSON document.
func (p Properties) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]string(p))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan reads properties back from a JSON column.
func (p *Properties) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*p = Properties{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("invalid value of Properties: %T", value)
	}
	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to decode properties: %w", err)
	}
	*p = m
	return nil
}

// Names returns the property names in sorted order.
func (p Properties) Names() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Configuration is a snapshot of a resource's settings in structured form,
// raw form, or both.
type Configuration struct {
	ID         int        `gorm:"column:id;primaryKey" json:"id"`
	Version    int        `gorm:"column:version" json:"version"`
	Notes      string     `gorm:"column:notes" json:"notes,omitempty"`
	Properties Properties `gorm:"column:properties;type:jsonb" json:"properties"`
	CTime      time.Time  `gorm:"column:ctime;autoCreateTime" json:"ctime"`

	RawConfigurations []RawConfiguration `gorm:"foreignKey:ConfigurationID" json:"rawConfigurations,omitempty"`
}

func (Configuration) TableName() string {
	return "rhq_config"
}

func (c Configuration) GetID() int {
	return c.ID
}

// NewConfiguration returns an empty configuration.
func NewConfiguration() *Configuration {
	return &Configuration{Properties: Properties{}}
}

// Get returns a property value.
func (c *Configuration) Get(name string) (string, bool) {
	v, ok := c.Properties[name]
	return v, ok
}

// Put sets a property value.
func (c *Configuration) Put(name, value string) {
	if c.Properties == nil {
		c.Properties = Properties{}
	}
	c.Properties[name] = value
}

// Raw returns the raw configuration stored for path.
func (c *Configuration) Raw(path string) *RawConfiguration {
	for i := range c.RawConfigurations {
		if c.RawConfigurations[i].Path == path {
			return &c.RawConfigurations[i]
		}
	}
	return nil
}

// AddRawConfiguration adds raw, replacing any raw with the same path.
func (c *Configuration) AddRawConfiguration(raw RawConfiguration) {
	for i := range c.RawConfigurations {
		if c.RawConfigurations[i].Path == raw.Path {
			c.RawConfigurations[i] = raw
			return
		}
	}
	c.RawConfigurations = append(c.RawConfigurations, raw)
}

// Equal compares properties and raw contents, ignoring identity and timestamps.
func (c *Configuration) Equal(other *Configuration) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.Properties) != len(other.Properties) {
		return false
	}
	for k, v := range c.Properties {
		if ov, ok := other.Properties[k]; !ok || ov != v {
			return false
		}
	}
	if len(c.RawConfigurations) != len(other.RawConfigurations) {
		return false
	}
	for _, raw := range c.RawConfigurations {
		o := other.Raw(raw.Path)
		if o == nil || o.Checksum() != raw.Checksum() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy without database identity.
func (c *Configuration) Clone() *Configuration {
	out := &Configuration{Version: c.Version, Notes: c.Notes, Properties: Properties{}}
	for k, v := range c.Properties {
		out.Properties[k] = v
	}
	for _, raw := range c.RawConfigurations {
		out.RawConfigurations = append(out.RawConfigurations, RawConfiguration{Path: raw.Path, Contents: raw.Contents, SHA256: raw.SHA256})
	}
	return out
}

// RawConfiguration is the verbatim contents of one configuration file.
type RawConfiguration struct {
	ID              int       `gorm:"column:id;primaryKey" json:"id"`
	ConfigurationID int       `gorm:"column:config_id" json:"-"`
	Path            string    `gorm:"column:path;not null" json:"path"`
	Contents        string    `gorm:"column:contents" json:"contents"`
	SHA256          string    `gorm:"column:sha256" json:"sha256"`
	CTime           time.Time `gorm:"column:ctime;autoCreateTime" json:"ctime"`
}

func (RawConfiguration) TableName() string {
	return "rhq_raw_config"
}

// NewRawConfiguration returns a raw configuration with its checksum set.
func NewRawConfiguration(path, contents string) RawConfiguration {
	raw := RawConfiguration{Path: path, Contents: contents}
	raw.SHA256 = raw.Checksum()
	return raw
}

// Checksum is the hex SHA-256 of the contents.
func (r RawConfiguration) Checksum() string {
	sum := sha256.Sum256([]byte(r.Contents))
	return hex.EncodeToString(sum[:])
}

// BeforeSave keeps the stored checksum in step with the contents.
func (r *RawConfiguration) BeforeSave(tx *gorm.DB) error {
	r.SHA256 = r.Checksum()
	return nil
}

// ResourceConfigurationUpdate records one attempt to change a resource's
// configuration.
type ResourceConfigurationUpdate struct {
	ID                  int          `gorm:"column:id;primaryKey" json:"id"`
	ResourceID          int          `gorm:"column:resource_id;not null" json:"resourceId"`
	ConfigurationID     int          `gorm:"column:config_id" json:"configurationId"`
	Status              UpdateStatus `gorm:"column:status;type:text" json:"status"`
	ErrorMessage        string       `gorm:"column:error_message" json:"errorMessage,omitempty"`
	SubjectName         string       `gorm:"column:subject_name" json:"subjectName"`
	GroupConfigUpdateID *int         `gorm:"column:group_config_update_id" json:"groupConfigUpdateId,omitempty"`
	CTime               time.Time    `gorm:"column:ctime;autoCreateTime" json:"ctime"`
	MTime               time.Time    `gorm:"column:mtime;autoUpdateTime" json:"mtime"`

	Resource      *Resource      `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
	Configuration *Configuration `gorm:"foreignKey:ConfigurationID" json:"configuration,omitempty"`
}

func (ResourceConfigurationUpdate) TableName() string {
	return "rhq_resource_config_update"
}

func (u ResourceConfigurationUpdate) GetID() int {
	return u.ID
}

// GroupConfigurationUpdate aggregates the member updates of a group-wide
// configuration change.
type GroupConfigurationUpdate struct {
	ID           int          `gorm:"column:id;primaryKey" json:"id"`
	GroupID      int          `gorm:"column:group_id;not null" json:"groupId"`
	Status       UpdateStatus `gorm:"column:status;type:text" json:"status"`
	ErrorMessage string       `gorm:"column:error_message" json:"errorMessage,omitempty"`
	SubjectName  string       `gorm:"column:subject_name" json:"subjectName"`
	CTime        time.Time    `gorm:"column:ctime;autoCreateTime" json:"ctime"`
	MTime        time.Time    `gorm:"column:mtime;autoUpdateTime" json:"mtime"`
}

func (GroupConfigurationUpdate) TableName() string {
	return "rhq_group_config_update"
}

// ConfigurationUpdateRequest is sent to the agent owning a resource.
type ConfigurationUpdateRequest struct {
	UpdateID      int            `json:"updateId"`
	ResourceID    int            `json:"resourceId"`
	Configuration *Configuration `json:"configuration"`
}

// ConfigurationUpdateResponse reports the outcome of a request back to the server.
type ConfigurationUpdateResponse struct {
	UpdateID      int            `json:"updateId"`
	Configuration *Configuration `json:"configuration,omitempty"`
	Status        UpdateStatus   `json:"status"`
	ErrorMessage  string         `json:"errorMessage,omitempty"`
}
