package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate go run github.com/dmarkham/enumer -type Category -trimprefix Category -transform upper -json -sql -output category.gen.go
//go:generate go run github.com/dmarkham/enumer -type InventoryStatus -trimprefix InventoryStatus -transform upper -json -sql -output inventory_status.gen.go

// Category is the level of a resource type in the inventory hierarchy.
type Category int

const (
	CategoryPlatform Category = iota
	CategoryServer
	CategoryService
)

// InventoryStatus tracks whether a discovered resource has been imported.
type InventoryStatus int

const (
	InventoryStatusNew InventoryStatus = iota
	InventoryStatusIgnored
	InventoryStatusCommitted
	InventoryStatusDeleted
	InventoryStatusUninventoried
)

// Plugin is an agent plugin that defines resource types.
type Plugin struct {
	ID          int       `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	DisplayName string    `gorm:"column:display_name" json:"displayName,omitempty"`
	Version     string    `gorm:"column:version" json:"version,omitempty"`
	AmpsVersion string    `gorm:"column:amps_version" json:"ampsVersion"`
	Enabled     bool      `gorm:"column:enabled;default:true" json:"enabled"`
	CTime       time.Time `gorm:"column:ctime;autoCreateTime" json:"ctime"`
}

func (Plugin) TableName() string {
	return "rhq_plugin"
}

func (p Plugin) GetID() int {
	return p.ID
}

// ResourceType describes a kind of resource and how its configuration is managed.
type ResourceType struct {
	ID                    int          `gorm:"column:id;primaryKey" json:"id"`
	Name                  string       `gorm:"column:name;not null" json:"name"`
	Plugin                string       `gorm:"column:plugin;not null" json:"plugin"`
	Category              Category     `gorm:"column:category;type:text" json:"category"`
	Singleton             bool         `gorm:"column:singleton" json:"singleton"`
	ConfigFormat          ConfigFormat `gorm:"column:config_format;type:text" json:"configFormat"`
	SupportsConfiguration bool         `gorm:"column:supports_configuration" json:"supportsConfiguration"`
	Description           string       `gorm:"column:description" json:"description,omitempty"`
}

func (ResourceType) TableName() string {
	return "rhq_resource_type"
}

func (t ResourceType) GetID() int {
	return t.ID
}

// Agent is the process hosting the plugin container for a platform.
type Agent struct {
	ID      int       `gorm:"column:id;primaryKey" json:"id"`
	Name    string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Address string    `gorm:"column:address" json:"address"`
	Port    int       `gorm:"column:port" json:"port"`
	CTime   time.Time `gorm:"column:ctime;autoCreateTime" json:"ctime"`
}

func (Agent) TableName() string {
	return "rhq_agent"
}

// Resource is a node of the inventory tree.
type Resource struct {
	ID               int             `gorm:"column:id;primaryKey" json:"id"`
	UUID             string          `gorm:"column:uuid;uniqueIndex" json:"uuid"`
	ResourceKey      string          `gorm:"column:resource_key" json:"resourceKey"`
	Name             string          `gorm:"column:name;not null" json:"name"`
	Description      string          `gorm:"column:description" json:"description,omitempty"`
	Version          string          `gorm:"column:version" json:"version,omitempty"`
	InventoryStatus  InventoryStatus `gorm:"column:inventory_status;type:text" json:"inventoryStatus"`
	ResourceTypeID   int             `gorm:"column:resource_type_id" json:"resourceTypeId"`
	ParentResourceID *int            `gorm:"column:parent_resource_id" json:"parentResourceId,omitempty"`
	AgentID          *int            `gorm:"column:agent_id" json:"agentId,omitempty"`
	CTime            time.Time       `gorm:"column:ctime;autoCreateTime" json:"ctime"`
	MTime            time.Time       `gorm:"column:mtime;autoUpdateTime" json:"mtime"`

	ResourceType   *ResourceType   `gorm:"foreignKey:ResourceTypeID" json:"resourceType,omitempty"`
	ParentResource *Resource       `gorm:"foreignKey:ParentResourceID" json:"parentResource,omitempty"`
	Agent          *Agent          `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	ChildResources []Resource      `gorm:"foreignKey:ParentResourceID" json:"childResources,omitempty"`
	ExplicitGroups []ResourceGroup `gorm:"many2many:rhq_resource_group_res_exp_map;joinForeignKey:ResourceID;joinReferences:ResourceGroupID" json:"explicitGroups,omitempty"`
	ImplicitGroups []ResourceGroup `gorm:"many2many:rhq_resource_group_res_imp_map;joinForeignKey:ResourceID;joinReferences:ResourceGroupID" json:"implicitGroups,omitempty"`
}

func (Resource) TableName() string {
	return "rhq_resource"
}

func (r Resource) GetID() int {
	return r.ID
}

// BeforeCreate assigns a UUID to resources created without one.
func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.NewString()
	}
	return nil
}
