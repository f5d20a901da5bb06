package query

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
)

// Relation is an association from one entity to another.
type Relation struct {
	// Target is the name of the related entity.
	Target string
	// Preload is the gorm association name used to load the relation.
	Preload string
	// ForeignKey is the column on the owning entity for to-one relations.
	ForeignKey string
	// Many marks collections. They can be fetched but not sorted on.
	Many bool
}

// Entity maps a searchable entity onto its table.
type Entity struct {
	Name  string
	Table string
	Alias string
	// Columns maps criteria field names to column names.
	Columns   map[string]string
	Relations map[string]Relation
}

// Column returns the column for field.
func (e *Entity) Column(field string) (string, bool) {
	c, ok := e.Columns[field]
	return c, ok
}

var (
	entitiesMu sync.RWMutex
	entities   = map[string]*Entity{}
)

// Register adds or replaces entity metadata.
func Register(e *Entity) {
	entitiesMu.Lock()
	defer entitiesMu.Unlock()
	entities[e.Name] = e
}

// Lookup returns the metadata registered under name.
func Lookup(name string) (*Entity, error) {
	entitiesMu.RLock()
	defer entitiesMu.RUnlock()
	e, ok := entities[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown entity %q", ErrIllegalArgument, name)
	}
	return e, nil
}

// Registered lists the registered entity names in order.
func Registered() []string {
	entitiesMu.RLock()
	defer entitiesMu.RUnlock()
	names := make([]string, 0, len(entities))
	for n := range entities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(&Entity{
		Name:  criteria.EntityResource,
		Table: "rhq_resource",
		Alias: "resource",
		Columns: map[string]string{
			"id":               "id",
			"uuid":             "uuid",
			"name":             "name",
			"resourceKey":      "resource_key",
			"description":      "description",
			"version":          "version",
			"inventoryStatus":  "inventory_status",
			"resourceTypeId":   "resource_type_id",
			"parentResourceId": "parent_resource_id",
			"agentId":          "agent_id",
			"ctime":            "ctime",
			"mtime":            "mtime",
		},
		Relations: map[string]Relation{
			"resourceType":   {Target: "ResourceType", Preload: "ResourceType", ForeignKey: "resource_type_id"},
			"parentResource": {Target: criteria.EntityResource, Preload: "ParentResource", ForeignKey: "parent_resource_id"},
			"agent":          {Target: "Agent", Preload: "Agent", ForeignKey: "agent_id"},
			"childResources": {Target: criteria.EntityResource, Preload: "ChildResources", Many: true},
			"explicitGroups": {Target: criteria.EntityResourceGroup, Preload: "ExplicitGroups", Many: true},
			"implicitGroups": {Target: criteria.EntityResourceGroup, Preload: "ImplicitGroups", Many: true},
		},
	})

	Register(&Entity{
		Name:  "ResourceType",
		Table: "rhq_resource_type",
		Alias: "resourcetype",
		Columns: map[string]string{
			"id":                    "id",
			"name":                  "name",
			"plugin":                "plugin",
			"category":              "category",
			"singleton":             "singleton",
			"configFormat":          "config_format",
			"supportsConfiguration": "supports_configuration",
		},
	})

	Register(&Entity{
		Name:  "Agent",
		Table: "rhq_agent",
		Alias: "agent",
		Columns: map[string]string{
			"id":      "id",
			"name":    "name",
			"address": "address",
			"port":    "port",
		},
	})

	Register(&Entity{
		Name:  criteria.EntityResourceGroup,
		Table: "rhq_resource_group",
		Alias: "resourcegroup",
		Columns: map[string]string{
			"id":                     "id",
			"name":                   "name",
			"description":            "description",
			"recursive":              "recursive",
			"clusterResourceGroupId": "cluster_resource_group_id",
			"subjectId":              "subject_id",
			"resourceTypeId":         "resource_type_id",
			"ctime":                  "ctime",
		},
		Relations: map[string]Relation{
			"resourceType":      {Target: "ResourceType", Preload: "ResourceType", ForeignKey: "resource_type_id"},
			"explicitResources": {Target: criteria.EntityResource, Preload: "ExplicitResources", Many: true},
			"roles":             {Target: criteria.EntityRole, Preload: "Roles", Many: true},
		},
	})

	Register(&Entity{
		Name:  criteria.EntitySubject,
		Table: "rhq_subject",
		Alias: "subject",
		Columns: map[string]string{
			"id":           "id",
			"name":         "name",
			"firstName":    "first_name",
			"lastName":     "last_name",
			"emailAddress": "email_address",
			"factive":      "factive",
			"fsystem":      "fsystem",
		},
		Relations: map[string]Relation{
			"roles": {Target: criteria.EntityRole, Preload: "Roles", Many: true},
		},
	})

	Register(&Entity{
		Name:  criteria.EntityRole,
		Table: "rhq_role",
		Alias: "role",
		Columns: map[string]string{
			"id":          "id",
			"name":        "name",
			"description": "description",
		},
		Relations: map[string]Relation{
			"permissions":    {Target: "Permission", Preload: "Permissions", Many: true},
			"subjects":       {Target: criteria.EntitySubject, Preload: "Subjects", Many: true},
			"resourceGroups": {Target: criteria.EntityResourceGroup, Preload: "ResourceGroups", Many: true},
		},
	})

	Register(&Entity{
		Name:  criteria.EntityAlertDefinition,
		Table: "rhq_alert_definition",
		Alias: "alertdefinition",
		Columns: map[string]string{
			"id":          "id",
			"name":        "name",
			"description": "description",
			"priority":    "priority",
			"enabled":     "enabled",
			"deleted":     "deleted",
			"resourceId":  "resource_id",
			"ctime":       "ctime",
			"mtime":       "mtime",
		},
		Relations: map[string]Relation{
			"resource": {Target: criteria.EntityResource, Preload: "Resource", ForeignKey: "resource_id"},
		},
	})

	Register(&Entity{
		Name:  criteria.EntityStorageNode,
		Table: "rhq_storage_node",
		Alias: "storagenode",
		Columns: map[string]string{
			"id":            "id",
			"address":       "address",
			"cqlPort":       "cql_port",
			"operationMode": "operation_mode",
			"errorMessage":  "error_message",
			"resourceId":    "resource_id",
			"ctime":         "ctime",
			"mtime":         "mtime",
		},
		Relations: map[string]Relation{
			"resource": {Target: criteria.EntityResource, Preload: "Resource", ForeignKey: "resource_id"},
		},
	})

	Register(&Entity{
		Name:  criteria.EntityResourceConfigurationUpdate,
		Table: "rhq_resource_config_update",
		Alias: "configupdate",
		Columns: map[string]string{
			"id":                  "id",
			"resourceId":          "resource_id",
			"configurationId":     "config_id",
			"status":              "status",
			"errorMessage":        "error_message",
			"subjectName":         "subject_name",
			"groupConfigUpdateId": "group_config_update_id",
			"ctime":               "ctime",
			"mtime":               "mtime",
		},
		Relations: map[string]Relation{
			"resource":      {Target: criteria.EntityResource, Preload: "Resource", ForeignKey: "resource_id"},
			"configuration": {Target: "Configuration", Preload: "Configuration", ForeignKey: "config_id"},
		},
	})

	Register(&Entity{
		Name:  "Configuration",
		Table: "rhq_config",
		Alias: "config",
		Columns: map[string]string{
			"id":      "id",
			"version": "version",
			"notes":   "notes",
			"ctime":   "ctime",
		},
	})
}
