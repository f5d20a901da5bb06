package criteria

import (
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

// EntityResource is the entity name searched by ResourceCriteria.
const EntityResource = "Resource"

// ResourceCriteria searches the inventory.
type ResourceCriteria struct {
	*Criteria
}

// NewResourceCriteria returns an empty resource search.
func NewResourceCriteria() *ResourceCriteria {
	c := &ResourceCriteria{Criteria: New(EntityResource)}

	c.OverrideFilter("ids", "id IN ?")
	c.OverrideFilter("resourceTypeName", "resource_type_id IN ( SELECT rt.id FROM rhq_resource_type rt WHERE LOWER( rt.name ) like LOWER( ? ) )")
	c.OverrideFilter("pluginName", "resource_type_id IN ( SELECT rt.id FROM rhq_resource_type rt WHERE LOWER( rt.plugin ) like LOWER( ? ) )")
	c.OverrideFilter("resourceCategories", "resource_type_id IN ( SELECT rt.id FROM rhq_resource_type rt WHERE rt.category IN ? )")
	c.OverrideFilter("parentResourceName", "parent_resource_id IN ( SELECT p.id FROM rhq_resource p WHERE LOWER( p.name ) like LOWER( ? ) )")
	c.OverrideFilter("agentName", "agent_id IN ( SELECT a.id FROM rhq_agent a WHERE LOWER( a.name ) like LOWER( ? ) )")
	c.OverrideFilter("explicitGroupIds", "id IN ( SELECT m.resource_id FROM rhq_resource_group_res_exp_map m WHERE m.resource_group_id IN ? )")
	c.OverrideFilter("implicitGroupIds", "id IN ( SELECT m.resource_id FROM rhq_resource_group_res_imp_map m WHERE m.resource_group_id IN ? )")
	c.OverrideFilter("supportsConfiguration", "resource_type_id IN ( SELECT rt.id FROM rhq_resource_type rt WHERE rt.supports_configuration = true )")
	c.OverrideFilter("rootResourcesOnly", "parent_resource_id IS NULL")

	c.OverrideSort("resourceTypeName", "resourceType.name")
	c.OverrideSort("pluginName", "resourceType.plugin")
	c.OverrideSort("resourceCategory", "resourceType.category")
	c.OverrideSort("parentResourceName", "parentResource.name")
	c.OverrideSort("agentName", "agent.name")
	return c
}

func (c *ResourceCriteria) AddFilterID(id int) {
	c.SetFilter("id", id)
}

func (c *ResourceCriteria) AddFilterIDs(ids ...int) {
	c.SetFilter("ids", ids)
}

func (c *ResourceCriteria) AddFilterName(name string) {
	c.SetFilter("name", name)
}

func (c *ResourceCriteria) AddFilterResourceKey(key string) {
	c.SetFilter("resourceKey", key)
}

func (c *ResourceCriteria) AddFilterDescription(description string) {
	c.SetFilter("description", description)
}

func (c *ResourceCriteria) AddFilterVersion(version string) {
	c.SetFilter("version", version)
}

func (c *ResourceCriteria) AddFilterInventoryStatus(status model.InventoryStatus) {
	c.SetFilter("inventoryStatus", status)
}

func (c *ResourceCriteria) AddFilterResourceTypeID(id int) {
	c.SetFilter("resourceTypeId", id)
}

func (c *ResourceCriteria) AddFilterResourceTypeName(name string) {
	c.SetFilter("resourceTypeName", name)
}

func (c *ResourceCriteria) AddFilterPluginName(plugin string) {
	c.SetFilter("pluginName", plugin)
}

func (c *ResourceCriteria) AddFilterResourceCategories(categories ...model.Category) {
	c.SetFilter("resourceCategories", categories)
}

func (c *ResourceCriteria) AddFilterParentResourceID(id int) {
	c.SetFilter("parentResourceId", id)
}

func (c *ResourceCriteria) AddFilterParentResourceName(name string) {
	c.SetFilter("parentResourceName", name)
}

func (c *ResourceCriteria) AddFilterAgentID(id int) {
	c.SetFilter("agentId", id)
}

func (c *ResourceCriteria) AddFilterAgentName(name string) {
	c.SetFilter("agentName", name)
}

func (c *ResourceCriteria) AddFilterExplicitGroupIDs(ids ...int) {
	c.SetFilter("explicitGroupIds", ids)
}

func (c *ResourceCriteria) AddFilterImplicitGroupIDs(ids ...int) {
	c.SetFilter("implicitGroupIds", ids)
}

func (c *ResourceCriteria) AddFilterSupportsConfiguration(v NonBinding) {
	c.SetFilter("supportsConfiguration", v)
}

func (c *ResourceCriteria) AddFilterRootResourcesOnly(v NonBinding) {
	c.SetFilter("rootResourcesOnly", v)
}

func (c *ResourceCriteria) FetchResourceType(fetch bool) {
	c.SetFetch("resourceType", fetch)
}

func (c *ResourceCriteria) FetchParentResource(fetch bool) {
	c.SetFetch("parentResource", fetch)
}

func (c *ResourceCriteria) FetchChildResources(fetch bool) {
	c.SetFetch("childResources", fetch)
}

func (c *ResourceCriteria) FetchAgent(fetch bool) {
	c.SetFetch("agent", fetch)
}

func (c *ResourceCriteria) FetchExplicitGroups(fetch bool) {
	c.SetFetch("explicitGroups", fetch)
}

func (c *ResourceCriteria) FetchImplicitGroups(fetch bool) {
	c.SetFetch("implicitGroups", fetch)
}

func (c *ResourceCriteria) AddSortID(o paging.Ordering) {
	c.SetSort("id", o)
}

func (c *ResourceCriteria) AddSortName(o paging.Ordering) {
	c.SetSort("name", o)
}

func (c *ResourceCriteria) AddSortInventoryStatus(o paging.Ordering) {
	c.SetSort("inventoryStatus", o)
}

func (c *ResourceCriteria) AddSortVersion(o paging.Ordering) {
	c.SetSort("version", o)
}

func (c *ResourceCriteria) AddSortCTime(o paging.Ordering) {
	c.SetSort("ctime", o)
}

func (c *ResourceCriteria) AddSortResourceTypeName(o paging.Ordering) {
	c.SetSort("resourceTypeName", o)
}

func (c *ResourceCriteria) AddSortPluginName(o paging.Ordering) {
	c.SetSort("pluginName", o)
}

func (c *ResourceCriteria) AddSortResourceCategory(o paging.Ordering) {
	c.SetSort("resourceCategory", o)
}

func (c *ResourceCriteria) AddSortParentResourceName(o paging.Ordering) {
	c.SetSort("parentResourceName", o)
}

func (c *ResourceCriteria) AddSortAgentName(o paging.Ordering) {
	c.SetSort("agentName", o)
}
