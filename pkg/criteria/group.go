package criteria

import "github.com/rhq-project/rhq-in-go/pkg/paging"

// EntityResourceGroup is the entity name searched by ResourceGroupCriteria.
const EntityResourceGroup = "ResourceGroup"

// ResourceGroupCriteria searches resource groups.
type ResourceGroupCriteria struct {
	*Criteria
}

func NewResourceGroupCriteria() *ResourceGroupCriteria {
	c := &ResourceGroupCriteria{Criteria: New(EntityResourceGroup)}

	c.OverrideFilter("ids", "id IN ?")
	c.OverrideFilter("explicitResourceIds", "id IN ( SELECT m.resource_group_id FROM rhq_resource_group_res_exp_map m WHERE m.resource_id IN ? )")
	c.OverrideFilter("implicitResourceIds", "id IN ( SELECT m.resource_group_id FROM rhq_resource_group_res_imp_map m WHERE m.resource_id IN ? )")
	c.OverrideFilter("privateGroupsOnly", "subject_id IS NOT NULL")
	c.OverrideFilter("compatibleGroupsOnly", "resource_type_id IS NOT NULL")
	c.OverrideFilter("roleId", "id IN ( SELECT rg.resource_group_id FROM rhq_role_resource_group_map rg WHERE rg.role_id = ? )")

	c.OverrideSort("resourceTypeName", "resourceType.name")
	return c
}

func (c *ResourceGroupCriteria) AddFilterID(id int) {
	c.SetFilter("id", id)
}

func (c *ResourceGroupCriteria) AddFilterIDs(ids ...int) {
	c.SetFilter("ids", ids)
}

func (c *ResourceGroupCriteria) AddFilterName(name string) {
	c.SetFilter("name", name)
}

func (c *ResourceGroupCriteria) AddFilterDescription(description string) {
	c.SetFilter("description", description)
}

func (c *ResourceGroupCriteria) AddFilterRecursive(recursive bool) {
	c.SetFilter("recursive", recursive)
}

func (c *ResourceGroupCriteria) AddFilterResourceTypeID(id int) {
	c.SetFilter("resourceTypeId", id)
}

func (c *ResourceGroupCriteria) AddFilterExplicitResourceIDs(ids ...int) {
	c.SetFilter("explicitResourceIds", ids)
}

func (c *ResourceGroupCriteria) AddFilterImplicitResourceIDs(ids ...int) {
	c.SetFilter("implicitResourceIds", ids)
}

func (c *ResourceGroupCriteria) AddFilterPrivateGroupsOnly(v NonBinding) {
	c.SetFilter("privateGroupsOnly", v)
}

func (c *ResourceGroupCriteria) AddFilterCompatibleGroupsOnly(v NonBinding) {
	c.SetFilter("compatibleGroupsOnly", v)
}

func (c *ResourceGroupCriteria) AddFilterRoleID(id int) {
	c.SetFilter("roleId", id)
}

func (c *ResourceGroupCriteria) FetchResourceType(fetch bool) {
	c.SetFetch("resourceType", fetch)
}

func (c *ResourceGroupCriteria) FetchExplicitResources(fetch bool) {
	c.SetFetch("explicitResources", fetch)
}

func (c *ResourceGroupCriteria) FetchRoles(fetch bool) {
	c.SetFetch("roles", fetch)
}

func (c *ResourceGroupCriteria) AddSortName(o paging.Ordering) {
	c.SetSort("name", o)
}

func (c *ResourceGroupCriteria) AddSortCTime(o paging.Ordering) {
	c.SetSort("ctime", o)
}

func (c *ResourceGroupCriteria) AddSortResourceTypeName(o paging.Ordering) {
	c.SetSort("resourceTypeName", o)
}
