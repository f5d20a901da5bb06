package criteria

import (
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

const EntityAlertDefinition = "AlertDefinition"

// AlertDefinitionCriteria searches alert definitions. Deleted definitions
// are excluded unless AddFilterDeleted(true) is called.
type AlertDefinitionCriteria struct {
	*Criteria
}

func NewAlertDefinitionCriteria() *AlertDefinitionCriteria {
	c := &AlertDefinitionCriteria{Criteria: New(EntityAlertDefinition)}
	c.OverrideFilter("resourceIds", "resource_id IN ?")
	c.OverrideFilter("resourceTypeId", "resource_id IN ( SELECT r.id FROM rhq_resource r WHERE r.resource_type_id = ? )")
	c.OverrideSort("resourceName", "resource.name")
	c.SetFilter("deleted", false)
	return c
}

func (c *AlertDefinitionCriteria) AddFilterID(id int) {
	c.SetFilter("id", id)
}

func (c *AlertDefinitionCriteria) AddFilterName(name string) {
	c.SetFilter("name", name)
}

func (c *AlertDefinitionCriteria) AddFilterDescription(description string) {
	c.SetFilter("description", description)
}

func (c *AlertDefinitionCriteria) AddFilterPriority(p model.AlertPriority) {
	c.SetFilter("priority", p)
}

func (c *AlertDefinitionCriteria) AddFilterEnabled(enabled bool) {
	c.SetFilter("enabled", enabled)
}

func (c *AlertDefinitionCriteria) AddFilterDeleted(deleted bool) {
	c.SetFilter("deleted", deleted)
}

func (c *AlertDefinitionCriteria) AddFilterResourceIDs(ids ...int) {
	c.SetFilter("resourceIds", ids)
}

func (c *AlertDefinitionCriteria) AddFilterResourceTypeID(id int) {
	c.SetFilter("resourceTypeId", id)
}

func (c *AlertDefinitionCriteria) FetchResource(fetch bool) {
	c.SetFetch("resource", fetch)
}

func (c *AlertDefinitionCriteria) AddSortName(o paging.Ordering) {
	c.SetSort("name", o)
}

func (c *AlertDefinitionCriteria) AddSortPriority(o paging.Ordering) {
	c.SetSort("priority", o)
}

func (c *AlertDefinitionCriteria) AddSortCTime(o paging.Ordering) {
	c.SetSort("ctime", o)
}

func (c *AlertDefinitionCriteria) AddSortResourceName(o paging.Ordering) {
	c.SetSort("resourceName", o)
}
