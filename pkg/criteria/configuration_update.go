package criteria

import (
	"time"

	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

const EntityResourceConfigurationUpdate = "ResourceConfigurationUpdate"

// ResourceConfigurationUpdateCriteria searches configuration update history.
type ResourceConfigurationUpdateCriteria struct {
	*Criteria
}

func NewResourceConfigurationUpdateCriteria() *ResourceConfigurationUpdateCriteria {
	c := &ResourceConfigurationUpdateCriteria{Criteria: New(EntityResourceConfigurationUpdate)}
	c.OverrideFilter("resourceIds", "resource_id IN ?")
	c.OverrideFilter("startTime", "ctime >= ?")
	c.OverrideFilter("endTime", "ctime <= ?")
	c.OverrideSort("resourceName", "resource.name")
	return c
}

func (c *ResourceConfigurationUpdateCriteria) AddFilterID(id int) {
	c.SetFilter("id", id)
}

func (c *ResourceConfigurationUpdateCriteria) AddFilterResourceID(id int) {
	c.SetFilter("resourceId", id)
}

func (c *ResourceConfigurationUpdateCriteria) AddFilterResourceIDs(ids ...int) {
	c.SetFilter("resourceIds", ids)
}

func (c *ResourceConfigurationUpdateCriteria) AddFilterStatus(status model.UpdateStatus) {
	c.SetFilter("status", status)
}

func (c *ResourceConfigurationUpdateCriteria) AddFilterSubjectName(name string) {
	c.SetFilter("subjectName", name)
}

func (c *ResourceConfigurationUpdateCriteria) AddFilterGroupConfigurationUpdateID(id int) {
	c.SetFilter("groupConfigUpdateId", id)
}

func (c *ResourceConfigurationUpdateCriteria) AddFilterStartTime(t time.Time) {
	c.SetFilter("startTime", t)
}

func (c *ResourceConfigurationUpdateCriteria) AddFilterEndTime(t time.Time) {
	c.SetFilter("endTime", t)
}

func (c *ResourceConfigurationUpdateCriteria) FetchConfiguration(fetch bool) {
	c.SetFetch("configuration", fetch)
}

func (c *ResourceConfigurationUpdateCriteria) FetchResource(fetch bool) {
	c.SetFetch("resource", fetch)
}

func (c *ResourceConfigurationUpdateCriteria) AddSortCTime(o paging.Ordering) {
	c.SetSort("ctime", o)
}

func (c *ResourceConfigurationUpdateCriteria) AddSortStatus(o paging.Ordering) {
	c.SetSort("status", o)
}

func (c *ResourceConfigurationUpdateCriteria) AddSortResourceName(o paging.Ordering) {
	c.SetSort("resourceName", o)
}
