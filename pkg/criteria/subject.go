package criteria

import (
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

const (
	EntitySubject = "Subject"
	EntityRole    = "Role"
)

// SubjectCriteria searches users.
type SubjectCriteria struct {
	*Criteria
}

func NewSubjectCriteria() *SubjectCriteria {
	c := &SubjectCriteria{Criteria: New(EntitySubject)}
	c.OverrideFilter("roleId", "id IN ( SELECT sr.subject_id FROM rhq_subject_role_map sr WHERE sr.role_id = ? )")
	return c
}

func (c *SubjectCriteria) AddFilterID(id int) {
	c.SetFilter("id", id)
}

func (c *SubjectCriteria) AddFilterName(name string) {
	c.SetFilter("name", name)
}

func (c *SubjectCriteria) AddFilterFirstName(name string) {
	c.SetFilter("firstName", name)
}

func (c *SubjectCriteria) AddFilterLastName(name string) {
	c.SetFilter("lastName", name)
}

func (c *SubjectCriteria) AddFilterEmailAddress(email string) {
	c.SetFilter("emailAddress", email)
}

func (c *SubjectCriteria) AddFilterFactive(active bool) {
	c.SetFilter("factive", active)
}

func (c *SubjectCriteria) AddFilterFsystem(system bool) {
	c.SetFilter("fsystem", system)
}

func (c *SubjectCriteria) AddFilterRoleID(id int) {
	c.SetFilter("roleId", id)
}

func (c *SubjectCriteria) FetchRoles(fetch bool) {
	c.SetFetch("roles", fetch)
}

func (c *SubjectCriteria) AddSortName(o paging.Ordering) {
	c.SetSort("name", o)
}

func (c *SubjectCriteria) AddSortFirstName(o paging.Ordering) {
	c.SetSort("firstName", o)
}

func (c *SubjectCriteria) AddSortLastName(o paging.Ordering) {
	c.SetSort("lastName", o)
}

// RoleCriteria searches roles.
type RoleCriteria struct {
	*Criteria
}

func NewRoleCriteria() *RoleCriteria {
	c := &RoleCriteria{Criteria: New(EntityRole)}
	c.OverrideFilter("subjectId", "id IN ( SELECT sr.role_id FROM rhq_subject_role_map sr WHERE sr.subject_id = ? )")
	c.OverrideFilter("permission", "id IN ( SELECT p.role_id FROM rhq_permission p WHERE p.operation = ? )")
	return c
}

func (c *RoleCriteria) AddFilterID(id int) {
	c.SetFilter("id", id)
}

func (c *RoleCriteria) AddFilterName(name string) {
	c.SetFilter("name", name)
}

func (c *RoleCriteria) AddFilterDescription(description string) {
	c.SetFilter("description", description)
}

func (c *RoleCriteria) AddFilterSubjectID(id int) {
	c.SetFilter("subjectId", id)
}

func (c *RoleCriteria) AddFilterPermission(p model.Permission) {
	c.SetFilter("permission", p)
}

func (c *RoleCriteria) FetchPermissions(fetch bool) {
	c.SetFetch("permissions", fetch)
}

func (c *RoleCriteria) FetchSubjects(fetch bool) {
	c.SetFetch("subjects", fetch)
}

func (c *RoleCriteria) FetchResourceGroups(fetch bool) {
	c.SetFetch("resourceGroups", fetch)
}

func (c *RoleCriteria) AddSortName(o paging.Ordering) {
	c.SetSort("name", o)
}
