package model

import "time"

// ResourceGroup is a named set of resources. Compatible groups carry a
// ResourceTypeID; recursive groups implicitly contain every descendant of
// their explicit members. A group owned by a subject is private to it.
type ResourceGroup struct {
	ID                     int       `gorm:"column:id;primaryKey" json:"id"`
	Name                   string    `gorm:"column:name;not null" json:"name"`
	Description            string    `gorm:"column:description" json:"description,omitempty"`
	Recursive              bool      `gorm:"column:recursive" json:"recursive"`
	ClusterResourceGroupID *int      `gorm:"column:cluster_resource_group_id" json:"clusterResourceGroupId,omitempty"`
	SubjectID              *int      `gorm:"column:subject_id" json:"subjectId,omitempty"`
	ResourceTypeID         *int      `gorm:"column:resource_type_id" json:"resourceTypeId,omitempty"`
	CTime                  time.Time `gorm:"column:ctime;autoCreateTime" json:"ctime"`

	ResourceType      *ResourceType `gorm:"foreignKey:ResourceTypeID" json:"resourceType,omitempty"`
	ExplicitResources []Resource    `gorm:"many2many:rhq_resource_group_res_exp_map;joinForeignKey:ResourceGroupID;joinReferences:ResourceID" json:"explicitResources,omitempty"`
	Roles             []Role        `gorm:"many2many:rhq_role_resource_group_map;joinForeignKey:ResourceGroupID;joinReferences:RoleID" json:"roles,omitempty"`
}

func (ResourceGroup) TableName() string {
	return "rhq_resource_group"
}

func (g ResourceGroup) GetID() int {
	return g.ID
}

// IsPrivate reports whether the group belongs to a single subject.
func (g ResourceGroup) IsPrivate() bool {
	return g.SubjectID != nil
}
