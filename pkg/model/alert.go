package model

import "time"

//go:generate go run github.com/dmarkham/enumer -type AlertPriority -trimprefix AlertPriority -transform upper -json -sql -output alert_priority.gen.go

// AlertPriority ranks alert definitions.
type AlertPriority int

const (
	AlertPriorityHigh AlertPriority = iota
	AlertPriorityMedium
	AlertPriorityLow
)

// AlertDefinition is a rule that raises alerts for a resource.
type AlertDefinition struct {
	ID          int           `gorm:"column:id;primaryKey" json:"id"`
	Name        string        `gorm:"column:name;not null" json:"name"`
	Description string        `gorm:"column:description" json:"description,omitempty"`
	Priority    AlertPriority `gorm:"column:priority;type:text" json:"priority"`
	Enabled     bool          `gorm:"column:enabled" json:"enabled"`
	Deleted     bool          `gorm:"column:deleted" json:"deleted"`
	ResourceID  *int          `gorm:"column:resource_id" json:"resourceId,omitempty"`
	CTime       time.Time     `gorm:"column:ctime;autoCreateTime" json:"ctime"`
	MTime       time.Time     `gorm:"column:mtime;autoUpdateTime" json:"mtime"`

	Resource *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
}

func (AlertDefinition) TableName() string {
	return "rhq_alert_definition"
}

func (a AlertDefinition) GetID() int {
	return a.ID
}
