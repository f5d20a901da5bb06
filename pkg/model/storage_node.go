package model

import "time"

//go:generate go run github.com/dmarkham/enumer -type OperationMode -trimprefix OperationMode -transform snake-upper -json -sql -output operation_mode.gen.go

// OperationMode is the deployment state of a storage node.
type OperationMode int

const (
	OperationModeInstalled OperationMode = iota
	OperationModeAnnounce
	OperationModeNormal
	OperationModeMaintenance
	OperationModeDown
	OperationModeDecommission
	OperationModeUnannounce
	OperationModeUninstall
	OperationModeAddMaintenance
	OperationModeRemoveMaintenance
)

// IsDeploying reports whether the node is part way through joining or
// leaving the cluster.
func (m OperationMode) IsDeploying() bool {
	switch m {
	case OperationModeAnnounce, OperationModeAddMaintenance, OperationModeDecommission,
		OperationModeUnannounce, OperationModeRemoveMaintenance, OperationModeUninstall:
		return true
	}
	return false
}

// StorageNode is a metrics storage cluster member.
type StorageNode struct {
	ID            int           `gorm:"column:id;primaryKey" json:"id"`
	Address       string        `gorm:"column:address;uniqueIndex;not null" json:"address"`
	CQLPort       int           `gorm:"column:cql_port" json:"cqlPort"`
	OperationMode OperationMode `gorm:"column:operation_mode;type:text" json:"operationMode"`
	ErrorMessage  string        `gorm:"column:error_message" json:"errorMessage,omitempty"`
	ResourceID    *int          `gorm:"column:resource_id" json:"resourceId,omitempty"`
	CTime         time.Time     `gorm:"column:ctime;autoCreateTime" json:"ctime"`
	MTime         time.Time     `gorm:"column:mtime;autoUpdateTime" json:"mtime"`

	Resource *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
}

func (StorageNode) TableName() string {
	return "rhq_storage_node"
}

func (n StorageNode) GetID() int {
	return n.ID
}
