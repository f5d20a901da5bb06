package model

//go:generate go run github.com/dmarkham/enumer -type Permission -trimprefix Permission -transform snake-upper -json -sql -output permission.gen.go

// Permission is an operation a role may grant.
type Permission int

const (
	PermissionManageSecurity Permission = iota
	PermissionManageInventory
	PermissionManageSettings
	PermissionManageBundle
	PermissionViewUsers
	PermissionViewResource
	PermissionModifyResource
	PermissionDeleteResource
	PermissionCreateChildResources
	PermissionManageAlerts
	PermissionManageMeasurements
	PermissionControl
	PermissionConfigureRead
	PermissionConfigureWrite
	PermissionManageDrift
)

// IsGlobal reports whether the permission applies server-wide rather than
// to the resources of a role's groups.
func (p Permission) IsGlobal() bool {
	switch p {
	case PermissionManageSecurity, PermissionManageInventory, PermissionManageSettings,
		PermissionManageBundle, PermissionViewUsers:
		return true
	}
	return false
}

// Subject is a user of the server.
type Subject struct {
	ID           int    `gorm:"column:id;primaryKey" json:"id"`
	Name         string `gorm:"column:name;uniqueIndex;not null" json:"name"`
	FirstName    string `gorm:"column:first_name" json:"firstName,omitempty"`
	LastName     string `gorm:"column:last_name" json:"lastName,omitempty"`
	EmailAddress string `gorm:"column:email_address" json:"emailAddress,omitempty"`
	FactiveFlag  bool   `gorm:"column:factive" json:"factive"`
	FsystemFlag  bool   `gorm:"column:fsystem" json:"fsystem"`

	Roles []Role `gorm:"many2many:rhq_subject_role_map;joinForeignKey:SubjectID;joinReferences:RoleID" json:"roles,omitempty"`
}

func (Subject) TableName() string {
	return "rhq_subject"
}

func (s Subject) GetID() int {
	return s.ID
}

// Role bundles permissions and grants them over resource groups.
type Role struct {
	ID          int    `gorm:"column:id;primaryKey" json:"id"`
	Name        string `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Description string `gorm:"column:description" json:"description,omitempty"`

	Permissions    []RolePermission `gorm:"foreignKey:RoleID" json:"permissions,omitempty"`
	Subjects       []Subject        `gorm:"many2many:rhq_subject_role_map;joinForeignKey:RoleID;joinReferences:SubjectID" json:"subjects,omitempty"`
	ResourceGroups []ResourceGroup  `gorm:"many2many:rhq_role_resource_group_map;joinForeignKey:RoleID;joinReferences:ResourceGroupID" json:"resourceGroups,omitempty"`
}

func (Role) TableName() string {
	return "rhq_role"
}

func (r Role) GetID() int {
	return r.ID
}

// RolePermission is one permission granted by a role.
type RolePermission struct {
	RoleID    int        `gorm:"column:role_id;primaryKey" json:"-"`
	Operation Permission `gorm:"column:operation;primaryKey;type:text" json:"operation"`
}

func (RolePermission) TableName() string {
	return "rhq_permission"
}
