package store

import "github.com/rhq-project/rhq-in-go/pkg/model"

// AuthzStore abstracts authorization checks
type AuthzStore interface {
	// HasGlobalPermission checks if a subject holds a global permission.
	HasGlobalPermission(subjectID int, permission model.Permission) bool

	// HasResourcePermission checks if a subject holds a permission on a
	// resource through the groups of its roles.
	HasResourcePermission(subjectID int, permission model.Permission, resourceID int) bool

	// HasGroupPermission checks if a subject holds a permission on a group.
	HasGroupPermission(subjectID int, permission model.Permission, groupID int) bool

	// CanViewResource checks if a resource is in any group of the subject's
	// roles.
	CanViewResource(subjectID, resourceID int) bool
}
