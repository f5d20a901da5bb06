package gorm

import (
	"gorm.io/gorm"

	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// Ensure AuthzStore implements store.AuthzStore
var _ store.AuthzStore = (*AuthzStore)(nil)

// AuthzStore implements store.AuthzStore using GORM
type AuthzStore struct {
	db *gorm.DB
}

// NewAuthzStore creates a new AuthzStore
func NewAuthzStore(db *gorm.DB) *AuthzStore {
	return &AuthzStore{db: db}
}

func (s *AuthzStore) count(query string, args ...interface{}) int64 {
	var n int64
	s.db.Raw(query, args...).Scan(&n)
	return n
}

// HasGlobalPermission checks if a subject holds a global permission.
func (s *AuthzStore) HasGlobalPermission(subjectID int, permission model.Permission) bool {
	return s.count(`
		SELECT COUNT(*)
		FROM rhq_permission p
		JOIN rhq_subject_role_map s ON s.role_id = p.role_id
		WHERE s.subject_id = ? AND p.operation = ?`, subjectID, permission.String()) > 0
}

// HasResourcePermission checks if a subject holds a permission on a resource.
// Inventory managers hold every resource permission.
func (s *AuthzStore) HasResourcePermission(subjectID int, permission model.Permission, resourceID int) bool {
	if s.HasGlobalPermission(subjectID, model.PermissionManageInventory) {
		return true
	}
	return s.count(`
		SELECT COUNT(*)
		FROM rhq_resource_group_res_imp_map g
		JOIN rhq_role_resource_group_map r ON r.resource_group_id = g.resource_group_id
		JOIN rhq_subject_role_map s ON s.role_id = r.role_id
		JOIN rhq_permission p ON p.role_id = r.role_id
		WHERE s.subject_id = ? AND g.resource_id = ? AND p.operation = ?`,
		subjectID, resourceID, permission.String()) > 0
}

// HasGroupPermission checks if a subject holds a permission on a group. The
// owner of a private group holds every permission on it.
func (s *AuthzStore) HasGroupPermission(subjectID int, permission model.Permission, groupID int) bool {
	if s.HasGlobalPermission(subjectID, model.PermissionManageInventory) {
		return true
	}
	if s.count(`SELECT COUNT(*) FROM rhq_resource_group WHERE id = ? AND subject_id = ?`, groupID, subjectID) > 0 {
		return true
	}
	return s.count(`
		SELECT COUNT(*)
		FROM rhq_role_resource_group_map r
		JOIN rhq_subject_role_map s ON s.role_id = r.role_id
		JOIN rhq_permission p ON p.role_id = r.role_id
		WHERE s.subject_id = ? AND r.resource_group_id = ? AND p.operation = ?`,
		subjectID, groupID, permission.String()) > 0
}

// CanViewResource checks if a resource is in any group of the subject's roles.
func (s *AuthzStore) CanViewResource(subjectID, resourceID int) bool {
	if s.HasGlobalPermission(subjectID, model.PermissionManageInventory) {
		return true
	}
	return s.count(`
		SELECT COUNT(*)
		FROM rhq_resource_group_res_imp_map g
		JOIN rhq_role_resource_group_map r ON r.resource_group_id = g.resource_group_id
		JOIN rhq_subject_role_map s ON s.role_id = r.role_id
		WHERE s.subject_id = ? AND g.resource_id = ?`, subjectID, resourceID) > 0
}
