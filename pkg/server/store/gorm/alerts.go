package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

var (
	_ store.AlertsStore       = (*AlertsStore)(nil)
	_ store.StorageNodesStore = (*StorageNodesStore)(nil)
)

// AlertsStore implements store.AlertsStore using GORM
type AlertsStore struct {
	db    *gorm.DB
	authz *AuthzStore
}

// NewAlertsStore creates a new AlertsStore
func NewAlertsStore(db *gorm.DB) *AlertsStore {
	return &AlertsStore{db: db, authz: NewAuthzStore(db)}
}

// SearchAlertDefinitions returns definitions matching c on resources the subject may view
func (s *AlertsStore) SearchAlertDefinitions(ctx context.Context, c *criteria.AlertDefinitionCriteria, subjectID int) (*paging.PageList[model.AlertDefinition], error) {
	return search[model.AlertDefinition](ctx, s.db, s.authz, c.Criteria, resourceScope("resource", subjectID))
}

// StorageNodesStore implements store.StorageNodesStore using GORM
type StorageNodesStore struct {
	db *gorm.DB
}

// NewStorageNodesStore creates a new StorageNodesStore
func NewStorageNodesStore(db *gorm.DB) *StorageNodesStore {
	return &StorageNodesStore{db: db}
}

// SearchStorageNodes returns the page of storage nodes matching c
func (s *StorageNodesStore) SearchStorageNodes(ctx context.Context, c *criteria.StorageNodeCriteria) (*paging.PageList[model.StorageNode], error) {
	return search[model.StorageNode](ctx, s.db, nil, c.Criteria, unscoped)
}
