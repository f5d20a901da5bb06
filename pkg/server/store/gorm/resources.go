package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/rhq-project/rhq-in-go/pkg/query"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// Ensure ResourcesStore implements store.ResourcesStore
var _ store.ResourcesStore = (*ResourcesStore)(nil)

// ResourcesStore implements store.ResourcesStore using GORM
type ResourcesStore struct {
	db    *gorm.DB
	authz *AuthzStore
}

// NewResourcesStore creates a new ResourcesStore
func NewResourcesStore(db *gorm.DB) *ResourcesStore {
	return &ResourcesStore{db: db, authz: NewAuthzStore(db)}
}

// SearchResources returns the page of resources matching c visible to the subject
func (s *ResourcesStore) SearchResources(ctx context.Context, c *criteria.ResourceCriteria, subjectID int) (*paging.PageList[model.Resource], error) {
	return search[model.Resource](ctx, s.db, s.authz, c.Criteria, resourceScope("", subjectID))
}

// FetchResource retrieves a single resource with its type
func (s *ResourcesStore) FetchResource(resourceID int) (*model.Resource, error) {
	var r model.Resource
	tx := s.db.Preload("ResourceType").First(&r, resourceID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &r, nil
}

// Ancestry returns the parents of a resource, nearest parent first
func (s *ResourcesStore) Ancestry(resourceID int) ([]model.Resource, error) {
	pc := paging.Unlimited()
	pc.AddDefaultOrderingField("a.depth")
	tx, err := namedQueries.CreateQueryWithOrderBy(s.db, query.DialectPostgres, queryResourceAncestry, pc, resourceID)
	if err != nil {
		return nil, err
	}

	var parents []model.Resource
	if err := tx.Scan(&parents).Error; err != nil {
		return nil, err
	}
	if len(parents) == 0 {
		return parents, nil
	}

	ids := make([]int, len(parents))
	for i, p := range parents {
		ids[i] = p.ID
	}
	var types []model.ResourceType
	if err := s.db.Raw(`
		SELECT rt.* FROM rhq_resource_type rt
		WHERE rt.id IN (SELECT r.resource_type_id FROM rhq_resource r WHERE r.id IN ?)`, ids).Scan(&types).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]*model.ResourceType, len(types))
	for i := range types {
		byID[types[i].ID] = &types[i]
	}
	for i := range parents {
		parents[i].ResourceType = byID[parents[i].ResourceTypeID]
	}
	return parents, nil
}

// AmpsVersion returns the AMPS version of the plugin defining the resource's type
func (s *ResourcesStore) AmpsVersion(resourceID int) (string, error) {
	tx, err := namedQueries.CreateQueryWithOrderBy(s.db, query.DialectPostgres, queryResourcePluginVersion, nil, resourceID)
	if err != nil {
		return "", err
	}
	var versions []string
	if err := tx.Scan(&versions).Error; err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", store.ErrNotFound
	}
	return versions[0], nil
}
