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

// Ensure GroupsStore implements store.GroupsStore
var _ store.GroupsStore = (*GroupsStore)(nil)

// GroupsStore implements store.GroupsStore using GORM
type GroupsStore struct {
	db    *gorm.DB
	authz *AuthzStore
}

// NewGroupsStore creates a new GroupsStore
func NewGroupsStore(db *gorm.DB) *GroupsStore {
	return &GroupsStore{db: db, authz: NewAuthzStore(db)}
}

// SearchGroups returns the page of groups matching c visible to the subject
func (s *GroupsStore) SearchGroups(ctx context.Context, c *criteria.ResourceGroupCriteria, subjectID int) (*paging.PageList[model.ResourceGroup], error) {
	sc := &scope{tokenType: query.AuthorizationTokenTypeGroup, subjectID: subjectID}
	return search[model.ResourceGroup](ctx, s.db, s.authz, c.Criteria, sc)
}

// FetchGroup retrieves a single group
func (s *GroupsStore) FetchGroup(groupID int) (*model.ResourceGroup, error) {
	var g model.ResourceGroup
	tx := s.db.First(&g, groupID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &g, nil
}

// MemberIDs returns the ids of the implicit members of a group
func (s *GroupsStore) MemberIDs(groupID int) ([]int, error) {
	pc := paging.Unlimited()
	pc.AddDefaultOrderingField("m.resource_id")
	tx, err := namedQueries.CreateQueryWithOrderBy(s.db, query.DialectPostgres, queryGroupMembers, pc, groupID)
	if err != nil {
		return nil, err
	}
	var ids []int
	if err := tx.Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
