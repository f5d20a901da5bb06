package configuration

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

// mockConfigurationStore implements store.ConfigurationStore using testify/mock
type mockConfigurationStore struct {
	mock.Mock
}

func (m *mockConfigurationStore) ResourceType(resourceID int) (*model.ResourceType, error) {
	args := m.Called(resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResourceType), args.Error(1)
}

func (m *mockConfigurationStore) LatestConfiguration(resourceID int) (*model.Configuration, error) {
	args := m.Called(resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Configuration), args.Error(1)
}

func (m *mockConfigurationStore) HasUpdateInProgress(resourceID int) (bool, error) {
	args := m.Called(resourceID)
	return args.Bool(0), args.Error(1)
}

func (m *mockConfigurationStore) CreateUpdate(u *model.ResourceConfigurationUpdate) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *mockConfigurationStore) CompleteUpdate(updateID int, status model.UpdateStatus, message string, c *model.Configuration) (*model.ResourceConfigurationUpdate, error) {
	args := m.Called(updateID, status, message, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResourceConfigurationUpdate), args.Error(1)
}

func (m *mockConfigurationStore) SearchUpdates(ctx context.Context, c *criteria.ResourceConfigurationUpdateCriteria, subjectID int) (*paging.PageList[model.ResourceConfigurationUpdate], error) {
	args := m.Called(c, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.ResourceConfigurationUpdate]), args.Error(1)
}

func (m *mockConfigurationStore) CreateGroupUpdate(u *model.GroupConfigurationUpdate) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *mockConfigurationStore) GroupUpdate(groupUpdateID int) (*model.GroupConfigurationUpdate, error) {
	args := m.Called(groupUpdateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupConfigurationUpdate), args.Error(1)
}

func (m *mockConfigurationStore) GroupMemberStatuses(groupUpdateID int) ([]model.UpdateStatus, error) {
	args := m.Called(groupUpdateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UpdateStatus), args.Error(1)
}

func (m *mockConfigurationStore) CompleteGroupUpdate(groupUpdateID int, status model.UpdateStatus, message string) error {
	args := m.Called(groupUpdateID, status, message)
	return args.Error(0)
}

// mockAuthzStore implements store.AuthzStore
type mockAuthzStore struct {
	mock.Mock
}

func (m *mockAuthzStore) HasGlobalPermission(subjectID int, permission model.Permission) bool {
	args := m.Called(subjectID, permission)
	return args.Bool(0)
}

func (m *mockAuthzStore) HasResourcePermission(subjectID int, permission model.Permission, resourceID int) bool {
	args := m.Called(subjectID, permission, resourceID)
	return args.Bool(0)
}

func (m *mockAuthzStore) HasGroupPermission(subjectID int, permission model.Permission, groupID int) bool {
	args := m.Called(subjectID, permission, groupID)
	return args.Bool(0)
}

func (m *mockAuthzStore) CanViewResource(subjectID, resourceID int) bool {
	args := m.Called(subjectID, resourceID)
	return args.Bool(0)
}

// mockGroupsStore implements the part of store.GroupsStore the manager uses
type mockGroupsStore struct {
	mock.Mock
}

func (m *mockGroupsStore) SearchGroups(ctx context.Context, c *criteria.ResourceGroupCriteria, subjectID int) (*paging.PageList[model.ResourceGroup], error) {
	args := m.Called(c, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.ResourceGroup]), args.Error(1)
}

func (m *mockGroupsStore) FetchGroup(groupID int) (*model.ResourceGroup, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResourceGroup), args.Error(1)
}

func (m *mockGroupsStore) MemberIDs(groupID int) ([]int, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// mockAgent implements Agent
type mockAgent struct {
	mock.Mock
}

func (m *mockAgent) LoadConfiguration(ctx context.Context, resourceID int) (*model.Configuration, error) {
	args := m.Called(resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Configuration), args.Error(1)
}

func (m *mockAgent) ValidateConfiguration(ctx context.Context, resourceID int, c *model.Configuration, structured bool) error {
	args := m.Called(resourceID, c, structured)
	return args.Error(0)
}

func (m *mockAgent) MergeConfiguration(ctx context.Context, resourceID int, c *model.Configuration, fromStructured bool) error {
	args := m.Called(resourceID, c, fromStructured)
	return args.Error(0)
}

func (m *mockAgent) UpdateConfiguration(ctx context.Context, req model.ConfigurationUpdateRequest) error {
	args := m.Called(req)
	return args.Error(0)
}
