package endpoints

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

// MockResourcesStore implements store.ResourcesStore for testing using testify/mock
type MockResourcesStore struct {
	mock.Mock
}

func (m *MockResourcesStore) SearchResources(ctx context.Context, c *criteria.ResourceCriteria, subjectID int) (*paging.PageList[model.Resource], error) {
	args := m.Called(c, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.Resource]), args.Error(1)
}

func (m *MockResourcesStore) FetchResource(resourceID int) (*model.Resource, error) {
	args := m.Called(resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourcesStore) Ancestry(resourceID int) ([]model.Resource, error) {
	args := m.Called(resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resource), args.Error(1)
}

func (m *MockResourcesStore) AmpsVersion(resourceID int) (string, error) {
	args := m.Called(resourceID)
	return args.String(0), args.Error(1)
}

// MockGroupsStore implements store.GroupsStore for testing using testify/mock
type MockGroupsStore struct {
	mock.Mock
}

func (m *MockGroupsStore) SearchGroups(ctx context.Context, c *criteria.ResourceGroupCriteria, subjectID int) (*paging.PageList[model.ResourceGroup], error) {
	args := m.Called(c, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.ResourceGroup]), args.Error(1)
}

func (m *MockGroupsStore) FetchGroup(groupID int) (*model.ResourceGroup, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResourceGroup), args.Error(1)
}

func (m *MockGroupsStore) MemberIDs(groupID int) ([]int, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// MockSubjectsStore implements store.SubjectsStore for testing using testify/mock
type MockSubjectsStore struct {
	mock.Mock
}

func (m *MockSubjectsStore) SearchSubjects(ctx context.Context, c *criteria.SubjectCriteria) (*paging.PageList[model.Subject], error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.Subject]), args.Error(1)
}

func (m *MockSubjectsStore) SearchRoles(ctx context.Context, c *criteria.RoleCriteria) (*paging.PageList[model.Role], error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.Role]), args.Error(1)
}

func (m *MockSubjectsStore) FetchSubject(subjectID int) (*model.Subject, error) {
	args := m.Called(subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *MockSubjectsStore) FetchSubjectByName(name string) (*model.Subject, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

// MockAuthzStore implements store.AuthzStore for testing using testify/mock
type MockAuthzStore struct {
	mock.Mock
}

func (m *MockAuthzStore) HasGlobalPermission(subjectID int, permission model.Permission) bool {
	return m.Called(subjectID, permission).Bool(0)
}

func (m *MockAuthzStore) HasResourcePermission(subjectID int, permission model.Permission, resourceID int) bool {
	return m.Called(subjectID, permission, resourceID).Bool(0)
}

func (m *MockAuthzStore) HasGroupPermission(subjectID int, permission model.Permission, groupID int) bool {
	return m.Called(subjectID, permission, groupID).Bool(0)
}

func (m *MockAuthzStore) CanViewResource(subjectID, resourceID int) bool {
	return m.Called(subjectID, resourceID).Bool(0)
}

// MockAuthenticateStore implements store.AuthenticateStore for testing using testify/mock
type MockAuthenticateStore struct {
	mock.Mock
}

func (m *MockAuthenticateStore) Authenticate(name, password string) (*model.Subject, error) {
	args := m.Called(name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *MockAuthenticateStore) ChangePassword(name, password string) error {
	return m.Called(name, password).Error(0)
}

// MockAlertsStore implements store.AlertsStore for testing using testify/mock
type MockAlertsStore struct {
	mock.Mock
}

func (m *MockAlertsStore) SearchAlertDefinitions(ctx context.Context, c *criteria.AlertDefinitionCriteria, subjectID int) (*paging.PageList[model.AlertDefinition], error) {
	args := m.Called(c, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.AlertDefinition]), args.Error(1)
}

// MockStorageNodesStore implements store.StorageNodesStore for testing using testify/mock
type MockStorageNodesStore struct {
	mock.Mock
}

func (m *MockStorageNodesStore) SearchStorageNodes(ctx context.Context, c *criteria.StorageNodeCriteria) (*paging.PageList[model.StorageNode], error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.StorageNode]), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) CheckConnectivity() error {
	return m.Called().Error(0)
}

func (m *MockHealthStore) SchemaVersion() (uint, bool, error) {
	args := m.Called()
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

// MockConfigurationManager implements server.ConfigurationManager for testing
type MockConfigurationManager struct {
	mock.Mock
}

func (m *MockConfigurationManager) LatestConfiguration(subject *model.Subject, resourceID int) (*model.Configuration, error) {
	args := m.Called(subject.ID, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Configuration), args.Error(1)
}

func (m *MockConfigurationManager) LiveConfiguration(ctx context.Context, subject *model.Subject, resourceID int) (*model.Configuration, error) {
	args := m.Called(subject.ID, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Configuration), args.Error(1)
}

func (m *MockConfigurationManager) SearchUpdates(ctx context.Context, subject *model.Subject, c *criteria.ResourceConfigurationUpdateCriteria) (*paging.PageList[model.ResourceConfigurationUpdate], error) {
	args := m.Called(subject.ID, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.ResourceConfigurationUpdate]), args.Error(1)
}

func (m *MockConfigurationManager) UpdateStructuredConfiguration(ctx context.Context, subject *model.Subject, resourceID int, c *model.Configuration) (*model.ResourceConfigurationUpdate, error) {
	args := m.Called(subject.ID, resourceID, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResourceConfigurationUpdate), args.Error(1)
}

func (m *MockConfigurationManager) UpdateStructuredOrRawConfiguration(ctx context.Context, subject *model.Subject, resourceID int, c *model.Configuration, fromStructured bool) (*model.ResourceConfigurationUpdate, error) {
	args := m.Called(subject.ID, resourceID, c, fromStructured)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResourceConfigurationUpdate), args.Error(1)
}

func (m *MockConfigurationManager) TranslateConfiguration(ctx context.Context, subject *model.Subject, resourceID int, c *model.Configuration, fromStructured bool) (*model.Configuration, error) {
	args := m.Called(subject.ID, resourceID, c, fromStructured)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Configuration), args.Error(1)
}

func (m *MockConfigurationManager) UpdateGroupConfiguration(ctx context.Context, subject *model.Subject, groupID int, c *model.Configuration, fromStructured bool) (*model.GroupConfigurationUpdate, error) {
	args := m.Called(subject.ID, groupID, c, fromStructured)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupConfigurationUpdate), args.Error(1)
}
