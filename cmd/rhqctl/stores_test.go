package main

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

type mockResourcesStore struct {
	mock.Mock
}

func (m *mockResourcesStore) SearchResources(ctx context.Context, c *criteria.ResourceCriteria, subjectID int) (*paging.PageList[model.Resource], error) {
	args := m.Called(c, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.Resource]), args.Error(1)
}

func (m *mockResourcesStore) FetchResource(resourceID int) (*model.Resource, error) {
	args := m.Called(resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *mockResourcesStore) Ancestry(resourceID int) ([]model.Resource, error) {
	args := m.Called(resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resource), args.Error(1)
}

func (m *mockResourcesStore) AmpsVersion(resourceID int) (string, error) {
	args := m.Called(resourceID)
	return args.String(0), args.Error(1)
}

type mockSubjectsStore struct {
	mock.Mock
}

func (m *mockSubjectsStore) SearchSubjects(ctx context.Context, c *criteria.SubjectCriteria) (*paging.PageList[model.Subject], error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.Subject]), args.Error(1)
}

func (m *mockSubjectsStore) SearchRoles(ctx context.Context, c *criteria.RoleCriteria) (*paging.PageList[model.Role], error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.PageList[model.Role]), args.Error(1)
}

func (m *mockSubjectsStore) FetchSubject(subjectID int) (*model.Subject, error) {
	args := m.Called(subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *mockSubjectsStore) FetchSubjectByName(name string) (*model.Subject, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}
