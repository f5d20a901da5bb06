package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// Ensure SubjectsStore implements store.SubjectsStore
var _ store.SubjectsStore = (*SubjectsStore)(nil)

// SubjectsStore implements store.SubjectsStore using GORM
type SubjectsStore struct {
	db *gorm.DB
}

// NewSubjectsStore creates a new SubjectsStore
func NewSubjectsStore(db *gorm.DB) *SubjectsStore {
	return &SubjectsStore{db: db}
}

// SearchSubjects returns the page of subjects matching c
func (s *SubjectsStore) SearchSubjects(ctx context.Context, c *criteria.SubjectCriteria) (*paging.PageList[model.Subject], error) {
	return search[model.Subject](ctx, s.db, nil, c.Criteria, unscoped)
}

// SearchRoles returns the page of roles matching c
func (s *SubjectsStore) SearchRoles(ctx context.Context, c *criteria.RoleCriteria) (*paging.PageList[model.Role], error) {
	return search[model.Role](ctx, s.db, nil, c.Criteria, unscoped)
}

// FetchSubject retrieves a single subject
func (s *SubjectsStore) FetchSubject(subjectID int) (*model.Subject, error) {
	return s.first("id = ?", subjectID)
}

// FetchSubjectByName retrieves a subject by login name
func (s *SubjectsStore) FetchSubjectByName(name string) (*model.Subject, error) {
	return s.first("name = ?", name)
}

func (s *SubjectsStore) first(cond string, arg interface{}) (*model.Subject, error) {
	var subject model.Subject
	tx := s.db.Where(cond, arg).First(&subject)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &subject, nil
}
