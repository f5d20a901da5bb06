package store

import (
	"context"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

// SubjectsStore abstracts subject and role storage operations
type SubjectsStore interface {
	// SearchSubjects returns the page of subjects matching c
	SearchSubjects(ctx context.Context, c *criteria.SubjectCriteria) (*paging.PageList[model.Subject], error)

	// SearchRoles returns the page of roles matching c
	SearchRoles(ctx context.Context, c *criteria.RoleCriteria) (*paging.PageList[model.Role], error)

	// FetchSubject retrieves a single subject
	FetchSubject(subjectID int) (*model.Subject, error)

	// FetchSubjectByName retrieves a subject by login name
	FetchSubjectByName(name string) (*model.Subject, error)
}
