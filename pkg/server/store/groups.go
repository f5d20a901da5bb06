package store

import (
	"context"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

// GroupsStore abstracts resource group storage operations
type GroupsStore interface {
	// SearchGroups returns the page of groups matching c visible to the subject
	SearchGroups(ctx context.Context, c *criteria.ResourceGroupCriteria, subjectID int) (*paging.PageList[model.ResourceGroup], error)

	// FetchGroup retrieves a single group
	FetchGroup(groupID int) (*model.ResourceGroup, error)

	// MemberIDs returns the ids of the implicit members of a group
	MemberIDs(groupID int) ([]int, error)
}
