package store

import (
	"context"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

// ResourcesStore abstracts inventory storage operations
type ResourcesStore interface {
	// SearchResources returns the page of resources matching c that the
	// subject may view. Inventory managers see every resource.
	SearchResources(ctx context.Context, c *criteria.ResourceCriteria, subjectID int) (*paging.PageList[model.Resource], error)

	// FetchResource retrieves a single resource with its type
	FetchResource(resourceID int) (*model.Resource, error)

	// Ancestry returns the parents of a resource with their types, nearest
	// parent first
	Ancestry(resourceID int) ([]model.Resource, error)

	// AmpsVersion returns the AMPS version of the plugin defining the
	// resource's type
	AmpsVersion(resourceID int) (string, error)
}
