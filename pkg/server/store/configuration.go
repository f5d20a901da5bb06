package store

import (
	"context"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

// ConfigurationStore abstracts configuration storage operations
type ConfigurationStore interface {
	// ResourceType returns the type of a resource
	ResourceType(resourceID int) (*model.ResourceType, error)

	// LatestConfiguration returns the configuration of the newest successful
	// update of a resource
	LatestConfiguration(resourceID int) (*model.Configuration, error)

	// HasUpdateInProgress checks if a resource has an INPROGRESS update
	HasUpdateInProgress(resourceID int) (bool, error)

	// CreateUpdate stores u and its configuration, assigning their ids
	CreateUpdate(u *model.ResourceConfigurationUpdate) error

	// CompleteUpdate records the outcome of an update. A non-nil
	// configuration replaces the stored one.
	CompleteUpdate(updateID int, status model.UpdateStatus, message string, c *model.Configuration) (*model.ResourceConfigurationUpdate, error)

	// SearchUpdates returns the page of updates matching c on resources the
	// subject may view
	SearchUpdates(ctx context.Context, c *criteria.ResourceConfigurationUpdateCriteria, subjectID int) (*paging.PageList[model.ResourceConfigurationUpdate], error)

	// CreateGroupUpdate stores a group update, assigning its id
	CreateGroupUpdate(u *model.GroupConfigurationUpdate) error

	// GroupUpdate retrieves a single group update
	GroupUpdate(groupUpdateID int) (*model.GroupConfigurationUpdate, error)

	// GroupMemberStatuses returns the status of every member update of a
	// group update
	GroupMemberStatuses(groupUpdateID int) ([]model.UpdateStatus, error)

	// CompleteGroupUpdate records the aggregate outcome of a group update
	CompleteGroupUpdate(groupUpdateID int, status model.UpdateStatus, message string) error
}
