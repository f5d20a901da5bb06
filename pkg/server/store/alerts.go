package store

import (
	"context"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

// AlertsStore abstracts alert definition storage operations
type AlertsStore interface {
	// SearchAlertDefinitions returns the page of definitions matching c on
	// resources the subject may view
	SearchAlertDefinitions(ctx context.Context, c *criteria.AlertDefinitionCriteria, subjectID int) (*paging.PageList[model.AlertDefinition], error)
}

// StorageNodesStore abstracts storage node storage operations
type StorageNodesStore interface {
	// SearchStorageNodes returns the page of storage nodes matching c
	SearchStorageNodes(ctx context.Context, c *criteria.StorageNodeCriteria) (*paging.PageList[model.StorageNode], error)
}
