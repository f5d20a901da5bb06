package criteria

import (
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

const EntityStorageNode = "StorageNode"

// StorageNodeCriteria searches the storage cluster members.
type StorageNodeCriteria struct {
	*Criteria
}

func NewStorageNodeCriteria() *StorageNodeCriteria {
	c := &StorageNodeCriteria{Criteria: New(EntityStorageNode)}
	c.OverrideFilter("operationModes", "operation_mode IN ?")
	return c
}

func (c *StorageNodeCriteria) AddFilterID(id int) {
	c.SetFilter("id", id)
}

func (c *StorageNodeCriteria) AddFilterAddress(address string) {
	c.SetFilter("address", address)
}

func (c *StorageNodeCriteria) AddFilterCQLPort(port int) {
	c.SetFilter("cqlPort", port)
}

func (c *StorageNodeCriteria) AddFilterOperationMode(mode model.OperationMode) {
	c.SetFilter("operationMode", mode)
}

func (c *StorageNodeCriteria) AddFilterOperationModes(modes ...model.OperationMode) {
	c.SetFilter("operationModes", modes)
}

func (c *StorageNodeCriteria) FetchResource(fetch bool) {
	c.SetFetch("resource", fetch)
}

func (c *StorageNodeCriteria) AddSortAddress(o paging.Ordering) {
	c.SetSort("address", o)
}

func (c *StorageNodeCriteria) AddSortOperationMode(o paging.Ordering) {
	c.SetSort("operationMode", o)
}

func (c *StorageNodeCriteria) AddSortCTime(o paging.Ordering) {
	c.SetSort("ctime", o)
}
