package plugincontainer

import (
	"context"

	"github.com/rhq-project/rhq-in-go/pkg/configmgmt"
	"github.com/rhq-project/rhq-in-go/pkg/model"
)

// Agent is the in-process agent the server dispatches configuration work to.
type Agent struct {
	strategies *configmgmt.Factory
	merge      *configmgmt.MergeService
	executor   *UpdateExecutor
}

// NewAgent combines the configuration services of a container.
func NewAgent(strategies *configmgmt.Factory, merge *configmgmt.MergeService, executor *UpdateExecutor) *Agent {
	return &Agent{strategies: strategies, merge: merge, executor: executor}
}

func (a *Agent) LoadConfiguration(ctx context.Context, resourceID int) (*model.Configuration, error) {
	s, err := a.strategies.For(resourceID)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, resourceID)
}

func (a *Agent) ValidateConfiguration(ctx context.Context, resourceID int, c *model.Configuration, structured bool) error {
	return a.merge.Validate(ctx, c, resourceID, structured)
}

func (a *Agent) MergeConfiguration(ctx context.Context, resourceID int, c *model.Configuration, fromStructured bool) error {
	return a.merge.Merge(ctx, c, resourceID, fromStructured)
}

// UpdateConfiguration queues req. The outcome is reported to the executor's
// response handler.
func (a *Agent) UpdateConfiguration(ctx context.Context, req model.ConfigurationUpdateRequest) error {
	return a.executor.Submit(ctx, req)
}
