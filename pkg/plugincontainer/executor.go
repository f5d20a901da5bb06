package plugincontainer

import (
	"context"
	"errors"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/rhq-project/rhq-in-go/pkg/configmgmt"
	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/logger"
	"github.com/rhq-project/rhq-in-go/pkg/model"
)

// DefaultUpdateWorkers is the pool size used when none is configured.
const DefaultUpdateWorkers = 4

// ErrExecutorShutdown is returned by Submit after Shutdown.
var ErrExecutorShutdown = errors.New("update executor is shut down")

// ResponseHandler receives the outcome of every submitted update.
type ResponseHandler func(ctx context.Context, resp model.ConfigurationUpdateResponse)

// UpdateExecutor applies configuration update requests on a bounded pool.
type UpdateExecutor struct {
	strategies *configmgmt.Factory
	handler    ResponseHandler
	log        *zap.Logger

	mu     sync.Mutex
	pool   *pool.Pool
	closed bool
}

// NewUpdateExecutor runs at most workers updates at a time.
func NewUpdateExecutor(strategies *configmgmt.Factory, workers int, handler ResponseHandler) *UpdateExecutor {
	if workers <= 0 {
		workers = DefaultUpdateWorkers
	}
	return &UpdateExecutor{
		strategies: strategies,
		handler:    handler,
		log:        logger.Named("update-executor"),
		pool:       pool.New().WithMaxGoroutines(workers),
	}
}

// Submit queues req. It blocks while every worker is busy. The update
// outlives cancellation of ctx.
func (e *UpdateExecutor) Submit(ctx context.Context, req model.ConfigurationUpdateRequest) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrExecutorShutdown
	}

	ctx = context.WithoutCancel(ctx)
	e.pool.Go(func() {
		resp := e.apply(ctx, req)
		e.log.Info("configuration update finished",
			zap.Int("update", req.UpdateID),
			zap.Int("resource", req.ResourceID),
			zap.Stringer("status", resp.Status))
		if e.handler != nil {
			e.handler(ctx, resp)
		}
	})
	return nil
}

// Shutdown rejects new updates and waits for queued ones to finish.
func (e *UpdateExecutor) Shutdown() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()
	e.pool.Wait()
}

func (e *UpdateExecutor) apply(ctx context.Context, req model.ConfigurationUpdateRequest) model.ConfigurationUpdateResponse {
	resp := model.ConfigurationUpdateResponse{UpdateID: req.UpdateID}
	fail := func(err error) model.ConfigurationUpdateResponse {
		resp.Status = model.UpdateStatusFailure
		resp.ErrorMessage = err.Error()
		return resp
	}

	if req.Configuration == nil {
		return fail(configuration.ErrNullConfiguration)
	}
	strategy, err := e.strategies.For(req.ResourceID)
	if err != nil {
		return fail(err)
	}

	current, err := strategy.Load(ctx, req.ResourceID)
	if err != nil {
		e.log.Debug("could not load configuration before update", zap.Int("resource", req.ResourceID), zap.Error(err))
	} else if current.Equal(req.Configuration) {
		resp.Status = model.UpdateStatusNoChange
		resp.Configuration = current
		return resp
	}

	if err := strategy.Update(ctx, req.ResourceID, req.Configuration); err != nil {
		if errors.Is(err, configuration.ErrUpdateInProgress) {
			e.log.Warn("plugin left configuration update in progress", zap.Int("resource", req.ResourceID))
		}
		return fail(err)
	}
	resp.Status = model.UpdateStatusSuccess
	resp.Configuration = req.Configuration
	return resp
}
