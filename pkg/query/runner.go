package query

import (
	"context"
	"fmt"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/logger"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultAttempts is how often the data and count queries are re-run when
// their results disagree.
const DefaultAttempts = 3

type identifiable interface {
	GetID() int
}

// Runner executes generated queries.
type Runner struct {
	DB       *gorm.DB
	Dialect  Dialect
	Attempts int
	Log      *zap.Logger
}

// NewRunner returns a postgres runner logging through the global logger.
func NewRunner(db *gorm.DB) *Runner {
	return &Runner{
		DB:       db,
		Dialect:  DialectPostgres,
		Attempts: DefaultAttempts,
		Log:      logger.Named("query"),
	}
}

// Execute runs the queries of g and returns the page it selects. Unlimited
// pages are counted from their rows. Otherwise the data and count queries
// are not run in one snapshot, so rows inserted or deleted between them can
// make the total disagree with the page. Execute retries and finally
// corrects the total to the closest value the page allows.
func Execute[T any](ctx context.Context, r *Runner, g *Generator) (*paging.PageList[T], error) {
	c := g.Criteria()
	pc := c.PageControl()
	log := r.logger().With(zap.String("criteria", c.Entity()))

	if c.Restriction == criteria.RestrictionCountOnly {
		total, err := r.count(ctx, g)
		if err != nil {
			return nil, err
		}
		return paging.NewPageList[T](nil, total, pc), nil
	}

	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var items []T
	var total int
	for attempt := 1; ; attempt++ {
		var err error
		if items, err = fetch[T](ctx, r, g, pc); err != nil {
			return nil, err
		}
		if c.Restriction == criteria.RestrictionCollectionOnly {
			if err := preload(ctx, r, g, items); err != nil {
				return nil, err
			}
			return paging.NewUnboundedPageList(items, pc), nil
		}
		if pc.IsUnlimited() {
			total = len(items)
			break
		}
		if total, err = r.count(ctx, g); err != nil {
			return nil, err
		}
		if paging.CountConsistent(pc, len(items), total) {
			break
		}
		if attempt >= attempts {
			corrected := paging.CorrectedCount(pc, len(items), total)
			log.Warn("result count inconsistent with page, correcting",
				zap.Int("rows", len(items)),
				zap.Int("count", total),
				zap.Int("corrected", corrected),
				zap.Stringer("page", pc))
			total = corrected
			break
		}
		log.Debug("phantom read, retrying", zap.Int("attempt", attempt))
	}

	if err := preload(ctx, r, g, items); err != nil {
		return nil, err
	}
	return paging.NewPageList(items, total, pc), nil
}

func (r *Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

func fetch[T any](ctx context.Context, r *Runner, g *Generator, pc *paging.PageControl) ([]T, error) {
	q, err := g.Build(false)
	if err != nil {
		return nil, err
	}
	sql := SetDataPage(r.Dialect, q.SQL, pc)
	if ce := r.logger().Check(zap.DebugLevel, "data query"); ce != nil {
		ce.Write(zap.String("sql", replaceParameters(sql, q.Args)))
	}

	var items []T
	if err := r.DB.WithContext(ctx).Raw(sql, q.Values()...).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("querying %s: %w", g.Entity().Name, err)
	}
	return items, nil
}

func (r *Runner) count(ctx context.Context, g *Generator) (int, error) {
	q, err := g.Build(true)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := r.DB.WithContext(ctx).Raw(q.SQL, q.Values()...).Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("counting %s: %w", g.Entity().Name, err)
	}
	return int(total), nil
}

// preload loads the fetched relations of items and replaces each item with
// its loaded copy, keeping the order of the page.
func preload[T any](ctx context.Context, r *Runner, g *Generator, items []T) error {
	preloads, err := g.Preloads()
	if err != nil || len(preloads) == 0 || len(items) == 0 {
		return err
	}

	ids := make([]int, 0, len(items))
	for _, item := range items {
		id, ok := any(item).(identifiable)
		if !ok {
			return fmt.Errorf("%w: %T cannot be fetched by id", ErrIllegalArgument, item)
		}
		ids = append(ids, id.GetID())
	}

	tx := r.DB.WithContext(ctx)
	for _, p := range preloads {
		tx = tx.Preload(p)
	}
	var loaded []T
	if err := tx.Where("id IN ?", ids).Find(&loaded).Error; err != nil {
		return fmt.Errorf("fetching %v of %s: %w", preloads, g.Entity().Name, err)
	}

	byID := make(map[int]T, len(loaded))
	for _, item := range loaded {
		byID[any(item).(identifiable).GetID()] = item
	}
	for i, id := range ids {
		if item, ok := byID[id]; ok {
			items[i] = item
		}
	}
	return nil
}
