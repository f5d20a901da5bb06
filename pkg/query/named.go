package query

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"gorm.io/gorm"
)

// ErrUnknownNamedQuery is returned for names never registered.
var ErrUnknownNamedQuery = errors.New("unknown named query")

// NamedQueries holds SQL statements registered under stable names.
type NamedQueries struct {
	mu      sync.RWMutex
	queries map[string]string
}

func NewNamedQueries() *NamedQueries {
	return &NamedQueries{queries: map[string]string{}}
}

// Register adds a statement. Names can only be registered once.
func (n *NamedQueries) Register(name, sql string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.queries[name]; ok {
		return fmt.Errorf("%w: named query %q already registered", ErrIllegalArgument, name)
	}
	n.queries[name] = sql
	return nil
}

// MustRegister is Register for package initialisation.
func (n *NamedQueries) MustRegister(name, sql string) {
	if err := n.Register(name, sql); err != nil {
		panic(err)
	}
}

// Get returns the statement registered under name.
func (n *NamedQueries) Get(name string) (string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	q, ok := n.queries[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNamedQuery, name)
	}
	return q, nil
}

// Names lists the registered names in order.
func (n *NamedQueries) Names() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, 0, len(n.queries))
	for name := range n.queries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CreateQueryWithOrderBy prepares the named statement sorted and paged by pc.
func (n *NamedQueries) CreateQueryWithOrderBy(db *gorm.DB, dialect Dialect, name string, pc *paging.PageControl, args ...interface{}) (*gorm.DB, error) {
	q, err := n.Get(name)
	if err != nil {
		return nil, err
	}
	if pc != nil {
		q = SetDataPage(dialect, WithOrderBy(q, pc), pc)
	}
	return db.Raw(q, args...), nil
}

// CreateCountQuery prepares a COUNT(*) over the named statement.
func (n *NamedQueries) CreateCountQuery(db *gorm.DB, name string, args ...interface{}) (*gorm.DB, error) {
	q, err := n.Get(name)
	if err != nil {
		return nil, err
	}
	count, err := CountQuery(q, "*")
	if err != nil {
		return nil, err
	}
	return db.Raw(count, args...), nil
}
