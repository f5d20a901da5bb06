package criteria

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

//go:generate go run github.com/dmarkham/enumer -type NonBinding -trimprefix NonBinding -transform upper -output non_binding.gen.go
//go:generate go run github.com/dmarkham/enumer -type Restriction -trimprefix Restriction -transform snake-upper -output restriction.gen.go

// ErrArgumentMismatch is returned when an expression's placeholders and
// arguments do not pair up.
var ErrArgumentMismatch = errors.New("placeholder and argument count mismatch")

// NonBinding is the value of a filter whose override binds no parameter.
// NonBindingOn includes the override as written, NonBindingOff drops it.
type NonBinding int

const (
	NonBindingOn NonBinding = iota
	NonBindingOff
)

// Restriction limits which of the data and count queries a runner executes.
type Restriction int

const (
	RestrictionNone Restriction = iota
	// RestrictionCountOnly skips the data query.
	RestrictionCountOnly
	// RestrictionCollectionOnly skips the count query.
	RestrictionCollectionOnly
)

// Filter is one filter field and the value it is matched against.
type Filter struct {
	Field string
	Value interface{}
}

// Expression is an ad-hoc condition with positional ? placeholders.
type Expression struct {
	SQL  string
	Args []interface{}
}

// Criteria is the entity independent part of a search.
type Criteria struct {
	// CaseSensitive disables lower-casing of LIKE comparisons.
	CaseSensitive bool
	// Strict matches strings exactly instead of as substrings.
	Strict bool
	// FiltersOptional joins filters with OR instead of AND.
	FiltersOptional bool
	// CustomizedSorting passes sort fields through verbatim, without the
	// entity alias or ordering joins.
	CustomizedSorting bool
	// Restriction selects the queries a runner executes.
	Restriction Restriction

	entity              string
	filters             []Filter
	fetches             []string
	sorts               []paging.OrderingField
	pageNumber          *int
	pageSize            *int
	pageControl         *paging.PageControl
	supportsAddSortID   bool
	requiredPermissions []model.Permission
	filterOverrides     map[string]string
	sortOverrides       map[string]string
	expressions         []Expression
}

// New returns an empty criteria over entity.
func New(entity string) *Criteria {
	return &Criteria{
		entity:            entity,
		supportsAddSortID: true,
		filterOverrides:   map[string]string{},
		sortOverrides:     map[string]string{},
	}
}

// Entity names the searched entity.
func (c *Criteria) Entity() string {
	return c.entity
}

// SetFilter sets the value of a filter field. A nil value clears it.
func (c *Criteria) SetFilter(field string, value interface{}) {
	for i, f := range c.filters {
		if f.Field == field {
			if value == nil {
				c.filters = append(c.filters[:i], c.filters[i+1:]...)
			} else {
				c.filters[i].Value = value
			}
			return
		}
	}
	if value != nil {
		c.filters = append(c.filters, Filter{Field: field, Value: value})
	}
}

// Filters returns the set filters in the order they were first set.
func (c *Criteria) Filters() []Filter {
	out := make([]Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

// FilterValue returns the value set for field.
func (c *Criteria) FilterValue(field string) (interface{}, bool) {
	for _, f := range c.filters {
		if f.Field == field {
			return f.Value, true
		}
	}
	return nil, false
}

// SetFetch toggles loading of a relation.
func (c *Criteria) SetFetch(relation string, fetch bool) {
	for i, f := range c.fetches {
		if f == relation {
			if !fetch {
				c.fetches = append(c.fetches[:i], c.fetches[i+1:]...)
			}
			return
		}
	}
	if fetch {
		c.fetches = append(c.fetches, relation)
	}
}

// Fetches returns the relations to load.
func (c *Criteria) Fetches() []string {
	return append([]string(nil), c.fetches...)
}

// SetSort adds field to the sort, or changes its direction if present.
func (c *Criteria) SetSort(field string, ordering paging.Ordering) {
	for i, s := range c.sorts {
		if s.Field == field {
			c.sorts[i].Ordering = ordering
			return
		}
	}
	c.sorts = append(c.sorts, paging.OrderingField{Field: field, Ordering: ordering})
}

// Sorts returns the sort fields in the order they were added.
func (c *Criteria) Sorts() []paging.OrderingField {
	return append([]paging.OrderingField(nil), c.sorts...)
}

// SetPaging requests a single page. A negative size means unlimited.
func (c *Criteria) SetPaging(pageNumber, pageSize int) {
	c.pageNumber = &pageNumber
	c.pageSize = &pageSize
}

// ClearPaging removes any page request.
func (c *Criteria) ClearPaging() {
	c.pageNumber = nil
	c.pageSize = nil
	c.pageControl = nil
}

// SetPageControl overrides the paging and sort set on the criteria.
func (c *Criteria) SetPageControl(pc *paging.PageControl) {
	c.pageControl = pc
}

// PageControlOverride returns the control set with SetPageControl.
func (c *Criteria) PageControlOverride() *paging.PageControl {
	return c.pageControl
}

// SetSupportsAddSortID controls whether limited pages are additionally
// sorted by id to keep page boundaries stable.
func (c *Criteria) SetSupportsAddSortID(supported bool) {
	c.supportsAddSortID = supported
}

// SupportsAddSortID reports whether id is appended to limited sorts.
func (c *Criteria) SupportsAddSortID() bool {
	return c.supportsAddSortID
}

// PageControl builds the effective paging for the criteria: the override
// when set, otherwise the requested page (unlimited when none) sorted by the
// criteria's sort fields. Limited pages get id as a final sort field when
// supported.
func (c *Criteria) PageControl() *paging.PageControl {
	var pc *paging.PageControl
	if c.pageControl != nil {
		pc = c.pageControl.Clone()
	} else {
		if c.pageNumber == nil || c.pageSize == nil {
			pc = paging.Unlimited()
		} else {
			pc = paging.New(*c.pageNumber, *c.pageSize)
			if *c.pageSize < 0 {
				pc.PageSize = paging.SizeUnlimited
			}
		}
		for _, s := range c.sorts {
			pc.AddDefaultOrderingField(s.Field, s.Ordering)
		}
	}

	if !pc.IsUnlimited() && c.supportsAddSortID {
		pc.AddDefaultOrderingField("id")
	}
	return pc
}

// AddRequiredPermissions narrows authorized searches to subjects holding
// every listed permission.
func (c *Criteria) AddRequiredPermissions(perms ...model.Permission) {
	for _, p := range perms {
		if !c.hasRequiredPermission(p) {
			c.requiredPermissions = append(c.requiredPermissions, p)
		}
	}
}

func (c *Criteria) hasRequiredPermission(p model.Permission) bool {
	for _, existing := range c.requiredPermissions {
		if existing == p {
			return true
		}
	}
	return false
}

// RequiredPermissions returns the permissions set with AddRequiredPermissions.
func (c *Criteria) RequiredPermissions() []model.Permission {
	return append([]model.Permission(nil), c.requiredPermissions...)
}

// OverrideFilter replaces the generated condition for field with sql. Each ?
// in sql binds the filter's value.
func (c *Criteria) OverrideFilter(field, sql string) {
	c.filterOverrides[field] = sql
}

// FilterOverride returns the override for field.
func (c *Criteria) FilterOverride(field string) (string, bool) {
	s, ok := c.filterOverrides[field]
	return s, ok
}

// OverrideSort replaces the expression sorted on for field.
func (c *Criteria) OverrideSort(field, expression string) {
	c.sortOverrides[field] = expression
}

// SortOverride returns the override for field.
func (c *Criteria) SortOverride(field string) (string, bool) {
	s, ok := c.sortOverrides[field]
	return s, ok
}

// AddExpression adds an ad-hoc condition ANDed with the filters. The number
// of ? placeholders in sql must match len(args).
func (c *Criteria) AddExpression(sql string, args ...interface{}) error {
	if strings.TrimSpace(sql) == "" {
		return fmt.Errorf("expression must not be empty")
	}
	if n := strings.Count(sql, "?"); n != len(args) {
		return fmt.Errorf("%w: %q has %d placeholders but %d arguments", ErrArgumentMismatch, sql, n, len(args))
	}
	c.expressions = append(c.expressions, Expression{SQL: sql, Args: append([]interface{}(nil), args...)})
	return nil
}

// Expressions returns the ad-hoc conditions.
func (c *Criteria) Expressions() []Expression {
	return append([]Expression(nil), c.expressions...)
}

func (c *Criteria) String() string {
	var parts []string
	for _, f := range c.filters {
		parts = append(parts, fmt.Sprintf("%s=%v", f.Field, f.Value))
	}
	return fmt.Sprintf("%sCriteria[filters=[%s], fetches=%v, sorts=%v, page=%s]",
		c.entity, strings.Join(parts, ", "), c.fetches, c.sorts, c.PageControl())
}
