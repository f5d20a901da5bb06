package paging

import (
	"fmt"
	"strings"
)

const (
	// SizeUnlimited is the page size that disables paging.
	SizeUnlimited = -1
	// DefaultPageSize is used when a caller asks for a page without a size.
	DefaultPageSize = 15
	// MaxDefaultOrderingFields caps the sort fields AddDefaultOrderingField keeps.
	MaxDefaultOrderingFields = 3

	noFirstRecord = -1
)

// OrderingField is one component of an ORDER BY clause.
type OrderingField struct {
	Field    string   `json:"field" yaml:"field"`
	Ordering Ordering `json:"ordering" yaml:"ordering"`
}

func (f OrderingField) String() string {
	return f.Field + " " + f.Ordering.String()
}

// PageControl selects a window of a result set and its sort order.
type PageControl struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`

	firstRecord    int
	orderingFields []OrderingField
}

// New returns a PageControl for the given zero-based page.
func New(pageNumber, pageSize int, fields ...OrderingField) *PageControl {
	return &PageControl{
		PageNumber:     pageNumber,
		PageSize:       pageSize,
		firstRecord:    noFirstRecord,
		orderingFields: append([]OrderingField(nil), fields...),
	}
}

// Unlimited returns a PageControl that returns every row.
func Unlimited(fields ...OrderingField) *PageControl {
	return New(0, SizeUnlimited, fields...)
}

// Single returns a PageControl for the first row only.
func Single() *PageControl {
	return New(0, 1)
}

// AtOffset returns a PageControl that starts at an explicit record instead of
// a page boundary.
func AtOffset(firstRecord, pageSize int, fields ...OrderingField) *PageControl {
	pc := New(0, pageSize, fields...)
	pc.firstRecord = firstRecord
	return pc
}

// IsUnlimited reports whether paging is disabled.
func (pc *PageControl) IsUnlimited() bool {
	return pc.PageSize == SizeUnlimited
}

// FirstRecord returns the explicit start offset, or -1 when the page number
// decides where the page starts.
func (pc *PageControl) FirstRecord() int {
	return pc.firstRecord
}

// SetFirstRecord pins the page to an explicit offset.
func (pc *PageControl) SetFirstRecord(firstRecord int) {
	pc.firstRecord = firstRecord
}

// StartRow is the zero-based index of the first row of the page.
func (pc *PageControl) StartRow() int {
	if pc.firstRecord >= 0 {
		return pc.firstRecord
	}
	if pc.IsUnlimited() {
		return 0
	}
	return pc.PageNumber * pc.PageSize
}

// OrderingFields returns a copy of the sort fields, primary first.
func (pc *PageControl) OrderingFields() []OrderingField {
	out := make([]OrderingField, len(pc.orderingFields))
	copy(out, pc.orderingFields)
	return out
}

// PrimarySortColumn returns the first sort field, or "" when unsorted.
func (pc *PageControl) PrimarySortColumn() string {
	if len(pc.orderingFields) == 0 {
		return ""
	}
	return pc.orderingFields[0].Field
}

// PrimarySortOrder returns the direction of the first sort field.
func (pc *PageControl) PrimarySortOrder() Ordering {
	if len(pc.orderingFields) == 0 {
		return OrderingASC
	}
	return pc.orderingFields[0].Ordering
}

// HasOrderingField reports whether field already takes part in the sort.
func (pc *PageControl) HasOrderingField(field string) bool {
	for _, f := range pc.orderingFields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// InitDefaultOrderingField sets the sort only when none has been chosen yet.
func (pc *PageControl) InitDefaultOrderingField(field string, ordering ...Ordering) {
	if len(pc.orderingFields) > 0 {
		return
	}
	pc.AddDefaultOrderingField(field, ordering...)
}

// AddDefaultOrderingField appends a sort field unless it is already present
// or MaxDefaultOrderingFields fields are set. Ordering defaults to ascending.
func (pc *PageControl) AddDefaultOrderingField(field string, ordering ...Ordering) {
	if pc.HasOrderingField(field) || len(pc.orderingFields) >= MaxDefaultOrderingFields {
		return
	}
	o := OrderingASC
	if len(ordering) > 0 {
		o = ordering[0]
	}
	pc.orderingFields = append(pc.orderingFields, OrderingField{Field: field, Ordering: o})
}

// SortBy makes field the primary sort. Sorting again by the current primary
// field flips its direction.
func (pc *PageControl) SortBy(field string) {
	if len(pc.orderingFields) > 0 && pc.orderingFields[0].Field == field {
		pc.orderingFields[0].Ordering = pc.orderingFields[0].Ordering.Reverse()
		return
	}

	ordering := OrderingASC
	rest := make([]OrderingField, 0, len(pc.orderingFields))
	for _, f := range pc.orderingFields {
		if f.Field == field {
			ordering = f.Ordering
			continue
		}
		rest = append(rest, f)
	}
	pc.orderingFields = append([]OrderingField{{Field: field, Ordering: ordering}}, rest...)
}

// SetOrderingFields replaces the sort fields without applying the default cap.
func (pc *PageControl) SetOrderingFields(fields ...OrderingField) {
	pc.orderingFields = append([]OrderingField(nil), fields...)
}

// TruncateOrderingFields drops every sort field after the first max.
func (pc *PageControl) TruncateOrderingFields(max int) {
	if max >= 0 && len(pc.orderingFields) > max {
		pc.orderingFields = pc.orderingFields[:max]
	}
}

// Reset returns to the first page and clears the sort.
func (pc *PageControl) Reset() {
	pc.PageNumber = 0
	pc.firstRecord = noFirstRecord
	pc.orderingFields = nil
}

// Validate rejects windows no query can serve.
func (pc *PageControl) Validate() error {
	if pc.PageNumber < 0 {
		return fmt.Errorf("page number must not be negative: %d", pc.PageNumber)
	}
	if pc.PageSize == 0 || pc.PageSize < SizeUnlimited {
		return fmt.Errorf("page size must be positive or %d: %d", SizeUnlimited, pc.PageSize)
	}
	if pc.firstRecord < noFirstRecord {
		return fmt.Errorf("first record must not be negative: %d", pc.firstRecord)
	}
	return nil
}

func (pc *PageControl) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PageControl[page=%d, size=%d", pc.PageNumber, pc.PageSize)
	if pc.firstRecord >= 0 {
		fmt.Fprintf(&sb, ", firstRecord=%d", pc.firstRecord)
	}
	if len(pc.orderingFields) > 0 {
		parts := make([]string, len(pc.orderingFields))
		for i, f := range pc.orderingFields {
			parts[i] = f.String()
		}
		fmt.Fprintf(&sb, ", sort=%s", strings.Join(parts, ", "))
	}
	sb.WriteString("]")
	return sb.String()
}

// Clone returns an independent copy.
func (pc *PageControl) Clone() *PageControl {
	c := *pc
	c.orderingFields = pc.OrderingFields()
	return &c
}
