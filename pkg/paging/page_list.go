package paging

// PageList is one page of results plus the size of the whole result set.
type PageList[T any] struct {
	Items       []T          `json:"items"`
	TotalSize   int          `json:"totalSize"`
	Unbounded   bool         `json:"unbounded"`
	PageControl *PageControl `json:"pageControl"`
}

// NewPageList wraps items fetched with pc. A nil pc is treated as unlimited.
func NewPageList[T any](items []T, totalSize int, pc *PageControl) *PageList[T] {
	if pc == nil {
		pc = Unlimited()
	}
	if items == nil {
		items = []T{}
	}
	return &PageList[T]{
		Items:       items,
		TotalSize:   totalSize,
		PageControl: pc,
	}
}

// NewUnboundedPageList is used when the total size is unknown.
func NewUnboundedPageList[T any](items []T, pc *PageControl) *PageList[T] {
	l := NewPageList(items, len(items), pc)
	l.Unbounded = true
	return l
}

// Len returns the number of rows on this page.
func (l *PageList[T]) Len() int {
	return len(l.Items)
}

// IsConsistent reports whether TotalSize agrees with the rows returned for
// the page.
func (l *PageList[T]) IsConsistent() bool {
	if l.Unbounded {
		return true
	}
	return CountConsistent(l.PageControl, len(l.Items), l.TotalSize)
}

// CountConsistent reports whether a page of rows fetched with pc could have
// come from a result set of count rows. It is the check the query runner
// applies to detect phantom reads between the data and the count query.
func CountConsistent(pc *PageControl, rows, count int) bool {
	if pc == nil || pc.IsUnlimited() {
		return rows == count
	}
	start := pc.StartRow()
	switch {
	case rows == 0:
		return count <= start
	case rows < pc.PageSize:
		return count == start+rows
	default:
		return count >= start+rows
	}
}

// CorrectedCount returns the total closest to count that agrees with rows.
func CorrectedCount(pc *PageControl, rows, count int) int {
	if CountConsistent(pc, rows, count) {
		return count
	}
	if pc == nil || pc.IsUnlimited() {
		return rows
	}
	return pc.StartRow() + rows
}
