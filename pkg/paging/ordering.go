package paging

//go:generate go run github.com/dmarkham/enumer -type Ordering -trimprefix Ordering -transform upper -json -yaml -output ordering.gen.go

// Ordering is the direction of a sort.
type Ordering int

const (
	OrderingASC Ordering = iota
	OrderingDESC
)

// Reverse returns the opposite direction.
func (o Ordering) Reverse() Ordering {
	if o == OrderingASC {
		return OrderingDESC
	}
	return OrderingASC
}
