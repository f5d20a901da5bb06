// Package paging describes which slice of a result set a query should return
// and how it is sorted.
//
// A PageControl carries a page number (or an explicit first record), a page
// size and an ordered list of OrderingField values. A page size of
// SizeUnlimited (-1) returns every row. Callers that add default sort fields
// go through AddDefaultOrderingField, which ignores duplicates and keeps at
// most MaxDefaultOrderingFields entries.
//
// # Usage
//
//	pc := paging.New(0, 20)
//	pc.AddDefaultOrderingField("name", paging.OrderingASC)
//	pc.AddDefaultOrderingField("id")
//
//	list := paging.NewPageList(rows, total, pc)
//	if !list.IsConsistent() {
//	    // the count query raced a concurrent insert or delete
//	}
package paging
