// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// Criteria searches are compiled by pkg/query and executed with its runner.
// Fixed statements are kept in a named query registry.
package gorm
