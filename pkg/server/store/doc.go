// Package store provides storage abstractions for the RHQ server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// Searches take a criteria object and return one page of results together
// with the size of the whole result set.
//
// # Available Stores
//
//   - ResourcesStore: inventory searches and resource ancestry
//   - GroupsStore: resource group searches and membership
//   - SubjectsStore: subject and role searches
//   - AuthzStore: permission checks
//   - AuthenticateStore: password logins against rhq_principal
//   - ConfigurationStore: configuration snapshots and update history
//   - AlertsStore, StorageNodesStore: alert definition and storage node searches
//   - HealthStore: database connectivity
//
// # Usage
//
//	resources := gorm.NewResourcesStore(db)
//	c := criteria.NewResourceCriteria()
//	c.AddFilterName("web")
//	page, err := resources.SearchResources(ctx, c, subjectID)
package store
