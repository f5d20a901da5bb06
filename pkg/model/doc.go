// Package model defines the database models of the RHQ inventory.
//
// The models are GORM structs mapped onto the rhq_* tables created by the
// migrations under db/migrations.
//
// # Inventory
//
//   - Plugin: agent plugin, carries the AMPS version that selects the
//     configuration management strategy
//   - ResourceType: kind of resource, declares its ConfigFormat
//   - Agent: process hosting the plugin container
//   - Resource: node of the inventory tree
//   - ResourceGroup: explicit/implicit resource sets, optionally recursive,
//     clustered or private to a subject
//
// # Authorization
//
//   - Subject: a user
//   - Role: grants a set of Permission values over resource groups
//   - RolePermission: one granted permission
//
// # Configuration
//
//   - Configuration: structured Properties plus RawConfiguration files
//   - ResourceConfigurationUpdate / GroupConfigurationUpdate: update history
//   - ConfigurationUpdateRequest / ConfigurationUpdateResponse: the
//     messages exchanged with the plugin container
//
// # Other
//
//   - AlertDefinition
//   - StorageNode
//
// Enumerations are generated with enumer and persist as their string names.
package model
