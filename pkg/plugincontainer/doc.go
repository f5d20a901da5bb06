// Package plugincontainer hosts plugin components on the agent. It maps
// resources to their components, serializes facet calls with per-resource
// read/write locks, runs configuration updates on a bounded worker pool and
// watches raw configuration files for drift.
package plugincontainer
