// Package pluginapi is the contract between the plugin container and the
// plugins it hosts. A plugin component manages one resource and exposes its
// capabilities by implementing facet interfaces.
package pluginapi
