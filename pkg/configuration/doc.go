// Package configuration drives resource configuration updates on the server:
// authorization, update records and dispatch to the agent owning the
// resource. It also defines the errors shared with the agent side.
package configuration
