package store

// HealthStore provides health check operations
type HealthStore interface {
	// CheckConnectivity verifies database connectivity
	CheckConnectivity() error

	// SchemaVersion returns the applied migration version and whether the
	// last migration failed halfway
	SchemaVersion() (version uint, dirty bool, err error)
}
