// Package config provides configuration management for the RHQ server.
//
// Values come from defaults, then the YAML file, then the environment.
// Each attribute remembers which of these it came from.
//
// # Configuration Sources
//
//   - $RHQ_CONFIG_PATH/rhq.yml (default /etc/rhq/rhq.yml)
//   - Environment variables, which take precedence
//
// # Key Configuration Options
//
//   - DATABASE_URL: Database connection
//   - RHQ_JWT_SECRET: Bearer token signing key
//   - RHQ_PORT, RHQ_BIND_ADDRESS: Listener
//   - RHQ_LOG_LEVEL: Logging verbosity
//   - RHQ_UPDATE_WORKERS, RHQ_FACET_LOCK_TIMEOUT: Agent side tuning
package config
