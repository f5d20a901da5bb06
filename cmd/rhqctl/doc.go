// Command rhqctl runs the RHQ server and its administration tasks.
//
// The server keeps an inventory of managed resources, and the configuration
// history of each of them, in PostgreSQL. Configuration changes requested
// through the REST API are applied by the in-process plugin container and
// their outcome is recorded as a configuration update.
//
// # Quick Start
//
//	# Create and upgrade the schema
//	rhqctl db migrate
//
//	# Start the server
//	rhqctl server
//
//	# Issue a bearer token for the seeded administrator
//	rhqctl token issue rhqadmin
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - RHQ_CONFIG_PATH: directory holding rhq.yml (default /etc/rhq)
//   - RHQ_JWT_SECRET: secret signing bearer tokens
//   - RHQ_LOG_LEVEL: log level (debug, info, warn, error)
//   - RHQ_PORT: server port (default 7080)
package main
