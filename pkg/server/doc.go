// Package server provides the HTTP server for the RHQ API.
//
// The Server struct holds the router, the database handle, the stores the
// endpoints read from and the configuration manager that drives updates.
//
//	srv := server.NewServer(db, config.Get())
//	srv.Configurations = manager
//	endpoints.RegisterAll(srv)
//	go srv.Start()
//	defer srv.Shutdown(ctx)
//
// Every route except /status, /health and /authenticate requires a bearer
// token issued by /authenticate or `rhqctl token issue`.
package server
