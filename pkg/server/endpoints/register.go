package endpoints

import "github.com/rhq-project/rhq-in-go/pkg/server"

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthenticateEndpoint(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterConfigurationEndpoints(srv)
	RegisterResourcesEndpoints(srv)
	RegisterGroupsEndpoints(srv)
	RegisterSubjectsEndpoints(srv)
	RegisterAlertsEndpoints(srv)
	RegisterStatusEndpoints(srv)

	RegisterStaticFiles(srv)
}
