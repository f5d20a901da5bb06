package endpoints

import (
	"net/http"
	"strings"

	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/server"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

var alertSorts = map[string]string{
	"name":     "name",
	"priority": "priority",
	"ctime":    "ctime",
	"resource": "resourceName",
}

var storageNodeSorts = map[string]string{
	"address":       "address",
	"operationMode": "operationMode",
	"ctime":         "ctime",
}

// RegisterAlertsEndpoints registers the alert definition and storage node
// API endpoints
func RegisterAlertsEndpoints(s *server.Server) {
	alerts := s.Router.PathPrefix("/alert-definitions").Subrouter()
	alerts.Use(s.JWTMiddleware.Middleware)
	alerts.HandleFunc("", handleSearchAlertDefinitions(s.AlertsStore, s.Config)).Methods("GET")

	nodes := s.Router.PathPrefix("/storage-nodes").Subrouter()
	nodes.Use(s.JWTMiddleware.Middleware)
	nodes.HandleFunc("", handleSearchStorageNodes(s.StorageNodesStore, s.AuthzStore, s.Config)).Methods("GET")
}

func handleSearchAlertDefinitions(alerts store.AlertsStore, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		c := criteria.NewAlertDefinitionCriteria()
		if v := q.Get("name"); v != "" {
			c.AddFilterName(v)
		}
		if v := q.Get("priority"); v != "" {
			p, err := model.AlertPriorityString(strings.ToUpper(v))
			if err != nil {
				respondWithStoreError(w, badRequest("invalid priority %q", v))
				return
			}
			c.AddFilterPriority(p)
		}
		if q.Get("enabled") != "" {
			enabled, err := queryBool(q, "enabled")
			if err != nil {
				respondWithStoreError(w, err)
				return
			}
			c.AddFilterEnabled(enabled)
		}
		resourceID, ok, err := queryInt(q, "resource")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if ok {
			c.AddFilterResourceIDs(resourceID)
		}
		c.AddFilterDeleted(false)
		if err := applySearchParams(c.Criteria, q, alertSorts, cfg.MaxPageSize); err != nil {
			respondWithStoreError(w, err)
			return
		}

		page, err := alerts.SearchAlertDefinitions(r.Context(), c, subjectOf(r).ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, listOf(page))
	}
}

func handleSearchStorageNodes(nodes store.StorageNodesStore, authz store.AuthzStore, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := requireGlobal(authz, subjectOf(r), model.PermissionManageSettings); err != nil {
			respondWithStoreError(w, err)
			return
		}

		q := r.URL.Query()
		c := criteria.NewStorageNodeCriteria()
		if v := q.Get("address"); v != "" {
			c.AddFilterAddress(v)
		}
		if v := q.Get("operationMode"); v != "" {
			var modes []model.OperationMode
			for _, name := range strings.Split(v, ",") {
				mode, err := model.OperationModeString(strings.ToUpper(strings.TrimSpace(name)))
				if err != nil {
					respondWithStoreError(w, badRequest("invalid operationMode %q", name))
					return
				}
				modes = append(modes, mode)
			}
			c.AddFilterOperationModes(modes...)
		}
		if err := applySearchParams(c.Criteria, q, storageNodeSorts, cfg.MaxPageSize); err != nil {
			respondWithStoreError(w, err)
			return
		}

		page, err := nodes.SearchStorageNodes(r.Context(), c)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, listOf(page))
	}
}
