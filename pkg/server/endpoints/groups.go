package endpoints

import (
	"net/http"

	"github.com/rhq-project/rhq-in-go/pkg/audit"
	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/server"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

var groupSorts = map[string]string{
	"name":  "name",
	"ctime": "ctime",
	"type":  "resourceTypeName",
}

// RegisterGroupsEndpoints registers the resource group API endpoints
func RegisterGroupsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/groups").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleSearchGroups(s.GroupsStore, s.Config)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}/configuration", handleUpdateGroupConfiguration(s.Configurations, s.Config)).Methods("PUT")
}

func handleSearchGroups(groups store.GroupsStore, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		c := criteria.NewResourceGroupCriteria()
		if v := q.Get("name"); v != "" {
			c.AddFilterName(v)
		}
		if q.Get("recursive") != "" {
			recursive, err := queryBool(q, "recursive")
			if err != nil {
				respondWithStoreError(w, err)
				return
			}
			c.AddFilterRecursive(recursive)
		}
		if private, _ := queryBool(q, "private"); private {
			c.AddFilterPrivateGroupsOnly(criteria.NonBindingOn)
		}
		if fetch, _ := queryBool(q, "fetchResourceType"); fetch {
			c.FetchResourceType(true)
		}
		if err := applySearchParams(c.Criteria, q, groupSorts, cfg.MaxPageSize); err != nil {
			respondWithStoreError(w, err)
			return
		}

		subject := subjectOf(r)
		page, err := groups.SearchGroups(r.Context(), c, subject.ID)
		audit.Log(audit.ListEvent{
			Subject:      subject.Name,
			ClientIP:     clientIP(r, cfg),
			Entity:       criteria.EntityResourceGroup,
			Search:       r.URL.RawQuery,
			Success:      err == nil,
			ErrorMessage: errorMessage(err),
		})
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, listOf(page))
	}
}

func handleUpdateGroupConfiguration(manager server.ConfigurationManager, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		subject := subjectOf(r)
		event := audit.ConfigurationUpdateEvent{
			Subject:  subject.Name,
			ClientIP: clientIP(r, cfg),
			GroupID:  id,
		}

		c, from, err := readConfiguration(w, r)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if from == "" {
			from = "structured"
		}
		event.From = from

		gu, err := manager.UpdateGroupConfiguration(r.Context(), subject, id, c, from == "structured")
		if err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			respondWithStoreError(w, err)
			return
		}

		event.Success = true
		event.UpdateID = gu.ID
		event.Status = gu.Status.String()
		audit.Log(event)
		respondWithJSON(w, updateStatusCode(gu.Status), gu)
	}
}

// requireGlobal fails with ErrForbidden unless the subject holds permission.
func requireGlobal(authz store.AuthzStore, subject *model.Subject, permission model.Permission) error {
	if authz.HasGlobalPermission(subject.ID, permission) {
		return nil
	}
	return store.ErrForbidden
}
