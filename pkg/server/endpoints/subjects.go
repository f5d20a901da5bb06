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

var subjectSorts = map[string]string{
	"name":      "name",
	"firstName": "firstName",
	"lastName":  "lastName",
}

var roleSorts = map[string]string{
	"name": "name",
}

// RegisterSubjectsEndpoints registers the subject and role API endpoints
func RegisterSubjectsEndpoints(s *server.Server) {
	subjects := s.Router.PathPrefix("/subjects").Subrouter()
	subjects.Use(s.JWTMiddleware.Middleware)
	subjects.HandleFunc("", handleSearchSubjects(s.SubjectsStore, s.AuthzStore, s.Config)).Methods("GET")

	roles := s.Router.PathPrefix("/roles").Subrouter()
	roles.Use(s.JWTMiddleware.Middleware)
	roles.HandleFunc("", handleSearchRoles(s.SubjectsStore, s.AuthzStore, s.Config)).Methods("GET")
}

func handleSearchSubjects(subjects store.SubjectsStore, authz store.AuthzStore, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject := subjectOf(r)
		if err := requireGlobal(authz, subject, model.PermissionViewUsers); err != nil {
			respondWithStoreError(w, err)
			return
		}

		q := r.URL.Query()
		c := criteria.NewSubjectCriteria()
		if v := q.Get("name"); v != "" {
			c.AddFilterName(v)
		}
		if v := q.Get("email"); v != "" {
			c.AddFilterEmailAddress(v)
		}
		roleID, ok, err := queryInt(q, "role")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if ok {
			c.AddFilterRoleID(roleID)
		}
		// system users are hidden unless asked for
		if system, _ := queryBool(q, "system"); !system {
			c.AddFilterFsystem(false)
		}
		if fetch, _ := queryBool(q, "fetchRoles"); fetch {
			c.FetchRoles(true)
		}
		if err := applySearchParams(c.Criteria, q, subjectSorts, cfg.MaxPageSize); err != nil {
			respondWithStoreError(w, err)
			return
		}

		page, err := subjects.SearchSubjects(r.Context(), c)
		audit.Log(audit.ListEvent{
			Subject:      subject.Name,
			ClientIP:     clientIP(r, cfg),
			Entity:       criteria.EntitySubject,
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

func handleSearchRoles(subjects store.SubjectsStore, authz store.AuthzStore, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject := subjectOf(r)
		if err := requireGlobal(authz, subject, model.PermissionManageSecurity); err != nil {
			respondWithStoreError(w, err)
			return
		}

		q := r.URL.Query()
		c := criteria.NewRoleCriteria()
		if v := q.Get("name"); v != "" {
			c.AddFilterName(v)
		}
		if v := q.Get("permission"); v != "" {
			p, err := model.PermissionString(v)
			if err != nil {
				respondWithStoreError(w, badRequest("invalid permission %q", v))
				return
			}
			c.AddFilterPermission(p)
		}
		if fetch, _ := queryBool(q, "fetchPermissions"); fetch {
			c.FetchPermissions(true)
		}
		if err := applySearchParams(c.Criteria, q, roleSorts, cfg.MaxPageSize); err != nil {
			respondWithStoreError(w, err)
			return
		}

		page, err := subjects.SearchRoles(r.Context(), c)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, listOf(page))
	}
}
