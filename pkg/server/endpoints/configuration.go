package endpoints

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rhq-project/rhq-in-go/pkg/audit"
	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/rhq-project/rhq-in-go/pkg/server"
)

var updateSorts = map[string]string{
	"ctime":    "ctime",
	"status":   "status",
	"resource": "resourceName",
}

// maxConfigurationBody bounds the size of an uploaded configuration.
const maxConfigurationBody = 4 << 20

// RegisterConfigurationEndpoints registers the configuration API endpoints
func RegisterConfigurationEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/resources/{id:[0-9]+}/configuration").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleLatestConfiguration(s.Configurations)).Methods("GET")
	router.HandleFunc("", handleUpdateConfiguration(s.Configurations, s.Config)).Methods("PUT")
	router.HandleFunc("/live", handleLiveConfiguration(s.Configurations)).Methods("POST")
	router.HandleFunc("/translate", handleTranslateConfiguration(s.Configurations)).Methods("POST")
	router.HandleFunc("/updates", handleSearchUpdates(s.Configurations, s.Config)).Methods("GET")
}

func handleLatestConfiguration(manager server.ConfigurationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		c, err := manager.LatestConfiguration(subjectOf(r), id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, c)
	}
}

func handleLiveConfiguration(manager server.ConfigurationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		c, err := manager.LiveConfiguration(r.Context(), subjectOf(r), id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, c)
	}
}

// readConfiguration decodes the request body and the from parameter. An
// absent from selects the structured-only update.
func readConfiguration(w http.ResponseWriter, r *http.Request) (*model.Configuration, string, error) {
	from := strings.ToLower(r.URL.Query().Get("from"))
	switch from {
	case "", "structured", "raw":
	default:
		return nil, "", badRequest("invalid from %q, expected structured or raw", from)
	}

	var c model.Configuration
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxConfigurationBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, "", badRequest("invalid configuration: %v", err)
	}
	if c.Properties == nil {
		c.Properties = model.Properties{}
	}
	return &c, from, nil
}

func updateStatusCode(status model.UpdateStatus) int {
	if status == model.UpdateStatusInProgress {
		return http.StatusAccepted
	}
	return http.StatusOK
}

func handleUpdateConfiguration(manager server.ConfigurationManager, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		subject := subjectOf(r)
		event := audit.ConfigurationUpdateEvent{
			Subject:    subject.Name,
			ClientIP:   clientIP(r, cfg),
			ResourceID: id,
		}

		c, from, err := readConfiguration(w, r)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		var u *model.ResourceConfigurationUpdate
		switch from {
		case "":
			event.From = "structured"
			u, err = manager.UpdateStructuredConfiguration(r.Context(), subject, id, c)
		default:
			event.From = from
			u, err = manager.UpdateStructuredOrRawConfiguration(r.Context(), subject, id, c, from == "structured")
		}
		if err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			respondWithStoreError(w, err)
			return
		}

		event.Success = true
		event.UpdateID = u.ID
		event.Status = u.Status.String()
		audit.Log(event)
		respondWithJSON(w, updateStatusCode(u.Status), u)
	}
}

// handleTranslateConfiguration previews the merge of one representation into
// the other. from is required.
func handleTranslateConfiguration(manager server.ConfigurationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		c, from, err := readConfiguration(w, r)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if from == "" {
			respondWithStoreError(w, badRequest("from is required, expected structured or raw"))
			return
		}
		translated, err := manager.TranslateConfiguration(r.Context(), subjectOf(r), id, c, from == "structured")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, translated)
	}
}

func handleSearchUpdates(manager server.ConfigurationManager, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		q := r.URL.Query()
		c := criteria.NewResourceConfigurationUpdateCriteria()
		c.AddFilterResourceID(id)
		if v := q.Get("status"); v != "" {
			status, err := model.UpdateStatusString(strings.ToUpper(v))
			if err != nil {
				respondWithStoreError(w, badRequest("invalid status %q", v))
				return
			}
			c.AddFilterStatus(status)
		}
		if fetch, _ := queryBool(q, "fetchConfiguration"); fetch {
			c.FetchConfiguration(true)
		}
		if len(q["sort"]) == 0 {
			c.AddSortCTime(paging.OrderingDESC)
		}
		if err := applySearchParams(c.Criteria, q, updateSorts, cfg.MaxPageSize); err != nil {
			respondWithStoreError(w, err)
			return
		}

		page, err := manager.SearchUpdates(r.Context(), subjectOf(r), c)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, listOf(page))
	}
}
