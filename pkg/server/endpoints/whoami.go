package endpoints

import (
	"net/http"

	"github.com/rhq-project/rhq-in-go/pkg/server"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(s.JWTMiddleware.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami(s.SubjectsStore)).Methods("GET")
}

// handleWhoami returns the stored subject named by the token.
func handleWhoami(subjects store.SubjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, err := subjects.FetchSubject(subjectOf(r).ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, subject)
	}
}
