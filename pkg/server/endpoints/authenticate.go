package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/rhq-project/rhq-in-go/pkg/audit"
	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/server"
	"github.com/rhq-project/rhq-in-go/pkg/server/middleware"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// TokenResponse is the body returned by /authenticate
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterAuthenticateEndpoint registers POST /authenticate, which trades
// Basic credentials for a bearer token
func RegisterAuthenticateEndpoint(s *server.Server) {
	s.Router.HandleFunc("/authenticate", handleAuthenticate(s.AuthenticateStore, s.JWTMiddleware, s.Config)).Methods("POST")
}

func handleAuthenticate(authn store.AuthenticateStore, tokens *middleware.JWTAuthenticator, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="RHQ"`)
			http.Error(w, "Authorization required", http.StatusUnauthorized)
			return
		}
		event := audit.AuthenticateEvent{Subject: username, ClientIP: clientIP(r, cfg)}

		subject, err := authn.Authenticate(username, password)
		if err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			if errors.Is(err, store.ErrInvalidCredentials) {
				http.Error(w, "Invalid credentials", http.StatusUnauthorized)
				return
			}
			respondWithStoreError(w, err)
			return
		}

		token, expires, err := tokens.IssueToken(subject, cfg.TokenLifetime())
		if err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		event.Success = true
		audit.Log(event)
		respondWithJSON(w, http.StatusOK, TokenResponse{Token: token, ExpiresAt: expires})
	}
}
