package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

func TestAuthenticate(t *testing.T) {
	authenticate := func(s *MockAuthenticateStore, user, password string, basic bool) *httptest.ResponseRecorder {
		srv := newTestServer()
		srv.AuthenticateStore = s
		RegisterAuthenticateEndpoint(srv)

		req := httptest.NewRequest("POST", "/authenticate", nil)
		if basic {
			req.SetBasicAuth(user, password)
		}
		w := httptest.NewRecorder()
		srv.Router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid credentials return a usable token", func(t *testing.T) {
		authn := &MockAuthenticateStore{}
		authn.On("Authenticate", "rhqadmin", "rhqadmin").Return(rhqadmin, nil)

		w := authenticate(authn, "rhqadmin", "rhqadmin", true)
		assertStatus(t, w, http.StatusOK)

		var body TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotEmpty(t, body.Token)
		assert.False(t, body.ExpiresAt.IsZero())

		subject, err := newTestServer().JWTMiddleware.Parse(body.Token)
		require.NoError(t, err)
		assert.Equal(t, rhqadmin.ID, subject.ID)
		assert.Equal(t, "rhqadmin", subject.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		authn := &MockAuthenticateStore{}
		authn.On("Authenticate", "rhqadmin", "nope").Return(nil, store.ErrInvalidCredentials)

		w := authenticate(authn, "rhqadmin", "nope", true)
		assertStatus(t, w, http.StatusUnauthorized)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("missing basic auth", func(t *testing.T) {
		w := authenticate(&MockAuthenticateStore{}, "", "", false)
		assertStatus(t, w, http.StatusUnauthorized)
		assert.Equal(t, `Basic realm="RHQ"`, w.Header().Get("WWW-Authenticate"))
	})

	t.Run("store failure", func(t *testing.T) {
		authn := &MockAuthenticateStore{}
		authn.On("Authenticate", "rhqadmin", "rhqadmin").Return(nil, errors.New("connection refused"))

		w := authenticate(authn, "rhqadmin", "rhqadmin", true)
		assertStatus(t, w, http.StatusInternalServerError)
	})
}

func TestWhoami(t *testing.T) {
	t.Run("returns the stored subject", func(t *testing.T) {
		subjects := &MockSubjectsStore{}
		subjects.On("FetchSubject", rhqadmin.ID).Return(&model.Subject{ID: rhqadmin.ID, Name: "rhqadmin", EmailAddress: "admin@example.com"}, nil)

		s := newTestServer()
		s.SubjectsStore = subjects
		RegisterWhoamiEndpoint(s)

		w := do(t, s, rhqadmin, "GET", "/whoami", "")
		assertStatus(t, w, http.StatusOK)

		var got model.Subject
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "admin@example.com", got.EmailAddress)
	})

	t.Run("deleted subject", func(t *testing.T) {
		subjects := &MockSubjectsStore{}
		subjects.On("FetchSubject", guest.ID).Return(nil, store.ErrNotFound)

		s := newTestServer()
		s.SubjectsStore = subjects
		RegisterWhoamiEndpoint(s)

		w := do(t, s, guest, "GET", "/whoami", "")
		assertStatus(t, w, http.StatusNotFound)
	})

	t.Run("requires a token", func(t *testing.T) {
		s := newTestServer()
		s.SubjectsStore = &MockSubjectsStore{}
		RegisterWhoamiEndpoint(s)

		w := do(t, s, nil, "GET", "/whoami", "")
		assertStatus(t, w, http.StatusUnauthorized)
	})
}
