package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhq-project/rhq-in-go/pkg/model"
)

var (
	secret = []byte("0123456789abcdef0123456789abcdef")
	admin  = &model.Subject{ID: 2, Name: "rhqadmin"}
)

func newAuthenticator(now time.Time) *JWTAuthenticator {
	j := NewJWTAuthenticator(secret)
	j.now = func() time.Time { return now }
	return j
}

func serve(t *testing.T, j *JWTAuthenticator, header string) (*httptest.ResponseRecorder, *model.Subject) {
	t.Helper()
	var seen *model.Subject
	handler := j.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/resources", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seen
}

func TestIssueAndParse(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	j := newAuthenticator(now)

	token, expires, err := j.IssueToken(admin, 8*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(8*time.Hour), expires)

	subject, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, admin, subject)
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	_, _, err := IssueToken(nil, admin, time.Hour, time.Now())
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	j := newAuthenticator(now)
	valid, _, err := j.IssueToken(admin, time.Hour)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		rec, subject := serve(t, j, "Bearer "+valid)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, admin, subject)
	})

	t.Run("missing header", func(t *testing.T) {
		rec, subject := serve(t, j, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authorization missing")
		assert.Nil(t, subject)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec, _ := serve(t, j, `Token token="abc"`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Malformed authorization header")
	})

	t.Run("expired", func(t *testing.T) {
		later := newAuthenticator(now.Add(2 * time.Hour))
		rec, _ := serve(t, later, "Bearer "+valid)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		forged, _, err := IssueToken([]byte("another-secret"), admin, time.Hour, now)
		require.NoError(t, err)

		rec, _ := serve(t, j, "Bearer "+forged)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid token")
	})

	t.Run("unsigned token", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			Name: "rhqadmin",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    Issuer,
				Subject:   "2",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		rec, _ := serve(t, j, "Bearer "+unsigned)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
