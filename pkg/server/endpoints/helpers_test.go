package endpoints

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/server"
	"github.com/rhq-project/rhq-in-go/pkg/server/middleware"
)

const testSecret = "endpoints-test-secret"

var (
	rhqadmin = &model.Subject{ID: 2, Name: "rhqadmin", FactiveFlag: true}
	guest    = &model.Subject{ID: 7, Name: "guest", FactiveFlag: true}
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestServer builds a server without stores. Tests assign the mocks
// they need before registering endpoints.
func newTestServer() *server.Server {
	return server.New(&config.RhqConfig{
		BindAddress:     "127.0.0.1",
		Port:            0,
		JWTSecret:       testSecret,
		TokenTTL:        480,
		MaxPageSize:     100,
		StatusPageTitle: "RHQ Test",
	})
}

func tokenFor(t *testing.T, subject *model.Subject) string {
	t.Helper()
	token, _, err := middleware.IssueToken([]byte(testSecret), subject, time.Hour, time.Now())
	require.NoError(t, err)
	return token
}

// do sends a request as subject. A nil subject sends no token.
func do(t *testing.T, s *server.Server, subject *model.Subject, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if subject != nil {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, subject))
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equalf(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
