package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/rhq-project/rhq-in-go/pkg/plugincontainer"
	"github.com/rhq-project/rhq-in-go/pkg/server"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

func configurationServer(manager *MockConfigurationManager) *server.Server {
	s := newTestServer()
	s.Configurations = manager
	RegisterConfigurationEndpoints(s)
	RegisterGroupsEndpoints(s)
	return s
}

func TestLatestConfiguration(t *testing.T) {
	t.Run("returns the stored configuration", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		c := model.NewConfiguration()
		c.Put("port", "8080")
		manager.On("LatestConfiguration", rhqadmin.ID, 10).Return(c, nil)

		w := do(t, configurationServer(manager), rhqadmin, "GET", "/resources/10/configuration", "")
		assertStatus(t, w, http.StatusOK)

		var got model.Configuration
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "8080", got.Properties["port"])
	})

	t.Run("maps errors to status codes", func(t *testing.T) {
		tests := []struct {
			err  error
			want int
		}{
			{store.ErrNotFound, http.StatusNotFound},
			{store.ErrForbidden, http.StatusForbidden},
			{configuration.ErrConfigurationNotSupported, http.StatusBadRequest},
			{errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tt := range tests {
			manager := &MockConfigurationManager{}
			manager.On("LatestConfiguration", rhqadmin.ID, 10).Return(nil, tt.err)

			w := do(t, configurationServer(manager), rhqadmin, "GET", "/resources/10/configuration", "")
			assertStatus(t, w, tt.want)
		}
	})
}

func TestLiveConfiguration(t *testing.T) {
	manager := &MockConfigurationManager{}
	manager.On("LiveConfiguration", rhqadmin.ID, 10).Return(nil, plugincontainer.ErrFacetLockTimeout)

	w := do(t, configurationServer(manager), rhqadmin, "POST", "/resources/10/configuration/live", "")
	assertStatus(t, w, http.StatusServiceUnavailable)
}

func TestUpdateConfiguration(t *testing.T) {
	body := `{"properties":{"port":"9090"}}`
	inProgress := &model.ResourceConfigurationUpdate{ID: 5, ResourceID: 10, Status: model.UpdateStatusInProgress}
	noChange := &model.ResourceConfigurationUpdate{ID: 6, ResourceID: 10, Status: model.UpdateStatusNoChange}
	withPort := mock.MatchedBy(func(c *model.Configuration) bool {
		return c.Properties["port"] == "9090"
	})

	t.Run("structured update is accepted", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		manager.On("UpdateStructuredConfiguration", rhqadmin.ID, 10, withPort).Return(inProgress, nil)

		w := do(t, configurationServer(manager), rhqadmin, "PUT", "/resources/10/configuration", body)
		assertStatus(t, w, http.StatusAccepted)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "INPROGRESS", got["status"])
		manager.AssertExpectations(t)
	})

	t.Run("unchanged configuration returns ok", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		manager.On("UpdateStructuredConfiguration", rhqadmin.ID, 10, withPort).Return(noChange, nil)

		w := do(t, configurationServer(manager), rhqadmin, "PUT", "/resources/10/configuration", body)
		assertStatus(t, w, http.StatusOK)
	})

	t.Run("raw source", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		manager.On("UpdateStructuredOrRawConfiguration", rhqadmin.ID, 10, mock.Anything, false).Return(inProgress, nil)

		raw := `{"properties":{},"rawConfigurations":[{"path":"/etc/app.yml","contents":"port: 9090\n"}]}`
		w := do(t, configurationServer(manager), rhqadmin, "PUT", "/resources/10/configuration?from=raw", raw)
		assertStatus(t, w, http.StatusAccepted)
		manager.AssertExpectations(t)
	})

	t.Run("update in progress conflicts", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		manager.On("UpdateStructuredOrRawConfiguration", rhqadmin.ID, 10, mock.Anything, true).Return(nil, configuration.ErrUpdateInProgress)

		w := do(t, configurationServer(manager), rhqadmin, "PUT", "/resources/10/configuration?from=structured", body)
		assertStatus(t, w, http.StatusConflict)
	})

	t.Run("validation errors are bad requests", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		manager.On("UpdateStructuredConfiguration", rhqadmin.ID, 10, withPort).
			Return(nil, &configuration.ValidationError{Path: "port", Err: errors.New("not a number")})

		w := do(t, configurationServer(manager), rhqadmin, "PUT", "/resources/10/configuration", body)
		assertStatus(t, w, http.StatusBadRequest)
	})

	for name, target := range map[string]string{
		"unknown from":  "/resources/10/configuration?from=xml",
		"unknown field": "/resources/10/configuration",
	} {
		t.Run(name, func(t *testing.T) {
			manager := &MockConfigurationManager{}
			w := do(t, configurationServer(manager), rhqadmin, "PUT", target, `{"props":{}}`)
			assertStatus(t, w, http.StatusBadRequest)
			manager.AssertNotCalled(t, "UpdateStructuredConfiguration")
		})
	}
}

func TestTranslateConfiguration(t *testing.T) {
	body := `{"properties":{"port":"9090"},"rawConfigurations":[{"path":"/etc/app.yml","contents":"port: 80\n"}]}`

	t.Run("from structured returns the regenerated files", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		translated := model.NewConfiguration()
		translated.Put("port", "9090")
		translated.AddRawConfiguration(model.NewRawConfiguration("/etc/app.yml", "port: 9090\n"))
		manager.On("TranslateConfiguration", rhqadmin.ID, 10, mock.Anything, true).Return(translated, nil)

		w := do(t, configurationServer(manager), rhqadmin, "POST", "/resources/10/configuration/translate?from=structured", body)
		assertStatus(t, w, http.StatusOK)

		var got model.Configuration
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.RawConfigurations, 1)
		assert.Equal(t, "port: 9090\n", got.RawConfigurations[0].Contents)
		manager.AssertExpectations(t)
	})

	t.Run("from raw", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		manager.On("TranslateConfiguration", rhqadmin.ID, 10, mock.Anything, false).Return(model.NewConfiguration(), nil)

		w := do(t, configurationServer(manager), rhqadmin, "POST", "/resources/10/configuration/translate?from=raw", body)
		assertStatus(t, w, http.StatusOK)
		manager.AssertExpectations(t)
	})

	t.Run("maps errors to status codes", func(t *testing.T) {
		tests := []struct {
			err  error
			want int
		}{
			{configuration.ErrTranslationNotSupported, http.StatusBadRequest},
			{store.ErrForbidden, http.StatusForbidden},
		}
		for _, tt := range tests {
			manager := &MockConfigurationManager{}
			manager.On("TranslateConfiguration", rhqadmin.ID, 10, mock.Anything, true).Return(nil, tt.err)

			w := do(t, configurationServer(manager), rhqadmin, "POST", "/resources/10/configuration/translate?from=structured", body)
			assertStatus(t, w, tt.want)
		}
	})

	t.Run("from is required", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		w := do(t, configurationServer(manager), rhqadmin, "POST", "/resources/10/configuration/translate", body)
		assertStatus(t, w, http.StatusBadRequest)
		manager.AssertNotCalled(t, "TranslateConfiguration", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateGroupConfiguration(t *testing.T) {
	manager := &MockConfigurationManager{}
	manager.On("UpdateGroupConfiguration", rhqadmin.ID, 4, mock.Anything, true).
		Return(&model.GroupConfigurationUpdate{ID: 1, GroupID: 4, Status: model.UpdateStatusInProgress}, nil)

	w := do(t, configurationServer(manager), rhqadmin, "PUT", "/groups/4/configuration", `{"properties":{"port":"1"}}`)
	assertStatus(t, w, http.StatusAccepted)
	manager.AssertExpectations(t)
}

func TestSearchUpdates(t *testing.T) {
	t.Run("newest first by default", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		manager.On("SearchUpdates", rhqadmin.ID, mock.MatchedBy(func(c *criteria.ResourceConfigurationUpdateCriteria) bool {
			resourceID, _ := c.FilterValue("resourceId")
			status, _ := c.FilterValue("status")
			sorts := c.Sorts()
			return resourceID == 10 && status == model.UpdateStatusFailure &&
				len(sorts) == 1 && sorts[0].Ordering == paging.OrderingDESC
		})).Return(paging.NewPageList([]model.ResourceConfigurationUpdate{{ID: 3, ResourceID: 10}}, 1, paging.New(0, 15)), nil)

		w := do(t, configurationServer(manager), rhqadmin, "GET", "/resources/10/configuration/updates?status=failure", "")
		assertStatus(t, w, http.StatusOK)
		manager.AssertExpectations(t)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		manager := &MockConfigurationManager{}
		w := do(t, configurationServer(manager), rhqadmin, "GET", "/resources/10/configuration/updates?status=lost", "")
		assertStatus(t, w, http.StatusBadRequest)
	})
}
