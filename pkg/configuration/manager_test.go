package configuration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

var admin = &model.Subject{ID: 2, Name: "rhqadmin"}

type managerFixture struct {
	configs *mockConfigurationStore
	authz   *mockAuthzStore
	groups  *mockGroupsStore
	agent   *mockAgent
	manager *Manager
}

func newManagerFixture() *managerFixture {
	f := &managerFixture{
		configs: new(mockConfigurationStore),
		authz:   new(mockAuthzStore),
		groups:  new(mockGroupsStore),
		agent:   new(mockAgent),
	}
	f.manager = NewManager(f.configs, f.authz, f.groups, f.agent)
	return f
}

func (f *managerFixture) assertExpectations(t *testing.T) {
	f.configs.AssertExpectations(t)
	f.authz.AssertExpectations(t)
	f.groups.AssertExpectations(t)
	f.agent.AssertExpectations(t)
}

// assignUpdateIDs gives created updates an id derived from their resource.
func assignUpdateIDs(args mock.Arguments) {
	u := args.Get(0).(*model.ResourceConfigurationUpdate)
	u.ID = u.ResourceID * 10
}

func portConfig(port string) *model.Configuration {
	c := model.NewConfiguration()
	c.Put("port", port)
	return c
}

func TestUpdateStructuredConfiguration(t *testing.T) {
	t.Run("requires CONFIGURE_WRITE", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureWrite, 5).Return(false)

		_, err := f.manager.UpdateStructuredConfiguration(context.Background(), admin, 5, portConfig("80"))
		assert.ErrorIs(t, err, store.ErrForbidden)
		f.assertExpectations(t)
	})

	t.Run("rejects types with raw configuration", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureWrite, 5).Return(true)
		f.configs.On("ResourceType", 5).Return(&model.ResourceType{ConfigFormat: model.ConfigFormatStructuredAndRaw}, nil)

		_, err := f.manager.UpdateStructuredConfiguration(context.Background(), admin, 5, portConfig("80"))
		assert.ErrorIs(t, err, ErrUpdateNotSupported)
		f.assertExpectations(t)
	})

	t.Run("rejects types without configuration", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureWrite, 5).Return(true)
		f.configs.On("ResourceType", 5).Return(&model.ResourceType{ConfigFormat: model.ConfigFormatNone}, nil)

		_, err := f.manager.UpdateStructuredConfiguration(context.Background(), admin, 5, portConfig("80"))
		assert.ErrorIs(t, err, ErrConfigurationNotSupported)
	})

	t.Run("dispatches to the agent", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureWrite, 5).Return(true)
		f.configs.On("ResourceType", 5).Return(&model.ResourceType{ConfigFormat: model.ConfigFormatStructured}, nil)
		f.configs.On("HasUpdateInProgress", 5).Return(false, nil)
		f.configs.On("LatestConfiguration", 5).Return(portConfig("8080"), nil)
		f.configs.On("CreateUpdate", mock.MatchedBy(func(u *model.ResourceConfigurationUpdate) bool {
			return u.Status == model.UpdateStatusInProgress && u.SubjectName == "rhqadmin" && u.Configuration.Properties["port"] == "80"
		})).Run(assignUpdateIDs).Return(nil)
		f.agent.On("UpdateConfiguration", mock.MatchedBy(func(req model.ConfigurationUpdateRequest) bool {
			return req.UpdateID == 50 && req.ResourceID == 5 && req.Configuration.Properties["port"] == "80"
		})).Return(nil)

		u, err := f.manager.UpdateStructuredConfiguration(context.Background(), admin, 5, portConfig("80"))
		require.NoError(t, err)
		assert.Equal(t, 50, u.ID)
		assert.Equal(t, model.UpdateStatusInProgress, u.Status)
		f.agent.AssertNotCalled(t, "ValidateConfiguration", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("unchanged configuration is neither stored nor sent", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureWrite, 5).Return(true)
		f.configs.On("ResourceType", 5).Return(&model.ResourceType{ConfigFormat: model.ConfigFormatStructured}, nil)
		f.configs.On("HasUpdateInProgress", 5).Return(false, nil)
		f.configs.On("LatestConfiguration", 5).Return(portConfig("80"), nil)

		u, err := f.manager.UpdateStructuredConfiguration(context.Background(), admin, 5, portConfig("80"))
		require.NoError(t, err)
		assert.Equal(t, model.UpdateStatusNoChange, u.Status)
		assert.Zero(t, u.ID)
		assert.Equal(t, 5, u.ResourceID)
		f.configs.AssertNotCalled(t, "CreateUpdate", mock.Anything)
		f.agent.AssertNotCalled(t, "UpdateConfiguration", mock.Anything)
		f.assertExpectations(t)
	})
}

func TestUpdateStructuredOrRawConfiguration(t *testing.T) {
	setup := func() *managerFixture {
		f := newManagerFixture()
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureWrite, 7).Return(true)
		f.configs.On("ResourceType", 7).Return(&model.ResourceType{ConfigFormat: model.ConfigFormatStructuredAndRaw}, nil)
		return f
	}

	t.Run("raw updates are merged before they are stored", func(t *testing.T) {
		f := setup()
		c := model.NewConfiguration()
		c.AddRawConfiguration(model.NewRawConfiguration("/etc/app.yml", "port: 8080\n"))

		f.agent.On("ValidateConfiguration", 7, mock.Anything, false).Return(nil)
		f.agent.On("MergeConfiguration", 7, mock.Anything, false).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Configuration).Put("port", "8080")
		}).Return(nil)
		f.configs.On("HasUpdateInProgress", 7).Return(false, nil)
		f.configs.On("LatestConfiguration", 7).Return(nil, store.ErrNotFound)
		f.configs.On("CreateUpdate", mock.MatchedBy(func(u *model.ResourceConfigurationUpdate) bool {
			return u.Configuration.Properties["port"] == "8080"
		})).Run(assignUpdateIDs).Return(nil)
		f.agent.On("UpdateConfiguration", mock.Anything).Return(nil)

		_, err := f.manager.UpdateStructuredOrRawConfiguration(context.Background(), admin, 7, c, false)
		require.NoError(t, err)
		assert.Empty(t, c.Properties, "the caller's configuration is not modified")
		f.assertExpectations(t)
	})

	t.Run("one update in progress per resource", func(t *testing.T) {
		f := setup()
		f.agent.On("ValidateConfiguration", 7, mock.Anything, true).Return(nil)
		f.configs.On("HasUpdateInProgress", 7).Return(true, nil)

		_, err := f.manager.UpdateStructuredOrRawConfiguration(context.Background(), admin, 7, portConfig("80"), true)
		assert.ErrorIs(t, err, ErrUpdateInProgress)
		f.configs.AssertNotCalled(t, "CreateUpdate", mock.Anything)
	})

	t.Run("invalid configuration is not stored", func(t *testing.T) {
		f := setup()
		invalid := &ValidationError{Path: "/etc/app.yml", Err: errors.New("bad indentation")}
		f.agent.On("ValidateConfiguration", 7, mock.Anything, false).Return(invalid)

		_, err := f.manager.UpdateStructuredOrRawConfiguration(context.Background(), admin, 7, portConfig("80"), false)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "/etc/app.yml", verr.Path)
		f.configs.AssertNotCalled(t, "CreateUpdate", mock.Anything)
	})

	t.Run("merged raw edits equal to the latest configuration are not stored", func(t *testing.T) {
		f := setup()
		c := model.NewConfiguration()
		c.AddRawConfiguration(model.NewRawConfiguration("/etc/app.yml", "port: 8080\n"))
		latest := c.Clone()
		latest.Put("port", "8080")

		f.agent.On("ValidateConfiguration", 7, mock.Anything, false).Return(nil)
		f.agent.On("MergeConfiguration", 7, mock.Anything, false).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Configuration).Put("port", "8080")
		}).Return(nil)
		f.configs.On("HasUpdateInProgress", 7).Return(false, nil)
		f.configs.On("LatestConfiguration", 7).Return(latest, nil)

		u, err := f.manager.UpdateStructuredOrRawConfiguration(context.Background(), admin, 7, c, false)
		require.NoError(t, err)
		assert.Equal(t, model.UpdateStatusNoChange, u.Status)
		f.configs.AssertNotCalled(t, "CreateUpdate", mock.Anything)
		f.agent.AssertNotCalled(t, "UpdateConfiguration", mock.Anything)
	})

	t.Run("dispatch errors fail the update", func(t *testing.T) {
		f := setup()
		f.agent.On("ValidateConfiguration", 7, mock.Anything, true).Return(nil)
		f.configs.On("HasUpdateInProgress", 7).Return(false, nil)
		f.configs.On("LatestConfiguration", 7).Return(nil, store.ErrNotFound)
		f.configs.On("CreateUpdate", mock.Anything).Run(assignUpdateIDs).Return(nil)
		f.agent.On("UpdateConfiguration", mock.Anything).Return(errors.New("agent down"))
		f.configs.On("CompleteUpdate", 70, model.UpdateStatusFailure, "agent down", (*model.Configuration)(nil)).
			Return(&model.ResourceConfigurationUpdate{ID: 70, ResourceID: 7, Status: model.UpdateStatusFailure, ErrorMessage: "agent down"}, nil)

		u, err := f.manager.UpdateStructuredOrRawConfiguration(context.Background(), admin, 7, portConfig("80"), true)
		require.NoError(t, err)
		assert.Equal(t, model.UpdateStatusFailure, u.Status)
		assert.Equal(t, "agent down", u.ErrorMessage)
		f.assertExpectations(t)
	})

	t.Run("structured-only types are not validated by the plugin", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureWrite, 8).Return(true)
		f.configs.On("ResourceType", 8).Return(&model.ResourceType{ConfigFormat: model.ConfigFormatStructured}, nil)
		f.configs.On("HasUpdateInProgress", 8).Return(false, nil)
		f.configs.On("LatestConfiguration", 8).Return(portConfig("80"), nil)
		f.configs.On("CreateUpdate", mock.Anything).Run(assignUpdateIDs).Return(nil)
		f.agent.On("UpdateConfiguration", mock.Anything).Return(nil)

		u, err := f.manager.UpdateStructuredOrRawConfiguration(context.Background(), admin, 8, portConfig("81"), true)
		require.NoError(t, err)
		assert.Equal(t, 80, u.ID)
		f.agent.AssertNotCalled(t, "ValidateConfiguration", mock.Anything, mock.Anything, mock.Anything)
		f.agent.AssertNotCalled(t, "MergeConfiguration", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})
}

func TestTranslateConfiguration(t *testing.T) {
	withRaw := func() *model.Configuration {
		c := portConfig("80")
		c.AddRawConfiguration(model.NewRawConfiguration("/etc/app.yml", "port: 80\n"))
		return c
	}
	setup := func(format model.ConfigFormat) *managerFixture {
		f := newManagerFixture()
		f.configs.On("ResourceType", 7).Return(&model.ResourceType{ConfigFormat: format}, nil)
		return f
	}

	t.Run("requires CONFIGURE_READ", func(t *testing.T) {
		f := setup(model.ConfigFormatStructuredAndRaw)
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureRead, 7).Return(false)

		_, err := f.manager.TranslateConfiguration(context.Background(), admin, 7, withRaw(), true)
		assert.ErrorIs(t, err, store.ErrForbidden)
		f.agent.AssertNotCalled(t, "MergeConfiguration", mock.Anything, mock.Anything, mock.Anything)
	})

	for _, format := range []model.ConfigFormat{model.ConfigFormatStructured, model.ConfigFormatRaw} {
		t.Run("not supported for "+format.String(), func(t *testing.T) {
			f := setup(format)

			_, err := f.manager.TranslateConfiguration(context.Background(), admin, 7, withRaw(), true)
			assert.ErrorIs(t, err, ErrTranslationNotSupported)
			f.authz.AssertNotCalled(t, "HasResourcePermission", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("from structured regenerates the raw files", func(t *testing.T) {
		f := setup(model.ConfigFormatStructuredAndRaw)
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureRead, 7).Return(true)
		f.agent.On("MergeConfiguration", 7, mock.Anything, true).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Configuration).AddRawConfiguration(model.NewRawConfiguration("/etc/app.yml", "port: 81\n"))
		}).Return(nil)

		in := withRaw()
		in.Put("port", "81")
		out, err := f.manager.TranslateConfiguration(context.Background(), admin, 7, in, true)
		require.NoError(t, err)
		require.Len(t, out.RawConfigurations, 1)
		assert.Equal(t, "port: 81\n", out.RawConfigurations[0].Contents)
		assert.Equal(t, "port: 80\n", in.RawConfigurations[0].Contents, "the caller's configuration is not modified")
		f.configs.AssertNotCalled(t, "CreateUpdate", mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("from raw regenerates the properties", func(t *testing.T) {
		f := setup(model.ConfigFormatStructuredAndRaw)
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureRead, 7).Return(true)
		f.agent.On("MergeConfiguration", 7, mock.Anything, false).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Configuration).Put("port", "82")
		}).Return(nil)

		out, err := f.manager.TranslateConfiguration(context.Background(), admin, 7, withRaw(), false)
		require.NoError(t, err)
		assert.Equal(t, "82", out.Properties["port"])
		f.assertExpectations(t)
	})
}

func TestLiveConfiguration(t *testing.T) {
	t.Run("requires CONFIGURE_READ", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureRead, 5).Return(false)

		_, err := f.manager.LiveConfiguration(context.Background(), admin, 5)
		assert.ErrorIs(t, err, store.ErrForbidden)
	})

	t.Run("null configuration", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasResourcePermission", 2, model.PermissionConfigureRead, 5).Return(true)
		f.configs.On("ResourceType", 5).Return(&model.ResourceType{ConfigFormat: model.ConfigFormatStructured}, nil)
		f.agent.On("LoadConfiguration", 5).Return(nil, nil)

		_, err := f.manager.LiveConfiguration(context.Background(), admin, 5)
		assert.ErrorIs(t, err, ErrNullConfiguration)
	})
}

func TestCompleteUpdate(t *testing.T) {
	t.Run("successful updates store the applied configuration", func(t *testing.T) {
		f := newManagerFixture()
		applied := portConfig("80")
		f.configs.On("CompleteUpdate", 50, model.UpdateStatusSuccess, "", applied).
			Return(&model.ResourceConfigurationUpdate{ID: 50, ResourceID: 5, Status: model.UpdateStatusSuccess}, nil)

		err := f.manager.CompleteUpdate(context.Background(), model.ConfigurationUpdateResponse{
			UpdateID:      50,
			Configuration: applied,
			Status:        model.UpdateStatusSuccess,
		})
		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("failed updates keep the configuration the agent returned", func(t *testing.T) {
		f := newManagerFixture()
		rejected := portConfig("1")
		f.configs.On("CompleteUpdate", 50, model.UpdateStatusFailure, "port below 1024", rejected).
			Return(&model.ResourceConfigurationUpdate{ID: 50, ResourceID: 5, Status: model.UpdateStatusFailure}, nil)

		err := f.manager.CompleteUpdate(context.Background(), model.ConfigurationUpdateResponse{
			UpdateID:      50,
			Configuration: rejected,
			Status:        model.UpdateStatusFailure,
			ErrorMessage:  "port below 1024",
		})
		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("no change keeps the stored configuration", func(t *testing.T) {
		f := newManagerFixture()
		f.configs.On("CompleteUpdate", 50, model.UpdateStatusNoChange, "", (*model.Configuration)(nil)).
			Return(&model.ResourceConfigurationUpdate{ID: 50, ResourceID: 5, Status: model.UpdateStatusNoChange}, nil)

		err := f.manager.CompleteUpdate(context.Background(), model.ConfigurationUpdateResponse{
			UpdateID:      50,
			Configuration: portConfig("80"),
			Status:        model.UpdateStatusNoChange,
		})
		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("the last member completes its group", func(t *testing.T) {
		f := newManagerFixture()
		groupUpdateID := 3
		f.configs.On("CompleteUpdate", 50, model.UpdateStatusFailure, "port in use", (*model.Configuration)(nil)).
			Return(&model.ResourceConfigurationUpdate{ID: 50, ResourceID: 5, GroupConfigUpdateID: &groupUpdateID}, nil)
		f.configs.On("GroupMemberStatuses", 3).
			Return([]model.UpdateStatus{model.UpdateStatusSuccess, model.UpdateStatusFailure}, nil)
		f.configs.On("CompleteGroupUpdate", 3, model.UpdateStatusFailure, "1 of 2 member updates failed").Return(nil)

		err := f.manager.CompleteUpdate(context.Background(), model.ConfigurationUpdateResponse{
			UpdateID:     50,
			Status:       model.UpdateStatusFailure,
			ErrorMessage: "port in use",
		})
		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("unknown update", func(t *testing.T) {
		f := newManagerFixture()
		f.configs.On("CompleteUpdate", 99, model.UpdateStatusSuccess, "", (*model.Configuration)(nil)).Return(nil, store.ErrNotFound)

		err := f.manager.CompleteUpdate(context.Background(), model.ConfigurationUpdateResponse{UpdateID: 99, Status: model.UpdateStatusSuccess})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRecordDrift(t *testing.T) {
	t.Run("changed configuration is recorded as a successful update", func(t *testing.T) {
		f := newManagerFixture()
		f.configs.On("LatestConfiguration", 5).Return(portConfig("80"), nil)
		f.configs.On("HasUpdateInProgress", 5).Return(false, nil)
		f.configs.On("CreateUpdate", mock.MatchedBy(func(u *model.ResourceConfigurationUpdate) bool {
			return u.SubjectName == DriftSubject && u.Configuration.Properties["port"] == "8080"
		})).Run(assignUpdateIDs).Return(nil)
		f.configs.On("CompleteUpdate", 50, model.UpdateStatusSuccess, "", (*model.Configuration)(nil)).
			Return(&model.ResourceConfigurationUpdate{ID: 50, ResourceID: 5, Status: model.UpdateStatusSuccess}, nil)

		recorded, err := f.manager.RecordDrift(context.Background(), 5, portConfig("8080"))
		require.NoError(t, err)
		assert.True(t, recorded)
		f.assertExpectations(t)
	})

	t.Run("unchanged configuration is ignored", func(t *testing.T) {
		f := newManagerFixture()
		f.configs.On("HasUpdateInProgress", 5).Return(false, nil)
		f.configs.On("LatestConfiguration", 5).Return(portConfig("80"), nil)

		recorded, err := f.manager.RecordDrift(context.Background(), 5, portConfig("80"))
		require.NoError(t, err)
		assert.False(t, recorded)
		f.configs.AssertNotCalled(t, "CreateUpdate", mock.Anything)
	})

	t.Run("first configuration of a resource", func(t *testing.T) {
		f := newManagerFixture()
		f.configs.On("LatestConfiguration", 5).Return(nil, store.ErrNotFound)
		f.configs.On("HasUpdateInProgress", 5).Return(false, nil)
		f.configs.On("CreateUpdate", mock.Anything).Run(assignUpdateIDs).Return(nil)
		f.configs.On("CompleteUpdate", 50, model.UpdateStatusSuccess, "", (*model.Configuration)(nil)).
			Return(&model.ResourceConfigurationUpdate{ID: 50, ResourceID: 5}, nil)

		recorded, err := f.manager.RecordDrift(context.Background(), 5, portConfig("80"))
		require.NoError(t, err)
		assert.True(t, recorded)
	})

	t.Run("a pending update wins", func(t *testing.T) {
		f := newManagerFixture()
		f.configs.On("HasUpdateInProgress", 5).Return(true, nil)

		_, err := f.manager.RecordDrift(context.Background(), 5, portConfig("8080"))
		assert.ErrorIs(t, err, ErrUpdateInProgress)
	})
}

func TestUpdateGroupConfiguration(t *testing.T) {
	t.Run("requires CONFIGURE_WRITE on the group", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasGroupPermission", 2, model.PermissionConfigureWrite, 4).Return(false)

		_, err := f.manager.UpdateGroupConfiguration(context.Background(), admin, 4, portConfig("80"), true)
		assert.ErrorIs(t, err, store.ErrForbidden)
	})

	t.Run("empty groups succeed at once", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasGroupPermission", 2, model.PermissionConfigureWrite, 4).Return(true)
		f.groups.On("MemberIDs", 4).Return([]int{}, nil)
		f.configs.On("CreateGroupUpdate", mock.Anything).Run(func(args mock.Arguments) {
			args.Get(0).(*model.GroupConfigurationUpdate).ID = 3
		}).Return(nil)
		f.configs.On("CompleteGroupUpdate", 3, model.UpdateStatusSuccess, "").Return(nil)

		gu, err := f.manager.UpdateGroupConfiguration(context.Background(), admin, 4, portConfig("80"), true)
		require.NoError(t, err)
		assert.Equal(t, model.UpdateStatusSuccess, gu.Status)
		f.assertExpectations(t)
	})

	t.Run("rejected members are recorded as failures", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasGroupPermission", 2, model.PermissionConfigureWrite, 4).Return(true)
		f.groups.On("MemberIDs", 4).Return([]int{5, 6}, nil)
		f.configs.On("CreateGroupUpdate", mock.Anything).Run(func(args mock.Arguments) {
			args.Get(0).(*model.GroupConfigurationUpdate).ID = 3
		}).Return(nil)

		f.configs.On("ResourceType", mock.Anything).Return(&model.ResourceType{ConfigFormat: model.ConfigFormatStructured}, nil)
		f.configs.On("HasUpdateInProgress", 5).Return(false, nil)
		f.configs.On("HasUpdateInProgress", 6).Return(true, nil)
		f.configs.On("LatestConfiguration", 5).Return(nil, store.ErrNotFound)
		f.configs.On("CreateUpdate", mock.MatchedBy(func(u *model.ResourceConfigurationUpdate) bool {
			return u.ResourceID == 5 && u.Status == model.UpdateStatusInProgress && *u.GroupConfigUpdateID == 3
		})).Run(assignUpdateIDs).Return(nil).Once()
		f.configs.On("CreateUpdate", mock.MatchedBy(func(u *model.ResourceConfigurationUpdate) bool {
			return u.ResourceID == 6 && u.Status == model.UpdateStatusFailure && *u.GroupConfigUpdateID == 3
		})).Run(assignUpdateIDs).Return(nil).Once()
		f.agent.On("UpdateConfiguration", mock.MatchedBy(func(req model.ConfigurationUpdateRequest) bool {
			return req.ResourceID == 5
		})).Return(nil)
		f.configs.On("GroupMemberStatuses", 3).
			Return([]model.UpdateStatus{model.UpdateStatusInProgress, model.UpdateStatusFailure}, nil)
		f.configs.On("GroupUpdate", 3).
			Return(&model.GroupConfigurationUpdate{ID: 3, GroupID: 4, Status: model.UpdateStatusInProgress}, nil)

		gu, err := f.manager.UpdateGroupConfiguration(context.Background(), admin, 4, portConfig("80"), true)
		require.NoError(t, err)
		assert.Equal(t, 3, gu.ID)
		assert.Equal(t, model.UpdateStatusInProgress, gu.Status)
		f.configs.AssertNotCalled(t, "CompleteGroupUpdate", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("returns the group outcome once every member is done", func(t *testing.T) {
		f := newManagerFixture()
		f.authz.On("HasGroupPermission", 2, model.PermissionConfigureWrite, 4).Return(true)
		f.groups.On("MemberIDs", 4).Return([]int{6}, nil)
		f.configs.On("CreateGroupUpdate", mock.Anything).Run(func(args mock.Arguments) {
			args.Get(0).(*model.GroupConfigurationUpdate).ID = 3
		}).Return(nil)
		f.configs.On("ResourceType", 6).Return(&model.ResourceType{ConfigFormat: model.ConfigFormatStructured}, nil)
		f.configs.On("HasUpdateInProgress", 6).Return(true, nil)
		f.configs.On("CreateUpdate", mock.Anything).Run(assignUpdateIDs).Return(nil)
		f.configs.On("GroupMemberStatuses", 3).Return([]model.UpdateStatus{model.UpdateStatusFailure}, nil)
		f.configs.On("CompleteGroupUpdate", 3, model.UpdateStatusFailure, "1 of 1 member updates failed").Return(nil)
		f.configs.On("GroupUpdate", 3).Return(&model.GroupConfigurationUpdate{
			ID: 3, GroupID: 4, Status: model.UpdateStatusFailure, ErrorMessage: "1 of 1 member updates failed",
		}, nil)

		gu, err := f.manager.UpdateGroupConfiguration(context.Background(), admin, 4, portConfig("80"), true)
		require.NoError(t, err)
		assert.Equal(t, model.UpdateStatusFailure, gu.Status)
		assert.Equal(t, "1 of 1 member updates failed", gu.ErrorMessage)
		f.assertExpectations(t)
	})
}

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []model.UpdateStatus
		want     model.UpdateStatus
		failed   int
	}{
		{"all succeeded", []model.UpdateStatus{model.UpdateStatusSuccess, model.UpdateStatusNoChange}, model.UpdateStatusSuccess, 0},
		{"one failed", []model.UpdateStatus{model.UpdateStatusSuccess, model.UpdateStatusFailure}, model.UpdateStatusFailure, 1},
		{"still running", []model.UpdateStatus{model.UpdateStatusInProgress, model.UpdateStatusFailure}, model.UpdateStatusInProgress, 1},
		{"no members", nil, model.UpdateStatusSuccess, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, failed := AggregateStatus(tt.statuses)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.failed, failed)
		})
	}
}
