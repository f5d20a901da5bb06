package gorm

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

const globalPermissionQuery = `SELECT COUNT\(\*\)\s+FROM rhq_permission p\s+JOIN rhq_subject_role_map s`

func TestAuthzStore(t *testing.T) {
	t.Run("global permission", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(globalPermissionQuery).
			WithArgs(7, "MANAGE_SECURITY").
			WillReturnRows(countRows(1))

		assert.True(t, NewAuthzStore(db).HasGlobalPermission(7, model.PermissionManageSecurity))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inventory managers hold resource permissions", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(globalPermissionQuery).
			WithArgs(7, "MANAGE_INVENTORY").
			WillReturnRows(countRows(1))

		assert.True(t, NewAuthzStore(db).HasResourcePermission(7, model.PermissionConfigureWrite, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("resource permission through a group", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(globalPermissionQuery).WillReturnRows(countRows(0))
		mock.ExpectQuery(`FROM rhq_resource_group_res_imp_map g`).
			WithArgs(7, 3, "CONFIGURE_WRITE").
			WillReturnRows(countRows(0))

		assert.False(t, NewAuthzStore(db).HasResourcePermission(7, model.PermissionConfigureWrite, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("private group owner", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(globalPermissionQuery).WillReturnRows(countRows(0))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rhq_resource_group WHERE id = \$1 AND subject_id = \$2`).
			WithArgs(4, 7).
			WillReturnRows(countRows(1))

		assert.True(t, NewAuthzStore(db).HasGroupPermission(7, model.PermissionConfigureWrite, 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearchResources(t *testing.T) {
	t.Run("scoped to the subject", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(globalPermissionQuery).WillReturnRows(countRows(0))
		mock.ExpectQuery(`SELECT resource\.\* FROM rhq_resource resource WHERE .*resource\.id IN \( SELECT g\.resource_id .*s\.subject_id = 7`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "web"))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rhq_resource resource WHERE`).
			WillReturnRows(countRows(1))

		c := criteria.NewResourceCriteria()
		c.AddFilterName("web")
		c.SetPaging(0, 20)
		page, err := NewResourcesStore(db).SearchResources(context.Background(), c, 7)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "web", page.Items[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inventory managers are not scoped", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(globalPermissionQuery).WillReturnRows(countRows(1))
		mock.ExpectQuery(`SELECT resource\.\* FROM rhq_resource resource`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "web").AddRow(2, "db"))

		c := criteria.NewResourceCriteria()
		page, err := NewResourcesStore(db).SearchResources(context.Background(), c, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalSize)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFetchResourceNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "rhq_resource"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewResourcesStore(db).FetchResource(42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAncestry(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`(?s)WITH RECURSIVE ancestry.* ORDER BY a\.depth ASC`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "resource_type_id"}).
			AddRow(4, "jboss", 2).
			AddRow(1, "host", 1))
	mock.ExpectQuery(`SELECT rt\.\* FROM rhq_resource_type rt`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "plugin"}).
			AddRow(1, "Linux", "platform").
			AddRow(2, "JBossAS", "jboss"))

	parents, err := NewResourcesStore(db).Ancestry(5)
	require.NoError(t, err)
	require.Len(t, parents, 2)
	assert.Equal(t, "jboss", parents[0].Name)
	require.NotNil(t, parents[0].ResourceType)
	assert.Equal(t, "JBossAS", parents[0].ResourceType.Name)
	assert.Equal(t, "Linux", parents[1].ResourceType.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasUpdateInProgress(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM rhq_resource_config_update u\s+WHERE u\.resource_id = \$1 AND u\.status = 'INPROGRESS'`).
		WithArgs(3).
		WillReturnRows(countRows(1))

	inProgress, err := NewConfigurationStore(db).HasUpdateInProgress(3)
	require.NoError(t, err)
	assert.True(t, inProgress)
}

func TestLatestConfiguration(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`(?s)SELECT c\.\*.* ORDER BY u\.ctime DESC, u\.id DESC LIMIT 1 OFFSET 0`).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewConfigurationStore(db).LatestConfiguration(3)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("with raws", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT c\.\*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "version", "properties"}).AddRow(9, 1, `{"port":"80"}`))
		mock.ExpectQuery(`SELECT \* FROM "rhq_raw_config" WHERE config_id = \$1 ORDER BY path`).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows([]string{"id", "config_id", "path", "contents"}).AddRow(1, 9, "/etc/app.yml", "port: 80\n"))

		c, err := NewConfigurationStore(db).LatestConfiguration(3)
		require.NoError(t, err)
		assert.Equal(t, "80", c.Properties["port"])
		require.Len(t, c.RawConfigurations, 1)
		assert.Equal(t, "/etc/app.yml", c.RawConfigurations[0].Path)
	})
}

func TestGroupMemberStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT u\.status\s+FROM rhq_resource_config_update u`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("SUCCESS").AddRow("FAILURE"))

	statuses, err := NewConfigurationStore(db).GroupMemberStatuses(2)
	require.NoError(t, err)
	assert.Equal(t, []model.UpdateStatus{model.UpdateStatusSuccess, model.UpdateStatusFailure}, statuses)
}

func TestGroupUpdate(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "rhq_group_config_update"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "group_id", "status", "error_message"}).
				AddRow(3, 4, "FAILURE", "1 of 2 member updates failed"))

		gu, err := NewConfigurationStore(db).GroupUpdate(3)
		require.NoError(t, err)
		assert.Equal(t, 4, gu.GroupID)
		assert.Equal(t, model.UpdateStatusFailure, gu.Status)
		assert.Equal(t, "1 of 2 member updates failed", gu.ErrorMessage)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "rhq_group_config_update"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewConfigurationStore(db).GroupUpdate(3)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestAuthenticate(t *testing.T) {
	principalRows := func(password string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "principal", "password"}).AddRow(1, "rhqadmin", model.HashPassword(password))
	}
	subjectRows := func(active bool) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "factive"}).AddRow(2, "rhqadmin", active)
	}

	t.Run("valid password", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "rhq_principal" WHERE principal = \$1`).
			WithArgs("rhqadmin").
			WillReturnRows(principalRows("secret"))
		mock.ExpectQuery(`SELECT \* FROM "rhq_subject" WHERE name = \$1`).
			WithArgs("rhqadmin").
			WillReturnRows(subjectRows(true))

		subject, err := NewAuthenticateStore(db).Authenticate("rhqadmin", "secret")
		require.NoError(t, err)
		assert.Equal(t, 2, subject.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "rhq_principal"`).WillReturnRows(principalRows("secret"))

		_, err := NewAuthenticateStore(db).Authenticate("rhqadmin", "guess")
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	})

	t.Run("unknown principal", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "rhq_principal"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewAuthenticateStore(db).Authenticate("nobody", "secret")
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	})

	t.Run("disabled subject", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "rhq_principal"`).WillReturnRows(principalRows("secret"))
		mock.ExpectQuery(`SELECT \* FROM "rhq_subject"`).WillReturnRows(subjectRows(false))

		_, err := NewAuthenticateStore(db).Authenticate("rhqadmin", "secret")
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	})
}
