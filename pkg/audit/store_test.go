package audit

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStoreSave(t *testing.T) {
	tests := []struct {
		name    string
		event   Event
		wantFac int
		wantSev Severity
		wantID  string
	}{
		{"configuration update", ConfigurationUpdateEvent{Subject: "rhqadmin", ResourceID: 1, Success: true}, FacilityLocal0, SeverityInfo, "config-update"},
		{"failed authentication", AuthenticateEvent{Subject: "bob"}, FacilityAuthPriv, SeverityWarning, "authn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("failed to create sqlmock: %v", err)
			}
			defer db.Close()

			mock.ExpectExec(`INSERT INTO rhq_audit_message`).
				WithArgs(
					tt.wantFac,
					int(tt.wantSev),
					sqlmock.AnyArg(), // timestamp
					sqlmock.AnyArg(), // hostname
					AppName,
					sqlmock.AnyArg(), // procid
					tt.wantID,
					sqlmock.AnyArg(), // sdata
					tt.event.Message(),
				).
				WillReturnResult(sqlmock.NewResult(1, 1))

			if err := NewStoreWithDB(db).Save(tt.event); err != nil {
				t.Errorf("Save() error = %v", err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestStoreNilDB(t *testing.T) {
	store := &Store{}

	if err := store.Save(ShowEvent{Subject: "rhqadmin"}); err != nil {
		t.Errorf("Save() with nil db should not error, got: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() with nil db should not error, got: %v", err)
	}
}

func TestStoreClose(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	mock.ExpectClose()
	if err := NewStoreWithDB(db).Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
