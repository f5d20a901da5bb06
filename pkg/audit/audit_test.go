package audit

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(buf *bytes.Buffer) *Logger {
	l := NewLogger()
	l.SetWriter(buf)
	l.hostname = "rhq-server"
	l.pid = 42
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return l
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Log(AuthenticateEvent{
		Subject:  "rhqadmin",
		ClientIP: "192.168.1.1",
		Success:  true,
	})

	want := `<86>1 2024-03-01T12:00:00.000Z rhq-server rhq 42 authn ` +
		`[action@2312 operation="authenticate" result="success"][auth@2312 user="rhqadmin"][client@2312 ip="192.168.1.1"] ` +
		"rhqadmin successfully authenticated\n"
	if got := buf.String(); got != want {
		t.Errorf("Log() =\n%q\nwant\n%q", got, want)
	}
}

func TestEscapeSDValue(t *testing.T) {
	got := escapeSDValue(`a"b]c\d`)
	want := `"a\"b\]c\\d"`
	if got != want {
		t.Errorf("escapeSDValue() = %s, want %s", got, want)
	}
}

func TestEvents(t *testing.T) {
	tests := []struct {
		name      string
		event     Event
		wantMsg   string
		wantSev   Severity
		wantFac   int
		wantMsgID string
	}{
		{
			name:      "failed authentication",
			event:     AuthenticateEvent{Subject: "bob", ClientIP: "10.0.0.1", ErrorMessage: "invalid credentials"},
			wantMsg:   "bob failed to authenticate: invalid credentials",
			wantSev:   SeverityWarning,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "authn",
		},
		{
			name: "resource configuration update",
			event: ConfigurationUpdateEvent{
				Subject: "rhqadmin", ResourceID: 10001, From: "raw", UpdateID: 7, Status: "INPROGRESS", Success: true,
			},
			wantMsg:   "rhqadmin requested a raw configuration update of resource 10001 (update 7, INPROGRESS)",
			wantSev:   SeverityInfo,
			wantFac:   FacilityLocal0,
			wantMsgID: "config-update",
		},
		{
			name: "rejected group configuration update",
			event: ConfigurationUpdateEvent{
				Subject: "bob", GroupID: 3, ErrorMessage: "forbidden",
			},
			wantMsg:   "bob failed to update the configuration of group 3: forbidden",
			wantSev:   SeverityWarning,
			wantFac:   FacilityLocal0,
			wantMsgID: "config-update",
		},
		{
			name:      "list",
			event:     ListEvent{Subject: "rhqadmin", Entity: "Resource", Search: "web", Success: true},
			wantMsg:   "rhqadmin successfully listed with parameters: entity=Resource, search=web",
			wantSev:   SeverityInfo,
			wantFac:   FacilityLocal0,
			wantMsgID: "list",
		},
		{
			name:      "show",
			event:     ShowEvent{Subject: "bob", Entity: "Resource", ID: 5, ErrorMessage: "not found"},
			wantMsg:   "bob tried to fetch Resource 5: not found",
			wantSev:   SeverityWarning,
			wantFac:   FacilityLocal0,
			wantMsgID: "show",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.event.Severity(); got != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", got, tt.wantSev)
			}
			if got := tt.event.Facility(); got != tt.wantFac {
				t.Errorf("Facility() = %v, want %v", got, tt.wantFac)
			}
			if got := tt.event.MessageID(); got != tt.wantMsgID {
				t.Errorf("MessageID() = %q, want %q", got, tt.wantMsgID)
			}
		})
	}
}

func TestConfigurationUpdateStructuredData(t *testing.T) {
	sd := ConfigurationUpdateEvent{Subject: "rhqadmin", GroupID: 3, From: "structured", UpdateID: 12, Success: true}.StructuredData()

	if sd[SDIDSubject]["group"] != "3" {
		t.Errorf("group = %q", sd[SDIDSubject]["group"])
	}
	if _, ok := sd[SDIDSubject]["resource"]; ok {
		t.Error("group updates should not name a resource")
	}
	if sd[SDIDAction]["update"] != "12" || sd[SDIDAction]["from"] != "structured" {
		t.Errorf("action = %v", sd[SDIDAction])
	}
}

func TestDisabledAuditWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	prev := DefaultLogger
	DefaultLogger = newTestLogger(&buf)
	defer func() {
		DefaultLogger = prev
		SetEnabled(true)
	}()

	SetEnabled(false)
	Log(ShowEvent{Subject: "rhqadmin", Entity: "Resource", ID: 1, Success: true})

	if strings.TrimSpace(buf.String()) != "" {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
