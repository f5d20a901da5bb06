// Package audit records security relevant operations as RFC5424 syslog
// lines on stdout and, when RHQ_AUDIT_DATABASE_URL is set, as rows in
// rhq_audit_message.
//
//	audit.Log(audit.ConfigurationUpdateEvent{
//		Subject:    "rhqadmin",
//		ClientIP:   "10.0.0.1",
//		ResourceID: 10001,
//		From:       "structured",
//		Success:    true,
//	})
//
// RHQ_AUDIT_ENABLED=false disables auditing.
package audit
