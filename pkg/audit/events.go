package audit

import (
	"fmt"
	"strconv"
)

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func severity(success bool) Severity {
	if success {
		return SeverityInfo
	}
	return SeverityWarning
}

func withError(msg, errMsg string) string {
	if errMsg != "" {
		return msg + ": " + errMsg
	}
	return msg
}

// AuthenticateEvent records a token request.
type AuthenticateEvent struct {
	Subject      string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string { return "authn" }

func (e AuthenticateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", e.Subject)
	}
	return withError(fmt.Sprintf("%s failed to authenticate", e.Subject), e.ErrorMessage)
}

func (e AuthenticateEvent) Severity() Severity { return severity(e.Success) }

func (e AuthenticateEvent) Facility() int { return FacilityAuthPriv }

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth:   {"user": e.Subject},
		SDIDClient: {"ip": e.ClientIP},
		SDIDAction: {"operation": "authenticate", "result": result(e.Success)},
	}
}

// ConfigurationUpdateEvent records a request to change the configuration
// of a resource or of every member of a group.
type ConfigurationUpdateEvent struct {
	Subject    string
	ClientIP   string
	ResourceID int
	GroupID    int
	// From is "structured" or "raw".
	From         string
	UpdateID     int
	Status       string
	Success      bool
	ErrorMessage string
}

func (e ConfigurationUpdateEvent) MessageID() string { return "config-update" }

func (e ConfigurationUpdateEvent) target() string {
	if e.GroupID != 0 {
		return fmt.Sprintf("group %d", e.GroupID)
	}
	return fmt.Sprintf("resource %d", e.ResourceID)
}

func (e ConfigurationUpdateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s requested a %s configuration update of %s (update %d, %s)",
			e.Subject, e.From, e.target(), e.UpdateID, e.Status)
	}
	return withError(fmt.Sprintf("%s failed to update the configuration of %s", e.Subject, e.target()), e.ErrorMessage)
}

func (e ConfigurationUpdateEvent) Severity() Severity { return severity(e.Success) }

func (e ConfigurationUpdateEvent) Facility() int { return FacilityLocal0 }

func (e ConfigurationUpdateEvent) StructuredData() map[string]map[string]string {
	subject := map[string]string{}
	if e.GroupID != 0 {
		subject["group"] = strconv.Itoa(e.GroupID)
	} else {
		subject["resource"] = strconv.Itoa(e.ResourceID)
	}
	action := map[string]string{"operation": "update", "result": result(e.Success)}
	if e.From != "" {
		action["from"] = e.From
	}
	if e.UpdateID != 0 {
		action["update"] = strconv.Itoa(e.UpdateID)
	}
	return map[string]map[string]string{
		SDIDAuth:    {"user": e.Subject},
		SDIDSubject: subject,
		SDIDClient:  {"ip": e.ClientIP},
		SDIDAction:  action,
	}
}

// ListEvent records a criteria search.
type ListEvent struct {
	Subject      string
	ClientIP     string
	Entity       string
	Search       string
	PageNumber   int
	PageSize     int
	Success      bool
	ErrorMessage string
}

func (e ListEvent) MessageID() string { return "list" }

func (e ListEvent) Message() string {
	params := fmt.Sprintf("entity=%s", e.Entity)
	if e.Search != "" {
		params += fmt.Sprintf(", search=%s", e.Search)
	}
	if e.Success {
		return fmt.Sprintf("%s successfully listed with parameters: %s", e.Subject, params)
	}
	return withError(fmt.Sprintf("%s failed to list with parameters: %s", e.Subject, params), e.ErrorMessage)
}

func (e ListEvent) Severity() Severity { return severity(e.Success) }

func (e ListEvent) Facility() int { return FacilityLocal0 }

func (e ListEvent) StructuredData() map[string]map[string]string {
	subject := map[string]string{"entity": e.Entity}
	if e.Search != "" {
		subject["search"] = e.Search
	}
	if e.PageSize != 0 {
		subject["page"] = strconv.Itoa(e.PageNumber)
		subject["size"] = strconv.Itoa(e.PageSize)
	}
	return map[string]map[string]string{
		SDIDAuth:    {"user": e.Subject},
		SDIDSubject: subject,
		SDIDClient:  {"ip": e.ClientIP},
		SDIDAction:  {"operation": "list", "result": result(e.Success)},
	}
}

// ShowEvent records a read of a single entity.
type ShowEvent struct {
	Subject      string
	ClientIP     string
	Entity       string
	ID           int
	Success      bool
	ErrorMessage string
}

func (e ShowEvent) MessageID() string { return "show" }

func (e ShowEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s fetched %s %d", e.Subject, e.Entity, e.ID)
	}
	return withError(fmt.Sprintf("%s tried to fetch %s %d", e.Subject, e.Entity, e.ID), e.ErrorMessage)
}

func (e ShowEvent) Severity() Severity { return severity(e.Success) }

func (e ShowEvent) Facility() int { return FacilityLocal0 }

func (e ShowEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth:    {"user": e.Subject},
		SDIDSubject: {"entity": e.Entity, "id": strconv.Itoa(e.ID)},
		SDIDClient:  {"ip": e.ClientIP},
		SDIDAction:  {"operation": "show", "result": result(e.Success)},
	}
}
