package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/rhq-project/rhq-in-go/pkg/plugincontainer"
	"github.com/rhq-project/rhq-in-go/pkg/server/middleware"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var validation *configuration.ValidationError
	var badRequest *badRequestError
	switch {
	case errors.As(err, &badRequest), errors.As(err, &validation),
		errors.Is(err, configuration.ErrUpdateNotSupported),
		errors.Is(err, configuration.ErrConfigurationNotSupported),
		errors.Is(err, configuration.ErrTranslationNotSupported),
		errors.Is(err, criteria.ErrArgumentMismatch):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, store.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, configuration.ErrUpdateInProgress):
		return http.StatusConflict
	case errors.Is(err, plugincontainer.ErrFacetLockTimeout):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func respondWithStoreError(w http.ResponseWriter, err error) {
	respondWithError(w, statusFor(err), err.Error())
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// badRequestError marks malformed request parameters.
type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string {
	return e.msg
}

func badRequest(format string, args ...interface{}) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

// subjectOf returns the subject the JWT middleware authenticated.
func subjectOf(r *http.Request) *model.Subject {
	subject, _ := middleware.SubjectFromContext(r.Context())
	return subject
}

// clientIP returns the caller's address. X-Forwarded-For is honored only
// when the direct peer is a trusted proxy.
func clientIP(r *http.Request, cfg *config.RhqConfig) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" && cfg.IsTrustedProxy(host) {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return host
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, badRequest("invalid %s %q", name, mux.Vars(r)[name])
	}
	return id, nil
}

func queryInt(q url.Values, name string) (int, bool, error) {
	v := q.Get(name)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, badRequest("invalid %s %q", name, v)
	}
	return n, true, nil
}

func queryBool(q url.Values, name string) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, badRequest("invalid %s %q", name, v)
	}
	return b, nil
}

// applySearchParams reads the parameters every search endpoint shares:
// strict, caseSensitive, filtersOptional, page, pageSize and
// sort=field[:asc|desc]. sortable maps sort parameter names to criteria
// sort fields. Page sizes default to paging.DefaultPageSize and are capped
// at maxPageSize.
func applySearchParams(c *criteria.Criteria, q url.Values, sortable map[string]string, maxPageSize int) error {
	var err error
	if c.Strict, err = queryBool(q, "strict"); err != nil {
		return err
	}
	if c.CaseSensitive, err = queryBool(q, "caseSensitive"); err != nil {
		return err
	}
	if c.FiltersOptional, err = queryBool(q, "filtersOptional"); err != nil {
		return err
	}

	for _, s := range q["sort"] {
		name, dir, _ := strings.Cut(s, ":")
		field, ok := sortable[name]
		if !ok {
			return badRequest("cannot sort by %q", name)
		}
		ordering := paging.OrderingASC
		if dir != "" {
			if ordering, err = paging.OrderingString(strings.ToUpper(dir)); err != nil {
				return badRequest("invalid sort order %q", dir)
			}
		}
		c.SetSort(field, ordering)
	}

	page, _, err := queryInt(q, "page")
	if err != nil {
		return err
	}
	size, hasSize, err := queryInt(q, "pageSize")
	if err != nil {
		return err
	}
	if page < 0 {
		return badRequest("page must not be negative")
	}
	if !hasSize {
		size = paging.DefaultPageSize
	}
	if size <= 0 || size > maxPageSize {
		size = maxPageSize
	}
	c.SetPaging(page, size)
	return nil
}

// listOf converts a page into the JSON body of a search response.
func listOf[T any](page *paging.PageList[T]) map[string]interface{} {
	return map[string]interface{}{
		"items":      page.Items,
		"totalSize":  page.TotalSize,
		"pageNumber": page.PageControl.PageNumber,
		"pageSize":   page.PageControl.PageSize,
	}
}
