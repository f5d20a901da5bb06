package endpoints

import (
	"bytes"
	"html"
	"net/http"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/server"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// Version is reported by /status. RHQ_VERSION_DISPLAY overrides it.
var Version = "4.14.0"

var started = time.Now()

var statusTemplate = template.Must(template.ParseFS(staticFiles, "static/status.md"))

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// StatusResponse is the JSON form of the status page
type StatusResponse struct {
	Title         string `json:"title"`
	Version       string `json:"version"`
	Database      string `json:"database"`
	SchemaVersion uint   `json:"schemaVersion"`
	Dirty         bool   `json:"dirty"`
	Started       string `json:"started"`
}

// HealthResponse is the body of /health
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// RegisterStatusEndpoints registers the unauthenticated status and health
// endpoints
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleStatus(s.HealthStore, s.Config)).Methods("GET")
	s.Router.HandleFunc("/status", handleStatus(s.HealthStore, s.Config)).Methods("GET")
	s.Router.HandleFunc("/health", handleHealth(s.HealthStore)).Methods("GET")
}

func currentStatus(health store.HealthStore, cfg *config.RhqConfig) StatusResponse {
	version := os.Getenv("RHQ_VERSION_DISPLAY")
	if version == "" {
		version = Version
	}
	status := StatusResponse{
		Title:    cfg.StatusPageTitle,
		Version:  version,
		Database: "ok",
		Started:  started.UTC().Format(time.RFC3339),
	}
	if err := health.CheckConnectivity(); err != nil {
		status.Database = "unavailable"
		return status
	}
	if v, dirty, err := health.SchemaVersion(); err == nil {
		status.SchemaVersion, status.Dirty = v, dirty
	}
	return status
}

// renderStatus fills the markdown template and converts it to HTML.
func renderStatus(status StatusResponse) ([]byte, error) {
	var md bytes.Buffer
	if err := statusTemplate.Execute(&md, status); err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := markdown.Convert(md.Bytes(), &body); err != nil {
		return nil, err
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<link rel=\"stylesheet\" href=\"/css/status-page.css\">\n")
	page.WriteString("<title>" + html.EscapeString(status.Title) + " Status</title>\n</head>\n<body>\n<main>\n")
	page.Write(body.Bytes())
	page.WriteString("</main>\n</body>\n</html>\n")
	return page.Bytes(), nil
}

func handleStatus(health store.HealthStore, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := currentStatus(health, cfg)

		if r.URL.Query().Get("format") == "json" || strings.Contains(r.Header.Get("Accept"), "application/json") {
			respondWithJSON(w, http.StatusOK, status)
			return
		}

		page, err := renderStatus(status)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}
}

func handleHealth(health store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := health.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "error",
				Error:  "database connectivity check failed",
			})
			return
		}
		if _, dirty, err := health.SchemaVersion(); err == nil && dirty {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "error",
				Error:  "database schema is dirty",
			})
			return
		}
		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
