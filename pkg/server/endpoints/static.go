package endpoints

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/rhq-project/rhq-in-go/pkg/server"
)

//go:embed static/css static/status.md
var staticFiles embed.FS

// RegisterStaticFiles serves the embedded stylesheets under /css/.
func RegisterStaticFiles(srv *server.Server) {
	cssFS, _ := fs.Sub(staticFiles, "static/css")
	srv.Router.PathPrefix("/css/").Handler(
		http.StripPrefix("/css/", http.FileServer(http.FS(cssFS))),
	)

	srv.Router.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
}
