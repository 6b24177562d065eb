package api

import (
	_ "embed"
	"net/http"

	"github.com/fittrack/fittrack-api/internal/api/shared"
)

// Version is the API version reported by the informational endpoints.
const Version = "v1"

//go:embed openapi.json
var openapiSpec []byte

// docsPage is a minimal HTML shell that renders the embedded OpenAPI
// document. It loads the document from its own route, so the page works
// wherever the server is reachable.
const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>FitTrack API Reference</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
  <redoc spec-url="/api/v1/docs/openapi.json"></redoc>
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`

// MetaHandler serves the unprotected informational endpoints: the root
// landing payload, the version listing, and the API documentation.
type MetaHandler struct{}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Root handles GET / requests.
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message: "FitTrack API",
		Version: Version,
		Docs:    "/api/v1/docs",
	})
}

// VersionInfo handles GET /api/v1 requests, listing the resource groups
// available under the prefix.
func (h *MetaHandler) VersionInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, VersionResponse{
		Version: Version,
		Endpoints: []string{
			"/api/v1/workout",
			"/api/v1/progress",
			"/api/v1/user",
		},
	})
}

// Docs handles GET /api/v1/docs requests with an HTML viewer for the
// OpenAPI document.
func (h *MetaHandler) Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docsPage))
}

// OpenAPISpec handles GET /api/v1/docs/openapi.json requests with the
// machine-readable API description.
func (h *MetaHandler) OpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapiSpec)
}
