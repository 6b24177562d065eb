package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaRoot(t *testing.T) {
	t.Parallel()

	h := NewMetaHandler()

	rr := httptest.NewRecorder()
	h.Root(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp RootResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "FitTrack API", resp.Message)
	assert.Equal(t, Version, resp.Version)
	assert.NotEmpty(t, resp.Docs)
}

func TestMetaVersionInfo(t *testing.T) {
	t.Parallel()

	h := NewMetaHandler()

	rr := httptest.NewRecorder()
	h.VersionInfo(rr, httptest.NewRequest(http.MethodGet, "/api/v1", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp VersionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{
		"/api/v1/workout",
		"/api/v1/progress",
		"/api/v1/user",
	}, resp.Endpoints)
}

func TestMetaOpenAPISpec(t *testing.T) {
	t.Parallel()

	h := NewMetaHandler()

	rr := httptest.NewRecorder()
	h.OpenAPISpec(rr, httptest.NewRequest(http.MethodGet, "/api/v1/docs/openapi.json", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	// The embedded document must be valid JSON and describe the API.
	var spec map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &spec))
	assert.Contains(t, spec, "openapi")
	assert.Contains(t, spec, "paths")
}

func TestMetaDocsPage(t *testing.T) {
	t.Parallel()

	h := NewMetaHandler()

	rr := httptest.NewRecorder()
	h.Docs(rr, httptest.NewRequest(http.MethodGet, "/api/v1/docs", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "/api/v1/docs/openapi.json")
}
