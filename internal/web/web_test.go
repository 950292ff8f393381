package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServesIndexAndAssets(t *testing.T) {
	r := mux.NewRouter()
	RegisterRoutes(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), `id="drop-area"`)
	assert.Contains(t, rr.Body.String(), `id="uploadBtn"`)
	assert.NotContains(t, rr.Body.String(), "accept=", "the picker accepts any file type")

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/main.js", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/api/upload")
	assert.Equal(t, "public, max-age=3600", rr.Header().Get("Cache-Control"))

	js := rr.Body.String()
	tryAt, okAt, catchAt := strings.Index(js, "try {"), strings.Index(js, "res.ok"), strings.Index(js, "catch (err)")
	assert.True(t, tryAt >= 0 && tryAt < okAt && okAt < catchAt, "response rendering must sit inside the try block")

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
