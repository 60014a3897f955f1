package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"degrees/backend/internal/degrees"
	"degrees/backend/internal/loader"
	"degrees/backend/internal/search"
	"degrees/backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	res, err := loader.LoadDirectory(context.Background(), "../loader/testdata/small")
	require.NoError(t, err)
	return NewRouter(degrees.NewService(res.Graph, time.Second), search.Breadth, zap.NewNop())
}

func get(t *testing.T, router *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", url, nil)
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, body := get(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(17), body["people"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestResolvePerson(t *testing.T) {
	router := newTestRouter(t)

	w, body := get(t, router, "/api/people?name=kevin%20bacon")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unique", body["kind"])
	assert.Equal(t, "102", body["person_id"])

	w, body = get(t, router, "/api/people?name=Emma%20Watson")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ambiguous", body["kind"])
	assert.Len(t, body["candidates"], 2)

	w, _ = get(t, router, "/api/people?name=Nobody")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = get(t, router, "/api/people")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggest(t *testing.T) {
	router := newTestRouter(t)

	w, body := get(t, router, "/api/people/search?prefix=tom")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["people"], 2)

	w, _ = get(t, router, "/api/people/search?prefix=tom&limit=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPerson(t *testing.T) {
	router := newTestRouter(t)

	w, body := get(t, router, "/api/people/158")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tom Hanks", body["name"])
	assert.Len(t, body["movies"], 2)

	w, _ = get(t, router, "/api/people/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFindPath(t *testing.T) {
	router := newTestRouter(t)

	w, body := get(t, router, "/api/path?source=Tom%20Cruise&target=Tom%20Hanks&discipline=breadth")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, float64(2), body["degrees"])
	assert.Equal(t, "2 degrees of separation.", body["summary"])
	assert.Equal(t, []interface{}{
		"1: Tom Cruise and Kevin Bacon starred in A Few Good Men",
		"2: Kevin Bacon and Tom Hanks starred in Apollo 13",
	}, body["lines"])
}

func TestFindPath_ConfiguredDefaultDiscipline(t *testing.T) {
	t.Setenv("DEFAULT_DISCIPLINE", "depth")
	cfg, err := config.Load()
	require.NoError(t, err)
	d, err := search.ParseDiscipline(cfg.DefaultDiscipline)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	res, err := loader.LoadDirectory(context.Background(), "../loader/testdata/small")
	require.NoError(t, err)
	router := NewRouter(degrees.NewService(res.Graph, time.Second), d, zap.NewNop())

	w, body := get(t, router, "/api/path?source=Kevin%20Bacon&target=Tom%20Hanks")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "depth", body["discipline"])

	w, body = get(t, router, "/api/path?source=Kevin%20Bacon&target=Tom%20Hanks&discipline=breadth")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "breadth", body["discipline"])
}

func TestFindPath_EmptyDefaultFallsBackToBreadth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	res, err := loader.LoadDirectory(context.Background(), "../loader/testdata/small")
	require.NoError(t, err)
	router := NewRouter(degrees.NewService(res.Graph, time.Second), "", zap.NewNop())

	w, body := get(t, router, "/api/path?source_id=102&target_id=158")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "breadth", body["discipline"])
}

func TestFindPath_NotConnected(t *testing.T) {
	router := newTestRouter(t)

	w, body := get(t, router, "/api/path?source=Kevin%20Bacon&target_id=914613&discipline=depth")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["found"])
	assert.Equal(t, float64(-1), body["degrees"])
	assert.Equal(t, "Not connected.", body["summary"])
}

func TestFindPath_Errors(t *testing.T) {
	router := newTestRouter(t)

	w, body := get(t, router, "/api/path?source=Kevin%20Bacon&target=Tom%20Hanks&discipline=greedy")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "'breadth' or 'depth'")

	w, body = get(t, router, "/api/path?source=Kevin%20Bacon&target=Emma%20Watson")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "target", body["side"])

	w, _ = get(t, router, "/api/path?source=Kevin%20Bacon&target=Z")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = get(t, router, "/api/path?source_id=102&target_id=Z")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = get(t, router, "/api/path?target=Tom%20Hanks")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	get(t, router, "/api/path?source_id=102&target_id=158")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "degrees_searches_total")
}
