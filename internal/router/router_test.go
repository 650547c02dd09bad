package router_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/budgetglass/backend/internal/identity"
	"github.com/budgetglass/backend/internal/router"
	"github.com/budgetglass/backend/internal/upstream"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attach(t *testing.T, r *gin.Engine) {
	store, err := identity.Connect(t.TempDir())
	require.Nil(t, err)

	client := upstream.New("http://localhost:8000/api/v1")
	router.AttachRoutes(&r.RouterGroup, client, client, store)
}

func TestRoutes(t *testing.T) {
	r, teardown, err := router.Router()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	attach(t, r)

	var routes []string
	for _, route := range r.Routes() {
		routes = append(routes, route.Method+" "+route.Path)
	}

	assert.Contains(t, routes, "GET /version")
	assert.Contains(t, routes, "GET /healthz")
	assert.Contains(t, routes, "GET /metrics")
	assert.Contains(t, routes, "GET /v1/dashboard")
	assert.Contains(t, routes, "POST /v1/ask")
}

func TestPprofOn(t *testing.T) {
	os.Setenv("ENABLE_PPROF", "true")

	r, teardown, err := router.Router()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	attach(t, r)

	var routes []string
	for _, route := range r.Routes() {
		routes = append(routes, route.Path)
	}
	assert.Contains(t, routes, "/debug/pprof/")

	os.Unsetenv("ENABLE_PPROF")
}

func TestPprofOff(t *testing.T) {
	r, teardown, err := router.Router()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	attach(t, r)

	for _, route := range r.Routes() {
		assert.NotContains(t, route.Path, "pprof", "pprof routes are registered erroneously! Route: %s", route)
	}
}

// TestCorsSetting checks that setting of CORS works.
// It does not check the actual headers as this is already done in testing of the module.
func TestCorsSetting(t *testing.T) {
	os.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000 https://example.com")

	_, teardown, err := router.Router()
	defer teardown()

	assert.Nil(t, err)
	os.Unsetenv("CORS_ALLOW_ORIGINS")
}

func TestGetRoot(t *testing.T) {
	r, teardown, err := router.Router()
	defer teardown()
	require.Nil(t, err)

	attach(t, r)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "/docs/index.html")
	assert.Contains(t, recorder.Body.String(), "/v1")
}

func TestGetVersion(t *testing.T) {
	r, teardown, err := router.Router()
	defer teardown()
	require.Nil(t, err)

	attach(t, r)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "http://example.com/version", nil)
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data": {"version": "0.0.0"}}`, recorder.Body.String())
}

func TestOptionsRoot(t *testing.T) {
	r, teardown, err := router.Router()
	defer teardown()
	require.Nil(t, err)

	attach(t, r)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "http://example.com/", nil)
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "GET", recorder.Header().Get("allow"))
}
