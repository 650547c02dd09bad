package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/budgetglass/backend/internal/identity"
	"github.com/budgetglass/backend/internal/router"
	"github.com/budgetglass/backend/internal/upstream"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// App builds the full application engine, pointed at the data service
// running at upstreamURL. The identity store lives in a temporary
// directory that is cleaned up with the test.
func App(t *testing.T, upstreamURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store, err := identity.Connect(t.TempDir())
	require.Nil(t, err)

	r, teardown, err := router.Router()
	t.Cleanup(teardown)
	require.Nil(t, err)

	client := upstream.New(upstreamURL)
	router.AttachRoutes(&r.RouterGroup, client, client, store)

	return r
}

// StubResponse is a canned data service response.
type StubResponse struct {
	Status int // defaults to 200
	Body   any // marshalled to JSON, strings are sent verbatim
}

// StubUpstream runs a fake data service that answers with the
// configured responses. Paths without a configured response get a 404
// with the upstream error shape.
func StubUpstream(t *testing.T, responses map[string]StubResponse) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response, ok := responses[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not found"}`))
			return
		}

		status := response.Status
		if status == 0 {
			status = http.StatusOK
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		switch body := response.Body.(type) {
		case string:
			_, _ = w.Write([]byte(body))
		default:
			_ = json.NewEncoder(w).Encode(body)
		}
	}))

	t.Cleanup(server.Close)
	return server
}
