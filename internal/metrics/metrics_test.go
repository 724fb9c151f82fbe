package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMiddlewareLabelsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/v1/listings/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/listings/42", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	body := scrape(t)
	assert.Contains(t, body, `discovery_http_requests_total{method="GET",route="/v1/listings/:id",status="204"}`)
	assert.NotContains(t, body, "/v1/listings/42")
}

func TestDomainCounters(t *testing.T) {
	ObserveEvaluation(3)
	RecordSuggestion("hit")
	RecordReload(nil)
	RecordReload(errors.New("bad fixture"))

	body := scrape(t)
	assert.Contains(t, body, "discovery_pipeline_evaluations_total")
	assert.Contains(t, body, `discovery_suggest_lookups_total{outcome="hit"}`)
	assert.Contains(t, body, `discovery_catalog_reloads_total{status="failed"}`)
	assert.Contains(t, body, `discovery_catalog_reloads_total{status="success"}`)
}
