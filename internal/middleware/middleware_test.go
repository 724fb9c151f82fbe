package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/javajoker/listing-discovery/internal/models"
)

func serve(r *gin.Engine, headers map[string]string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    models.SessionContext
	}{
		{"anonymous", nil, models.SessionContext{}},
		{"authenticated", map[string]string{AuthenticatedHeader: "true"}, models.SessionContext{Authenticated: true}},
		{"verified", map[string]string{AuthenticatedHeader: "1", VerifiedHeader: "TRUE"}, models.SessionContext{Authenticated: true, Verified: true}},
		{"verified without auth", map[string]string{VerifiedHeader: "true"}, models.SessionContext{}},
		{"garbage", map[string]string{AuthenticatedHeader: "yes please"}, models.SessionContext{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.SessionContext
			r := gin.New()
			r.Use(Session())
			r.GET("/", func(c *gin.Context) { got = GetSession(c) })

			serve(r, tt.headers, "/")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeaderLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.GET("/", func(c *gin.Context) { got = HeaderLocation(c).DefaultLocation() })

	serve(r, map[string]string{LocationHeader: "  Delhi NCR "}, "/")
	assert.Equal(t, "Delhi NCR", got)

	serve(r, nil, "/")
	assert.Empty(t, got)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := serve(r, nil, "/")
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	given := uuid.NewString()
	w = serve(r, map[string]string{RequestIDHeader: given}, "/")
	assert.Equal(t, given, w.Header().Get(RequestIDHeader))

	w = serve(r, map[string]string{RequestIDHeader: "not-a-uuid"}, "/")
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestI18nMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		path    string
		want    string
	}{
		{"default", nil, "/", "en"},
		{"traditional chinese", map[string]string{"Accept-Language": "zh-TW,zh;q=0.9,en;q=0.8"}, "/", "zh_TW"},
		{"regional english", map[string]string{"Accept-Language": "en-IN"}, "/", "en"},
		{"unsupported", map[string]string{"Accept-Language": "fr-FR"}, "/", "en"},
		{"query parameter wins", map[string]string{"Accept-Language": "en"}, "/?lang=zh-Hant", "zh_TW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			r := gin.New()
			r.Use(I18nMiddleware("en"))
			r.GET("/", func(c *gin.Context) { got = c.GetString("lang") })

			serve(r, tt.headers, tt.path)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(rate.Limit(0.001), 2)

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, nil, "/").Code)
	assert.Equal(t, http.StatusOK, serve(r, nil, "/").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, nil, "/").Code)

	rl.evict(-1)
	assert.Equal(t, http.StatusOK, serve(r, nil, "/").Code, "evicted visitors start with a fresh bucket")
}
