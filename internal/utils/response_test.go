package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/listing-discovery/internal/i18n"
)

func TestNotFoundResponseTranslatesKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize("", "en"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("lang", "zh_TW")

	NotFoundResponse(c, i18n.KeyListingNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	require.NotNil(t, response.Error)
	assert.Equal(t, "NOT_FOUND", response.Error.Code)
	assert.Equal(t, "找不到此刊登", response.Error.Message)
}

func TestResultResponseSetsTotalCount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ResultResponse(c, gin.H{"listings": []string{}}, 0, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-Total-Count"))
}
