package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-track/fridge-service/pkg/logger"
)

func TestHealth_NoDependenciesConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHealthHandler(logger.NewLogger("error"), nil, nil)

	router := gin.New()
	router.GET("/health", handler.Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "not_configured", resp.Dependencies["postgresql"])
	assert.Equal(t, "not_configured", resp.Dependencies["redis"])
}
