package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func getHealth(t *testing.T, h *HealthHandler) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h.RegisterRoutes(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheckStoreUp(t *testing.T) {
	resp := getHealth(t, NewHealthHandler("portfolio-backend", "1.0.0", stubPinger{}))

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "portfolio-backend", resp.Service)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "up", resp.Store)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestHealthCheckStoreDown(t *testing.T) {
	resp := getHealth(t, NewHealthHandler("portfolio-backend", "1.0.0", stubPinger{err: errors.New("down")}))
	assert.Equal(t, "down", resp.Store)
}

func TestHealthCheckNoStore(t *testing.T) {
	resp := getHealth(t, NewHealthHandler("portfolio-backend", "1.0.0", nil))
	assert.Equal(t, "disabled", resp.Store)
}
