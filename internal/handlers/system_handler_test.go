package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSystemHandler_Health, health endpoint'ini test eder.
func TestSystemHandler_Health(t *testing.T) {
	// Arrange
	chain := newTestChain(false)

	// Act
	rec := do(chain, http.MethodGet, "/health", "", nil)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// TestSystemHandler_Stats, sayaçların stats endpoint'inden okunabildiğini test eder.
func TestSystemHandler_Stats(t *testing.T) {
	// Arrange
	chain := newTestChain(false)

	// Birkaç istek üret: bir başarılı, bir normalize edilmiş hata
	do(chain, http.MethodGet, "/api/v1/hello", "", nil)
	do(chain, http.MethodGet, "/api/v1/errors/forbidden", "", nil)

	// Act
	rec := do(chain, http.MethodGet, "/stats", "", nil)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, float64(2), envelope["total_requests"])

	statusCounts := envelope["status_counts"].(map[string]any)
	assert.Equal(t, float64(1), statusCounts["200"])
	// Stats recover'ın dışında: 403 normalize edilmiş haliyle sayılır
	assert.Equal(t, float64(1), statusCounts["403"])

	routeCounts := envelope["route_counts"].(map[string]any)
	assert.Equal(t, float64(1), routeCounts["/api/v1/hello"])
}
