package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onerilhan/go-api-starter/internal/models"
)

// TestAuthHandler_Token_Success, token üretme endpoint'ini test eder.
func TestAuthHandler_Token_Success(t *testing.T) {
	// Arrange
	chain := newTestChain(false)

	// Act
	rec := do(chain, http.MethodPost, "/api/v1/auth/token", `{"subject":"ayşe"}`, nil)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, float64(3600), data["expires_in"])
}

// TestAuthHandler_Token_EmptySubject, boş subject'in 400 VALIDATION_FAILED
// döndüğünü test eder.
func TestAuthHandler_Token_EmptySubject(t *testing.T) {
	// Arrange
	chain := newTestChain(false)

	// Act
	rec := do(chain, http.MethodPost, "/api/v1/auth/token", `{"subject":""}`, nil)

	// Assert
	assert.Equal(t, 400, rec.Code)
	body, _ := decodeError(t, rec)
	assert.Equal(t, "subject should not be empty", body.Message)
	assert.Equal(t, "VALIDATION_FAILED", body.ErrorCode)
}

// TestAuthHandler_Token_InvalidJSON, bozuk gövdenin 400 INVALID_JSON döndüğünü test eder.
func TestAuthHandler_Token_InvalidJSON(t *testing.T) {
	// Arrange
	chain := newTestChain(false)

	// Act
	rec := do(chain, http.MethodPost, "/api/v1/auth/token", `{`, nil)

	// Assert
	assert.Equal(t, 400, rec.Code)
	body, _ := decodeError(t, rec)
	assert.Equal(t, "INVALID_JSON", body.ErrorCode)
}

// TestAuthHandler_WhoAmI_FullFlow, token mint + whoami akışını uçtan uca test eder.
func TestAuthHandler_WhoAmI_FullFlow(t *testing.T) {
	// Arrange
	chain := newTestChain(false)

	mintRec := do(chain, http.MethodPost, "/api/v1/auth/token", `{"subject":"ayşe"}`, nil)
	assert.Equal(t, http.StatusOK, mintRec.Code)

	var minted struct {
		Data models.TokenResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(mintRec.Body.Bytes(), &minted))
	assert.NotEmpty(t, minted.Data.Token)

	// Act
	rec := do(chain, http.MethodGet, "/api/v1/auth/whoami", "", map[string]string{
		"Authorization": "Bearer " + minted.Data.Token,
	})

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "ayşe", data["subject"])
	assert.NotEmpty(t, data["issued_at"])
	assert.NotEmpty(t, data["expires_at"])
}

// TestAuthHandler_WhoAmI_WithoutToken, token'sız erişimin normalize edilmiş
// 401 döndüğünü test eder.
func TestAuthHandler_WhoAmI_WithoutToken(t *testing.T) {
	// Arrange
	chain := newTestChain(false)

	// Act
	rec := do(chain, http.MethodGet, "/api/v1/auth/whoami", "", nil)

	// Assert
	assert.Equal(t, 401, rec.Code)
	body, _ := decodeError(t, rec)
	assert.Equal(t, "Authorization header is required", body.Message)
	assert.Equal(t, "AUTH_REQUIRED", body.ErrorCode)
	assert.Equal(t, "/api/v1/auth/whoami", body.Path)
}
