package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/go-api-starter/internal/auth"
	"github.com/onerilhan/go-api-starter/internal/middleware"
	"github.com/onerilhan/go-api-starter/internal/middleware/errors"
	"github.com/onerilhan/go-api-starter/internal/models"
)

// AuthHandler token HTTP isteklerini yönetir
type AuthHandler struct {
	tokens *auth.Manager
}

// NewAuthHandler yeni handler oluşturur
func NewAuthHandler(tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// Token verilen subject için JWT üretir (public)
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	// Request body'yi parse et
	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		panic(errors.New(http.StatusBadRequest, errors.StructuredPayload{
			Message:   errors.SingleMessage("Request body must be valid JSON"),
			ErrorCode: "INVALID_JSON",
		}))
	}

	// Alan kurallarını kontrol et
	if violations := req.Validate(); len(violations) > 0 {
		panic(&errors.ValidationError{Messages: violations})
	}

	// Token üret
	token, expiresIn, err := h.tokens.GenerateToken(req.Subject)
	if err != nil {
		panic(fmt.Errorf("token üretilemedi: %w", err))
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    models.TokenResponse{Token: token, ExpiresIn: expiresIn},
		Message: "Token başarıyla oluşturuldu",
	})

	log.Info().Str("subject", req.Subject).Msg("Token oluşturuldu")
}

// WhoAmI token'daki kimlik bilgilerini döner (protected)
func (h *AuthHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	// Context'ten claims'i al; auth middleware'i geçilmişse her zaman vardır
	claims, ok := r.Context().Value(middleware.ClaimsContextKey).(*jwt.RegisteredClaims)
	if !ok {
		panic(fmt.Errorf("claims missing from request context"))
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Data: map[string]string{
			"subject":    claims.Subject,
			"issued_at":  claims.IssuedAt.Time.UTC().Format(time.RFC3339),
			"expires_at": claims.ExpiresAt.Time.UTC().Format(time.RFC3339),
		},
	})
}
