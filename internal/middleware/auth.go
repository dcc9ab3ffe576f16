package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/go-api-starter/internal/auth"
	"github.com/onerilhan/go-api-starter/internal/middleware/errors"
)

// ContextKey middleware'de context için key tipi
type ContextKey string

// ClaimsContextKey doğrulanmış JWT claims'inin context key'i
const ClaimsContextKey ContextKey = "claims"

// Auth Bearer JWT token kontrolü yapar. Başarısız her durumda classified
// bir AuthError panic eder; yanıtı Recover + normalizer üretir, bu
// middleware hiçbir zaman kendi yanıtını yazmaz.
func Auth(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				panic(&errors.AuthError{
					Message: "Authorization header is required",
					Code:    "AUTH_REQUIRED",
				})
			}

			// "Bearer <token>" formatını kontrol et
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				panic(&errors.AuthError{
					Message: "Authorization header format must be: Bearer <token>",
					Code:    "AUTH_MALFORMED",
				})
			}

			claims, err := tokens.ValidateToken(tokenParts[1])
			if err != nil {
				code := "AUTH_INVALID"
				message := "Invalid token"
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					code = "AUTH_EXPIRED"
					message = "Token has expired"
				}
				panic(&errors.AuthError{Message: message, Code: code})
			}

			// Claims'i context'e ekle
			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			r = r.WithContext(ctx)

			log.Debug().
				Str("subject", claims.Subject).
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Msg("🔐 Authentication successful")

			// Sonraki handler'a geç
			next.ServeHTTP(w, r)
		})
	}
}
