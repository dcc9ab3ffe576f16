package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager JWT token üretimi ve doğrulamasını yönetir.
// Secret ve TTL config'den inject edilir.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager yeni bir token manager oluşturur
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken subject için imzalı JWT oluşturur.
// Token string'i ve saniye cinsinden geçerlilik süresini döner.
func (m *Manager) GenerateToken(subject string) (string, int64, error) {
	now := time.Now()
	expirationTime := now.Add(m.ttl)

	// Claims oluştur
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	// Token oluştur
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Token'ı imzala ve string'e çevir
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", 0, fmt.Errorf("token oluşturulamadı: %w", err)
	}

	return tokenString, int64(m.ttl.Seconds()), nil
}

// ValidateToken JWT token'ını doğrular ve claims'i döner.
// jwt/v5 sentinel hataları (ErrTokenExpired vb.) wrap edilerek korunur.
func (m *Manager) ValidateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	// Token'ı parse et
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Signing method kontrolü
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("beklenmeyen signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token parse edilemedi: %w", err)
	}

	// Claims'i al
	if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("geçersiz token")
}
