package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// TestManager_GenerateToken_Success, token üretme ve doğrulama round-trip'ini test eder.
func TestManager_GenerateToken_Success(t *testing.T) {
	// Arrange
	manager := NewManager("test-secret", time.Hour)

	// Act
	token, expiresIn, err := manager.GenerateToken("ayşe")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "ayşe", claims.Subject)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
}

// TestManager_ValidateToken_WrongSecret, farklı secret'la imzalanmış token'ın
// reddedildiğini test eder.
func TestManager_ValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	issuer := NewManager("secret-one", time.Hour)
	verifier := NewManager("secret-two", time.Hour)

	token, _, err := issuer.GenerateToken("ali")
	assert.NoError(t, err)

	// Act
	claims, err := verifier.ValidateToken(token)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// TestManager_ValidateToken_Expired, süresi geçmiş token'ın ErrTokenExpired
// sentinel'iyle reddedildiğini test eder.
func TestManager_ValidateToken_Expired(t *testing.T) {
	// Arrange
	manager := NewManager("test-secret", -time.Minute)

	token, _, err := manager.GenerateToken("ali")
	assert.NoError(t, err)

	// Act
	claims, err := manager.ValidateToken(token)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

// TestManager_ValidateToken_Garbage, token olmayan string'in reddedildiğini test eder.
func TestManager_ValidateToken_Garbage(t *testing.T) {
	// Arrange
	manager := NewManager("test-secret", time.Hour)

	// Act
	claims, err := manager.ValidateToken("bu-bir-token-degil")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}
