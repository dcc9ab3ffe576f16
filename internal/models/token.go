package models

import "strings"

// TokenRequest token üretme isteği
type TokenRequest struct {
	Subject string `json:"subject"`
}

// Validate alan kurallarını kontrol eder ve ihlal mesajlarını döner
func (r *TokenRequest) Validate() []string {
	var violations []string

	if strings.TrimSpace(r.Subject) == "" {
		violations = append(violations, "subject should not be empty")
	}
	if len(r.Subject) > 64 {
		violations = append(violations, "subject must be shorter than or equal to 64 characters")
	}

	return violations
}

// TokenResponse token üretme yanıtı
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
