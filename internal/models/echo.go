package models

import (
	"fmt"
	"strings"
)

// Echo isteği için sınırlar
const (
	EchoMessageMaxLen = 280
	EchoRepeatMin     = 1
	EchoRepeatMax     = 10
)

// EchoRequest echo isteği
type EchoRequest struct {
	Message string `json:"message"`
	Repeat  int    `json:"repeat"`
}

// Validate alan kurallarını kontrol eder ve ihlal mesajlarını döner.
// Boş slice dönerse istek geçerlidir.
func (r *EchoRequest) Validate() []string {
	var violations []string

	if strings.TrimSpace(r.Message) == "" {
		violations = append(violations, "message should not be empty")
	}
	if len(r.Message) > EchoMessageMaxLen {
		violations = append(violations, fmt.Sprintf("message must be shorter than or equal to %d characters", EchoMessageMaxLen))
	}
	if r.Repeat < EchoRepeatMin || r.Repeat > EchoRepeatMax {
		violations = append(violations, fmt.Sprintf("repeat must be between %d and %d", EchoRepeatMin, EchoRepeatMax))
	}

	return violations
}

// EchoResponse echo yanıtı
type EchoResponse struct {
	Echoes []string `json:"echoes"`
	Count  int      `json:"count"`
}
