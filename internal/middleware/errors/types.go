package errors

import (
	"fmt"
	"strings"
)

// APIError interface for custom error types.
// Classified error'lar kendi HTTP status code'larını ve response payload'larını taşır;
// normalizer bu interface'i implement eden her panic değerini classified sayar.
type APIError interface {
	error
	Status() int
	Body() Payload
}

// Payload classified error'un taşıdığı yanıt gövdesi.
// Kapalı variant: ya düz string (StringPayload) ya da message/errorCode
// alanları olan yapı (StructuredPayload). Dinamik alan yoklaması yerine
// normalizer'da explicit type switch ile çözülür.
type Payload interface {
	isPayload()
}

// StringPayload düz string payload
type StringPayload string

func (StringPayload) isPayload() {}

// StructuredPayload message ve opsiyonel errorCode taşıyan payload.
// Message nil olabilir; o durumda normalizer generic mesaja düşer.
type StructuredPayload struct {
	Message   MessageField
	ErrorCode string
}

func (StructuredPayload) isPayload() {}

// MessageField structured payload'daki message alanı: tek mesaj veya mesaj listesi
type MessageField interface {
	isMessageField()
}

// SingleMessage tek mesaj
type SingleMessage string

func (SingleMessage) isMessageField() {}

// MultiMessage mesaj listesi (validation hataları gibi); ", " ile join edilir
type MultiMessage []string

func (MultiMessage) isMessageField() {}

// HTTPError genel amaçlı classified error: status code + payload
type HTTPError struct {
	StatusCode int
	Payload    Payload
}

// New status code ve payload ile HTTPError oluşturur
func New(status int, payload Payload) *HTTPError {
	return &HTTPError{StatusCode: status, Payload: payload}
}

// NewString düz string payload'lı HTTPError oluşturur
func NewString(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Payload: StringPayload(message)}
}

// NewMessage tek mesajlı structured payload'lı HTTPError oluşturur
func NewMessage(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Payload: StructuredPayload{Message: SingleMessage(message)}}
}

// NewMessages mesaj listeli structured payload'lı HTTPError oluşturur
func NewMessages(status int, messages ...string) *HTTPError {
	return &HTTPError{StatusCode: status, Payload: StructuredPayload{Message: MultiMessage(messages)}}
}

// Error HTTPError'un error interface implementation'ı
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.StatusCode, payloadText(e.Payload))
}

// Status HTTPError'un APIError interface implementation'ı
func (e *HTTPError) Status() int {
	return e.StatusCode
}

// Body HTTPError'un APIError interface implementation'ı
func (e *HTTPError) Body() Payload {
	return e.Payload
}

// AuthError kimlik doğrulama hataları için classified error (her zaman 401)
type AuthError struct {
	Message string
	Code    string
}

// Error AuthError'un error interface implementation'ı
func (e *AuthError) Error() string {
	return e.Message
}

// Status AuthError'un APIError interface implementation'ı
func (e *AuthError) Status() int {
	return 401
}

// Body AuthError'un APIError interface implementation'ı
func (e *AuthError) Body() Payload {
	return StructuredPayload{Message: SingleMessage(e.Message), ErrorCode: e.Code}
}

// ValidationError alan doğrulama hataları için classified error (her zaman 400).
// Tüm kural ihlallerini tek listede taşır; normalizer ", " ile join eder.
type ValidationError struct {
	Messages []string
}

// Error ValidationError'un error interface implementation'ı
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Status ValidationError'un APIError interface implementation'ı
func (e *ValidationError) Status() int {
	return 400
}

// Body ValidationError'un APIError interface implementation'ı
func (e *ValidationError) Body() Payload {
	return StructuredPayload{Message: MultiMessage(e.Messages), ErrorCode: "VALIDATION_FAILED"}
}

// RateLimitError istek limiti aşıldığında fırlatılan classified error (her zaman 429)
type RateLimitError struct {
	Message string
}

// Error RateLimitError'un error interface implementation'ı
func (e *RateLimitError) Error() string {
	return e.Message
}

// Status RateLimitError'un APIError interface implementation'ı
func (e *RateLimitError) Status() int {
	return 429
}

// Body RateLimitError'un APIError interface implementation'ı
func (e *RateLimitError) Body() Payload {
	return StructuredPayload{Message: SingleMessage(e.Message), ErrorCode: "RATE_LIMITED"}
}

// payloadText log ve Error() çıktısı için payload'ın okunur hali
func payloadText(p Payload) string {
	message, _ := resolvePayload(p)
	return message
}
