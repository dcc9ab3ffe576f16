package errors

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Sabit mesajlar: wire contract'ın parçası, değiştirme.
const (
	// GenericHTTPMessage structured payload'da message alanı yoksa kullanılır
	GenericHTTPMessage = "An HTTP error occurred"
	// GenericInternalMessage production'da unclassified hataların yerine geçer
	GenericInternalMessage = "Internal server error"
)

// Transport normalizer'ın dış dünyayla tek temas noktası: request path'ini
// okur ve final yanıtı gönderir. Somut HTTP engine tipine bağımlılık yok;
// testlerde double ile değiştirilebilir.
type Transport interface {
	// Path inbound request'in URL path'ini döner.
	Path() string
	// Reply hesaplanan gövdeyi verilen status code ile gönderir.
	Reply(status int, body ErrorResponse) error
}

// Normalizer yakalanan herhangi bir panic değerini deterministik bir
// ErrorResponse + status code çiftine çevirir. Production flag'i ambient
// global yerine construction'da enjekte edilir; böylece test için process
// state'i değiştirmek gerekmez.
type Normalizer struct {
	production bool
}

// NewNormalizer yeni normalizer oluşturur
func NewNormalizer(production bool) *Normalizer {
	return &Normalizer{production: production}
}

// Normalize yakalanan değeri sınıflandırır ve yanıt gövdesini üretir.
// Saf hesaplama: side effect yok, asla panic etmez.
//
// Sınıflandırma kuralı:
//   - APIError implement eden değerler classified sayılır: status kendi
//     status'u, message/errorCode payload'dan çözülür.
//   - Diğer her şey (düz error, string, rastgele değer) 500'e düşer;
//     production'da mesaj sabit generic string'e redact edilir.
func (n *Normalizer) Normalize(recovered any, path string) (ErrorResponse, int) {
	statusCode := 500
	var message, errorCode string

	switch err := recovered.(type) {
	case APIError:
		statusCode, message, errorCode = classify(err)
	case error:
		message = n.redact(err.Error())
	default:
		message = n.redact(fmt.Sprintf("%v", recovered))
	}

	body := ErrorResponse{
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       path,
		Message:    message,
		ErrorCode:  errorCode,
	}
	return body, statusCode
}

// Handle tek hatayı uçtan uca işler: normalize et, tam bir error log'u at,
// tek reply gönder. Reply başarısız olursa retry yok; bu component terminal
// error handler'dır, üstünde tekrar deneyecek kimse yoktur.
func (n *Normalizer) Handle(recovered any, stack []byte, t Transport) {
	body, statusCode := n.Normalize(recovered, t.Path())

	logEvent := log.Error().
		Str("component", "error_normalizer").
		Int("status_code", statusCode).
		Str("path", body.Path).
		Str("message", body.Message)
	if body.ErrorCode != "" {
		logEvent = logEvent.Str("error_code", body.ErrorCode)
	}
	if len(stack) > 0 {
		logEvent = logEvent.Str("stack_trace", string(stack))
	} else {
		logEvent = logEvent.Str("panic_value", fmt.Sprintf("%v", recovered))
	}
	logEvent.Msg("Unhandled error normalized")

	_ = t.Reply(statusCode, body)
}

// redact production'da gerçek mesajı gizler (internals leak etmesin)
func (n *Normalizer) redact(message string) string {
	if n.production {
		return GenericInternalMessage
	}
	return message
}

// classify classified error'un status ve payload'ını okur.
// Payload incelemesi hiçbir koşulda propagate etmez: Status() veya Body()
// panic ederse (ör. nil pointer'lı custom error) generic mesaja düşülür.
func classify(err APIError) (status int, message, errorCode string) {
	status = 500
	message = GenericHTTPMessage
	defer func() {
		if recover() != nil {
			message = GenericHTTPMessage
			errorCode = ""
		}
	}()
	status = err.Status()
	message, errorCode = resolvePayload(err.Body())
	return status, message, errorCode
}

// resolvePayload payload variant'larını explicit match ile çözer.
// Bilinmeyen veya nil payload generic mesaja düşer; asla panic etmez.
func resolvePayload(p Payload) (message string, errorCode string) {
	switch body := p.(type) {
	case StringPayload:
		return string(body), ""
	case StructuredPayload:
		return resolveMessageField(body.Message), body.ErrorCode
	default:
		return GenericHTTPMessage, ""
	}
}

// resolveMessageField message alanını tek string'e indirger.
// Mesaj listesi ", " ile join edilir (kaynak formatla birebir uyum için).
func resolveMessageField(m MessageField) string {
	switch message := m.(type) {
	case SingleMessage:
		return string(message)
	case MultiMessage:
		return strings.Join(message, ", ")
	default:
		return GenericHTTPMessage
	}
}
