package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/go-api-starter/internal/middleware/errors"
	"github.com/onerilhan/go-api-starter/internal/models"
)

// DemoHandler örnek endpoint'leri yönetir.
// errors/* altındaki endpoint'ler hata zincirini canlı görmek içindir:
// her biri farklı türde bir değer fırlatır, yanıtı recover katmanı üretir.
type DemoHandler struct{}

// NewDemoHandler yeni handler oluşturur
func NewDemoHandler() *DemoHandler {
	return &DemoHandler{}
}

// Hello basit selamlama endpoint'i
func (h *DemoHandler) Hello(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "dünya"
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    map[string]string{"greeting": fmt.Sprintf("Merhaba, %s!", name)},
	})
}

// Echo mesajı istenen sayıda tekrarlayıp döner
func (h *DemoHandler) Echo(w http.ResponseWriter, r *http.Request) {
	// Request body'yi parse et
	var req models.EchoRequest
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

	echoes := make([]string, req.Repeat)
	for i := range echoes {
		echoes[i] = req.Message
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    models.EchoResponse{Echoes: echoes, Count: len(echoes)},
	})

	log.Debug().Int("repeat", req.Repeat).Msg("Echo isteği işlendi")
}

// Forbidden düz string gövdeli 403 fırlatır
func (h *DemoHandler) Forbidden(w http.ResponseWriter, r *http.Request) {
	panic(errors.NewString(http.StatusForbidden, "Forbidden"))
}

// BadRequest error code içermeyen structured 400 fırlatır
func (h *DemoHandler) BadRequest(w http.ResponseWriter, r *http.Request) {
	panic(errors.NewMessage(http.StatusBadRequest, "Validation failed"))
}

// Conflict error code'lu structured 409 fırlatır
func (h *DemoHandler) Conflict(w http.ResponseWriter, r *http.Request) {
	panic(errors.New(http.StatusConflict, errors.StructuredPayload{
		Message:   errors.SingleMessage("Resource already exists"),
		ErrorCode: "DUPLICATE_RESOURCE",
	}))
}

// Empty mesajsız structured 418 fırlatır; generic mesaja düşmesi beklenir
func (h *DemoHandler) Empty(w http.ResponseWriter, r *http.Request) {
	panic(errors.New(http.StatusTeapot, errors.StructuredPayload{}))
}

// Panic sıradan bir error fırlatır; 500'e normalize edilir
func (h *DemoHandler) Panic(w http.ResponseWriter, r *http.Request) {
	panic(fmt.Errorf("connection reset while reading upstream response"))
}

// Crash error olmayan bir değer fırlatır; o da 500'e normalize edilir
func (h *DemoHandler) Crash(w http.ResponseWriter, r *http.Request) {
	panic("something went horribly wrong")
}
