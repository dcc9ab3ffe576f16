package handlers

import (
	"net/http"

	"github.com/onerilhan/go-api-starter/internal/middleware"
)

// SystemHandler health ve stats endpoint'lerini yönetir
type SystemHandler struct {
	stats *middleware.StatsCollector
}

// NewSystemHandler yeni handler oluşturur
func NewSystemHandler(stats *middleware.StatsCollector) *SystemHandler {
	return &SystemHandler{stats: stats}
}

// Health servis sağlık kontrolü
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats istek sayaçlarının anlık görüntüsünü döner
func (h *SystemHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stats.Snapshot())
}
