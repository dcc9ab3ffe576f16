package middleware

import (
	"net/http"
	"sync"
	"time"
)

// StatsCollector istek sayaçlarını toplar.
// Normalize edilmiş status code'ları görebilmesi için recover
// middleware'inin DIŞINA takılmalı.
type StatsCollector struct {
	mutex         sync.RWMutex
	totalRequests int64
	statusCounts  map[int]int64
	routeCounts   map[string]int64
	startedAt     time.Time
}

// StatsSnapshot JSON response formatı
type StatsSnapshot struct {
	TotalRequests int64            `json:"total_requests"`
	StatusCounts  map[int]int64    `json:"status_counts"`
	RouteCounts   map[string]int64 `json:"route_counts"`
	UptimeSeconds int64            `json:"uptime_seconds"`
	StartedAt     time.Time        `json:"started_at"`
}

// NewStatsCollector yeni bir collector oluşturur
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{
		statusCounts: make(map[int]int64),
		routeCounts:  make(map[string]int64),
		startedAt:    time.Now(),
	}
}

// Middleware her isteği sayan http middleware döner
func (s *StatsCollector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			s.mutex.Lock()
			s.totalRequests++
			s.statusCounts[wrapped.statusCode]++
			s.routeCounts[r.URL.Path]++
			s.mutex.Unlock()
		})
	}
}

// Snapshot sayaçların o anki kopyasını döner
func (s *StatsCollector) Snapshot() *StatsSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return &StatsSnapshot{
		TotalRequests: s.totalRequests,
		StatusCounts:  copyCounts(s.statusCounts),
		RouteCounts:   copyCounts(s.routeCounts),
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		StartedAt:     s.startedAt,
	}
}

func copyCounts[K comparable](original map[K]int64) map[K]int64 {
	out := make(map[K]int64, len(original))
	for k, v := range original {
		out[k] = v
	}
	return out
}
