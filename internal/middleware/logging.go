package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/go-api-starter/internal/utils"
)

// responseWriter wrapper to capture response data
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	responseSize int64
}

// WriteHeader captures status code
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Write captures response size
func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.responseSize += int64(size)
	return size, err
}

// LoggingConfig logging middleware ayarları
type LoggingConfig struct {
	SkipPaths []string // Log'lanmayacak path'ler (health check gibi)
}

// DefaultLoggingConfig varsayılan logging ayarları
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		SkipPaths: []string{
			"/health",
			"/favicon.ico",
		},
	}
}

// RequestLogging HTTP isteklerini structured olarak loglar.
// Her isteğe uuid tabanlı bir request ID verir (X-Request-ID header'ı);
// request ID sadece log'larda görünür, error body'sine asla girmez.
func RequestLogging(config *LoggingConfig) func(http.Handler) http.Handler {
	// Config nil ise default kullan
	if config == nil {
		config = DefaultLoggingConfig()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip paths kontrolü
			if shouldSkipLogging(r.URL.Path, config.SkipPaths) {
				next.ServeHTTP(w, r)
				return
			}

			startTime := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK, // Default 200
			}

			requestID := uuid.New().String()
			wrapped.Header().Set("X-Request-ID", requestID)

			method := r.Method
			path := r.URL.Path
			clientIP := utils.GetClientIP(r)

			startEvent := log.Info().
				Str("request_id", requestID).
				Str("method", method).
				Str("path", path).
				Str("client_ip", clientIP).
				Str("user_agent", r.Header.Get("User-Agent"))

			if query := r.URL.RawQuery; query != "" {
				startEvent = startEvent.Str("query", query)
			}

			startEvent.Msg("Request started")

			// Handler'ı çalıştır
			next.ServeHTTP(wrapped, r)

			duration := time.Since(startTime)

			// Status code'a göre log level'ı belirle
			completeEvent := log.Info()
			switch {
			case wrapped.statusCode >= 500:
				completeEvent = log.Error()
			case wrapped.statusCode >= 400:
				completeEvent = log.Warn()
			}

			completeEvent.
				Str("request_id", requestID).
				Str("method", method).
				Str("path", path).
				Str("client_ip", clientIP).
				Int("status_code", wrapped.statusCode).
				Int64("response_size", wrapped.responseSize).
				Dur("duration", duration).
				Float64("duration_ms", float64(duration.Nanoseconds())/1e6).
				Msg("Request completed")
		})
	}
}

// shouldSkipLogging belirli path'lerin log'lanmaması gerekip gerekmediğini kontrol eder
func shouldSkipLogging(path string, skipPaths []string) bool {
	for _, skipPath := range skipPaths {
		if path == skipPath {
			return true
		}
		// Wildcard pattern matching
		if strings.HasSuffix(skipPath, "*") {
			prefix := strings.TrimSuffix(skipPath, "*")
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}
	}
	return false
}
