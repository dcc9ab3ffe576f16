package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/onerilhan/go-api-starter/internal/middleware/errors"
	"github.com/onerilhan/go-api-starter/internal/utils"
)

// RateLimitConfig rate limiting ayarları
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	WindowSize        time.Duration
	SkipPaths         []string
	CustomMessage     string
}

// DefaultRateLimitConfig varsayılan rate limit ayarları
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		RequestsPerMinute: 60,
		Burst:             10,
		WindowSize:        time.Minute,
		SkipPaths: []string{
			"/health",
			"/favicon.ico",
		},
		CustomMessage: "Rate limit exceeded. Please try again later.",
	}
}

// ipLimiter tek bir IP için rate limiter
type ipLimiter struct {
	limiter     *rate.Limiter
	lastSeen    time.Time
	windowStart time.Time
}

// RateLimitMiddleware IP başına token-bucket rate limiting uygular.
// Limit aşımında kendi yanıtını yazmaz: classified bir RateLimitError
// panic eder ve yanıtı üstteki Recover + normalizer üretir; böylece 429
// gövdesi de diğer tüm hatalarla aynı şekle sahip olur.
type RateLimitMiddleware struct {
	config   *RateLimitConfig
	limiters map[string]*ipLimiter
	mutex    sync.Mutex
}

// NewRateLimitMiddleware yeni rate limit middleware oluşturur
func NewRateLimitMiddleware(config *RateLimitConfig) *RateLimitMiddleware {
	if config == nil {
		config = DefaultRateLimitConfig()
	}

	middleware := &RateLimitMiddleware{
		config:   config,
		limiters: make(map[string]*ipLimiter),
	}

	go middleware.cleanupLimiters()

	return middleware
}

// Handler rate limiting middleware handler döner
func (rlm *RateLimitMiddleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlm.shouldSkipPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := utils.GetClientIP(r)
			allowed, remaining, resetTime := rlm.checkRateLimit(clientIP)

			rlm.setRateLimitHeaders(w, remaining, resetTime)

			if !allowed {
				log.Warn().
					Str("client_ip", clientIP).
					Str("path", r.URL.Path).
					Msg("Request blocked - rate limit exceeded")

				retryAfter := int(time.Until(resetTime).Seconds())
				if retryAfter < 0 {
					retryAfter = int(rlm.config.WindowSize.Seconds())
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				panic(&errors.RateLimitError{Message: rlm.config.CustomMessage})
			}

			next.ServeHTTP(w, r)
		})
	}
}

// checkRateLimit IP'nin rate limit'ini kontrol eder
func (rlm *RateLimitMiddleware) checkRateLimit(ip string) (allowed bool, remaining int, resetTime time.Time) {
	rlm.mutex.Lock()
	defer rlm.mutex.Unlock()

	now := time.Now()

	limiter, exists := rlm.limiters[ip]
	if !exists {
		rateLimit := rate.Every(rlm.config.WindowSize / time.Duration(rlm.config.RequestsPerMinute))
		limiter = &ipLimiter{
			limiter:     rate.NewLimiter(rateLimit, rlm.config.Burst),
			lastSeen:    now,
			windowStart: now,
		}
		rlm.limiters[ip] = limiter
	}

	limiter.lastSeen = now

	if now.Sub(limiter.windowStart) >= rlm.config.WindowSize {
		limiter.windowStart = now
	}

	allowed = limiter.limiter.Allow()

	remaining = int(limiter.limiter.Tokens())
	if remaining < 0 {
		remaining = 0
	}

	resetTime = limiter.windowStart.Add(rlm.config.WindowSize)

	return allowed, remaining, resetTime
}

// setRateLimitHeaders rate limit header'larını set eder
func (rlm *RateLimitMiddleware) setRateLimitHeaders(w http.ResponseWriter, remaining int, resetTime time.Time) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rlm.config.RequestsPerMinute))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))
}

// shouldSkipPath path kontrolü
func (rlm *RateLimitMiddleware) shouldSkipPath(path string) bool {
	for _, skipPath := range rlm.config.SkipPaths {
		if path == skipPath {
			return true
		}
	}
	return false
}

// cleanupLimiters eski limiter'ları temizler
func (rlm *RateLimitMiddleware) cleanupLimiters() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rlm.mutex.Lock()

		now := time.Now()
		for ip, limiter := range rlm.limiters {
			if now.Sub(limiter.lastSeen) > 30*time.Minute {
				delete(rlm.limiters, ip)
			}
		}
		active := len(rlm.limiters)

		rlm.mutex.Unlock()

		log.Debug().Int("active_limiters", active).Msg("Rate limiter cleanup completed")
	}
}
