package middleware

import (
	"fmt"
	"net/http"
)

// SecurityConfig security headers ayarları
type SecurityConfig struct {
	ContentSecurityPolicy string

	// HTTP Strict Transport Security (HSTS)
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool

	FrameOptions       string // DENY, SAMEORIGIN
	ContentTypeNosniff bool
	ReferrerPolicy     string
}

// DefaultSecurityConfig varsayılan güvenlik ayarları.
// HSTS kapalı tutulur; development'ta HTTP kullanılıyor.
func DefaultSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		ContentSecurityPolicy: "default-src 'self'",
		HSTSMaxAge:            0,
		HSTSIncludeSubdomains: false,
		FrameOptions:          "SAMEORIGIN",
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}
}

// ProductionSecurityConfig production için sıkı güvenlik ayarları
func ProductionSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		ContentSecurityPolicy: "default-src 'self'; object-src 'none'; frame-src 'none'",
		HSTSMaxAge:            31536000, // 1 yıl
		HSTSIncludeSubdomains: true,
		FrameOptions:          "DENY",
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "no-referrer",
	}
}

// SecurityHeaders güvenlik header'larını ekler
func SecurityHeaders(config *SecurityConfig) func(http.Handler) http.Handler {
	if config == nil {
		config = DefaultSecurityConfig()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.ContentSecurityPolicy != "" {
				w.Header().Set("Content-Security-Policy", config.ContentSecurityPolicy)
			}
			if config.HSTSMaxAge > 0 {
				w.Header().Set("Strict-Transport-Security", formatHSTSHeader(config.HSTSMaxAge, config.HSTSIncludeSubdomains))
			}
			if config.FrameOptions != "" {
				w.Header().Set("X-Frame-Options", config.FrameOptions)
			}
			if config.ContentTypeNosniff {
				w.Header().Set("X-Content-Type-Options", "nosniff")
			}
			if config.ReferrerPolicy != "" {
				w.Header().Set("Referrer-Policy", config.ReferrerPolicy)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// formatHSTSHeader HSTS header değerini formatlar
func formatHSTSHeader(maxAge int, includeSubdomains bool) string {
	hsts := fmt.Sprintf("max-age=%d", maxAge)
	if includeSubdomains {
		hsts += "; includeSubDomains"
	}
	return hsts
}
