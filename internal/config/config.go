package config

import (
	"os"
	"strconv"
)

// Config ortam yapılandırmalarını tutar
type Config struct {
	AppEnv string
	Port   string

	// JWT ayarları (demo token endpoint'i için)
	JWTSecret     string
	JWTTTLMinutes int

	// Rate limit ayarları
	RateLimitPerMinute int
	RateLimitBurst     int
}

// yardımcı fonksiyon: ortam değişkeni yoksa default değeri döner
func getEnv(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvInt ortam değişkenini int olarak okur, parse edilemezse default döner
func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// LoadConfig tüm yapılandırmayı yükler
func LoadConfig() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTTTLMinutes:      getEnvInt("JWT_TTL_MINUTES", 60),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

// IsProduction APP_ENV "production" mı kontrol eder.
// Production dışındaki her ortam (development, staging, test...) non-production sayılır:
// hata mesajları gizlenmez ve log pretty-print açık olur.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
