package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/go-api-starter/internal/auth"
	"github.com/onerilhan/go-api-starter/internal/config"
	"github.com/onerilhan/go-api-starter/internal/handlers"
	"github.com/onerilhan/go-api-starter/internal/logger"
	"github.com/onerilhan/go-api-starter/internal/middleware"
	"github.com/onerilhan/go-api-starter/internal/middleware/errors"
)

func main() {
	// .env dosyasını yükle
	if err := godotenv.Load(); err != nil {
		stdlog.Println(".env dosyası bulunamadı, ortam değişkenlerinden okunacak.")
	}

	// config yükle
	cfg := config.LoadConfig()

	// logger başlat
	logger.Init(cfg.AppEnv)

	log.Info().
		Str("environment", cfg.AppEnv).
		Str("port", cfg.Port).
		Bool("production", cfg.IsProduction()).
		Msg("🚀 API Starter başlatıldı")

	// Hata normalizer'ı; production flag'i burada bir kez inject edilir
	normalizer := errors.NewNormalizer(cfg.IsProduction())

	// Token manager
	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	// İstek sayaçları
	stats := middleware.NewStatsCollector()

	// Rate limiter
	rateLimitConfig := middleware.DefaultRateLimitConfig()
	rateLimitConfig.RequestsPerMinute = cfg.RateLimitPerMinute
	rateLimitConfig.Burst = cfg.RateLimitBurst
	limiter := middleware.NewRateLimitMiddleware(rateLimitConfig)

	// Handler katmanı
	demoHandler := handlers.NewDemoHandler()
	authHandler := handlers.NewAuthHandler(tokens)
	systemHandler := handlers.NewSystemHandler(stats)

	// Gorilla Mux Router Setup
	router := setupRouter(demoHandler, authHandler, systemHandler, tokens)

	// Security headers ortama göre seçilir
	securityConfig := middleware.DefaultSecurityConfig()
	if cfg.IsProduction() {
		securityConfig = middleware.ProductionSecurityConfig()
	}

	// Middleware zinciri (dıştan içe):
	// logging → stats → security → cors → recover → rate limit → router.
	// Logging ve stats recover'ın dışında kalır ki normalize edilmiş status
	// code'u görsünler; panic üretebilen her katman recover'ın içinde kalır.
	handler := middleware.RequestLogging(nil)(
		stats.Middleware()(
			middleware.SecurityHeaders(securityConfig)(
				middleware.CORS(nil)(
					middleware.Recover(normalizer)(
						limiter.Handler()(router),
					),
				),
			),
		),
	)

	// HTTP Server configuration
	serverAddr := ":" + cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown setup
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Server'ı goroutine'de başlat
	go func() {
		log.Info().
			Str("addr", serverAddr).
			Int("read_timeout", 15).
			Int("write_timeout", 15).
			Int("idle_timeout", 60).
			Msg("🌐 HTTP Server (Gorilla Mux) başlatıldı")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("❌ Server başlatma hatası")
		}
	}()

	// Shutdown signal'ını bekle
	<-shutdown
	log.Info().Msg("🛑 Shutdown signal alındı, server kapatılıyor...")

	// Graceful shutdown sequence
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("❌ HTTP Server kapatma hatası")
	} else {
		log.Info().Msg("✅ HTTP Server başarıyla kapatıldı")
	}

	log.Info().Msg("👋 API Starter başarıyla kapatıldı")
}

// setupRouter Gorilla Mux router'ını ayarlar
func setupRouter(demoHandler *handlers.DemoHandler, authHandler *handlers.AuthHandler, systemHandler *handlers.SystemHandler, tokens *auth.Manager) *mux.Router {
	router := mux.NewRouter()

	// Route bulunamadığında ve metod desteklenmediğinde de
	// yanıtı aynı hata zinciri üretsin
	router.NotFoundHandler = middleware.NotFoundHandler()
	router.MethodNotAllowedHandler = middleware.MethodNotAllowedHandler()

	// System endpoints
	router.HandleFunc("/health", systemHandler.Health).Methods("GET")
	router.HandleFunc("/stats", systemHandler.Stats).Methods("GET")

	// API v1 subrouter
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public endpoints
	api.HandleFunc("/hello", demoHandler.Hello).Methods("GET")
	api.HandleFunc("/echo", demoHandler.Echo).Methods("POST")

	// Hata senaryosu endpoint'leri
	errdemo := api.PathPrefix("/errors").Subrouter()
	errdemo.HandleFunc("/forbidden", demoHandler.Forbidden).Methods("GET")
	errdemo.HandleFunc("/bad-request", demoHandler.BadRequest).Methods("GET")
	errdemo.HandleFunc("/conflict", demoHandler.Conflict).Methods("GET")
	errdemo.HandleFunc("/empty", demoHandler.Empty).Methods("GET")
	errdemo.HandleFunc("/panic", demoHandler.Panic).Methods("GET")
	errdemo.HandleFunc("/crash", demoHandler.Crash).Methods("GET")

	// Public auth endpoints
	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/token", authHandler.Token).Methods("POST")

	// Protected endpoints (Authentication required)
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(tokens))
	protected.HandleFunc("/auth/whoami", authHandler.WhoAmI).Methods("GET")

	// Route listesini log'la (development için)
	router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err == nil {
			methods, _ := route.GetMethods()
			log.Debug().
				Str("path", pathTemplate).
				Strs("methods", methods).
				Msg("📍 Route registered")
		}
		return nil
	})

	return router
}
