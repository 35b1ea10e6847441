package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskflow/internal/api"
	"taskflow/internal/api/middleware"
	"taskflow/internal/database"
	"taskflow/pkg/factory"
	"taskflow/pkg/tracing"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Factory oluşturulamadı: %v\n", err)
		os.Exit(1)
	}

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()
	db := appFactory.GetDB()

	defer db.Close()

	log.Info("Uygulama başlatılıyor", map[string]interface{}{"env": cfg.AppEnv, "db": cfg.Database.Path})

	if cfg.Tracing.Endpoint != "" {
		shutdownTracer, err := tracing.InitTracer("taskflow", cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatal("Tracer başlatılamadı", map[string]interface{}{"error": err.Error()})
		}
		defer shutdownTracer(context.Background())
	}

	migrationService := database.NewMigrationService(db, log)
	if err := migrationService.RunMigrations(); err != nil {
		log.Fatal("Migrationlar uygulanamadı", map[string]interface{}{"error": err.Error()})
	}

	userHandler := api.NewUserHandler(appFactory.GetUserService(), log)
	orderHandler := api.NewOrderHandler(appFactory.GetOrderService(), log)
	offerHandler := api.NewOfferHandler(appFactory.GetOfferService(), log)
	healthHandler := api.NewHealthHandler(db, log)

	mux := http.NewServeMux()

	userHandler.RegisterRoutes(mux)
	orderHandler.RegisterRoutes(mux)
	offerHandler.RegisterRoutes(mux)
	healthHandler.RegisterRoutes(mux)

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Taskflow API'ye Hoş Geldiniz!"))
	})

	handler := middleware.TracingMiddleware(
		middleware.MetricsMiddleware(
			middleware.LoggingMiddleware(log)(mux),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		log.Info("HTTP sunucusu başlatılıyor", map[string]interface{}{"port": cfg.Server.Port})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP sunucusu başlatılamadı", map[string]interface{}{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Sunucu kapatılıyor...", map[string]interface{}{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Sunucu kapatılırken hata oluştu", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Sunucu başarıyla kapatıldı", map[string]interface{}{})
}
