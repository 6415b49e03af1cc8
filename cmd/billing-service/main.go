package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopstream/billing-service/internal/config"
	"github.com/shopstream/billing-service/internal/delivery/http/handlers"
	"github.com/shopstream/billing-service/internal/domain"
	"github.com/shopstream/billing-service/internal/infrastructure/ai"
	"github.com/shopstream/billing-service/internal/infrastructure/kafka"
	"github.com/shopstream/billing-service/internal/infrastructure/metrics"
	"github.com/shopstream/billing-service/internal/infrastructure/migrate"
	"github.com/shopstream/billing-service/internal/infrastructure/postgres"
	"github.com/shopstream/billing-service/internal/infrastructure/postgres/repository"
	"github.com/shopstream/billing-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	transactionPublisher := kafka.NewKafkaPublisher(brokers, cfg.Kafka.Topic)
	defer transactionPublisher.Close()

	// Init transaction repo
	transactionRepo := repository.NewDefaultTransactionRepository(db)

	// Init metrics
	billingMetrics := metrics.NewBillingMetrics(prometheus.DefaultRegisterer)

	// Simulated backends, one per product
	providers := make(map[string]ai.Provider)
	for _, key := range domain.ProductKeys() {
		product, err := domain.ProductByKey(key)
		if err != nil {
			log.Fatalf("failed to resolve product %s: %v", key, err)
		}
		providers[key] = ai.NewSimulatedProvider(
			backendName(product),
			product.ProcessingTime,
			cannedOutput(product),
		)
	}

	// Init billing usecase
	billingUsecase := usecase.NewDefaultBillingUsecase(
		transactionRepo,
		transactionPublisher,
		billingMetrics,
		providers,
	)
	billingUsecase.AlertWebhook = cfg.Alerts.Webhook
	// Init transaction usecase
	transactionUsecase := usecase.NewDefaultTransactionUsecase(
		transactionRepo,
		transactionPublisher,
		billingMetrics,
	)

	handler := handlers.NewBillingHandler(billingUsecase, transactionUsecase)
	router := handlers.NewRouter(handler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("billing service started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.BillingConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func backendName(product domain.Product) string {
	if product.Backend == "" {
		return "catalog"
	}
	return product.Backend
}

func cannedOutput(product domain.Product) string {
	switch product.Key {
	case domain.ProductSmartCopy:
		return "Transform your space with this premium, eco-friendly solution..."
	case domain.ProductBrandGuard:
		return "Content meets brand guidelines. Safety score: 98/100"
	default:
		return ""
	}
}
