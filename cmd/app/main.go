package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"bakery/api/openapi"
	"bakery/cmd"
	httpin "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/gateways"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to close connections", "error", err)
		}
	}()

	jobManager := startJobs(ctx, app)
	defer jobManager.StopAll()

	if consumer := app.CreateEventsConsumer(); consumer != nil {
		go consumer.Consume(ctx)
	}

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:             goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:             goDotEnvVariable("DB_PORT", "5432"),
		DBUser:             goDotEnvVariable("DB_USER", "postgres"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD", ""),
		DBName:             goDotEnvVariable("DB_NAME", "bakery"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE", "disable"),
		EventBus:           goDotEnvVariable("EVENT_BUS", cmd.EventBusMemory),
		KafkaHost:          goDotEnvVariable("KAFKA_HOST", "localhost:9092"),
		KafkaConsumerGroup: goDotEnvVariable("KAFKA_CONSUMER_GROUP", "bakery"),
		KafkaEventsTopic:   goDotEnvVariable("KAFKA_EVENTS_TOPIC", "bakery.events"),
		RabbitMQURL:        goDotEnvVariable("RABBITMQ_URL", ""),
		OutboxBatchSize:    mustInt("OUTBOX_BATCH_SIZE", jobs.DefaultRelayBatchSize),
		PaymentSuccessRate: mustFloat("PAYMENT_SUCCESS_RATE", gateways.DefaultPaymentSuccessRate),
		PaymentLatency:     time.Duration(mustInt("PAYMENT_LATENCY_MS", 2000)) * time.Millisecond,
	}
	return config
}

func goDotEnvVariable(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func mustInt(key string, fallback int) int {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}

func mustFloat(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startJobs(ctx context.Context, app *cmd.CompositionRoot) *jobs.JobManager {
	relay := app.CreateOutboxRelayJob(app.CreateEventPublisher())
	jobManager := jobs.NewJobManager(relay)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	listener, err := app.CreateRelayListener()
	if err != nil {
		log.Warnf("Relay wake-ups disabled, polling only: %v", err)
		return jobManager
	}
	go listener.Run(ctx, jobManager.WakeRelay)
	return jobManager
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := openapi.Load()
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}

	e, err := httpin.NewRouter(app.CreateHTTPServer(), doc, app.Metrics(), logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down HTTP server", "error", err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
