package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"ordertracker/cmd"
	adapterhttp "ordertracker/internal/adapters/in/http"
	"ordertracker/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	configs := getConfigs()
	gormDB := mustConnectDB(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	app.EventBus().Start(context.Background())
	defer app.EventBus().Stop()

	statsJob := app.CreateOrderStatsJob()
	if err := statsJob.Start(); err != nil {
		log.Fatalf("Failed to start order stats job: %v", err)
	}
	defer statsJob.Stop()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "ordertracker"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		EnabledChannels:   splitCSV(envOrDefault("NOTIFY_ENABLED_CHANNELS", "webhook,email,sms")),
		WebhookBaseURL:    os.Getenv("NOTIFY_WEBHOOK_BASE_URL"),
		WebhookPath:       envOrDefault("NOTIFY_WEBHOOK_PATH", "/notifications"),
		RetryMaxAttempts:  envInt("NOTIFY_RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay: time.Duration(envInt("NOTIFY_RETRY_INITIAL_DELAY_MS", 200)) * time.Millisecond,
		RetryMultiplier:   envFloat("NOTIFY_RETRY_MULTIPLIER", 2.0),
		EmailTo:           envOrDefault("NOTIFY_EMAIL_TO", "ops@example.com"),
		EmailFrom:         envOrDefault("NOTIFY_EMAIL_FROM", "noreply@example.com"),
		SMSTo:             envOrDefault("NOTIFY_SMS_TO", "+10000000000"),
		SMSFrom:           envOrDefault("NOTIFY_SMS_FROM", "+10000000001"),

		EventQueueSize: envInt("EVENT_QUEUE_SIZE", 256),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid float for %s: %v", key, err)
	}
	return value
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBPort,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := adapterhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateSearchOrdersQueryHandler(),
		logger,
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
