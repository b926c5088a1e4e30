package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	postgresdriver "gorm.io/driver/postgres"

	"printmarket/cmd"
	httpadapter "printmarket/internal/adapters/in/http"
	"printmarket/internal/adapters/out/auth"
	"printmarket/internal/adapters/out/kafkanotifier"
	"printmarket/internal/adapters/out/localfs"
	"printmarket/internal/adapters/out/paymentgw"
	"printmarket/internal/adapters/out/postgres"
	"printmarket/internal/adapters/out/sessionregistry"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/ports"
	"printmarket/internal/jobs"
)

func main() {
	configs := getConfigs()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	gormDB := connectDatabase(configs)
	if err := postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	notifier := kafkanotifier.NewKafkaNotifier([]string{configs.KafkaHost}, configs.KafkaTopic, logger)
	defer notifier.Close()

	store, err := localfs.NewObjectStore(configs.StorageDir)
	if err != nil {
		log.Fatalf("Failed to create object store: %v", err)
	}

	gateway, err := paymentgw.NewHTTPPaymentGateway(configs.PaymentProviderURL, configs.PaymentProviderKey)
	if err != nil {
		log.Fatalf("Failed to create payment gateway: %v", err)
	}

	tokens, err := auth.NewTokenService([]byte(configs.JWTSecret), buildSessionRegistry(configs, logger))
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, notifier, store, gateway, logger)

	jobManager := buildJobManager(&root, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, tokens, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:          goDotEnvVariable("KAFKA_HOST"),
		KafkaTopic:         goDotEnvVariable("KAFKA_TOPIC"),
		RedisAddr:          goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:      goDotEnvVariable("REDIS_PASSWORD"),
		JWTSecret:          goDotEnvVariable("JWT_SECRET"),
		PaymentProviderURL: goDotEnvVariable("PAYMENT_PROVIDER_URL"),
		PaymentProviderKey: goDotEnvVariable("PAYMENT_PROVIDER_KEY"),
		StorageDir:         goDotEnvVariable("STORAGE_DIR"),
		DisputeWindowDays:  goDotEnvVariable("DISPUTE_WINDOW_DAYS"),
		PayoutDelayDays:    goDotEnvVariable("PAYOUT_DELAY_DAYS"),
		CommissionRate:     goDotEnvVariable("COMMISSION_RATE"),
		TriangleLimit:      goDotEnvVariable("TRIANGLE_LIMIT"),
		PreviewLimit:       goDotEnvVariable("PREVIEW_LIMIT"),
	}

	if config.KafkaTopic == "" {
		config.KafkaTopic = kafkanotifier.DefaultTopic
	}

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// connectDatabase opens the connection through lib/pq so driver errors carry
// postgres error codes the repositories map.
func connectDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func buildSessionRegistry(configs cmd.Config, logger zerolog.Logger) ports.SessionRegistry {
	if configs.RedisAddr == "" {
		logger.Warn().Msg("REDIS_ADDR not set, using in-memory session registry")
		return sessionregistry.NewInMemorySessionRegistry()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	return sessionregistry.NewRedisSessionRegistry(client)
}

func buildJobManager(root *cmd.CompositionRoot, logger zerolog.Logger) *jobs.JobManager {
	cancelStaleOrdersHandler, err := root.CreateCancelStaleOrdersCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create stale order handler: %v", err)
	}

	archivePhotosHandler, err := root.CreateArchivePhotosCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create photo archival handler: %v", err)
	}

	return jobs.NewJobManager(cancelStaleOrdersHandler, archivePhotosHandler, kernel.NewUUID(), logger)
}

func startWebServer(root *cmd.CompositionRoot, tokens *auth.TokenService, port string, logger zerolog.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(root.CreateHTTPHandlers(), tokens)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("web server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
