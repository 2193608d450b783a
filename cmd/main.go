package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-hydroponics/docs"
	"github.com/sbilibin2017/gw-hydroponics/internal/config"
	"github.com/sbilibin2017/gw-hydroponics/internal/database"
	"github.com/sbilibin2017/gw-hydroponics/internal/handlers"
	"github.com/sbilibin2017/gw-hydroponics/internal/jwt"
	"github.com/sbilibin2017/gw-hydroponics/internal/logger"
	"github.com/sbilibin2017/gw-hydroponics/internal/middlewares"
	"github.com/sbilibin2017/gw-hydroponics/internal/permissions"
	"github.com/sbilibin2017/gw-hydroponics/internal/repositories"
	"github.com/sbilibin2017/gw-hydroponics/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-hydroponics API
// @version 1.0.0
// @description Multi-tenant API for hydroponic systems and their sensor measurements
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It returns when ctx is cancelled or a termination signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	db, err := database.Connect(ctx, cfg.PostgresDSN(), cfg.Postgres.MaxOpenConns, cfg.Postgres.MaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.MigrationsAuto {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}

	var kafkaWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Log.Info("No Kafka brokers configured, measurement events disabled")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           newRouter(cfg, db, rdb, kafkaWriter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// A nil kafkaWriter disables measurement events.
func newRouter(cfg *config.Config, db *sqlx.DB, rdb *redis.Client, kafkaWriter services.KafkaWriter) http.Handler {
	jwtService := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWT.ExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	systemReadRepo := repositories.NewSystemReadRepository(db, txGetter)
	systemWriteRepo := repositories.NewSystemWriteRepository(db, txGetter)
	measurementReadRepo := repositories.NewMeasurementReadRepository(db, txGetter)
	measurementWriteRepo := repositories.NewMeasurementWriteRepository(db, txGetter)
	tokenRepo := repositories.NewTokenRevocationRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService, tokenRepo)
	systemService := services.NewSystemService(systemReadRepo, systemWriteRepo, measurementReadRepo, permissions.SystemOwner{})
	measurementService := services.NewMeasurementService(
		measurementReadRepo,
		measurementWriteRepo,
		systemReadRepo,
		permissions.MeasurementOwner{},
		permissions.SystemOwner{},
		kafkaWriter,
	)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/", handlers.NewRootHandler())
	r.Get("/health", handlers.NewHealthHandler(db))
	r.Post(handlers.RegisterPath, handlers.NewRegisterHandler(authService))
	r.Post(handlers.LoginPath, handlers.NewLoginHandler(authService))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr())),
	))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtService, tokenRepo))
		r.Use(middlewares.TxMiddleware(db))

		r.Post(handlers.LogoutPath, handlers.NewLogoutHandler(authService))

		r.Get(handlers.SystemsPath, handlers.NewListSystemsHandler(systemService))
		r.Post(handlers.SystemsPath, handlers.NewCreateSystemHandler(systemService))
		r.Get(handlers.SystemsPath+"{slug}/", handlers.NewGetSystemHandler(systemService))
		r.Put(handlers.SystemsPath+"{slug}/", handlers.NewUpdateSystemHandler(systemService))
		r.Delete(handlers.SystemsPath+"{slug}/", handlers.NewDeleteSystemHandler(systemService))

		r.Get(handlers.MeasurementsPath, handlers.NewListMeasurementsHandler(measurementService))
		r.Post(handlers.MeasurementsPath, handlers.NewCreateMeasurementHandler(measurementService))
		r.Get(handlers.MeasurementsPath+"{id}/", handlers.NewGetMeasurementHandler(measurementService))
		r.Put(handlers.MeasurementsPath+"{id}/", handlers.NewUpdateMeasurementHandler(measurementService))
		r.Delete(handlers.MeasurementsPath+"{id}/", handlers.NewDeleteMeasurementHandler(measurementService))
	})

	return r
}
