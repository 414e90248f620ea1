package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-catalog-api/internal/config"
	"go-catalog-api/internal/handler"
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/router"
	"go-catalog-api/internal/service"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/database"
	"go-catalog-api/pkg/jwt"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Info(".env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.SetLevel(cfg.LogLevel)

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}
	log.Info("database connection established")

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	done := make(chan struct{})
	go wsHub.Run(done)

	// 4. Dependency Injection (Wiring Layers)
	tokens := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("invalid REDIS_URL")
		}
		rdb = redis.NewClient(opts)
		productRepo = repository.NewCachedProductRepo(productRepo, rdb, cfg.CacheTTL, log)
		log.WithField("addr", opts.Addr).Info("product listing cache enabled")
	}

	authService := service.NewAuthService(userRepo, tokens)
	catalogService := service.NewCatalogService(productRepo, userRepo, wsHub)

	app := router.New(router.Deps{
		AppName:        cfg.AppName,
		AccessLog:      true,
		Tokens:         tokens,
		AuthHandler:    handler.NewAuthHandler(authService, log),
		CatalogHandler: handler.NewCatalogHandler(catalogService, log),
		Hub:            wsHub,
		Metrics:        middleware.NewMetrics("catalog"),
	})

	// 5. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Panic("server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	close(done)
	if rdb != nil {
		rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info("server exited")
}
