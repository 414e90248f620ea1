package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go-catalog-api/internal/config"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/service"
	"go-catalog-api/pkg/database"
	"go-catalog-api/pkg/jwt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	username := flag.String("username", "", "account to reset")
	password := flag.String("password", "", "new password (min 6 characters)")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Info(".env file not found, relying on system env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// 3. Reset
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := service.NewAuthService(repository.NewUserRepo(db), jwt.NewService(cfg.JWTSecret, cfg.TokenTTL))
	if err := svc.ResetPassword(ctx, *username, *password); err != nil {
		log.WithError(err).WithField("username", *username).Fatal("password reset failed")
	}

	log.WithField("username", *username).Info("password has been reset")
}
