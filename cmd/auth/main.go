package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	myPostgresRepo "github.com/rylmat/auth-service/internal/adapters/db/postgres"
	myHttp "github.com/rylmat/auth-service/internal/adapters/transport/http"
	"github.com/rylmat/auth-service/internal/auth/hash"
	"github.com/rylmat/auth-service/internal/auth/jwt"
	"github.com/rylmat/auth-service/internal/auth/service"
	"github.com/rylmat/auth-service/internal/config"
	lg "github.com/rylmat/auth-service/internal/infra/log"
	"github.com/rylmat/auth-service/internal/migrate"
	"golang.org/x/sync/errgroup"

	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	godotenv.Load()

	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	userRepo := myPostgresRepo.NewPostgresUserRepo(db)
	hasher := hash.NewArgon2Hasher()
	tokenUtil := jwt.NewTokenUtil(cfg)
	svc := service.NewAuthService(userRepo, hasher, tokenUtil, cfg, validator.New())

	router := myHttp.NewRouter(svc, cfg, zapLog)

	srv := &http.Server{Addr: cfg.HTTPAddress, Handler: router}
	rootCtx, cancel := context.WithCancel(context.Background())
	g, _ := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		zapLog.Info("http server listening", zap.String("addr", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutdown signal received")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
