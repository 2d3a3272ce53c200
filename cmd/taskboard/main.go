package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	myPostgresRepo "github.com/taleom/taskboard/internal/adapters/db/postgres"
	"github.com/taleom/taskboard/internal/app/auth/jwt"
	authsvc "github.com/taleom/taskboard/internal/app/auth/service"
	tasksvc "github.com/taleom/taskboard/internal/app/task/service"
	"github.com/taleom/taskboard/internal/infra/config"
	lg "github.com/taleom/taskboard/internal/infra/log"
	"github.com/taleom/taskboard/internal/infra/migrate"
	"github.com/taleom/taskboard/internal/transport/rest"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
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

	validate := validator.New()

	tokenUtil, err := jwt.NewTokenUtil(cfg)
	if err != nil {
		zapLog.Fatal("failed to init token util", zap.Error(err))
	}

	userRepo := myPostgresRepo.NewUserRepo(db)
	taskRepo := myPostgresRepo.NewTaskRepo(db)
	authService := authsvc.New(userRepo, tokenUtil, cfg, validate)
	taskService := tasksvc.New(taskRepo, validate)

	handler := rest.NewHandler(authService, taskService, tokenUtil, zapLog)
	router := rest.NewRouter(cfg, zapLog, handler)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, _ := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		zapLog.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutdown signal received")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
