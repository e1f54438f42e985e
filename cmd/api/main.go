package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devaqn/projeto-pet-shop/internal/config"
	dbpkg "github.com/devaqn/projeto-pet-shop/internal/db"
	"github.com/devaqn/projeto-pet-shop/internal/logger"
	"github.com/devaqn/projeto-pet-shop/internal/middleware"
	"github.com/devaqn/projeto-pet-shop/internal/routes"
)

func main() {

	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg.DatabasePath)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogMiddleware())
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	go func() {
		logger.Sugar.Infof("Servidor rodando em http://localhost%s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("shutdown error", zap.Error(err))
	}

	dbpkg.Close(db)
	logger.Sugar.Info("Banco de dados fechado")
}
