package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"

	"yakjeong/core/cache"
	"yakjeong/core/config"
	"yakjeong/core/database"
	"yakjeong/core/logger"
	"yakjeong/core/middleware"
	"yakjeong/core/worker"
	"yakjeong/modules/participant"
	"yakjeong/modules/response"
	"yakjeong/modules/room"
)

// Run wires config, storage, cache, worker and the HTTP modules, then
// serves until interrupted.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.LogLevel, cfg.LogPretty)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		return err
	}

	c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer c.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	workerClient := worker.NewClient(redisOpt)
	defer workerClient.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.NewMiddleware()
	mw.Setup(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	retention := time.Duration(cfg.RoomRetentionDays) * 24 * time.Hour
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	roomSvc := room.Init(e, db, mw, c, workerClient, retention, cacheTTL)
	participant.Init(e, db, mw)
	response.Init(e, db, mw, c)

	workerSrv := worker.NewServer(redisOpt, cfg.WorkerConcurrency, func(ctx context.Context, roomID string) error {
		return roomSvc.DeactivateRoom(ctx, roomID)
	})
	if err := workerSrv.Start(); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	defer workerSrv.Shutdown()

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
