package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/open-music/server/internal/cron"
	"github.com/open-music/server/internal/handler"
	"github.com/open-music/server/internal/mq"
	"github.com/open-music/server/internal/repository"
	"github.com/open-music/server/internal/service"
	"github.com/open-music/server/internal/storage"
	"github.com/open-music/server/migrations"
	"github.com/open-music/server/pkg/config"
	"github.com/open-music/server/pkg/db"
	"github.com/open-music/server/pkg/jwt"
	"github.com/open-music/server/pkg/logger"
	"github.com/open-music/server/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{Level: logger.ParseLevel(cfg.Log.Level)})
	log.Info("Starting open-music server")

	if err := run(cfg, log); err != nil {
		log.Fatal("Server exited with error", logger.Error(err))
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx := context.Background()

	// 数据库迁移
	migrator, err := db.NewMigrator(cfg.Postgres.DSN(), migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := migrator.Up(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	migrator.Close()
	log.Info("Database migrations applied")

	// 连接池
	pool, err := db.NewPool(ctx, &db.PoolConfig{
		DSN:             cfg.Postgres.DSN(),
		MaxConns:        cfg.Postgres.MaxConns,
		MinConns:        cfg.Postgres.MinConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()
	log.Info("Database connected")

	cache, err := redis.NewClient(&redis.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer cache.Close()
	log.Info("Redis connected")

	store, err := storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.BaseURL, cfg.Upload.MaxBytes)
	if err != nil {
		return fmt.Errorf("failed to init upload storage: %w", err)
	}

	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:        cfg.JWT.Secret,
		Issuer:        cfg.JWT.Issuer,
		AccessExpiry:  cfg.JWT.AccessExpiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})

	// 仓储层
	userRepo := repository.NewUserRepository(pool)
	tokenRepo := repository.NewAuthTokenRepository(pool)
	albumRepo := repository.NewAlbumRepository(pool)
	songRepo := repository.NewSongRepository(pool)
	playlistRepo := repository.NewPlaylistRepository(pool)
	collabRepo := repository.NewCollaborationRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	likeRepo := repository.NewAlbumLikeRepository(pool)

	// 服务层
	publisher := mq.NewRedisPublisher(cache, log)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, tokenRepo, jwtManager)
	albumService := service.NewAlbumService(albumRepo, songRepo, likeRepo, cache, cfg.Cache.LikeCountTTL, log)
	songService := service.NewSongService(songRepo, albumRepo)
	playlistService := service.NewPlaylistService(playlistRepo, collabRepo, songRepo, userRepo, activityRepo)
	collabService := service.NewCollaborationService(collabRepo, userRepo, playlistService)
	exportService := service.NewExportService(playlistService, publisher)
	cleanupService := service.NewCleanupService(tokenRepo, cfg.JWT.RefreshExpiry, log)

	// 定时任务
	scheduler := cron.NewScheduler(cleanupService, log)
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer scheduler.Stop()

	h := handler.New(
		albumService,
		songService,
		userService,
		authService,
		playlistService,
		collabService,
		exportService,
		store,
		log,
	)
	router := handler.NewRouter(h, jwtManager, store.Dir(), log)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", logger.String("addr", cfg.Server.Addr()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("Shutting down", logger.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
