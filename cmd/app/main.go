package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskshelf/internal/config"
	"taskshelf/internal/db"
	httpServer "taskshelf/internal/http"
	"taskshelf/internal/http/handlers"
	"taskshelf/internal/http/middleware"
	"taskshelf/internal/logger"
	"taskshelf/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	mongoDB := db.ConnectMongo(cfg.MongoURL, cfg.MongoDatabase)
	todos := repository.NewTodoRepository(mongoDB, cfg.TodoCollection)

	var pool *pgxpool.Pool
	var books handlers.BookStore
	if cfg.BookStore == config.BookStorePostgres {
		pool = db.ConnectPostgres(cfg.DatabaseURL)
		defer pool.Close()
		books = repository.NewPostgresBookRepository(pool)
	} else {
		logger.Info("using in-memory book store")
		books = repository.NewMemoryBookRepository()
	}

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := handlers.NewHandler(todos, books)
	health := handlers.NewHealthHandler(pool, mongoDB, version)
	httpServer.RegisterRoutes(r, h, health, cfg.APIRateLimit, cfg.APIRateWindow)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
