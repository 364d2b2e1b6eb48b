package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"article-query/internal/cache"
	"article-query/internal/config"
	"article-query/internal/handler"
	"article-query/internal/infrastructure/database"
	"article-query/internal/logger"
	"article-query/internal/metrics"
	"article-query/internal/middleware"
	"article-query/internal/repository"
	"article-query/internal/service"
	"article-query/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Connect to Redis when caching is enabled; the service degrades to
	// direct reads without it.
	var articleCache *cache.Cache
	var redisClient *redis.Client
	if cfg.CacheEnabled {
		redisClient, err = database.NewRedis(context.Background(), database.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Fatal("Failed to connect to redis",
				slog.String("error", err.Error()))
		}
		defer redisClient.Close()
		articleCache = cache.New(redisClient, cfg.CacheTTL)
	}

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	tagRepo := repository.NewPostgresTagRepository(pool)
	favoriteRepo := repository.NewPostgresFavoriteRepository(pool)
	queryRepo := repository.NewPostgresArticleQueryRepository(pool)
	feedRepo := repository.NewPostgresFeedRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(
		articleRepo,
		tagRepo,
		favoriteRepo,
		queryRepo,
		feedRepo,
		articleCache,
	)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService, v, cfg.DefaultPageSize)
	tagHandler := handler.NewTagHandler(articleService)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Viewer())
	if cfg.RateLimitEnabled && redisClient != nil {
		limiter := middleware.NewRateLimiter(middleware.NewRedisRateLimitStore(redisClient))
		router.Use(middleware.RateLimit(limiter, map[string]middleware.RateLimitRule{
			"GET /api/v1/articles":                   {Limit: 100, Window: time.Minute},
			"GET /api/v1/articles/feed":              {Limit: 60, Window: time.Minute},
			"GET /api/v1/articles/:slug":             {Limit: 60, Window: time.Minute},
			"POST /api/v1/articles":                  {Limit: 10, Window: time.Hour},
			"PUT /api/v1/articles/:slug":             {Limit: 30, Window: time.Hour},
			"DELETE /api/v1/articles/:slug":          {Limit: 30, Window: time.Hour},
			"POST /api/v1/articles/:slug/favorite":   {Limit: 30, Window: time.Minute},
			"DELETE /api/v1/articles/:slug/favorite": {Limit: 30, Window: time.Minute},
			"GET /api/v1/tags":                       {Limit: 60, Window: time.Minute},
		}))
	}
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/feed", articleHandler.GetFeed)
			articles.GET("/:slug", articleHandler.GetArticle)
			articles.POST("", articleHandler.CreateArticle)
			articles.PUT("/:slug", articleHandler.UpdateArticle)
			articles.DELETE("/:slug", articleHandler.DeleteArticle)
			articles.POST("/:slug/favorite", articleHandler.FavoriteArticle)
			articles.DELETE("/:slug/favorite", articleHandler.UnfavoriteArticle)
		}

		v1.GET("/tags", tagHandler.ListTags)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
