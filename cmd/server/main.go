package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vinnynacc/teammate-directory-api/api/swagger"
	"github.com/vinnynacc/teammate-directory-api/internal/handler"
	"github.com/vinnynacc/teammate-directory-api/internal/middleware"
	"github.com/vinnynacc/teammate-directory-api/internal/repository"
	"github.com/vinnynacc/teammate-directory-api/internal/service"
	"github.com/vinnynacc/teammate-directory-api/pkg/config"
	"github.com/vinnynacc/teammate-directory-api/pkg/logger"
	corsmiddleware "github.com/vinnynacc/teammate-directory-api/pkg/middleware/cors"
	reqidmiddleware "github.com/vinnynacc/teammate-directory-api/pkg/middleware/requestid"
	"github.com/vinnynacc/teammate-directory-api/pkg/storage"
)

// @title Teammate Directory API
// @version 1.0.0
// @description Backend for the team directory site
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	uploads, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare upload storage", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo *repository.CacheRepository
	if cfg.Cache.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cacheRepo = repository.NewCacheRepository(client, logr)
		defer cacheRepo.Close() //nolint:errcheck
	}
	var cacheSvc *service.CacheService
	if cacheRepo != nil {
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
	}

	teammateRepo := repository.NewTeammateRepository(cfg.Store.DataFile, logr)
	teammateSvc := service.NewTeammateService(teammateRepo, cacheSvc, metricsSvc, validator.New(), logr)
	exportSvc := service.NewExportService(teammateSvc)
	authSvc := service.NewAuthService(service.AuthConfig{
		Secret:     cfg.Admin.Token,
		SecretHash: cfg.Admin.TokenHash,
		SessionTTL: cfg.Admin.SessionTTL,
	}, logr)

	teammateHandler := handler.NewTeammateHandler(teammateSvc, exportSvc, uploads)
	authHandler := handler.NewAuthHandler(authSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.Static("/uploads", uploads.Dir())
	r.Static("/images", cfg.Upload.ImageDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Scrape)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/teammates", teammateHandler.List)
		api.GET("/teammates/:slug", teammateHandler.Get)
		api.POST("/auth/login", authHandler.Login)

		guarded := api.Group("", middleware.AdminToken(authSvc))
		{
			guarded.POST("/teammates", teammateHandler.Create)
			guarded.PUT("/teammates/:slug", teammateHandler.Update)
			guarded.DELETE("/teammates/:slug", teammateHandler.Delete)
			guarded.GET("/exports/teammates", teammateHandler.Export)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
