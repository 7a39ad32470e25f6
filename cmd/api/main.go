package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/team7/classroom-informer-api/api/swagger"
	"github.com/team7/classroom-informer-api/internal/handler"
	"github.com/team7/classroom-informer-api/internal/middleware"
	"github.com/team7/classroom-informer-api/internal/repository"
	"github.com/team7/classroom-informer-api/internal/service"
	"github.com/team7/classroom-informer-api/pkg/cache"
	"github.com/team7/classroom-informer-api/pkg/config"
	"github.com/team7/classroom-informer-api/pkg/database"
	"github.com/team7/classroom-informer-api/pkg/jobs"
	"github.com/team7/classroom-informer-api/pkg/logger"
	corsmiddleware "github.com/team7/classroom-informer-api/pkg/middleware/cors"
	reqidmiddleware "github.com/team7/classroom-informer-api/pkg/middleware/requestid"
)

// @title Classroom Informer API
// @version 1.0.0
// @description Classroom availability lookups, favorites and free-room alerts
// @BasePath /api/v1
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

	location, err := time.LoadLocation(cfg.Availability.Timezone)
	if err != nil {
		logr.Sugar().Fatalw("invalid timezone", "timezone", cfg.Availability.Timezone, "error", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsService := service.NewMetricsService()
	validate := validator.New()

	var cacheService *service.CacheService
	if cfg.Availability.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close() //nolint:errcheck
			cacheService = service.NewCacheService(cacheRepo, metricsService, cfg.Availability.CacheTTL, logr, true)
		}
	}

	buildingRepo := repository.NewBuildingRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	studentTimetableRepo := repository.NewStudentTimetableRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var dispatcher service.AlertDispatcher = service.NewLogAlertDispatcher(logr)
	var alertQueue *jobs.Queue
	if cfg.Notifications.Enabled {
		alertQueue = service.NewAlertQueue(dispatcher, jobs.QueueConfig{
			Workers:    cfg.Notifications.DispatchWorkers,
			MaxRetries: cfg.Notifications.DispatchRetries,
			Logger:     logr,
		})
		alertQueue.Start(ctx)
		defer alertQueue.Stop()
		dispatcher = service.NewQueueAlertDispatcher(alertQueue)
	}

	identityService := service.NewIdentityService(service.IdentityConfig{
		TokenSecret: cfg.Auth.TokenSecret,
		Issuer:      cfg.Auth.Issuer,
		Audience:    cfg.Auth.Audience,
	}, logr)
	infoService := service.NewInfoService(buildingRepo, roomRepo, logr)
	availabilityService := service.NewAvailabilityService(infoService, buildingRepo, roomRepo, timetableRepo, cacheService, service.AvailabilityWindow{
		Start: cfg.Availability.WindowStart,
		End:   cfg.Availability.WindowEnd,
	}, logr)
	timetableService := service.NewTimetableService(infoService, timetableRepo, studentTimetableRepo, cfg.Exports.Enabled, logr)
	favoriteService := service.NewFavoriteService(favoriteRepo, roomRepo, logr)
	notificationService := service.NewNotificationService(favoriteRepo, timetableRepo, reservationRepo, dispatcher, validate, location, cfg.Notifications.DefaultMinutesBefore, logr)

	infoHandler := handler.NewInfoHandler(infoService, availabilityService)
	timetableHandler := handler.NewTimetableHandler(timetableService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	metricsHandler := handler.NewMetricsHandler(metricsService, db)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		info := api.Group("/info")
		{
			info.GET("/buildings", infoHandler.Buildings)
			info.GET("/rooms", infoHandler.Rooms)
			info.GET("/rooms/available", infoHandler.AvailableRooms)
			info.GET("/room/details", infoHandler.RoomDetails)
			info.GET("/room/timetable", timetableHandler.RoomTimetable)
			info.GET("/room/timetable/free-slots", infoHandler.FreeSlots)
			info.GET("/room/timetable/export", timetableHandler.Export)
		}

		protected := api.Group("")
		protected.Use(middleware.Auth(identityService))
		{
			protected.GET("/timetable", timetableHandler.StudentTimetable)
			protected.GET("/favorites", favoriteHandler.List)
			protected.POST("/favorites/toggle", favoriteHandler.Toggle)
			if cfg.Notifications.Enabled {
				protected.POST("/notifications/check-availability", notificationHandler.CheckAvailability)
			}
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown failed", "error", err)
	}
}
