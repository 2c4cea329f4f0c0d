package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/studybuddy/study-planning/internal/config"
	"github.com/studybuddy/study-planning/internal/handler"
	"github.com/studybuddy/study-planning/internal/health"
	"github.com/studybuddy/study-planning/internal/infra/planrecorder"
	"github.com/studybuddy/study-planning/internal/infra/repository"
	"github.com/studybuddy/study-planning/internal/observability"
	"github.com/studybuddy/study-planning/internal/observability/logging"
	"github.com/studybuddy/study-planning/internal/observability/metrics"
	"github.com/studybuddy/study-planning/internal/observability/middleware"
	"github.com/studybuddy/study-planning/internal/service/plan"
	"github.com/studybuddy/study-planning/internal/service/stats"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	logging.Setup(cfg.LogLevel)

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.RefreshQueue.Validate(); err != nil {
		slog.Error("refresh queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	obs, err := observability.Init(ctx, Version)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	plannerMetrics, err := metrics.NewPlannerMetrics()
	if err != nil {
		slog.Error("failed to initialize planner metrics", slog.String("error", err.Error()))
		return 1
	}

	// Plan result recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := planrecorder.LoadConfig()
	resultRecorder, err := planrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize plan result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close plan result recorder", slog.String("error", err.Error()))
		}
	}()

	refreshQueue, cleanup, err := initRefreshQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize refresh queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("refresh queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	planRepo := repository.NewPlanRepository(redisClient)
	unitRepo := repository.NewUnitRepository(redisClient)
	assignmentRepo := repository.NewAssignmentRepository(redisClient)

	planner := plan.NewPlanner(nil)
	planService := plan.NewService(
		planner,
		unitRepo,
		assignmentRepo,
		planRepo,
		plannerMetrics,
		resultRecorder,
		refreshQueue,
	)
	statsService := stats.NewService(unitRepo, assignmentRepo, planRepo)

	planHandler := handler.NewPlanHandler(planService, statsService, cfg.Planner)
	unitHandler := handler.NewUnitHandler(unitRepo)
	assignmentHandler := handler.NewAssignmentHandler(assignmentRepo)

	// Router with observability middleware
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Tracing())
	r.Use(middleware.RequestLogging())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, Version)
	healthChecker.ReportFeature("refresh_queue", refreshQueue != nil)
	healthChecker.ReportFeature("result_recorder", recorderCfg.SinkConfigured())
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		plans := v1.Group("/plans")
		{
			plans.POST("/generate", planHandler.HandleGenerate)
			plans.POST("/refresh", planHandler.HandleRefresh)
			plans.GET("", planHandler.HandleList)
			plans.GET("/stats", planHandler.HandleStats)
			plans.GET("/:date", planHandler.HandleGetByDate)
			plans.DELETE("/:date", planHandler.HandleDelete)
			plans.POST("/:date/topics/:index/complete", planHandler.HandleCompleteTopic)
			plans.GET("/:date/suggestions", planHandler.HandleSuggestions)
		}

		units := v1.Group("/units")
		{
			units.POST("", unitHandler.HandleCreate)
			units.GET("", unitHandler.HandleList)
			units.GET("/:id", unitHandler.HandleGet)
			units.PUT("/:id", unitHandler.HandleUpdate)
			units.DELETE("/:id", unitHandler.HandleDelete)
		}

		assignments := v1.Group("/assignments")
		{
			assignments.POST("", assignmentHandler.HandleCreate)
			assignments.GET("", assignmentHandler.HandleList)
			assignments.GET("/:id", assignmentHandler.HandleGet)
			assignments.PUT("/:id", assignmentHandler.HandleUpdate)
			assignments.DELETE("/:id", assignmentHandler.HandleDelete)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("default_learning_pace", cfg.Planner.DefaultLearningPace),
			slog.Int("default_available_hours", cfg.Planner.DefaultAvailableHours),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
