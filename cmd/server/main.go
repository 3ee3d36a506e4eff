package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/adapters/cache"
	"github.com/khoahotran/resume-portal/adapters/event"
	httpAdapter "github.com/khoahotran/resume-portal/adapters/http"
	"github.com/khoahotran/resume-portal/adapters/media"
	"github.com/khoahotran/resume-portal/internal/application/service"
	blogUC "github.com/khoahotran/resume-portal/internal/application/usecase/blog"
	ideaUC "github.com/khoahotran/resume-portal/internal/application/usecase/idea"
	planUC "github.com/khoahotran/resume-portal/internal/application/usecase/plan"
	projectUC "github.com/khoahotran/resume-portal/internal/application/usecase/project"
	resumeUC "github.com/khoahotran/resume-portal/internal/application/usecase/resume"
	"github.com/khoahotran/resume-portal/internal/config"
	"github.com/khoahotran/resume-portal/internal/i18n"
	"github.com/khoahotran/resume-portal/pkg/apiclient"
	"github.com/khoahotran/resume-portal/pkg/logger"
	"github.com/khoahotran/resume-portal/pkg/tracing"
)

const serviceName = "resume-portal-bff"

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer logger.Sync(appLogger)

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", err)
	}
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing
	tp, err := tracing.NewTracerProvider(cfg, appLogger, serviceName)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer", err)
	}
	if tp != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				appLogger.Error("Failed to shutdown tracer", err)
			}
		}()
	}

	// Backend client
	backend, err := apiclient.New(apiclient.Options{
		BaseURL:        cfg.Backend.BaseURL,
		DefaultHeaders: cfg.Backend.Headers,
		Timeout:        cfg.Backend.Timeout,
		Logger:         appLogger,
	})
	if err != nil {
		appLogger.Fatal("Failed to build backend client", err)
	}

	locale, err := i18n.NewConfig(cfg.Locale.Default, nil)
	if err != nil {
		appLogger.Fatal("Invalid default locale", err, zap.String("locale", cfg.Locale.Default))
	}

	// Optional infrastructure
	var limiter service.RateLimiter
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			limiter = cache.NewRedisRateLimiter(redisClient)
		}
	}

	events := service.NoopEvents
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		events = kafkaClient
	}

	images, err := media.NewCloudinaryResolver(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize image resolver", err)
	}

	// Use Cases
	resumeUseCase := resumeUC.NewResumeUseCase(backend, locale, appLogger)
	planUseCase := planUC.NewPlanUseCase(backend, service.SystemClock, appLogger)
	projectUseCase := projectUC.NewProjectUseCase(backend, appLogger)
	blogUseCase := blogUC.NewBlogUseCase(backend, appLogger)
	ideaUseCase := ideaUC.NewIdeaUseCase(backend, appLogger)

	// HTTP Handlers
	view := httpAdapter.NewViewSupport(locale, events, images, service.SystemClock, appLogger)
	handlers := httpAdapter.Handlers{
		Resume:  httpAdapter.NewResumeHandler(resumeUseCase, view, appLogger),
		Plan:    httpAdapter.NewPlanHandler(planUseCase, projectUseCase, view, appLogger),
		Project: httpAdapter.NewProjectHandler(projectUseCase, view, appLogger),
		Blog: httpAdapter.NewBlogHandler(blogUseCase, blogUC.FeedInfo{
			Title:       "Resume Portal - Blog",
			Description: "Notes, research and project updates.",
			Author:      "Resume Portal",
			SiteURL:     cfg.App.SiteURL,
		}, view, appLogger),
		Idea: httpAdapter.NewIdeaHandler(ideaUseCase, view, appLogger),
	}

	router := httpAdapter.NewRouter(handlers, httpAdapter.RateLimit{
		Limiter:  limiter,
		Requests: cfg.RateLimit.Requests,
		Window:   cfg.RateLimit.Window,
	}, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.String("backend", cfg.Backend.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
