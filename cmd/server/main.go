package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evaluationservice/internal/cache"
	"evaluationservice/internal/config"
	"evaluationservice/internal/data"
	"evaluationservice/internal/db"
	"evaluationservice/internal/handler"
	"evaluationservice/internal/middleware"
	"evaluationservice/internal/notify"
	"evaluationservice/internal/service"
	"evaluationservice/pkg/logging"
	"evaluationservice/pkg/metrics"
	"evaluationservice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	logger := logging.New(zapLogger)
	defer func() { _ = logger.Sync() }()
	ctx = logging.ContextWithLogger(ctx, logger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	pool, err := db.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	var detailCache handler.Cache = cache.NopCache{}
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Fatal(ctx, "invalid REDIS_URL", zap.Error(err))
		}
		redisCache := cache.NewRedisCache(rdb, "evaluationservice:")
		defer redisCache.Close()
		detailCache = redisCache
	} else {
		logger.Info(ctx, "REDIS_URL not set, detail cache disabled")
	}

	breaker := utils.NewCircuitBreaker(cfg.NotifyBreakerN, cfg.NotifyBreakerTO)
	notifier := notify.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaMailTopic, breaker)
	defer notifier.Close()

	metricsManager := metrics.NewManager()

	evaluationService := service.NewEvaluationService(
		data.NewEvaluationRepository(pool),
		data.NewEmployeeRepository(pool),
		data.NewUserRepository(pool),
		notifier,
		metricsManager,
		service.OptionsFromConfig(cfg),
	)
	evaluationHandler := handler.NewEvaluationHandler(evaluationService, detailCache, cfg.CacheTTL)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20) // 1 MB
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", metricsManager.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewMetricsMiddleware(metricsManager))
		r.Use(middleware.NewIdentityMiddleware())
		evaluationHandler.RegisterRoutes(r)
	})

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port),
		zap.String("reassign_policy", string(cfg.ReassignPolicy)),
		zap.String("resubmit_policy", string(cfg.ResubmitPolicy)),
		zap.String("answer_batch", string(cfg.AnswerBatch)),
	)

	srv := &http.Server{
		Addr:              port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "server forced to shutdown", zap.Error(err))
	}
	evaluationService.Wait()
	logger.Info(ctx, "Server stopped")
}
