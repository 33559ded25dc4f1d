package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Kay-svg505/Philologic-platform/docs"
	"github.com/Kay-svg505/Philologic-platform/internal/auth"
	"github.com/Kay-svg505/Philologic-platform/internal/cache"
	"github.com/Kay-svg505/Philologic-platform/internal/config"
	"github.com/Kay-svg505/Philologic-platform/internal/db"
	"github.com/Kay-svg505/Philologic-platform/internal/handler"
	"github.com/Kay-svg505/Philologic-platform/internal/inference"
	"github.com/Kay-svg505/Philologic-platform/internal/logger"
	"github.com/Kay-svg505/Philologic-platform/internal/metrics"
	"github.com/Kay-svg505/Philologic-platform/internal/repository"
	"github.com/Kay-svg505/Philologic-platform/internal/router"
	"github.com/Kay-svg505/Philologic-platform/internal/service"
	"github.com/Kay-svg505/Philologic-platform/internal/view"
)

const shutdownTimeout = 10 * time.Second

// @title PhiloLogic API
// @version 1.0
// @description Philosophy learning platform with a notes-to-flashcards generator and question answering.
// @host localhost:5001
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name philologic_session
// @description Session cookie set by POST /login.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gormDB); err != nil {
			log.Fatal("auto-migrate", zap.Error(err))
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn("redis unreachable, logins will fail until it is available", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancel()

	m := metrics.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	philosopherRepo := repository.NewPhilosopherRepository(gormDB)
	flashcardRepo := repository.NewFlashcardRepository(gormDB)

	// Initialize auth components
	tokens := auth.NewTokenService(cfg.SecretKey)
	sessions := auth.NewManager(tokens, auth.NewRedisSessionStore(cacheClient), cfg.SessionTTL)
	sessionMiddleware := auth.NewMiddleware(tokens, sessions, log)

	inferenceClient := inference.NewHTTPClient(inference.Config{
		BaseURL: cfg.InferenceBaseURL,
		APIKey:  cfg.InferenceAPIKey,
		Model:   cfg.InferenceModel,
		QAModel: cfg.InferenceQAModel,
		Timeout: cfg.InferenceTimeout,
	}, log, m)
	if cfg.InferenceAPIKey == "" {
		log.Warn("INFERENCE_API_KEY is not set; inference calls are sent without credentials")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions, log)
	contentService := service.NewContentService(philosopherRepo)
	flashcardService := service.NewFlashcardService(flashcardRepo, inferenceClient, m, log)
	qaService := service.NewQAService(inferenceClient, log)
	probeService := service.NewProbeService(gormDB)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal("parse templates", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	router.Register(
		e,
		cfg,
		log,
		m,
		sessionMiddleware,
		handler.NewPageHandler(contentService, probeService, log),
		handler.NewAuthHandler(authService, cfg.IsProduction(), log),
		handler.NewPhilosopherHandler(contentService),
		handler.NewFlashcardHandler(flashcardService),
		handler.NewQAHandler(qaService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	addr := ":" + cfg.ServerPort
	go func() {
		log.Info("starting http server",
			zap.String("addr", addr),
			zap.String("env", cfg.Env),
			zap.String("swagger", "http://localhost"+addr+"/swagger/index.html"),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
