package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Kay-svg505/Philologic-platform/internal/auth"
	"github.com/Kay-svg505/Philologic-platform/internal/config"
	"github.com/Kay-svg505/Philologic-platform/internal/errors"
	"github.com/Kay-svg505/Philologic-platform/internal/handler"
	"github.com/Kay-svg505/Philologic-platform/internal/metrics"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	sessions *auth.Middleware,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	philosopherHandler *handler.PhilosopherHandler,
	flashcardHandler *handler.FlashcardHandler,
	qaHandler *handler.QAHandler,
) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	if m != nil {
		e.Use(m.Middleware())
	}
	e.Use(echo.WrapMiddleware(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Accept", "Origin", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Pages
	e.GET("/", pageHandler.Home, sessions.Optional())
	e.GET("/philosophers", pageHandler.Philosophers, sessions.Optional())
	e.GET("/test-db", pageHandler.TestDB)

	// Account forms
	e.GET("/register", authHandler.ShowRegister, sessions.Optional())
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.ShowLogin, sessions.Optional())
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// Catalog API
	api := e.Group("/api")
	api.GET("/philosophers", philosopherHandler.List)
	api.GET("/philosophers/:id/modules", philosopherHandler.ListModules)

	// Inference routes
	limiter := RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	e.POST("/submit-notes", flashcardHandler.SubmitNotes, sessions.Required(), limiter)
	e.GET("/flashcards", flashcardHandler.List, sessions.Required())
	e.POST("/qa", qaHandler.Answer, limiter)
}

// RateLimiter limits requests per client IP with echo's in-memory store.
func RateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	deny := func(c echo.Context, _ string, _ error) error {
		return c.JSON(http.StatusTooManyRequests, errors.ErrorResponse{
			Error: "rate limit exceeded",
			Code:  "RATE_LIMITED",
		})
	}
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(rps),
				Burst:     burst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, errors.ErrorResponse{
				Error: "unable to identify client",
				Code:  "RATE_LIMIT_IDENTIFIER",
			})
		},
		DenyHandler: deny,
	})
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			if c.Response().Status >= http.StatusInternalServerError {
				logger.Error("http request", fields...)
			} else {
				logger.Info("http request", fields...)
			}
			return nil
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
