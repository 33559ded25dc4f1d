package auth

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/Kay-svg505/Philologic-platform/internal/errors"
)

const tokenContextKey = "session_token"

// Middleware gates echo routes on an active session.
type Middleware struct {
	tokens   *TokenService
	sessions SessionManager
	logger   *zap.Logger
}

// NewMiddleware creates session middleware.
func NewMiddleware(tokens *TokenService, sessions SessionManager, logger *zap.Logger) *Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Middleware{tokens: tokens, sessions: sessions, logger: logger}
}

func unauthenticated() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: apperrors.ErrUnauthenticated.Error(),
		Code:  "UNAUTHENTICATED",
	})
}

// Required rejects requests without a valid session cookie with 401 JSON
// and attaches the Identity to the request context otherwise.
func (m *Middleware) Required() echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:  m.tokens.Secret(),
		ContextKey:  tokenContextKey,
		TokenLookup: "cookie:" + CookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthenticated()
		},
	})

	resolve := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return unauthenticated()
			}
			claims, ok := token.Claims.(*SessionClaims)
			if !ok || claims.ID == "" {
				return unauthenticated()
			}

			ctx := c.Request().Context()
			identity, err := m.sessions.Resolve(ctx, claims)
			if err != nil {
				if errors.Is(err, ErrSessionNotFound) {
					return unauthenticated()
				}
				m.logger.Error("resolve session", zap.Error(err))
				return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
					Error: "internal server error",
					Code:  "INTERNAL_ERROR",
				})
			}

			c.SetRequest(c.Request().WithContext(WithIdentity(ctx, identity)))
			return next(c)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(resolve(next))
	}
}

// Optional attaches the Identity when a valid session cookie is present and
// lets anonymous requests through untouched.
func (m *Middleware) Optional() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			ctx := c.Request().Context()
			identity, err := m.sessions.ResolveToken(ctx, cookie.Value)
			if err != nil {
				if !errors.Is(err, ErrSessionNotFound) {
					m.logger.Warn("resolve optional session", zap.Error(err))
				}
				return next(c)
			}
			c.SetRequest(c.Request().WithContext(WithIdentity(ctx, identity)))
			return next(c)
		}
	}
}
