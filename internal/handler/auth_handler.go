package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Kay-svg505/Philologic-platform/internal/auth"
	apperrors "github.com/Kay-svg505/Philologic-platform/internal/errors"
	"github.com/Kay-svg505/Philologic-platform/internal/service"
	"github.com/Kay-svg505/Philologic-platform/internal/view"
)

// Flash messages shown by the account pages.
const (
	FlashFieldsRequired     = "All fields are required"
	FlashEmailRegistered    = "Email already registered"
	FlashPasswordTooLong    = "Password must be at most 72 bytes"
	FlashRegistered         = "Registration successful!"
	FlashInvalidCredentials = "Invalid email or password"
	FlashLoggedOut          = "You have been logged out"
)

// AuthHandler handles the registration, login and logout forms.
type AuthHandler struct {
	authService   service.AuthService
	secureCookies bool
	logger        *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, secureCookies bool, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// RegisterRequest represents the registration form.
type RegisterRequest struct {
	Username string `form:"username" validate:"required,max=80"`
	Email    string `form:"email" validate:"required,max=120"`
	Password string `form:"password" validate:"required"`
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageRegister, pageData(c, "Register"))
}

// Register creates an account from the form and redirects home.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithFlash(c, "/register", FlashFieldsRequired)
	}
	if err := c.Validate(&req); err != nil {
		return redirectWithFlash(c, "/register", FlashFieldsRequired)
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return redirectWithFlash(c, "/register", FlashEmailRegistered)
		}
		if errors.Is(err, apperrors.ErrPasswordTooLong) {
			return redirectWithFlash(c, "/register", FlashPasswordTooLong)
		}
		h.logger.Error("register user", zap.Error(err))
		return respondError(err)
	}
	return redirectWithFlash(c, "/", FlashRegistered)
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageLogin, pageData(c, "Log in"))
}

// Login starts a session and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithFlash(c, "/login", FlashInvalidCredentials)
	}
	if err := c.Validate(&req); err != nil {
		return redirectWithFlash(c, "/login", FlashInvalidCredentials)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return redirectWithFlash(c, "/login", FlashInvalidCredentials)
		}
		h.logger.Error("login", zap.Error(err))
		return respondError(err)
	}

	c.SetCookie(auth.NewSessionCookie(token, h.authService.SessionTTL(), h.secureCookies))
	return redirectWithFlash(c, "/", "Welcome back, "+user.Username+"!")
}

// Logout ends the session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.CookieName); err == nil {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Warn("end session", zap.Error(err))
		}
	}
	c.SetCookie(auth.ExpiredSessionCookie(h.secureCookies))
	return redirectWithFlash(c, "/", FlashLoggedOut)
}
