package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Kay-svg505/Philologic-platform/internal/auth"
	"github.com/Kay-svg505/Philologic-platform/internal/service"
	"github.com/Kay-svg505/Philologic-platform/internal/view"
)

// PageHandler serves the HTML pages and the database probe.
type PageHandler struct {
	contentService service.ContentService
	probeService   service.ProbeService
	logger         *zap.Logger
}

// NewPageHandler creates a new page handler.
func NewPageHandler(contentService service.ContentService, probeService service.ProbeService, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{contentService: contentService, probeService: probeService, logger: logger}
}

func pageData(c echo.Context, title string) view.PageData {
	data := view.PageData{Title: title, Flash: popFlash(c)}
	if id, ok := auth.IdentityFromContext(c.Request().Context()); ok {
		data.Username = id.Username
	}
	return data
}

// Home renders the landing page.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageIndex, pageData(c, ""))
}

// Philosophers renders every philosopher.
func (h *PageHandler) Philosophers(c echo.Context) error {
	philosophers, err := h.contentService.ListPhilosophers(c.Request().Context())
	if err != nil {
		h.logger.Error("list philosophers", zap.Error(err))
		return respondError(err)
	}
	data := pageData(c, "Philosophers")
	data.Philosophers = philosophers
	return c.Render(http.StatusOK, view.PagePhilosophers, data)
}

// TestDB godoc
// @Summary Database connectivity probe
// @Tags ops
// @Produce plain
// @Success 200 {string} string "Database connected! Result: 1"
// @Failure 503 {string} string "Database connection failed: <error>"
// @Router /test-db [get]
func (h *PageHandler) TestDB(c echo.Context) error {
	result, err := h.probeService.PingDatabase(c.Request().Context())
	if err != nil {
		h.logger.Warn("database probe failed", zap.Error(err))
		return c.String(http.StatusServiceUnavailable, fmt.Sprintf("Database connection failed: %v", err))
	}
	return c.String(http.StatusOK, fmt.Sprintf("Database connected! Result: %d", result))
}
