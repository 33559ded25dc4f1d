package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Kay-svg505/Philologic-platform/internal/errors"
	"github.com/Kay-svg505/Philologic-platform/internal/service"
)

// PhilosopherHandler serves the catalog JSON API.
type PhilosopherHandler struct {
	contentService service.ContentService
}

// NewPhilosopherHandler creates a new philosopher handler.
func NewPhilosopherHandler(contentService service.ContentService) *PhilosopherHandler {
	return &PhilosopherHandler{contentService: contentService}
}

// PhilosopherResponse represents one philosopher in the API.
type PhilosopherResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	WorkTitle   string `json:"work_title"`
	Description string `json:"description"`
}

// ModuleResponse represents one learning module in the API.
type ModuleResponse struct {
	ID              uint   `json:"id"`
	PhilosopherID   uint   `json:"philosopher_id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	DifficultyLevel int    `json:"difficulty_level"`
	IsPremium       bool   `json:"is_premium"`
}

// List godoc
// @Summary List philosophers
// @Tags philosophers
// @Produce json
// @Success 200 {array} PhilosopherResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/philosophers [get]
func (h *PhilosopherHandler) List(c echo.Context) error {
	philosophers, err := h.contentService.ListPhilosophers(c.Request().Context())
	if err != nil {
		return respondError(err)
	}

	resp := make([]PhilosopherResponse, len(philosophers))
	for i, p := range philosophers {
		resp[i] = PhilosopherResponse{
			ID:          p.ID,
			Name:        p.Name,
			WorkTitle:   p.WorkTitle,
			Description: p.Description,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// ListModules godoc
// @Summary List learning modules of a philosopher
// @Tags philosophers
// @Produce json
// @Param id path int true "Philosopher ID"
// @Success 200 {array} ModuleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/philosophers/{id}/modules [get]
func (h *PhilosopherHandler) ListModules(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid philosopher id",
			Code:  "INVALID_ID",
		})
	}

	modules, err := h.contentService.ListModules(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(err)
	}

	resp := make([]ModuleResponse, len(modules))
	for i, m := range modules {
		resp[i] = ModuleResponse{
			ID:              m.ID,
			PhilosopherID:   m.PhilosopherID,
			Title:           m.Title,
			Content:         m.Content,
			DifficultyLevel: m.DifficultyLevel,
			IsPremium:       m.IsPremium,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
