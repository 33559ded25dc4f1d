package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Kay-svg505/Philologic-platform/internal/service"
)

// QAHandler forwards questions to the question-answering model.
type QAHandler struct {
	qaService service.QAService
}

// NewQAHandler creates a new QA handler.
func NewQAHandler(qaService service.QAService) *QAHandler {
	return &QAHandler{qaService: qaService}
}

// QARequest represents a question about a passage.
type QARequest struct {
	Context  string `json:"context" form:"context"`
	Question string `json:"question" form:"question"`
}

// QAResponse carries the model's answer.
type QAResponse struct {
	Answer string `json:"answer"`
}

// Answer godoc
// @Summary Answer a question about a passage
// @Tags qa
// @Accept json
// @Produce json
// @Param request body QARequest true "Passage and question"
// @Success 200 {object} QAResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /qa [post]
func (h *QAHandler) Answer(c echo.Context) error {
	var req QARequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	answer, err := h.qaService.Answer(c.Request().Context(), req.Context, req.Question)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, QAResponse{Answer: answer})
}
