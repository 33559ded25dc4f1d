package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Kay-svg505/Philologic-platform/internal/auth"
	"github.com/Kay-svg505/Philologic-platform/internal/errors"
	"github.com/Kay-svg505/Philologic-platform/internal/quiz"
	"github.com/Kay-svg505/Philologic-platform/internal/service"
)

// FlashcardHandler handles the notes-to-flashcards endpoints.
type FlashcardHandler struct {
	flashcardService service.FlashcardService
}

// NewFlashcardHandler creates a new flashcard handler.
func NewFlashcardHandler(flashcardService service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{flashcardService: flashcardService}
}

// SubmitNotesRequest carries the study notes, as JSON or form data.
type SubmitNotesRequest struct {
	Notes string `json:"notes" form:"notes"`
}

// SubmitNotesResponse lists the flashcards created from the notes.
type SubmitNotesResponse struct {
	Flashcards []quiz.QAPair `json:"flashcards"`
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

// SubmitNotes godoc
// @Summary Generate flashcards from notes
// @Description Sends the notes to the text generation model, parses question/answer pairs and stores them for the current user.
// @Tags flashcards
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body SubmitNotesRequest true "Study notes"
// @Success 200 {object} SubmitNotesResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /submit-notes [post]
func (h *FlashcardHandler) SubmitNotes(c echo.Context) error {
	identity, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return respondError(errors.ErrUnauthenticated)
	}

	var req SubmitNotesRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	pairs, err := h.flashcardService.GenerateFromNotes(c.Request().Context(), identity.UserID, req.Notes)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, SubmitNotesResponse{Flashcards: pairs})
}

// List godoc
// @Summary List my flashcards
// @Tags flashcards
// @Produce json
// @Success 200 {array} quiz.QAPair
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /flashcards [get]
func (h *FlashcardHandler) List(c echo.Context) error {
	identity, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return respondError(errors.ErrUnauthenticated)
	}

	pairs, err := h.flashcardService.ListForUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, pairs)
}
