package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/Kay-svg505/Philologic-platform/internal/errors"
	"github.com/Kay-svg505/Philologic-platform/internal/inference"
)

// FallbackAnswer is returned when the model produced no answer.
const FallbackAnswer = "No answer could be generated."

// QAService forwards extractive questions to the QA model.
type QAService interface {
	Answer(ctx context.Context, contextText, question string) (string, error)
}

type qaService struct {
	client inference.Client
	logger *zap.Logger
}

// NewQAService builds a QAService.
func NewQAService(client inference.Client, logger *zap.Logger) QAService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &qaService{client: client, logger: logger}
}

func (s *qaService) Answer(ctx context.Context, contextText, question string) (string, error) {
	if strings.TrimSpace(contextText) == "" || strings.TrimSpace(question) == "" {
		return "", apperrors.ErrQARequired
	}

	answer, err := s.client.AnswerQuestion(ctx, question, contextText)
	if err != nil {
		s.logger.Warn("question answering failed", zap.Error(err))
		return "", err
	}
	if answer == "" {
		return FallbackAnswer, nil
	}
	return answer, nil
}
