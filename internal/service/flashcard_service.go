package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/Kay-svg505/Philologic-platform/internal/errors"
	"github.com/Kay-svg505/Philologic-platform/internal/inference"
	"github.com/Kay-svg505/Philologic-platform/internal/model"
	"github.com/Kay-svg505/Philologic-platform/internal/quiz"
	"github.com/Kay-svg505/Philologic-platform/internal/repository"
)

// FlashcardRecorder counts persisted flashcards.
type FlashcardRecorder interface {
	AddFlashcards(n int)
}

// FlashcardService turns study notes into stored flashcards.
type FlashcardService interface {
	GenerateFromNotes(ctx context.Context, userID uint, notes string) ([]quiz.QAPair, error)
	ListForUser(ctx context.Context, userID uint) ([]quiz.QAPair, error)
}

type flashcardService struct {
	repo     repository.FlashcardRepository
	client   inference.Client
	recorder FlashcardRecorder
	logger   *zap.Logger
}

// NewFlashcardService builds a FlashcardService. recorder may be nil.
func NewFlashcardService(repo repository.FlashcardRepository, client inference.Client, recorder FlashcardRecorder, logger *zap.Logger) FlashcardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &flashcardService{repo: repo, client: client, recorder: recorder, logger: logger}
}

// GenerateFromNotes asks the model for quiz pairs and stores every parsed
// pair for userID in one transaction. Nothing is written on any upstream
// failure or when the output holds no pairs.
func (s *flashcardService) GenerateFromNotes(ctx context.Context, userID uint, notes string) ([]quiz.QAPair, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, apperrors.ErrNotesRequired
	}

	text, err := s.client.GenerateText(ctx, quiz.BuildPrompt(notes))
	if err != nil {
		s.logger.Warn("flashcard generation failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	pairs := quiz.ParseQAPairs(text)
	if len(pairs) == 0 {
		return pairs, nil
	}

	cards := make([]model.Flashcard, len(pairs))
	for i, p := range pairs {
		cards[i] = model.Flashcard{UserID: userID, Question: p.Question, Answer: p.Answer}
	}
	if err := s.repo.CreateBatch(ctx, cards); err != nil {
		return nil, fmt.Errorf("store flashcards: %w", err)
	}
	if s.recorder != nil {
		s.recorder.AddFlashcards(len(cards))
	}
	return pairs, nil
}

func (s *flashcardService) ListForUser(ctx context.Context, userID uint) ([]quiz.QAPair, error) {
	cards, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	out := make([]quiz.QAPair, len(cards))
	for i, c := range cards {
		out[i] = quiz.QAPair{Question: c.Question, Answer: c.Answer}
	}
	return out, nil
}
