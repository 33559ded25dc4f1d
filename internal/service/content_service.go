package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/Kay-svg505/Philologic-platform/internal/errors"
	"github.com/Kay-svg505/Philologic-platform/internal/model"
	"github.com/Kay-svg505/Philologic-platform/internal/repository"
)

// ContentService exposes the read-only philosopher catalog.
type ContentService interface {
	ListPhilosophers(ctx context.Context) ([]model.Philosopher, error)
	ListModules(ctx context.Context, philosopherID uint) ([]model.LearningModule, error)
}

type contentService struct {
	repo repository.PhilosopherRepository
}

// NewContentService builds a ContentService.
func NewContentService(repo repository.PhilosopherRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) ListPhilosophers(ctx context.Context) ([]model.Philosopher, error) {
	philosophers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list philosophers: %w", err)
	}
	return philosophers, nil
}

func (s *contentService) ListModules(ctx context.Context, philosopherID uint) ([]model.LearningModule, error) {
	if _, err := s.repo.FindByID(ctx, philosopherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhilosopherNotFound
		}
		return nil, fmt.Errorf("find philosopher: %w", err)
	}

	modules, err := s.repo.ListModules(ctx, philosopherID)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return modules, nil
}
