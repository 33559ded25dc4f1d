package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kay-svg505/Philologic-platform/internal/model"
)

// FlashcardRepository defines flashcard persistence operations.
type FlashcardRepository interface {
	// CreateBatch inserts all cards in a single transaction. An empty slice is a no-op.
	CreateBatch(ctx context.Context, cards []model.Flashcard) error
	ListByUser(ctx context.Context, userID uint) ([]model.Flashcard, error)
}

type flashcardRepository struct {
	db *gorm.DB
}

// NewFlashcardRepository creates a new flashcard repository.
func NewFlashcardRepository(db *gorm.DB) FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) CreateBatch(ctx context.Context, cards []model.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range cards {
			if err := tx.Create(&cards[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByUser returns the user's cards in insertion order.
func (r *flashcardRepository) ListByUser(ctx context.Context, userID uint) ([]model.Flashcard, error) {
	var cards []model.Flashcard
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}
