package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Kay-svg505/Philologic-platform/internal/model"
)

// UserRepository persists learner accounts. Lookups that miss return an
// error matching gorm.ErrRecordNotFound.
type UserRepository interface {
	// Create inserts user. Email and username uniqueness is enforced by the schema.
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if user.SubscriptionType == "" {
		user.SubscriptionType = model.SubscriptionFree
	}
	if err := r.db.WithContext(ctx).Omit("Flashcards").Create(user).Error; err != nil {
		return fmt.Errorf("insert user %q: %w", user.Username, err)
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
