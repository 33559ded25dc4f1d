package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Kay-svg505/Philologic-platform/internal/model"
)

// PhilosopherRepository defines philosopher and learning module persistence operations.
type PhilosopherRepository interface {
	List(ctx context.Context) ([]model.Philosopher, error)
	FindByID(ctx context.Context, id uint) (*model.Philosopher, error)
	ListModules(ctx context.Context, philosopherID uint) ([]model.LearningModule, error)
	// UpsertByName creates the philosopher or refreshes the row with the same name.
	UpsertByName(ctx context.Context, philosopher *model.Philosopher) (created bool, err error)
	// UpsertModule creates the module or refreshes the one with the same philosopher and title.
	UpsertModule(ctx context.Context, module *model.LearningModule) (created bool, err error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PhilosopherRepository) error) error
}

type philosopherRepository struct {
	db *gorm.DB
}

// NewPhilosopherRepository creates a new philosopher repository.
func NewPhilosopherRepository(db *gorm.DB) PhilosopherRepository {
	return &philosopherRepository{db: db}
}

// List returns every philosopher in primary key order.
func (r *philosopherRepository) List(ctx context.Context) ([]model.Philosopher, error) {
	var philosophers []model.Philosopher
	if err := r.db.WithContext(ctx).Order("id").Find(&philosophers).Error; err != nil {
		return nil, err
	}
	return philosophers, nil
}

// FindByID finds a philosopher by ID.
func (r *philosopherRepository) FindByID(ctx context.Context, id uint) (*model.Philosopher, error) {
	var philosopher model.Philosopher
	if err := r.db.WithContext(ctx).First(&philosopher, id).Error; err != nil {
		return nil, err
	}
	return &philosopher, nil
}

// ListModules returns the learning modules of one philosopher.
func (r *philosopherRepository) ListModules(ctx context.Context, philosopherID uint) ([]model.LearningModule, error) {
	var modules []model.LearningModule
	if err := r.db.WithContext(ctx).
		Where("philosopher_id = ?", philosopherID).
		Order("id").
		Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *philosopherRepository) UpsertByName(ctx context.Context, philosopher *model.Philosopher) (bool, error) {
	var existing model.Philosopher
	err := r.db.WithContext(ctx).Where("name = ?", philosopher.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Omit("Modules").Create(philosopher).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	existing.WorkTitle = philosopher.WorkTitle
	existing.Description = philosopher.Description
	existing.ReasoningFramework = philosopher.ReasoningFramework
	if err := r.db.WithContext(ctx).Omit("Modules").Save(&existing).Error; err != nil {
		return false, err
	}
	philosopher.ID = existing.ID
	return false, nil
}

func (r *philosopherRepository) UpsertModule(ctx context.Context, module *model.LearningModule) (bool, error) {
	var existing model.LearningModule
	err := r.db.WithContext(ctx).
		Where("philosopher_id = ? AND title = ?", module.PhilosopherID, module.Title).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(module).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	existing.Content = module.Content
	existing.DifficultyLevel = module.DifficultyLevel
	existing.IsPremium = module.IsPremium
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return false, err
	}
	module.ID = existing.ID
	return false, nil
}

// WithTransaction executes a function within a database transaction.
func (r *philosopherRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PhilosopherRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &philosopherRepository{db: tx})
	})
}
