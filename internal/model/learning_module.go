package model

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	// MinDifficulty is the easiest module level.
	MinDifficulty = 1
	// MaxDifficulty is the hardest module level.
	MaxDifficulty = 10
)

// LearningModule is a lesson attached to one philosopher.
type LearningModule struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	PhilosopherID   uint   `json:"philosopher_id" gorm:"not null;index"`
	Title           string `json:"title" gorm:"size:200;not null"`
	Content         string `json:"content" gorm:"type:text;not null"`
	DifficultyLevel int    `json:"difficulty_level" gorm:"default:1"`
	IsPremium       bool   `json:"is_premium" gorm:"default:false"`

	Philosopher *Philosopher `json:"-" gorm:"foreignKey:PhilosopherID"`
}

func (LearningModule) TableName() string { return "learning_modules" }

// BeforeSave defaults and bounds the difficulty level.
func (m *LearningModule) BeforeSave(tx *gorm.DB) error {
	if m.DifficultyLevel == 0 {
		m.DifficultyLevel = MinDifficulty
	}
	if m.DifficultyLevel < MinDifficulty || m.DifficultyLevel > MaxDifficulty {
		return fmt.Errorf("difficulty level %d out of range %d-%d", m.DifficultyLevel, MinDifficulty, MaxDifficulty)
	}
	return nil
}
