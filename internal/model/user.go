package model

import "time"

// SubscriptionFree is the tier assigned to every new account.
const SubscriptionFree = "free"

// User represents a registered learner.
type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Username         string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash     string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	SubscriptionType string    `json:"subscription_type" gorm:"size:20;default:'free'"`
	CreatedAt        time.Time `json:"created_at"`

	Flashcards []Flashcard `json:"-" gorm:"foreignKey:UserID"`
}

// TableName pins the table name shared with the existing schema.
func (User) TableName() string { return "users" }
