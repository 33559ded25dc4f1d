package model

// Philosopher is a thinker whose work anchors a set of learning modules.
type Philosopher struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	Name               string `json:"name" gorm:"size:100;not null"`
	WorkTitle          string `json:"work_title" gorm:"size:200;not null"`
	Description        string `json:"description" gorm:"type:text;not null"`
	ReasoningFramework string `json:"reasoning_framework,omitempty" gorm:"type:text"`

	Modules []LearningModule `json:"modules,omitempty" gorm:"foreignKey:PhilosopherID"`
}

func (Philosopher) TableName() string { return "philosophers" }
