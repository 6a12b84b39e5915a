package models

import "time"

const (
	StudyStatusActive  = "ACTIVE"
	StudyStatusUpdated = "UPDATED"
	StudyStatusDeleted = "DELETED"
)

// AllowedBackgroundImages lists the background keys the frontend ships with.
func AllowedBackgroundImages() []string {
	return []string{"green", "yellow", "blue", "pink", "workspace_1", "workspace_2", "pattern", "leaf"}
}

type Study struct {
	ID                uint      `gorm:"primaryKey" json:"studyId"`
	Nickname          string    `gorm:"not null" json:"nickname"`
	Title             string    `gorm:"not null" json:"title"`
	Description       string    `gorm:"not null" json:"description"`
	BackgroundImage   string    `json:"backgroundImage"`
	EncryptedPassword string    `gorm:"not null" json:"-"`
	TotalPoints       int       `gorm:"not null;default:0" json:"totalPoints"`
	Status            string    `gorm:"not null;default:ACTIVE" json:"status"`
	CreatedAt         time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"not null" json:"updatedAt"`

	Habits      []Habit      `gorm:"foreignKey:StudyID" json:"-"`
	HabitChecks []HabitCheck `gorm:"foreignKey:StudyID" json:"-"`
	Emojis      []Emoji      `gorm:"foreignKey:StudyID" json:"-"`
}

func (study Study) IsDeleted() bool {
	return study.Status == StudyStatusDeleted
}
