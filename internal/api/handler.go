package api

import (
	"time"

	"github.com/terraincognita07/studyforest/internal/db"
	"github.com/terraincognita07/studyforest/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	repositories *db.Repositories
	studyService *services.StudyService
	focusService *services.FocusService
	habitService *services.HabitService
	emojiService *services.EmojiService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:    []byte(secretKey),
		location:     location,
		repositories: repositories,
		studyService: services.NewStudyService(repositories.Studies, repositories.Habits, repositories.Emojis),
		focusService: services.NewFocusService(repositories.Studies, repositories.FocusLogs),
		habitService: services.NewHabitService(repositories.Habits, repositories.Studies, location),
		emojiService: services.NewEmojiService(repositories.Emojis, repositories.Studies),
	}
}
