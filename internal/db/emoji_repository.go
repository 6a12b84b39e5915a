package db

import (
	"github.com/terraincognita07/studyforest/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmojiRepository struct {
	database *gorm.DB
}

func NewEmojiRepository(database *gorm.DB) *EmojiRepository {
	return &EmojiRepository{database: database}
}

func (repo *EmojiRepository) ListByStudy(studyID uint) ([]models.Emoji, error) {
	emojis := make([]models.Emoji, 0)
	if err := repo.database.Where("study_id = ?", studyID).Order("count DESC, id ASC").Find(&emojis).Error; err != nil {
		return nil, err
	}
	return emojis, nil
}

// ListByStudyIDs loads reaction rows for a page of studies in one query,
// ordered so callers can take the top entries per study.
func (repo *EmojiRepository) ListByStudyIDs(studyIDs []uint) ([]models.Emoji, error) {
	emojis := make([]models.Emoji, 0)
	if len(studyIDs) == 0 {
		return emojis, nil
	}
	if err := repo.database.Where("study_id IN ?", studyIDs).Order("study_id ASC, count DESC, id ASC").Find(&emojis).Error; err != nil {
		return nil, err
	}
	return emojis, nil
}

// Upsert inserts a (study, code) reaction with count 1 or bumps the existing
// count by one. The increment is a SQL expression inside a single ON CONFLICT
// statement, so concurrent reactions never lose an update.
func (repo *EmojiRepository) Upsert(studyID uint, emojiCode string) (models.Emoji, error) {
	emoji := models.Emoji{
		StudyID:   studyID,
		EmojiCode: emojiCode,
		Count:     1,
	}
	if err := repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "study_id"}, {Name: "emoji_code"}},
		DoUpdates: clause.Assignments(map[string]any{"count": gorm.Expr("count + 1")}),
	}).Create(&emoji).Error; err != nil {
		return models.Emoji{}, err
	}

	persisted := models.Emoji{}
	if err := repo.database.Where("study_id = ? AND emoji_code = ?", studyID, emojiCode).First(&persisted).Error; err != nil {
		return models.Emoji{}, err
	}
	return persisted, nil
}
