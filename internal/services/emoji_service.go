package services

import (
	"github.com/terraincognita07/studyforest/internal/models"
)

type EmojiStore interface {
	ListByStudy(studyID uint) ([]models.Emoji, error)
	Upsert(studyID uint, emojiCode string) (models.Emoji, error)
}

type EmojiStudyRepository interface {
	FindActiveByID(studyID uint) (models.Study, bool, error)
}

type EmojiService struct {
	emojis  EmojiStore
	studies EmojiStudyRepository
}

func NewEmojiService(emojis EmojiStore, studies EmojiStudyRepository) *EmojiService {
	return &EmojiService{
		emojis:  emojis,
		studies: studies,
	}
}

func (service *EmojiService) ListEmojis(studyID uint) ([]models.Emoji, bool, error) {
	_, found, err := service.studies.FindActiveByID(studyID)
	if err != nil || !found {
		return nil, found, err
	}
	emojis, err := service.emojis.ListByStudy(studyID)
	if err != nil {
		return nil, true, err
	}
	return emojis, true, nil
}

// AddEmoji records one reaction: count 1 on first use of a code, +1 after.
func (service *EmojiService) AddEmoji(studyID uint, emojiCode string) (models.Emoji, bool, error) {
	_, found, err := service.studies.FindActiveByID(studyID)
	if err != nil || !found {
		return models.Emoji{}, found, err
	}
	emoji, err := service.emojis.Upsert(studyID, emojiCode)
	if err != nil {
		return models.Emoji{}, true, err
	}
	return emoji, true, nil
}
