package models

import "time"

// Emoji counts reactions per study, unique on (study_id, emoji_code).
type Emoji struct {
	ID        uint      `gorm:"primaryKey" json:"emojiId"`
	StudyID   uint      `gorm:"not null;uniqueIndex:uidx_study_emoji" json:"-"`
	EmojiCode string    `gorm:"not null;uniqueIndex:uidx_study_emoji" json:"emojiCode"`
	Count     int       `gorm:"not null;default:1" json:"count"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
