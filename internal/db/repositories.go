package db

import "gorm.io/gorm"

type Repositories struct {
	Studies   *StudyRepository
	FocusLogs *FocusLogRepository
	Habits    *HabitRepository
	Emojis    *EmojiRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Studies:   NewStudyRepository(database),
		FocusLogs: NewFocusLogRepository(database),
		Habits:    NewHabitRepository(database),
		Emojis:    NewEmojiRepository(database),
	}
}
