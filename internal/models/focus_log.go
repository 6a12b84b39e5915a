package models

import "time"

// FocusLog is one recorded attempt at a timed concentration goal.
// Rows are append-only; failed attempts are kept for history.
type FocusLog struct {
	ID             uint      `gorm:"primaryKey" json:"focusLogId"`
	StudyID        uint      `gorm:"not null;index" json:"studyId"`
	PlannedMinutes int       `gorm:"not null" json:"plannedMinutes"`
	ActualMinutes  int       `gorm:"not null" json:"actualMinutes"`
	IsCompleted    bool      `gorm:"not null;default:false" json:"isCompleted"`
	IsSuccess      bool      `gorm:"not null;default:false" json:"isSuccess"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
}

// PointHistory records a positive accrual tied to a focus log.
// Written only when the accrual is greater than zero.
type PointHistory struct {
	ID          uint      `gorm:"primaryKey" json:"pointHistoryId"`
	StudyID     uint      `gorm:"not null;index" json:"studyId"`
	FocusLogID  uint      `gorm:"not null;index" json:"focusLogId"`
	PointAmount int       `gorm:"not null" json:"pointAmount"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}
