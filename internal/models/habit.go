package models

import "time"

type Habit struct {
	ID        uint      `gorm:"primaryKey" json:"habitId"`
	StudyID   uint      `gorm:"not null;index" json:"studyId"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// HabitCheck stores the weekly check state of one habit, one column per
// weekday. The JSON names (including "thur") are the wire format the
// frontend already depends on.
type HabitCheck struct {
	ID        uint      `gorm:"primaryKey" json:"habitCheckId"`
	HabitID   uint      `gorm:"not null;uniqueIndex" json:"habitId"`
	StudyID   uint      `gorm:"not null;index" json:"studyId"`
	Mon       bool      `gorm:"not null;default:false" json:"mon"`
	Tue       bool      `gorm:"not null;default:false" json:"tue"`
	Wed       bool      `gorm:"not null;default:false" json:"wed"`
	Thu       bool      `gorm:"column:thur;not null;default:false" json:"thur"`
	Fri       bool      `gorm:"not null;default:false" json:"fri"`
	Sat       bool      `gorm:"not null;default:false" json:"sat"`
	Sun       bool      `gorm:"not null;default:false" json:"sun"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// WeekdayColumns maps time.Weekday (0=Sunday..6=Saturday) to the check
// columns in database order.
func WeekdayColumns() [7]string {
	return [7]string{"sun", "mon", "tue", "wed", "thur", "fri", "sat"}
}

// DoneOn reports whether the check is set for the given weekday.
func (check HabitCheck) DoneOn(weekday time.Weekday) bool {
	switch weekday {
	case time.Monday:
		return check.Mon
	case time.Tuesday:
		return check.Tue
	case time.Wednesday:
		return check.Wed
	case time.Thursday:
		return check.Thu
	case time.Friday:
		return check.Fri
	case time.Saturday:
		return check.Sat
	default:
		return check.Sun
	}
}
