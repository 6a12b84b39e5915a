package db

import (
	"time"

	"github.com/terraincognita07/studyforest/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByStudy(studyID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Where("study_id = ?", studyID).Order("created_at ASC, id ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) FindByIDForStudy(habitID uint, studyID uint) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.Where("id = ? AND study_id = ?", habitID, studyID).Limit(1).Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) Rename(habitID uint, name string) (models.Habit, error) {
	if err := repo.database.Model(&models.Habit{}).Where("id = ?", habitID).Update("name", name).Error; err != nil {
		return models.Habit{}, err
	}
	var habit models.Habit
	if err := repo.database.First(&habit, habitID).Error; err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// DeleteByIDForStudy removes a habit and its check row, scoped to the
// (study, habit) pair. Returns the number of habit rows removed so callers
// can report a mismatched pair as not-found.
func (repo *HabitRepository) DeleteByIDForStudy(habitID uint, studyID uint) (int64, error) {
	deleted := int64(0)
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ? AND study_id = ?", habitID, studyID).Delete(&models.HabitCheck{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND study_id = ?", habitID, studyID).Delete(&models.Habit{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (repo *HabitRepository) ListChecksByStudy(studyID uint) ([]models.HabitCheck, error) {
	checks := make([]models.HabitCheck, 0)
	if err := repo.database.Where("study_id = ?", studyID).Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}

func (repo *HabitRepository) FindCheckByHabit(habitID uint) (models.HabitCheck, bool, error) {
	check := models.HabitCheck{}
	result := repo.database.Where("habit_id = ?", habitID).Limit(1).Find(&check)
	if result.Error != nil {
		return models.HabitCheck{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HabitCheck{}, false, nil
	}
	return check, true, nil
}

// UpsertCheckDay sets one weekday column on the habit's check row, creating
// the row when missing. Single ON CONFLICT statement on the habit_id unique
// index. dayColumn must come from models.WeekdayColumns.
func (repo *HabitRepository) UpsertCheckDay(studyID uint, habitID uint, dayColumn string, done bool) (models.HabitCheck, error) {
	check := models.HabitCheck{
		HabitID: habitID,
		StudyID: studyID,
	}
	setDayColumn(&check, dayColumn, done)

	if err := repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "habit_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			dayColumn:    done,
			"updated_at": time.Now(),
		}),
	}).Create(&check).Error; err != nil {
		return models.HabitCheck{}, err
	}

	persisted, _, err := repo.FindCheckByHabit(habitID)
	if err != nil {
		return models.HabitCheck{}, err
	}
	return persisted, nil
}

func setDayColumn(check *models.HabitCheck, dayColumn string, done bool) {
	switch dayColumn {
	case "mon":
		check.Mon = done
	case "tue":
		check.Tue = done
	case "wed":
		check.Wed = done
	case "thur":
		check.Thu = done
	case "fri":
		check.Fri = done
	case "sat":
		check.Sat = done
	case "sun":
		check.Sun = done
	}
}
