package services

import (
	"time"

	"github.com/terraincognita07/studyforest/internal/models"
)

type HabitStore interface {
	ListByStudy(studyID uint) ([]models.Habit, error)
	Create(habit *models.Habit) error
	FindByIDForStudy(habitID uint, studyID uint) (models.Habit, bool, error)
	Rename(habitID uint, name string) (models.Habit, error)
	DeleteByIDForStudy(habitID uint, studyID uint) (int64, error)
	ListChecksByStudy(studyID uint) ([]models.HabitCheck, error)
	UpsertCheckDay(studyID uint, habitID uint, dayColumn string, done bool) (models.HabitCheck, error)
}

type HabitStudyRepository interface {
	FindActiveByID(studyID uint) (models.Study, bool, error)
}

type HabitService struct {
	habits   HabitStore
	studies  HabitStudyRepository
	location *time.Location
}

func NewHabitService(habits HabitStore, studies HabitStudyRepository, location *time.Location) *HabitService {
	return &HabitService{
		habits:   habits,
		studies:  studies,
		location: location,
	}
}

func (service *HabitService) ListHabits(studyID uint) ([]models.Habit, bool, error) {
	_, found, err := service.studies.FindActiveByID(studyID)
	if err != nil || !found {
		return nil, found, err
	}
	habits, err := service.habits.ListByStudy(studyID)
	if err != nil {
		return nil, true, err
	}
	return habits, true, nil
}

func (service *HabitService) CreateHabit(studyID uint, name string) (models.Habit, bool, error) {
	_, found, err := service.studies.FindActiveByID(studyID)
	if err != nil || !found {
		return models.Habit{}, found, err
	}

	habit := models.Habit{
		StudyID: studyID,
		Name:    name,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, true, err
	}
	return habit, true, nil
}

// RenameHabit changes the habit name and stamps the modification time.
// Scoped to the (study, habit) pair; a mismatched pair reads as not-found.
func (service *HabitService) RenameHabit(studyID uint, habitID uint, name string) (models.Habit, bool, error) {
	_, found, err := service.habits.FindByIDForStudy(habitID, studyID)
	if err != nil || !found {
		return models.Habit{}, found, err
	}
	habit, err := service.habits.Rename(habitID, name)
	if err != nil {
		return models.Habit{}, true, err
	}
	return habit, true, nil
}

// DeleteHabit hard-deletes the habit and its check row. Deleting with a
// mismatched study id is a no-op reported as not-found.
func (service *HabitService) DeleteHabit(studyID uint, habitID uint) (bool, error) {
	deleted, err := service.habits.DeleteByIDForStudy(habitID, studyID)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// TodayHabit is one habit with its check state for the current weekday.
type TodayHabit struct {
	HabitID uint   `json:"habitId"`
	Name    string `json:"name"`
	Done    bool   `json:"done"`
}

// TodayHabits reports, per habit, whether today's weekday flag is set.
// A habit without a check row reads as not done.
func (service *HabitService) TodayHabits(studyID uint, now time.Time) ([]TodayHabit, bool, error) {
	_, found, err := service.studies.FindActiveByID(studyID)
	if err != nil || !found {
		return nil, found, err
	}

	habits, err := service.habits.ListByStudy(studyID)
	if err != nil {
		return nil, true, err
	}
	checks, err := service.habits.ListChecksByStudy(studyID)
	if err != nil {
		return nil, true, err
	}

	weekday := now.In(service.location).Weekday()
	checksByHabit := make(map[uint]models.HabitCheck, len(checks))
	for _, check := range checks {
		checksByHabit[check.HabitID] = check
	}

	today := make([]TodayHabit, 0, len(habits))
	for _, habit := range habits {
		today = append(today, TodayHabit{
			HabitID: habit.ID,
			Name:    habit.Name,
			Done:    checksByHabit[habit.ID].DoneOn(weekday),
		})
	}
	return today, true, nil
}

// CheckToday upserts today's weekday boolean on the habit's check row,
// scoped to the (study, habit) pair.
func (service *HabitService) CheckToday(studyID uint, habitID uint, done bool, now time.Time) (models.HabitCheck, bool, error) {
	_, found, err := service.habits.FindByIDForStudy(habitID, studyID)
	if err != nil || !found {
		return models.HabitCheck{}, found, err
	}

	weekday := now.In(service.location).Weekday()
	dayColumn := models.WeekdayColumns()[int(weekday)]
	check, err := service.habits.UpsertCheckDay(studyID, habitID, dayColumn, done)
	if err != nil {
		return models.HabitCheck{}, true, err
	}
	return check, true, nil
}
