package services

import (
	"github.com/terraincognita07/studyforest/internal/models"
)

const focusSuccessBonus = 3

// ComputeFocusPoints maps a planned/actual minute pair to an accrual.
// Sessions that miss the planned goal earn nothing; successful sessions earn
// one process point per full 10 planned minutes plus a flat success bonus.
// The reward is a function of the commitment, not the overrun: actual time
// beyond the plan earns no extra points.
func ComputeFocusPoints(plannedMinutes int, actualMinutes int) int {
	if plannedMinutes <= 0 || actualMinutes <= 0 {
		return 0
	}
	if actualMinutes < plannedMinutes {
		return 0
	}
	return plannedMinutes/10 + focusSuccessBonus
}

type FocusStudyRepository interface {
	FindActiveByID(studyID uint) (models.Study, bool, error)
}

type FocusLogStore interface {
	CreateWithAccrual(entry *models.FocusLog, pointAmount int) (int, error)
	ListByStudy(studyID uint) ([]models.FocusLog, error)
}

type FocusService struct {
	studies FocusStudyRepository
	logs    FocusLogStore
}

func NewFocusService(studies FocusStudyRepository, logs FocusLogStore) *FocusService {
	return &FocusService{
		studies: studies,
		logs:    logs,
	}
}

type FocusOutcome struct {
	Log              models.FocusLog
	PointAmount      int
	TotalPointsAfter int
}

// RecordSession persists one focus attempt for a study. The log row is
// written whether or not the session succeeded; the point history row and the
// counter bump happen only for a positive accrual, inside the same
// transaction as the log insert. found is false when the study is missing or
// soft-deleted, in which case nothing is written.
func (service *FocusService) RecordSession(studyID uint, plannedMinutes int, actualMinutes int) (FocusOutcome, bool, error) {
	study, found, err := service.studies.FindActiveByID(studyID)
	if err != nil {
		return FocusOutcome{}, false, err
	}
	if !found {
		return FocusOutcome{}, false, nil
	}

	entry := models.FocusLog{
		StudyID:        study.ID,
		PlannedMinutes: plannedMinutes,
		ActualMinutes:  actualMinutes,
		IsCompleted:    actualMinutes > 0,
		IsSuccess:      plannedMinutes > 0 && actualMinutes > 0 && actualMinutes >= plannedMinutes,
	}
	pointAmount := ComputeFocusPoints(plannedMinutes, actualMinutes)

	totalPointsAfter, err := service.logs.CreateWithAccrual(&entry, pointAmount)
	if err != nil {
		return FocusOutcome{}, true, err
	}

	return FocusOutcome{
		Log:              entry,
		PointAmount:      pointAmount,
		TotalPointsAfter: totalPointsAfter,
	}, true, nil
}

func (service *FocusService) ListSessions(studyID uint) ([]models.FocusLog, bool, error) {
	_, found, err := service.studies.FindActiveByID(studyID)
	if err != nil || !found {
		return nil, found, err
	}
	logs, err := service.logs.ListByStudy(studyID)
	if err != nil {
		return nil, true, err
	}
	return logs, true, nil
}
