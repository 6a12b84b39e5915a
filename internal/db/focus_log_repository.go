package db

import (
	"github.com/terraincognita07/studyforest/internal/models"
	"gorm.io/gorm"
)

type FocusLogRepository struct {
	database *gorm.DB
}

func NewFocusLogRepository(database *gorm.DB) *FocusLogRepository {
	return &FocusLogRepository{database: database}
}

// CreateWithAccrual persists a focus log and, when pointAmount is positive,
// a point history row plus an atomic total_points bump, all in one
// transaction. The counter update is a SQL expression so concurrent sessions
// against the same study never lose an increment. Returns the study's
// total_points after the write.
func (repo *FocusLogRepository) CreateWithAccrual(entry *models.FocusLog, pointAmount int) (int, error) {
	totalPointsAfter := 0
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		if pointAmount > 0 {
			history := models.PointHistory{
				StudyID:     entry.StudyID,
				FocusLogID:  entry.ID,
				PointAmount: pointAmount,
			}
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Study{}).
				Where("id = ?", entry.StudyID).
				UpdateColumn("total_points", gorm.Expr("total_points + ?", pointAmount)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Study{}).
			Select("total_points").
			Where("id = ?", entry.StudyID).
			Scan(&totalPointsAfter).Error
	})
	if err != nil {
		return 0, err
	}
	return totalPointsAfter, nil
}

func (repo *FocusLogRepository) ListByStudy(studyID uint) ([]models.FocusLog, error) {
	logs := make([]models.FocusLog, 0)
	if err := repo.database.Where("study_id = ?", studyID).Order("created_at DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *FocusLogRepository) SumAccruedPoints(studyID uint) (int, error) {
	total := 0
	if err := repo.database.Model(&models.PointHistory{}).
		Select("COALESCE(SUM(point_amount), 0)").
		Where("study_id = ?", studyID).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
