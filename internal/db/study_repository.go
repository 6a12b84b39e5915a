package db

import (
	"strings"

	"github.com/terraincognita07/studyforest/internal/models"
	"gorm.io/gorm"
)

type StudyRepository struct {
	database *gorm.DB
}

func NewStudyRepository(database *gorm.DB) *StudyRepository {
	return &StudyRepository{database: database}
}

func (repo *StudyRepository) FindByID(studyID uint) (models.Study, bool, error) {
	study := models.Study{}
	result := repo.database.Limit(1).Find(&study, studyID)
	if result.Error != nil {
		return models.Study{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Study{}, false, nil
	}
	return study, true, nil
}

// FindActiveByID treats soft-deleted studies as absent.
func (repo *StudyRepository) FindActiveByID(studyID uint) (models.Study, bool, error) {
	study, found, err := repo.FindByID(studyID)
	if err != nil || !found {
		return models.Study{}, false, err
	}
	if study.IsDeleted() {
		return models.Study{}, false, nil
	}
	return study, true, nil
}

func (repo *StudyRepository) Create(study *models.Study) error {
	return repo.database.Create(study).Error
}

// UpdateFields applies a partial update. Callers always include "status" in
// updates, so UpdatedAt is stamped by gorm on every call.
func (repo *StudyRepository) UpdateFields(studyID uint, updates map[string]any) (models.Study, error) {
	if err := repo.database.Model(&models.Study{}).Where("id = ?", studyID).Updates(updates).Error; err != nil {
		return models.Study{}, err
	}
	var study models.Study
	if err := repo.database.First(&study, studyID).Error; err != nil {
		return models.Study{}, err
	}
	return study, nil
}

// ListActive returns one page of non-deleted studies plus the total match
// count. orderBy must be one of the clauses produced by the service layer,
// never raw user input.
func (repo *StudyRepository) ListActive(keyword string, orderBy string, offset int, limit int) ([]models.Study, int64, error) {
	base := repo.database.Model(&models.Study{}).Where("status <> ?", models.StudyStatusDeleted)

	word := strings.TrimSpace(strings.ToLower(keyword))
	if word != "" {
		pattern := "%" + word + "%"
		base = base.Where(
			"lower(nickname) LIKE ? OR lower(title) LIKE ? OR lower(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var totalCount int64
	if err := base.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	studies := make([]models.Study, 0)
	if err := base.Session(&gorm.Session{}).
		Order(orderBy).
		Offset(offset).
		Limit(limit).
		Find(&studies).Error; err != nil {
		return nil, 0, err
	}
	return studies, totalCount, nil
}
