package db

import (
	"path/filepath"
	"testing"

	"github.com/terraincognita07/studyforest/internal/models"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "studyforest-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestStudy(t *testing.T, database *gorm.DB, nickname string) models.Study {
	t.Helper()

	study := models.Study{
		Nickname:          nickname,
		Title:             nickname + " study",
		Description:       "test study",
		EncryptedPassword: "not-a-real-hash",
		Status:            models.StudyStatusActive,
	}
	if err := database.Create(&study).Error; err != nil {
		t.Fatalf("create study: %v", err)
	}
	return study
}
