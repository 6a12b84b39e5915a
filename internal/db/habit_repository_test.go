package db

import (
	"testing"

	"github.com/terraincognita07/studyforest/internal/models"
)

func TestHabitDeleteScopedToStudy(t *testing.T) {
	t.Parallel()

	database := openTestDB(t)
	owner := createTestStudy(t, database, "owner")
	other := createTestStudy(t, database, "other")
	repo := NewHabitRepository(database)

	habit := models.Habit{StudyID: owner.ID, Name: "read 30 pages"}
	if err := repo.Create(&habit); err != nil {
		t.Fatalf("create habit: %v", err)
	}

	deleted, err := repo.DeleteByIDForStudy(habit.ID, other.ID)
	if err != nil {
		t.Fatalf("delete with mismatched study: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("expected mismatched study delete to be a no-op, removed %d", deleted)
	}

	deleted, err = repo.DeleteByIDForStudy(habit.ID, owner.ID)
	if err != nil {
		t.Fatalf("delete habit: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 habit removed, got %d", deleted)
	}
}

func TestHabitDeleteRemovesCheckRow(t *testing.T) {
	t.Parallel()

	database := openTestDB(t)
	study := createTestStudy(t, database, "checks")
	repo := NewHabitRepository(database)

	habit := models.Habit{StudyID: study.ID, Name: "stretch"}
	if err := repo.Create(&habit); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	if _, err := repo.UpsertCheckDay(study.ID, habit.ID, "mon", true); err != nil {
		t.Fatalf("upsert check: %v", err)
	}

	if _, err := repo.DeleteByIDForStudy(habit.ID, study.ID); err != nil {
		t.Fatalf("delete habit: %v", err)
	}

	_, found, err := repo.FindCheckByHabit(habit.ID)
	if err != nil {
		t.Fatalf("find check: %v", err)
	}
	if found {
		t.Fatal("expected check row to be removed with its habit")
	}
}

func TestUpsertCheckDayCreatesThenUpdates(t *testing.T) {
	t.Parallel()

	database := openTestDB(t)
	study := createTestStudy(t, database, "weekly")
	repo := NewHabitRepository(database)

	habit := models.Habit{StudyID: study.ID, Name: "meditate"}
	if err := repo.Create(&habit); err != nil {
		t.Fatalf("create habit: %v", err)
	}

	check, err := repo.UpsertCheckDay(study.ID, habit.ID, "wed", true)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !check.Wed || check.Mon || check.Thu {
		t.Fatalf("expected only wednesday set, got %+v", check)
	}

	check, err = repo.UpsertCheckDay(study.ID, habit.ID, "thur", true)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if !check.Wed || !check.Thu {
		t.Fatalf("expected wednesday to survive and thursday to be set, got %+v", check)
	}

	check, err = repo.UpsertCheckDay(study.ID, habit.ID, "wed", false)
	if err != nil {
		t.Fatalf("unset upsert: %v", err)
	}
	if check.Wed || !check.Thu {
		t.Fatalf("expected wednesday cleared and thursday kept, got %+v", check)
	}
}
