package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/studyforest/internal/db"
	"github.com/terraincognita07/studyforest/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "studyforest-api-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	handler := NewHandler(database, "test-secret-key", time.UTC)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

type responseEnvelope struct {
	Result  string          `json:"result"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSONRequest(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func readEnvelope(t *testing.T, response *http.Response) responseEnvelope {
	t.Helper()
	defer response.Body.Close()

	envelope := responseEnvelope{}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	return envelope
}

func decodeData(t *testing.T, envelope responseEnvelope, target any) {
	t.Helper()

	if err := json.Unmarshal(envelope.Data, target); err != nil {
		t.Fatalf("decode response data: %v", err)
	}
}

// createStudyViaAPI drives the public create endpoint so every test study
// goes through validation and hashing exactly as production traffic does.
func createStudyViaAPI(t *testing.T, app *fiber.App, nickname string, password string) uint {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/api/studies", fiber.Map{
		"nickname":        nickname,
		"title":           nickname + " study",
		"description":     "focus practice",
		"backgroundImage": "green",
		"password":        password,
		"passwordConfirm": password,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected create status 201, got %d", response.StatusCode)
	}

	var created struct {
		StudyID uint `json:"studyId"`
	}
	decodeData(t, readEnvelope(t, response), &created)
	if created.StudyID == 0 {
		t.Fatal("expected created study to carry an id")
	}
	return created.StudyID
}

// seedStudyRow inserts a study directly, bypassing the API. Used where a
// test needs many rows and the bcrypt cost of the create endpoint would
// dominate the run.
func seedStudyRow(t *testing.T, database *gorm.DB, nickname string, totalPoints int) models.Study {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("seeded-pass!1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	study := models.Study{
		Nickname:          nickname,
		Title:             nickname + " study",
		Description:       "seeded",
		BackgroundImage:   "blue",
		EncryptedPassword: string(passwordHash),
		TotalPoints:       totalPoints,
		Status:            models.StudyStatusActive,
	}
	if err := database.Create(&study).Error; err != nil {
		t.Fatalf("create study row: %v", err)
	}
	return study
}
