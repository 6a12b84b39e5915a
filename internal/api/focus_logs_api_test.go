package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/studyforest/internal/models"
)

func TestCreateFocusLogAccruesPoints(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	createStudyViaAPI(t, app, "pomodoro", "forest-pass!1")

	response := doJSONRequest(t, app, http.MethodPost, "/api/studies/1/focus-logs", fiber.Map{
		"plannedMinutes": 25,
		"actualMinutes":  30,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected focus log status 201, got %d", response.StatusCode)
	}

	var outcome struct {
		FocusLogID       uint `json:"focusLogId"`
		IsCompleted      bool `json:"isCompleted"`
		IsSuccess        bool `json:"isSuccess"`
		PointAmount      int  `json:"pointAmount"`
		TotalPointsAfter int  `json:"totalPointsAfter"`
	}
	decodeData(t, readEnvelope(t, response), &outcome)
	if !outcome.IsCompleted || !outcome.IsSuccess {
		t.Fatalf("expected a successful session, got %+v", outcome)
	}
	if outcome.PointAmount != 5 {
		t.Fatalf("expected 25 planned minutes to accrue 5 points, got %d", outcome.PointAmount)
	}
	if outcome.TotalPointsAfter != 5 {
		t.Fatalf("expected total 5 after first session, got %d", outcome.TotalPointsAfter)
	}

	// A failed attempt is logged but accrues nothing.
	response = doJSONRequest(t, app, http.MethodPost, "/api/studies/1/focus-logs", fiber.Map{
		"plannedMinutes": 30,
		"actualMinutes":  10,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected failed session status 201, got %d", response.StatusCode)
	}
	decodeData(t, readEnvelope(t, response), &outcome)
	if outcome.IsSuccess || outcome.PointAmount != 0 {
		t.Fatalf("expected failed session with no accrual, got %+v", outcome)
	}
	if outcome.TotalPointsAfter != 5 {
		t.Fatalf("expected total to stay at 5, got %d", outcome.TotalPointsAfter)
	}

	// The study card reflects the counter.
	response = doJSONRequest(t, app, http.MethodGet, "/api/studies/1", nil)
	var detail models.Study
	decodeData(t, readEnvelope(t, response), &detail)
	if detail.TotalPoints != 5 {
		t.Fatalf("expected study totalPoints 5, got %d", detail.TotalPoints)
	}

	// Both sessions are in the history, newest first.
	response = doJSONRequest(t, app, http.MethodGet, "/api/studies/1/focus-logs", nil)
	var logs []models.FocusLog
	decodeData(t, readEnvelope(t, response), &logs)
	if len(logs) != 2 {
		t.Fatalf("expected 2 focus logs, got %d", len(logs))
	}
	if logs[0].ID < logs[1].ID {
		t.Fatalf("expected newest first, got ids %d then %d", logs[0].ID, logs[1].ID)
	}
}

func TestCreateFocusLogValidation(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	createStudyViaAPI(t, app, "checked", "forest-pass!1")

	cases := []struct {
		name string
		body fiber.Map
	}{
		{name: "missing planned", body: fiber.Map{"actualMinutes": 10}},
		{name: "missing actual", body: fiber.Map{"plannedMinutes": 10}},
		{name: "zero planned", body: fiber.Map{"plannedMinutes": 0, "actualMinutes": 10}},
		{name: "negative actual", body: fiber.Map{"plannedMinutes": 10, "actualMinutes": -5}},
		{name: "non numeric", body: fiber.Map{"plannedMinutes": "twenty", "actualMinutes": 10}},
	}
	for _, testCase := range cases {
		response := doJSONRequest(t, app, http.MethodPost, "/api/studies/1/focus-logs", testCase.body)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", testCase.name, response.StatusCode)
		}
		response.Body.Close()
	}

	// Nothing was persisted by the rejected requests.
	response := doJSONRequest(t, app, http.MethodGet, "/api/studies/1/focus-logs", nil)
	var logs []models.FocusLog
	decodeData(t, readEnvelope(t, response), &logs)
	if len(logs) != 0 {
		t.Fatalf("expected no focus logs, got %d", len(logs))
	}
}

func TestCreateFocusLogMissingStudy(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := doJSONRequest(t, app, http.MethodPost, "/api/studies/42/focus-logs", fiber.Map{
		"plannedMinutes": 25,
		"actualMinutes":  25,
	})
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected missing study status 404, got %d", response.StatusCode)
	}
	response.Body.Close()
}
