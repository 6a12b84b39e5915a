package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/studyforest/internal/models"
	"github.com/terraincognita07/studyforest/internal/services"
)

func doAuthorizedJSONRequest(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("encode request body: %v", err)
	}
	request := httptest.NewRequest(method, path, bytes.NewReader(encoded))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func verifyAndExtractToken(t *testing.T, app *fiber.App, path string, password string) string {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, path, fiber.Map{"password": password})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected verify status 200, got %d", response.StatusCode)
	}
	var verified struct {
		AccessToken string `json:"accessToken"`
	}
	decodeData(t, readEnvelope(t, response), &verified)
	if verified.AccessToken == "" {
		t.Fatal("access token is missing in verify response")
	}
	return verified.AccessToken
}

func TestBearerTokenAuthorizesMutations(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	createStudyViaAPI(t, app, "tokened", "forest-pass!1")
	token := verifyAndExtractToken(t, app, "/api/studies/1/verify-password", "forest-pass!1")

	// Update without the password, using only the bearer token.
	response := doAuthorizedJSONRequest(t, app, http.MethodPatch, "/api/studies/1", token, fiber.Map{
		"description": "updated through a verified session",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected token-authorized update status 200, got %d", response.StatusCode)
	}
	var updated models.Study
	decodeData(t, readEnvelope(t, response), &updated)
	if updated.Description != "updated through a verified session" {
		t.Fatalf("expected updated description, got %q", updated.Description)
	}

	// And the same token deletes the study.
	response = doAuthorizedJSONRequest(t, app, http.MethodDelete, "/api/studies/1", token, fiber.Map{})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected token-authorized delete status 200, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestBearerTokenRejectedForOtherStudy(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	createStudyViaAPI(t, app, "own", "forest-pass!1")
	createStudyViaAPI(t, app, "alien", "other-pass!2")
	token := verifyAndExtractToken(t, app, "/api/studies/1/verify-password", "forest-pass!1")

	response := doAuthorizedJSONRequest(t, app, http.MethodPatch, "/api/studies/2", token, fiber.Map{
		"title": "should not pass",
	})
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected cross-study token status 403, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestGarbageBearerTokenRejected(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	createStudyViaAPI(t, app, "sealed", "forest-pass!1")

	response := doAuthorizedJSONRequest(t, app, http.MethodPatch, "/api/studies/1", "not-a-jwt", fiber.Map{
		"title": "should not pass",
	})
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected garbage token status 403, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestForeignKeySignedTokenRejected(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	createStudyViaAPI(t, app, "signed", "forest-pass!1")

	forged, err := services.BuildStudyAccessToken([]byte("some-other-secret"), 1, time.Now())
	if err != nil {
		t.Fatalf("build forged token: %v", err)
	}

	response := doAuthorizedJSONRequest(t, app, http.MethodPatch, "/api/studies/1", forged, fiber.Map{
		"title": "should not pass",
	})
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected foreign-key token status 403, got %d", response.StatusCode)
	}
	response.Body.Close()
}
