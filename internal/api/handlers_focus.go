package api

import (
	"github.com/gofiber/fiber/v2"
)

type focusLogCreateRequest struct {
	PlannedMinutes *int `json:"plannedMinutes"`
	ActualMinutes  *int `json:"actualMinutes"`
}

// CreateFocusLog records one focus session and accrues points. The log row
// is written even for failed sessions; only the accrual is conditional.
func (handler *Handler) CreateFocusLog(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	body := focusLogCreateRequest{}
	if err := c.BodyParser(&body); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "plannedMinutes and actualMinutes must be numbers")
	}
	if body.PlannedMinutes == nil || body.ActualMinutes == nil {
		return respondFail(c, fiber.StatusBadRequest, "plannedMinutes and actualMinutes are required")
	}
	if *body.PlannedMinutes < 1 || *body.ActualMinutes < 1 {
		return respondFail(c, fiber.StatusBadRequest, "plannedMinutes and actualMinutes must be at least 1")
	}

	outcome, found, err := handler.focusService.RecordSession(studyID, *body.PlannedMinutes, *body.ActualMinutes)
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !found {
		return respondStudyNotFound(c)
	}

	return respondSuccess(c, fiber.StatusCreated, "focus session recorded", fiber.Map{
		"studyId":          studyID,
		"focusLogId":       outcome.Log.ID,
		"plannedMinutes":   outcome.Log.PlannedMinutes,
		"actualMinutes":    outcome.Log.ActualMinutes,
		"isCompleted":      outcome.Log.IsCompleted,
		"isSuccess":        outcome.Log.IsSuccess,
		"pointAmount":      outcome.PointAmount,
		"totalPointsAfter": outcome.TotalPointsAfter,
		"createdAt":        outcome.Log.CreatedAt,
	})
}

// ListFocusLogs returns the session history of a study, newest first.
func (handler *Handler) ListFocusLogs(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	logs, found, err := handler.focusService.ListSessions(studyID)
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !found {
		return respondStudyNotFound(c)
	}
	return respondSuccess(c, fiber.StatusOK, "focus logs fetched", logs)
}
