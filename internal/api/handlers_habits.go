package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type habitNameRequest struct {
	Name string `json:"name"`
}

type habitCheckRequest struct {
	Done *bool `json:"done"`
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	habits, found, err := handler.habitService.ListHabits(studyID)
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !found {
		return respondStudyNotFound(c)
	}
	return respondSuccess(c, fiber.StatusOK, "habits fetched", habits)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	body := habitNameRequest{}
	if err := c.BodyParser(&body); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return respondFail(c, fiber.StatusBadRequest, "habit name is required")
	}

	habit, found, err := handler.habitService.CreateHabit(studyID, name)
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !found {
		return respondStudyNotFound(c)
	}
	return respondSuccess(c, fiber.StatusCreated, "habit created", habit)
}

func (handler *Handler) RenameHabit(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}
	habitID, ok := parseIDParam(c, "habitId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "habitId must be a positive integer")
	}

	body := habitNameRequest{}
	if err := c.BodyParser(&body); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return respondFail(c, fiber.StatusBadRequest, "habit name is required")
	}

	habit, found, err := handler.habitService.RenameHabit(studyID, habitID, name)
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !found {
		return respondFail(c, fiber.StatusNotFound, "habit not found")
	}
	return respondSuccess(c, fiber.StatusOK, "habit renamed", habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}
	habitID, ok := parseIDParam(c, "habitId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "habitId must be a positive integer")
	}

	deleted, err := handler.habitService.DeleteHabit(studyID, habitID)
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !deleted {
		return respondFail(c, fiber.StatusNotFound, "habit not found")
	}
	return respondSuccess(c, fiber.StatusOK, "habit deleted", fiber.Map{"habitId": habitID})
}

func (handler *Handler) TodayHabits(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	today, found, err := handler.habitService.TodayHabits(studyID, time.Now())
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !found {
		return respondStudyNotFound(c)
	}
	return respondSuccess(c, fiber.StatusOK, "today's habits fetched", today)
}

func (handler *Handler) CheckHabitToday(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}
	habitID, ok := parseIDParam(c, "habitId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "habitId must be a positive integer")
	}

	body := habitCheckRequest{}
	if err := c.BodyParser(&body); err != nil || body.Done == nil {
		return respondFail(c, fiber.StatusBadRequest, "done must be a boolean")
	}

	check, found, err := handler.habitService.CheckToday(studyID, habitID, *body.Done, time.Now())
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !found {
		return respondFail(c, fiber.StatusNotFound, "habit not found")
	}
	return respondSuccess(c, fiber.StatusOK, "habit check updated", check)
}
