package api

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/studyforest/internal/services"
)

// Every response uses the {result, message, data} envelope the frontend
// already consumes.
func respondSuccess(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"result":  "success",
		"message": message,
		"data":    data,
	})
}

func respondFail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"result":  "fail",
		"message": message,
		"data":    nil,
	})
}

func respondFieldErrors(c *fiber.Ctx, fieldErrors []services.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"result":  "fail",
		"message": fieldErrors[0].Message,
		"data":    fiber.Map{"errors": fieldErrors},
	})
}

// respondUnexpected logs storage and other unexpected failures and answers
// with the generic failure envelope; the details never reach the client.
func respondUnexpected(c *fiber.Ctx, err error) error {
	log.Printf("unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	return respondFail(c, fiber.StatusInternalServerError, "internal server error")
}

func respondStudyNotFound(c *fiber.Ctx) error {
	return respondFail(c, fiber.StatusNotFound, "study not found")
}

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
