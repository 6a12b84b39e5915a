package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type emojiAddRequest struct {
	EmojiCode string `json:"emojiCode"`
}

func (handler *Handler) ListEmojis(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	emojis, found, err := handler.emojiService.ListEmojis(studyID)
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !found {
		return respondStudyNotFound(c)
	}
	return respondSuccess(c, fiber.StatusOK, "emojis fetched", emojis)
}

func (handler *Handler) AddEmoji(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	body := emojiAddRequest{}
	if err := c.BodyParser(&body); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "invalid request body")
	}
	emojiCode := strings.TrimSpace(body.EmojiCode)
	if emojiCode == "" {
		return respondFail(c, fiber.StatusBadRequest, "emojiCode is required")
	}

	emoji, found, err := handler.emojiService.AddEmoji(studyID, emojiCode)
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !found {
		return respondStudyNotFound(c)
	}
	return respondSuccess(c, fiber.StatusOK, "emoji added", emoji)
}
