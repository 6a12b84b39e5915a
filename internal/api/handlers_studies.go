package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/studyforest/internal/models"
	"github.com/terraincognita07/studyforest/internal/services"
)

type studyCreateRequest struct {
	Nickname        string `json:"nickname"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	BackgroundImage string `json:"backgroundImage"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

type studyUpdateRequest struct {
	Nickname        *string `json:"nickname"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	BackgroundImage *string `json:"backgroundImage"`
	Password        string  `json:"password"`
}

type studyPasswordRequest struct {
	Password string `json:"password"`
}

type studyResponse struct {
	models.Study
	TopEmojis []models.Emoji `json:"topEmojis,omitempty"`
}

type studyDetailResponse struct {
	models.Study
	TopEmojis    []models.Emoji         `json:"topEmojis"`
	HabitRecords []services.HabitRecord `json:"habitRecords"`
}

func (handler *Handler) CreateStudy(c *fiber.Ctx) error {
	body := studyCreateRequest{}
	if err := c.BodyParser(&body); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "invalid request body")
	}

	input := services.StudyCreateInput{
		Nickname:        body.Nickname,
		Title:           body.Title,
		Description:     body.Description,
		Password:        body.Password,
		BackgroundImage: body.BackgroundImage,
	}
	if fieldErrors := services.ValidateStudyCreateInput(&input, body.PasswordConfirm); len(fieldErrors) > 0 {
		return respondFieldErrors(c, fieldErrors)
	}

	study, err := handler.studyService.CreateStudy(input)
	if err != nil {
		return respondUnexpected(c, err)
	}
	return respondSuccess(c, fiber.StatusCreated, "study created", studyResponse{Study: study})
}

func (handler *Handler) GetStudyDetail(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	detail, found, err := handler.studyService.GetStudyDetail(studyID)
	if err != nil {
		return respondUnexpected(c, err)
	}
	if !found {
		return respondStudyNotFound(c)
	}

	return respondSuccess(c, fiber.StatusOK, "study fetched", studyDetailResponse{
		Study:        detail.Study,
		TopEmojis:    detail.TopEmojis,
		HabitRecords: detail.HabitRecords,
	})
}

func (handler *Handler) ListStudies(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", services.DefaultStudyPageSize)
	if page < 1 || pageSize < 1 {
		return respondFail(c, fiber.StatusBadRequest, "page and pageSize must be positive integers")
	}

	result, err := handler.studyService.ListStudies(services.StudyListParams{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
		Sort:     c.Query("sort", services.SortRecent),
	})
	if err != nil {
		return respondUnexpected(c, err)
	}

	studies := make([]studyResponse, 0, len(result.Items))
	for _, item := range result.Items {
		studies = append(studies, studyResponse{Study: item.Study, TopEmojis: item.TopEmojis})
	}
	return respondSuccess(c, fiber.StatusOK, "studies fetched", fiber.Map{
		"studies": studies,
		"pagination": fiber.Map{
			"totalCount":  result.TotalCount,
			"hasNextPage": result.HasNextPage,
		},
	})
}

func (handler *Handler) VerifyStudyPassword(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	body := studyPasswordRequest{}
	if err := c.BodyParser(&body); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(body.Password) == "" {
		return respondFail(c, fiber.StatusBadRequest, "password is required")
	}

	study, status, err := handler.studyService.VerifyPassword(studyID, body.Password)
	if err != nil {
		return respondUnexpected(c, err)
	}
	switch status {
	case services.CredentialNotFound:
		return respondStudyNotFound(c)
	case services.CredentialMismatch:
		return respondFail(c, fiber.StatusForbidden, "password does not match")
	}

	accessToken, err := services.BuildStudyAccessToken(handler.secretKey, study.ID, time.Now())
	if err != nil {
		return respondUnexpected(c, err)
	}

	// Minimal projection: never the hash or the full record.
	return respondSuccess(c, fiber.StatusOK, "password verified", fiber.Map{
		"studyId":     study.ID,
		"nickname":    study.Nickname,
		"title":       study.Title,
		"accessToken": accessToken,
	})
}

func (handler *Handler) UpdateStudy(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	body := studyUpdateRequest{}
	if err := c.BodyParser(&body); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "invalid request body")
	}

	input := services.StudyUpdateInput{
		Nickname:        body.Nickname,
		Title:           body.Title,
		Description:     body.Description,
		BackgroundImage: body.BackgroundImage,
	}
	if fieldErrors := services.ValidateStudyUpdateInput(&input); len(fieldErrors) > 0 {
		return respondFieldErrors(c, fieldErrors)
	}

	if _, ok, failure := handler.authorizeStudyMutation(c, studyID, body.Password); !ok {
		return failure
	}

	study, err := handler.studyService.UpdateStudy(studyID, input)
	if err != nil {
		return respondUnexpected(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "study updated", studyResponse{Study: study})
}

func (handler *Handler) DeleteStudy(c *fiber.Ctx) error {
	studyID, ok := parseIDParam(c, "studyId")
	if !ok {
		return respondFail(c, fiber.StatusBadRequest, "studyId must be a positive integer")
	}

	body := studyPasswordRequest{}
	if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
		return respondFail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if _, ok, failure := handler.authorizeStudyMutation(c, studyID, body.Password); !ok {
		return failure
	}

	study, err := handler.studyService.SoftDeleteStudy(studyID)
	if err != nil {
		return respondUnexpected(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "study deleted", fiber.Map{
		"studyId": study.ID,
		"status":  study.Status,
	})
}

// authorizeStudyMutation gates every mutating study operation. The password
// field goes through the credential guard; a bearer study access token from
// a prior verify-password is accepted in its place. When ok is false the
// failure response has already been produced and must be returned as-is.
func (handler *Handler) authorizeStudyMutation(c *fiber.Ctx, studyID uint, password string) (models.Study, bool, error) {
	if strings.TrimSpace(password) != "" {
		study, status, err := handler.studyService.VerifyPassword(studyID, password)
		if err != nil {
			return models.Study{}, false, respondUnexpected(c, err)
		}
		switch status {
		case services.CredentialNotFound:
			return models.Study{}, false, respondStudyNotFound(c)
		case services.CredentialMismatch:
			return models.Study{}, false, respondFail(c, fiber.StatusForbidden, "password does not match")
		}
		return study, true, nil
	}

	rawToken := bearerToken(c)
	if rawToken == "" {
		return models.Study{}, false, respondFail(c, fiber.StatusBadRequest, "password is required")
	}
	if _, err := services.ParseStudyAccessToken(handler.secretKey, rawToken, studyID, time.Now()); err != nil {
		return models.Study{}, false, respondFail(c, fiber.StatusForbidden, "invalid or expired access token")
	}

	study, found, err := handler.studyService.FindActiveStudy(studyID)
	if err != nil {
		return models.Study{}, false, respondUnexpected(c, err)
	}
	if !found {
		return models.Study{}, false, respondStudyNotFound(c)
	}
	return study, true, nil
}
