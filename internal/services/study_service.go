package services

import (
	"strings"

	"github.com/terraincognita07/studyforest/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	studyBcryptCost = 10

	SortRecent     = "recent"
	SortOldest     = "oldest"
	SortPointsDesc = "points_desc"
	SortPointsAsc  = "points_asc"

	MaxStudyPageSize     = 30
	DefaultStudyPageSize = 6

	topEmojiCount = 3
)

// CredentialStatus is the tri-state outcome of the password guard.
type CredentialStatus int

const (
	CredentialMatch CredentialStatus = iota
	CredentialNotFound
	CredentialMismatch
)

type StudyStore interface {
	FindByID(studyID uint) (models.Study, bool, error)
	FindActiveByID(studyID uint) (models.Study, bool, error)
	Create(study *models.Study) error
	UpdateFields(studyID uint, updates map[string]any) (models.Study, error)
	ListActive(keyword string, orderBy string, offset int, limit int) ([]models.Study, int64, error)
}

type StudyHabitStore interface {
	ListByStudy(studyID uint) ([]models.Habit, error)
	ListChecksByStudy(studyID uint) ([]models.HabitCheck, error)
}

type StudyEmojiStore interface {
	ListByStudy(studyID uint) ([]models.Emoji, error)
	ListByStudyIDs(studyIDs []uint) ([]models.Emoji, error)
}

type StudyService struct {
	studies StudyStore
	habits  StudyHabitStore
	emojis  StudyEmojiStore
}

func NewStudyService(studies StudyStore, habits StudyHabitStore, emojis StudyEmojiStore) *StudyService {
	return &StudyService{
		studies: studies,
		habits:  habits,
		emojis:  emojis,
	}
}

// VerifyPassword is the guard in front of every mutating study operation.
// The stored hash never leaves this method; the comparison is one opaque
// bcrypt call. Soft-deleted studies are reported as absent.
func (service *StudyService) VerifyPassword(studyID uint, password string) (models.Study, CredentialStatus, error) {
	study, found, err := service.studies.FindActiveByID(studyID)
	if err != nil {
		return models.Study{}, CredentialNotFound, err
	}
	if !found {
		return models.Study{}, CredentialNotFound, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(study.EncryptedPassword), []byte(password)) != nil {
		return models.Study{}, CredentialMismatch, nil
	}
	return study, CredentialMatch, nil
}

func (service *StudyService) FindActiveStudy(studyID uint) (models.Study, bool, error) {
	return service.studies.FindActiveByID(studyID)
}

type StudyCreateInput struct {
	Nickname        string
	Title           string
	Description     string
	Password        string
	BackgroundImage string
}

func (service *StudyService) CreateStudy(input StudyCreateInput) (models.Study, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), studyBcryptCost)
	if err != nil {
		return models.Study{}, err
	}

	study := models.Study{
		Nickname:          input.Nickname,
		Title:             input.Title,
		Description:       input.Description,
		BackgroundImage:   input.BackgroundImage,
		EncryptedPassword: string(passwordHash),
		TotalPoints:       0,
		Status:            models.StudyStatusActive,
	}
	if err := service.studies.Create(&study); err != nil {
		return models.Study{}, err
	}
	return study, nil
}

// HabitRecord is the combined habit + weekly check view for the detail page.
// A habit without a check row reads as an all-false week.
type HabitRecord struct {
	HabitID uint   `json:"habitId"`
	Name    string `json:"name"`
	Mon     bool   `json:"mon"`
	Tue     bool   `json:"tue"`
	Wed     bool   `json:"wed"`
	Thu     bool   `json:"thur"`
	Fri     bool   `json:"fri"`
	Sat     bool   `json:"sat"`
	Sun     bool   `json:"sun"`
}

type StudyDetail struct {
	Study        models.Study
	TopEmojis    []models.Emoji
	HabitRecords []HabitRecord
}

func (service *StudyService) GetStudyDetail(studyID uint) (StudyDetail, bool, error) {
	study, found, err := service.studies.FindActiveByID(studyID)
	if err != nil || !found {
		return StudyDetail{}, found, err
	}

	emojis, err := service.emojis.ListByStudy(studyID)
	if err != nil {
		return StudyDetail{}, true, err
	}
	if len(emojis) > topEmojiCount {
		emojis = emojis[:topEmojiCount]
	}

	habits, err := service.habits.ListByStudy(studyID)
	if err != nil {
		return StudyDetail{}, true, err
	}
	checks, err := service.habits.ListChecksByStudy(studyID)
	if err != nil {
		return StudyDetail{}, true, err
	}

	checksByHabit := make(map[uint]models.HabitCheck, len(checks))
	for _, check := range checks {
		checksByHabit[check.HabitID] = check
	}

	records := make([]HabitRecord, 0, len(habits))
	for _, habit := range habits {
		check := checksByHabit[habit.ID]
		records = append(records, HabitRecord{
			HabitID: habit.ID,
			Name:    habit.Name,
			Mon:     check.Mon,
			Tue:     check.Tue,
			Wed:     check.Wed,
			Thu:     check.Thu,
			Fri:     check.Fri,
			Sat:     check.Sat,
			Sun:     check.Sun,
		})
	}

	return StudyDetail{
		Study:        study,
		TopEmojis:    emojis,
		HabitRecords: records,
	}, true, nil
}

type StudyListParams struct {
	Page     int
	PageSize int
	Keyword  string
	Sort     string
}

type StudyListItem struct {
	Study     models.Study
	TopEmojis []models.Emoji
}

type StudyListResult struct {
	Items       []StudyListItem
	TotalCount  int64
	HasNextPage bool
}

// ListStudies filters out soft-deleted studies, applies the keyword and sort
// options, and caps the page size regardless of what was requested.
func (service *StudyService) ListStudies(params StudyListParams) (StudyListResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = DefaultStudyPageSize
	}
	if pageSize > MaxStudyPageSize {
		pageSize = MaxStudyPageSize
	}

	studies, totalCount, err := service.studies.ListActive(params.Keyword, studyOrderClause(params.Sort), (page-1)*pageSize, pageSize)
	if err != nil {
		return StudyListResult{}, err
	}

	studyIDs := make([]uint, 0, len(studies))
	for _, study := range studies {
		studyIDs = append(studyIDs, study.ID)
	}
	emojis, err := service.emojis.ListByStudyIDs(studyIDs)
	if err != nil {
		return StudyListResult{}, err
	}
	topByStudy := make(map[uint][]models.Emoji, len(studies))
	for _, emoji := range emojis {
		if len(topByStudy[emoji.StudyID]) < topEmojiCount {
			topByStudy[emoji.StudyID] = append(topByStudy[emoji.StudyID], emoji)
		}
	}

	items := make([]StudyListItem, 0, len(studies))
	for _, study := range studies {
		items = append(items, StudyListItem{
			Study:     study,
			TopEmojis: topByStudy[study.ID],
		})
	}

	return StudyListResult{
		Items:       items,
		TotalCount:  totalCount,
		HasNextPage: int64(page)*int64(pageSize) < totalCount,
	}, nil
}

func studyOrderClause(sort string) string {
	switch strings.TrimSpace(sort) {
	case SortOldest:
		return "created_at ASC, id ASC"
	case SortPointsDesc:
		return "total_points DESC, id ASC"
	case SortPointsAsc:
		return "total_points ASC, id ASC"
	default:
		return "created_at DESC, id DESC"
	}
}

type StudyUpdateInput struct {
	Nickname        *string
	Title           *string
	Description     *string
	BackgroundImage *string
}

func (input StudyUpdateInput) Empty() bool {
	return input.Nickname == nil && input.Title == nil && input.Description == nil && input.BackgroundImage == nil
}

// UpdateStudy applies a partial update. Callers must have passed the
// credential guard first. The status stamp is unconditional: any accepted
// update marks the study UPDATED even when every supplied field carries its
// current value.
func (service *StudyService) UpdateStudy(studyID uint, input StudyUpdateInput) (models.Study, error) {
	updates := map[string]any{"status": models.StudyStatusUpdated}
	if input.Nickname != nil {
		updates["nickname"] = *input.Nickname
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.BackgroundImage != nil {
		updates["background_image"] = *input.BackgroundImage
	}
	return service.studies.UpdateFields(studyID, updates)
}

// SoftDeleteStudy marks the study DELETED. The row and its children persist;
// listings and lookups exclude it from then on.
func (service *StudyService) SoftDeleteStudy(studyID uint) (models.Study, error) {
	return service.studies.UpdateFields(studyID, map[string]any{"status": models.StudyStatusDeleted})
}
