package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/terraincognita07/studyforest/internal/models"
)

const (
	minNicknameLength    = 2
	maxNicknameLength    = 8
	minTitleLength       = 2
	maxTitleLength       = 16
	minDescriptionLength = 2
	maxDescriptionLength = 200
	minPasswordLength    = 6
)

// FieldError names the offending field so the boundary can enumerate
// validation failures per field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func lengthOutOfRange(value string, min int, max int) bool {
	length := utf8.RuneCountInString(value)
	return length < min || length > max
}

func validateNickname(nickname string) *FieldError {
	if lengthOutOfRange(nickname, minNicknameLength, maxNicknameLength) {
		return &FieldError{Field: "nickname", Message: "nickname must be 2-8 characters"}
	}
	return nil
}

func validateTitle(title string) *FieldError {
	if lengthOutOfRange(title, minTitleLength, maxTitleLength) {
		return &FieldError{Field: "title", Message: "title must be 2-16 characters"}
	}
	return nil
}

func validateDescription(description string) *FieldError {
	if lengthOutOfRange(description, minDescriptionLength, maxDescriptionLength) {
		return &FieldError{Field: "description", Message: "description must be 2-200 characters"}
	}
	return nil
}

// ValidateStudyPassword requires at least six characters and one
// non-alphanumeric character.
func ValidateStudyPassword(password string) *FieldError {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return &FieldError{Field: "password", Message: "password must be at least 6 characters"}
	}
	hasSymbol := false
	for _, char := range password {
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) {
			hasSymbol = true
			break
		}
	}
	if !hasSymbol {
		return &FieldError{Field: "password", Message: "password must contain at least one non-alphanumeric character"}
	}
	return nil
}

func validateBackgroundImage(backgroundImage string) *FieldError {
	for _, allowed := range models.AllowedBackgroundImages() {
		if backgroundImage == allowed {
			return nil
		}
	}
	return &FieldError{Field: "backgroundImage", Message: "backgroundImage is not one of the allowed backgrounds"}
}

// ValidateStudyCreateInput trims the display fields in place and enumerates
// every violated rule.
func ValidateStudyCreateInput(input *StudyCreateInput, passwordConfirm string) []FieldError {
	input.Nickname = strings.TrimSpace(input.Nickname)
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	fieldErrors := make([]FieldError, 0)
	if fieldErr := validateNickname(input.Nickname); fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	if fieldErr := validateTitle(input.Title); fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	if fieldErr := validateDescription(input.Description); fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	if fieldErr := ValidateStudyPassword(input.Password); fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	} else if input.Password != passwordConfirm {
		fieldErrors = append(fieldErrors, FieldError{Field: "passwordConfirm", Message: "password and confirmation do not match"})
	}
	if input.BackgroundImage != "" {
		if fieldErr := validateBackgroundImage(input.BackgroundImage); fieldErr != nil {
			fieldErrors = append(fieldErrors, *fieldErr)
		}
	}
	return fieldErrors
}

// ValidateStudyUpdateInput revalidates only the supplied fields against the
// create rules. An input with no fields at all is rejected before any
// persistence call.
func ValidateStudyUpdateInput(input *StudyUpdateInput) []FieldError {
	if input.Empty() {
		return []FieldError{{Field: "body", Message: "at least one updatable field is required"}}
	}

	fieldErrors := make([]FieldError, 0)
	if input.Nickname != nil {
		*input.Nickname = strings.TrimSpace(*input.Nickname)
		if fieldErr := validateNickname(*input.Nickname); fieldErr != nil {
			fieldErrors = append(fieldErrors, *fieldErr)
		}
	}
	if input.Title != nil {
		*input.Title = strings.TrimSpace(*input.Title)
		if fieldErr := validateTitle(*input.Title); fieldErr != nil {
			fieldErrors = append(fieldErrors, *fieldErr)
		}
	}
	if input.Description != nil {
		*input.Description = strings.TrimSpace(*input.Description)
		if fieldErr := validateDescription(*input.Description); fieldErr != nil {
			fieldErrors = append(fieldErrors, *fieldErr)
		}
	}
	if input.BackgroundImage != nil && *input.BackgroundImage != "" {
		if fieldErr := validateBackgroundImage(*input.BackgroundImage); fieldErr != nil {
			fieldErrors = append(fieldErrors, *fieldErr)
		}
	}
	return fieldErrors
}
