package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	studyAccessTokenPurpose = "study_access"

	// StudyAccessTokenTTL bounds how long a verified password keeps a
	// management session open without re-entering it.
	StudyAccessTokenTTL = 30 * time.Minute
)

var ErrStudyTokenInvalid = errors.New("study access token invalid")

type StudyAccessClaims struct {
	StudyID uint   `json:"sid"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// BuildStudyAccessToken signs a short-lived token proving that the holder
// passed the credential guard for one study.
func BuildStudyAccessToken(secretKey []byte, studyID uint, now time.Time) (string, error) {
	claims := StudyAccessClaims{
		StudyID: studyID,
		Purpose: studyAccessTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(studyID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(StudyAccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ParseStudyAccessToken validates signature, expiry, purpose and study scope.
func ParseStudyAccessToken(secretKey []byte, rawToken string, studyID uint, now time.Time) (*StudyAccessClaims, error) {
	claims := &StudyAccessClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrStudyTokenInvalid
		}
		return secretKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil || !token.Valid {
		return nil, ErrStudyTokenInvalid
	}
	if claims.Purpose != studyAccessTokenPurpose || claims.StudyID != studyID {
		return nil, ErrStudyTokenInvalid
	}
	return claims, nil
}
