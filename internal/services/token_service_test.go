package services

import (
	"testing"
	"time"
)

func TestStudyAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	secretKey := []byte("test-secret")
	now := time.Now()

	token, err := BuildStudyAccessToken(secretKey, 12, now)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	claims, err := ParseStudyAccessToken(secretKey, token, 12, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.StudyID != 12 {
		t.Fatalf("expected study id 12, got %d", claims.StudyID)
	}
}

func TestStudyAccessTokenRejectsWrongStudy(t *testing.T) {
	t.Parallel()

	secretKey := []byte("test-secret")
	now := time.Now()

	token, err := BuildStudyAccessToken(secretKey, 12, now)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	if _, err := ParseStudyAccessToken(secretKey, token, 13, now); err == nil {
		t.Fatal("expected token scoped to another study to be rejected")
	}
}

func TestStudyAccessTokenExpires(t *testing.T) {
	t.Parallel()

	secretKey := []byte("test-secret")
	now := time.Now()

	token, err := BuildStudyAccessToken(secretKey, 12, now)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	if _, err := ParseStudyAccessToken(secretKey, token, 12, now.Add(StudyAccessTokenTTL+time.Minute)); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestStudyAccessTokenRejectsWrongKey(t *testing.T) {
	t.Parallel()

	now := time.Now()
	token, err := BuildStudyAccessToken([]byte("key-one"), 12, now)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	if _, err := ParseStudyAccessToken([]byte("key-two"), token, 12, now); err == nil {
		t.Fatal("expected token signed with a different key to be rejected")
	}
}
