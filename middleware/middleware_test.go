package middleware

import (
	"testing"

	"schoolms/domain"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-signing-key")

	token, err := GenerateJWT(7, "teacher@school.test", domain.RoleTeacher)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Email != "teacher@school.test" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.Role != domain.RoleTeacher {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	if claims.Subject != "teacher@school.test" {
		t.Fatalf("subject should carry the email, got %q", claims.Subject)
	}
}

func TestVerifyJWTRejectsWrongKey(t *testing.T) {
	t.Setenv("BYTE_KEY", "first-key")
	token, err := GenerateJWT(1, "admin@school.test", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	t.Setenv("BYTE_KEY", "second-key")
	if _, err := VerifyJWT(token); err == nil {
		t.Fatalf("token signed with another key must not verify")
	}
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-signing-key")
	if _, err := VerifyJWT("not-a-token"); err == nil {
		t.Fatalf("malformed token must not verify")
	}
}
