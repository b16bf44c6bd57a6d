package middleware

import (
	"testing"
	"time"

	"crewtime/models"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	user := &models.User{ID: 7, Username: "Sara White"}
	token, err := GenerateToken(user, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 7 || claims.Username != "Sara White" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateToken(&models.User{ID: 1, Username: "John Doe"}, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateToken(&models.User{ID: 1, Username: "John Doe"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	SetJWTSecret("another-secret")
	defer SetJWTSecret("test-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected a token signed with a different secret to be rejected")
	}
}
