package auth

import (
	"testing"

	"github.com/spec-kit/admin-panel/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	token, exp, err := tm.GenerateToken("a1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if exp.IsZero() {
		t.Error("Expected expiry set")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.UserID != "a1" || claims.Role != domain.RoleAdmin {
		t.Errorf("Unexpected claims: %+v", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 60).GenerateToken("a1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := NewTokenManager("secret-b", 60).ParseToken(token); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}
