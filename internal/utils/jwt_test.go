package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "pathforge"
	userID := int64(42)
	duration := time.Hour
	key := "pathforge-sign-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "42" {
		t.Errorf("expected subject '42', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "pathforge-sign-key"},
		{"zero duration", "pathforge", 0, "pathforge-sign-key"},
		{"empty key", "pathforge", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "pathforge"
	userID := int64(7)
	key := "pathforge-sign-key"

	genToken, err := GenerateJWTToken(issuer, userID, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_Rejected(t *testing.T) {
	key := "pathforge-sign-key"
	issuer := "pathforge"

	validToken, err := GenerateJWTToken(issuer, 1, time.Hour, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	expiredToken, err := GenerateJWTToken(issuer, 1, -time.Second, key)
	if err != nil {
		t.Fatalf("failed to generate expired token: %v", err)
	}

	tests := []struct {
		name        string
		tokenString string
		key         string
		issuer      string
	}{
		{"wrong sign key", validToken.SignedString, "other-key", issuer},
		{"wrong issuer", validToken.SignedString, key, "other-issuer"},
		{"expired", expiredToken.SignedString, key, issuer},
		{"malformed", "not.a.token", key, issuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.tokenString, tt.key, tt.issuer); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		want      string
		expectErr bool
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"surrounding whitespace", "  Bearer abc.def.ghi  ", "abc.def.ghi", false},
		{"scheme only", "Bearer", "", true},
		{"empty header", "", "", true},
		{"too many parts", "Bearer abc def", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.expectErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected token %q, got %q", tt.want, got)
			}
		})
	}
}
