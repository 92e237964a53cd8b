package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 0)

	token, exp, err := tm.GenerateToken(7, "admin@college.edu")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if d := time.Until(exp); d <= 23*time.Hour || d > 24*time.Hour {
		t.Fatalf("expected ~24h expiry, got %s", d)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.AdminID != 7 || claims.Email != "admin@college.edu" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "7" || claims.ID == "" {
		t.Fatalf("registered claims not set: %+v", claims.RegisteredClaims)
	}
}

func TestTokenExpiryBoundary(t *testing.T) {
	issued := time.Date(2024, 10, 15, 9, 30, 0, 0, time.UTC)
	tm := NewTokenManager("secret", 24*time.Hour).WithClock(func() time.Time { return issued })

	token, _, err := tm.GenerateToken(1, "admin@college.edu")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	accepted := []time.Time{issued, issued.Add(12 * time.Hour), issued.Add(24*time.Hour - time.Second)}
	for _, at := range accepted {
		if _, err := tm.WithClock(func() time.Time { return at }).ParseToken(token); err != nil {
			t.Fatalf("token rejected at %s: %v", at, err)
		}
	}

	rejected := []time.Time{issued.Add(24 * time.Hour), issued.Add(48 * time.Hour)}
	for _, at := range rejected {
		if _, err := tm.WithClock(func() time.Time { return at }).ParseToken(token); err == nil {
			t.Fatalf("token accepted at %s", at)
		}
	}
}

func TestTokenExpiryAtSubSecondIssuance(t *testing.T) {
	issued := time.Date(2024, 10, 15, 10, 0, 0, 900_000_000, time.UTC)
	tm := NewTokenManager("secret", 24*time.Hour).WithClock(func() time.Time { return issued })

	token, expiresAt, err := tm.GenerateToken(1, "admin@college.edu")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if want := time.Date(2024, 10, 16, 10, 0, 0, 0, time.UTC); !expiresAt.Equal(want) {
		t.Fatalf("expiresAt = %s, want %s", expiresAt, want)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if !claims.IssuedAt.Time.Add(24 * time.Hour).Equal(claims.ExpiresAt.Time) {
		t.Fatalf("iat %s and exp %s are not a full ttl apart", claims.IssuedAt.Time, claims.ExpiresAt.Time)
	}

	lastValid := expiresAt.Add(-time.Millisecond)
	if _, err := tm.WithClock(func() time.Time { return lastValid }).ParseToken(token); err != nil {
		t.Fatalf("token rejected just before expiry: %v", err)
	}
	if _, err := tm.WithClock(func() time.Time { return expiresAt }).ParseToken(token); err == nil {
		t.Fatalf("token accepted at expiry")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret", time.Hour).GenerateToken(1, "a@b.c")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := NewTokenManager("other", time.Hour).ParseToken(token); err == nil {
		t.Fatalf("expected signature failure")
	}
}

func TestTokenRejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		AdminID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := NewTokenManager("secret", time.Hour).ParseToken(unsigned); err == nil {
		t.Fatalf("expected none algorithm to be rejected")
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign hs512: %v", err)
	}
	if _, err := NewTokenManager("secret", time.Hour).ParseToken(hs512); err == nil {
		t.Fatalf("expected HS512 to be rejected")
	}
}

func TestTokenWithoutExpiryRejected(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{AdminID: 1}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewTokenManager("secret", time.Hour).ParseToken(token); err == nil {
		t.Fatalf("expected missing exp to be rejected")
	}
}
