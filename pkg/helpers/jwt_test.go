package helpers

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("unit-test-secret", time.Hour)

	token, exp, err := m.Generate("user-1", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Errorf("expiry %v is in the past", exp)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTManager("secret-a", time.Hour).Generate("user-1", "user")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewJWTManager("secret-b", time.Hour).Parse(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("unit-test-secret", -time.Minute)
	token, _, err := m.Generate("user-1", "user")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	m := NewJWTManager("unit-test-secret", time.Hour)
	if _, err := m.Parse("not.a.token"); err == nil {
		t.Error("garbage token was accepted")
	}
}
