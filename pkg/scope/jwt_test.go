package scope

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Issue(Payload{UserID: "user-1", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got.UserID != "user-1" || got.Email != "a@b.com" {
		t.Errorf("payload = %+v", got)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).Issue(Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = NewJWTManager("secret-b", time.Hour).Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	token, err := NewJWTManager("test-secret", -time.Minute).Issue(Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = NewJWTManager("test-secret", -time.Minute).Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	_, err := NewJWTManager("test-secret", time.Hour).Verify("not.a.token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
