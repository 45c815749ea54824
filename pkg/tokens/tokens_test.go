package tokens

import (
	"strings"
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestIssueAndParse(t *testing.T) {
	token, err := Issue("acc_1", "admin@gdcworld.co.kr", "admin", time.Hour, secret)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(strings.Split(token, ".")) != 3 {
		t.Fatalf("expected three dot-separated segments, got %q", token)
	}

	claims, err := Parse(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "acc_1" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Email != "admin@gdcworld.co.kr" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParse_ZeroTTLIsExpired(t *testing.T) {
	token, err := Issue("acc_1", "a@x.com", "staff", 0, secret)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := Parse(token, secret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_TamperedPayload(t *testing.T) {
	token, err := Issue("acc_1", "a@x.com", "staff", time.Hour, secret)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(token, ".")
	// Flip one character in the payload segment; signature no longer matches.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := Parse(tampered, secret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestParse_WrongSegmentCount(t *testing.T) {
	if _, err := Parse("not-a-token", secret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := Parse("a.b", secret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Issue("acc_1", "a@x.com", "staff", time.Hour, secret)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := Parse(token, []byte("other-secret")); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
