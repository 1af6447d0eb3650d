package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/campushare/backend/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestIssueAndParseAccountToken(t *testing.T) {
	svc := newTestService(time.Hour)

	identity := Identity{
		Kind:      SubjectAccount,
		UserID:    42,
		Name:      "Ada",
		RegNo:     "CS2021042",
		Role:      models.RoleStudent,
		CanUpload: true,
	}

	token, expiresIn, err := svc.Issue(identity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if expiresIn != int(time.Hour.Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int(time.Hour.Seconds()))
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Name != "Ada" {
		t.Errorf("Name = %q, want Ada", claims.Name)
	}
	if claims.Role != string(models.RoleStudent) {
		t.Errorf("Role = %q, want STUDENT", claims.Role)
	}
	if claims.AdminSentinel {
		t.Error("account token must not carry the admin sentinel tag")
	}
}

func TestIssueAndParseAdminToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, _, err := svc.Issue(AdminIdentity("ADMIN"))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !claims.AdminSentinel {
		t.Error("admin token must carry the admin sentinel tag")
	}
	if claims.UserID != 0 {
		t.Errorf("UserID = %d, want 0 for admin sentinel", claims.UserID)
	}
	if claims.Role != string(models.RoleAdmin) {
		t.Errorf("Role = %q, want ADMIN", claims.Role)
	}
}

func TestParseExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.Issue(AdminIdentity("ADMIN"))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = svc.Parse(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Parse error = %v, want ErrExpiredToken", err)
	}
}

func TestParseTamperedToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, _, err := svc.Issue(Identity{Kind: SubjectAccount, UserID: 1, Name: "x", Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}

	// Swap in a forged payload while keeping the original signature
	forged := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := svc.Parse(forged); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse error = %v, want ErrInvalidToken", err)
	}
}

func TestParseTokenSignedWithDifferentSecret(t *testing.T) {
	issuer := newTestService(time.Hour)
	verifier := NewJWTService(JWTConfig{SecretKey: "a-different-secret", TokenExp: time.Hour, TokenIssuer: "test"})

	token, _, err := issuer.Issue(AdminIdentity("ADMIN"))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse error = %v, want ErrInvalidToken", err)
	}
}

func TestParseEmptyToken(t *testing.T) {
	svc := newTestService(time.Hour)
	if _, err := svc.Parse(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken returned error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("token = %q, want abc.def.ghi", token)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("empty header error = %v, want ErrInvalidFormat", err)
	}
}
