package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"aidhub/internal/domain"
)

func testUser() domain.User {
	return domain.User{ID: 12, Email: "olena@example.org", Role: domain.RoleRequester}
}

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "aidhub", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	id, err := claims.UserID()
	if err != nil || id != 12 {
		t.Fatalf("UserID() = %d, %v; want 12", id, err)
	}
	if claims.Email != "olena@example.org" || claims.Role != domain.RoleRequester {
		t.Fatalf("Verify() returned %+v", claims)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", "aidhub", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := NewTokenIssuer("secret-b", "aidhub", time.Hour).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", "aidhub", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	issuer.now = time.Now
	if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		Role: domain.RoleVolunteer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "12",
			Issuer:    "aidhub",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString() error: %v", err)
	}
	if _, err := NewTokenIssuer("secret", "aidhub", time.Hour).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsBadSubject(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-number",
			Issuer:    "aidhub",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString() error: %v", err)
	}
	if _, err := NewTokenIssuer("secret", "aidhub", time.Hour).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(4)
	hash, err := h.Hash("s3cret!")
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	if err := h.Compare(hash, "s3cret!"); err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}
	if err := h.Compare(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("Compare() error = %v, want ErrPasswordMismatch", err)
	}
	if _, err := h.Hash(strings.Repeat("x", 73)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Hash() long password error = %v, want validation error", err)
	}
}
