package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"EduAgent/internal/apperr"
	"EduAgent/internal/config"
)

func newTestTokenService(ttl time.Duration) *TokenService {
	return NewTokenService(&config.JWTConfig{Secret: []byte("test-secret"), TTL: ttl})
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	s := newTestTokenService(time.Hour)

	tok, err := s.Issue("64f000000000000000000001", KindOrganization)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != "64f000000000000000000001" {
		t.Fatalf("subject mismatch: got %q", claims.Subject)
	}
	if claims.Kind != KindOrganization {
		t.Fatalf("kind mismatch: got %q", claims.Kind)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Fatalf("expiry %v not after issuance %v", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	s := newTestTokenService(-time.Second)

	tok, err := s.Issue("64f000000000000000000002", KindStudent)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = s.Verify(tok)
	if err == nil {
		t.Fatalf("expected error for expired token")
	}
	if apperr.From(err).Kind != apperr.KindTokenExpired {
		t.Fatalf("expected token_expired, got %v", apperr.From(err).Kind)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService(&config.JWTConfig{Secret: []byte("right-secret"), TTL: time.Hour})
	verifier := NewTokenService(&config.JWTConfig{Secret: []byte("wrong-secret"), TTL: time.Hour})

	tok, err := issuer.Issue("64f000000000000000000003", KindStudent)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Verify(tok)
	if err == nil {
		t.Fatalf("expected error for forged token")
	}
	if apperr.From(err).Kind != apperr.KindTokenInvalid {
		t.Fatalf("expected token_invalid, got %v", apperr.From(err).Kind)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	s := newTestTokenService(time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := s.Verify(tok); err == nil {
			t.Fatalf("expected error for malformed token %q", tok)
		}
	}
}

func TestVerify_RejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	s := newTestTokenService(time.Hour)

	claims := &Claims{
		Kind: KindOrganization,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "64f000000000000000000004",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	if _, err := s.Verify(tok); err == nil {
		t.Fatalf("token with none algorithm must be rejected")
	}
}

func TestVerify_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	s := newTestTokenService(time.Hour)

	claims := &Claims{
		Kind: Kind("admin"),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "64f000000000000000000005",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	_, err = s.Verify(tok)
	if err == nil {
		t.Fatalf("expected error for unknown kind claim")
	}
	if apperr.From(err).Kind != apperr.KindTokenInvalid {
		t.Fatalf("expected token_invalid, got %v", apperr.From(err).Kind)
	}
}
