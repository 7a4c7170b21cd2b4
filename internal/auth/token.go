package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"EduAgent/internal/apperr"
	"EduAgent/internal/config"
)

type Claims struct {
	Kind Kind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed bearer tokens that stand in
// for a session. Tokens are stateless: nothing is persisted server-side
// and expiry is the only invalidation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.JWTConfig) *TokenService {
	return &TokenService{secret: cfg.Secret, ttl: cfg.TTL}
}

func (s *TokenService) Issue(principalID string, kind Kind) (string, error) {
	now := time.Now()
	claims := &Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature before trusting any claim.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.New(apperr.KindTokenExpired, "token expired")
		}
		return nil, apperr.New(apperr.KindTokenInvalid, "invalid token")
	}
	if !token.Valid || claims.Subject == "" || !claims.Kind.Valid() {
		return nil, apperr.New(apperr.KindTokenInvalid, "invalid token")
	}
	return claims, nil
}
