package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskly/task-api/internal/core/domain"
)

// TokenService issues and verifies HS256 JWTs carrying the caller identity.
// A zero TTL means tokens never expire.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a compact token with userId, email, name, and iat claims.
// An exp claim is added only when a TTL is configured.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"iat":    now.Unix(),
	}
	if s.ttl != 0 {
		claims["exp"] = now.Add(s.ttl).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Every failure mode (bad signature,
// wrong algorithm, malformed payload, expired token) collapses to
// domain.ErrInvalidToken so callers cannot distinguish them.
func (s *TokenService) Verify(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["userId"].(string)
	if userID == "" {
		return nil, domain.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return &domain.Identity{UserID: userID, Email: email, Name: name}, nil
}
