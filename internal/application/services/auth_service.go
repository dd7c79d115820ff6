package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/config"
	"github.com/taskboard/core/internal/infrastructure/logger"
)

// Claims represents the JWT claims carried by an access token
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies bearer tokens and enforces the
// owner-match rule. It holds no mutable state beyond the signing
// secret, so it is safe for concurrent use.
type AuthService struct {
	jwtConfig config.JWTConfig
	logger    *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(jwtConfig config.JWTConfig, logger *logger.Logger) *AuthService {
	return &AuthService{
		jwtConfig: jwtConfig,
		logger:    logger,
	}
}

// IssueToken produces a signed HS256 token for the given subject. A
// non-positive ttl falls back to the configured default.
func (s *AuthService) IssueToken(subjectID, email string, ttl time.Duration) (string, error) {
	if subjectID == "" {
		return "", entities.ErrMissingSubject
	}
	if ttl <= 0 {
		ttl = s.jwtConfig.ExpiresIn
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.jwtConfig.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Authenticate verifies a presented token and extracts the caller
// identity. Every failure collapses to entities.ErrUnauthorized; the
// precise decode failure is logged but never returned, so clients
// cannot distinguish an expired token from a forged one.
func (s *AuthService) Authenticate(tokenString string) (*entities.Identity, error) {
	claims, err := s.decode(tokenString)
	if err != nil {
		s.logger.Warnw("Token verification failed", "reason", err)
		return nil, entities.ErrUnauthorized
	}

	if claims.Subject == "" {
		s.logger.Warnw("Token verification failed", "reason", entities.ErrMissingSubject)
		return nil, entities.ErrUnauthorized
	}

	return &entities.Identity{
		SubjectID: claims.Subject,
		Email:     claims.Email,
	}, nil
}

// Authorize checks that the verified caller is the owner named in the
// route. It must run before any store operation so that a mismatch
// leaks nothing about another user's tasks.
func (s *AuthService) Authorize(routeOwnerID string, identity *entities.Identity) error {
	if identity == nil || identity.SubjectID != routeOwnerID {
		return entities.ErrForbidden
	}
	return nil
}

// decode parses and verifies the token signature, classifying the
// failure kind for logging.
func (s *AuthService) decode(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, entities.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, entities.ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, entities.ErrTokenMalformed
		default:
			return nil, fmt.Errorf("%w: %v", entities.ErrTokenMalformed, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, entities.ErrTokenMalformed
	}

	return claims, nil
}
