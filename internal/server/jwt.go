package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jonathan/portfolio-studio/internal/config"
)

// Claims represents JWT claims with user ID.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTService provides session token generation and validation. The login is
// simulated, so the token only ties requests to the active session's user.
type JWTService struct {
	config *config.SessionConfig
}

// NewJWTService creates a new JWT service with the given configuration.
func NewJWTService(cfg *config.SessionConfig) *JWTService {
	return &JWTService{
		config: cfg,
	}
}

// GenerateToken generates a session token for the given user ID.
func (s *JWTService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(s.config.ExpirationHours) * time.Hour)

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a session token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}

// authorize checks the Bearer token against the active session.
func (s *Server) authorize(r *http.Request) error {
	header := r.Header.Get("Authorization")
	if header == "" {
		return &ErrUnauthorized{Message: "missing Authorization header"}
	}
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return &ErrUnauthorized{Message: "Authorization header must use Bearer scheme"}
	}

	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return &ErrUnauthorized{Message: "invalid session token"}
	}
	if claims.UserID != s.controller.UserID() {
		return &ErrUnauthorized{Message: "token does not match the active session"}
	}
	return nil
}
