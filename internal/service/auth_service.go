package service

import (
	"fmt"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type authService struct {
	supabaseClient domain.SupabaseClient
	config         domain.Config
	logger         domain.Logger
}

func NewAuthService(
	supabaseClient domain.SupabaseClient,
	config domain.Config,
	logger domain.Logger,
) *authService {
	return &authService{
		supabaseClient: supabaseClient,
		config:         config,
		logger:         logger,
	}
}

// ValidateToken validates a Supabase access token and returns user info.
// When the project JWT secret is configured the token is verified locally
// (Supabase signs access tokens with HS256); otherwise it falls back to a
// GoTrue round trip.
func (s *authService) ValidateToken(token string) (*domain.SupabaseUser, error) {
	if secret := s.config.GetSupabaseJWTSecret(); secret != "" {
		return s.validateLocally(token, secret)
	}

	user, err := s.supabaseClient.ValidateToken(token)
	if err != nil {
		s.logger.Error("Failed to validate token with Supabase", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return user, nil
}

func (s *authService) validateLocally(tokenStr, secret string) (*domain.SupabaseUser, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &domain.SupabaseUser{
		ID:           sub,
		Email:        email,
		UserMetadata: make(map[string]interface{}),
	}, nil
}
