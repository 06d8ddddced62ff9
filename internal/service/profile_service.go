package service

import (
	"fmt"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
)

type profileService struct {
	profileRepo domain.ProfileRepository
	logger      domain.Logger
}

func NewProfileService(
	profileRepo domain.ProfileRepository,
	logger domain.Logger,
) *profileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile fetches the user's profile once. A missing row is not an error;
// it returns (nil, nil) and the caller treats the user as not subscribed.
func (s *profileService) GetProfile(userID string, token string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetProfile(userID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if profile == nil {
		s.logger.Debug("No profile row for user", "user_id", userID)
		return nil, nil
	}

	return profile, nil
}
