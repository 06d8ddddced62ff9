package service

import (
	"context"
	"time"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"

	"github.com/google/uuid"
)

type generationService struct {
	profileService domain.ProfileService
	guard          *ActionGuard
	config         domain.Config
	logger         domain.Logger
}

func NewGenerationService(
	profileService domain.ProfileService,
	guard *ActionGuard,
	config domain.Config,
	logger domain.Logger,
) *generationService {
	return &generationService{
		profileService: profileService,
		guard:          guard,
		config:         config,
		logger:         logger,
	}
}

// Preview evaluates the gate without running anything, so the page can keep
// the generate button state in sync while the user types.
func (s *generationService) Preview(userID string, token string, text string) domain.GateDecision {
	profile, err := s.profileService.GetProfile(userID, token)
	if err != nil {
		s.logger.Debug("Profile lookup failed during preview", "user_id", userID, "error", err)
		profile = nil
	}
	return domain.EvaluateGateWithLimit(text, profile, s.guard.Busy(userID), s.config.GetWordLimit())
}

// Generate re-validates the draft against the user's profile and, if the gate
// allows it, runs the generator. The real prompt generator is not wired in
// yet; this completes after a fixed placeholder delay.
func (s *generationService) Generate(ctx context.Context, userID string, token string, text string) (*domain.GenerationJob, error) {
	if !s.guard.TryAcquire(userID) {
		return nil, domain.ErrActionInProgress
	}
	defer s.guard.Release(userID)

	profile, err := s.profileService.GetProfile(userID, token)
	if err != nil {
		// Same degradation as the page: a failed lookup reads as "not subscribed".
		s.logger.Warn("Profile lookup failed during generate", "user_id", userID, "error", err)
		profile = nil
	}

	decision := domain.EvaluateGateWithLimit(text, profile, false, s.config.GetWordLimit())
	if err := decision.Err(); err != nil {
		return nil, err
	}

	job := &domain.GenerationJob{
		ID:        uuid.NewString(),
		Status:    domain.GenerationGenerating,
		WordCount: decision.WordCount,
	}
	s.logger.Info("Generation started", "job_id", job.ID, "user_id", userID, "word_count", job.WordCount)

	// Placeholder for the prompt generator.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.config.GetGenerationStubDelay()):
	}

	job.Status = domain.GenerationCompleted
	s.logger.Info("Generation completed", "job_id", job.ID, "user_id", userID)
	return job, nil
}
