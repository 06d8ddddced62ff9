package repository

import (
	"encoding/json"
	"fmt"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
)

// SupabaseProfileRepository implements the domain.ProfileRepository interface
type SupabaseProfileRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewSupabaseProfileRepository creates a new Supabase profile repository
func NewSupabaseProfileRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.ProfileRepository {
	return &SupabaseProfileRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// GetProfile fetches the subscription status and country for a user from the
// profiles table. A missing row returns (nil, nil); the caller treats that the
// same as "not subscribed".
func (r *SupabaseProfileRepository) GetProfile(userID string, token string) (*domain.UserProfile, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("profiles").
		Select("subscription_status,country", "", false).
		Eq("id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return r.mapToProfile(rows[0]), nil
}

func (r *SupabaseProfileRepository) mapToProfile(row map[string]interface{}) *domain.UserProfile {
	profile := &domain.UserProfile{}

	if status, ok := row["subscription_status"].(string); ok {
		profile.SubscriptionStatus = domain.SubscriptionStatus(status)
	}
	if country, ok := row["country"].(string); ok {
		profile.Country = country
	}

	return profile
}
