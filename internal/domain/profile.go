package domain

// SubscriptionStatus captures the lifecycle of a user's subscription as
// reported by the billing provider.
type SubscriptionStatus string

const (
	SubscriptionActive            SubscriptionStatus = "active"
	SubscriptionTrialing          SubscriptionStatus = "trialing"
	SubscriptionCanceled          SubscriptionStatus = "canceled"
	SubscriptionIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubscriptionPastDue           SubscriptionStatus = "past_due"
	SubscriptionUnpaid            SubscriptionStatus = "unpaid"
)

// UserProfile is the read-only slice of the profiles table this service needs.
type UserProfile struct {
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	Country            string             `json:"country,omitempty"`
}

// Entitled reports whether the profile permits the generate feature.
// Only a fully active subscription counts; trialing and past_due do not.
func (p *UserProfile) Entitled() bool {
	return p != nil && p.SubscriptionStatus == SubscriptionActive
}

type ProfileService interface {
	GetProfile(userID string, token string) (*UserProfile, error)
}

type ProfileRepository interface {
	GetProfile(userID string, token string) (*UserProfile, error)
}
