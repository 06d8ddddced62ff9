package handler

import (
	"net/http"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
)

// ProfileHandler serves the landing page's one-shot profile fetch.
type ProfileHandler struct {
	profileService domain.ProfileService
	logger         domain.Logger
}

func NewProfileHandler(profileService domain.ProfileService, logger domain.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

type profileResponse struct {
	Profile   *domain.UserProfile `json:"profile"`
	Price     domain.Price        `json:"price"`
	WordLimit int                 `json:"word_limit"`
}

// GetProfile returns the caller's subscription profile. Lookup failures
// degrade to a null profile (logged, never surfaced); the page then renders
// the not-subscribed state. Checkout errors, by contrast, are surfaced.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	token, _ := GetTokenFromContext(r)

	profile, err := h.profileService.GetProfile(user.ID, token)
	if err != nil {
		h.logger.Error("Failed to load profile", err, "user_id", user.ID)
		profile = nil
	}

	country := ""
	if profile != nil {
		country = profile.Country
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Profile:   profile,
		Price:     domain.PriceForRegion(country),
		WordLimit: domain.WordLimit,
	})
}
