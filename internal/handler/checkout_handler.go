package handler

import (
	"errors"
	"net/http"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
	apperrors "github.com/renanduart3/promptopia-creation-platform/pkg/errors"
)

// CheckoutHandler brokers the payment redirect. It does its own token
// handling instead of sitting behind the auth middleware, so a visitor
// without a session gets the sign-in notice rather than a bare 401.
type CheckoutHandler struct {
	authService     domain.AuthService
	checkoutService domain.CheckoutService
	logger          domain.Logger
}

func NewCheckoutHandler(
	authService domain.AuthService,
	checkoutService domain.CheckoutService,
	logger domain.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		authService:     authService,
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// CreateSession asks the checkout function for a payment URL and returns it;
// the page performs the navigation. No retry on failure.
func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		h.writeAuthRequired(w)
		return
	}

	user, err := h.authService.ValidateToken(token)
	if err != nil {
		h.writeAuthRequired(w)
		return
	}

	session, err := h.checkoutService.CreateSession(r.Context(), user.ID, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthRequired):
			h.writeAuthRequired(w)
		case errors.Is(err, domain.ErrActionInProgress):
			writeNotice(w, http.StatusConflict, domain.Notice{
				Title:       "Hold on",
				Description: "Another action is already in progress. Wait for it to finish.",
				Severity:    domain.NoticeWarning,
			})
		default:
			h.logger.Error("Failed to create checkout session", err, "user_id", user.ID)
			writeNotice(w, apperrors.GetStatusCode(err), domain.Notice{
				Title:       "Checkout unavailable",
				Description: "Could not start checkout. Please try again.",
				Severity:    domain.NoticeError,
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *CheckoutHandler) writeAuthRequired(w http.ResponseWriter) {
	writeNotice(w, http.StatusUnauthorized, domain.Notice{
		Title:       "Sign in required",
		Description: "Create an account or sign in to subscribe.",
		Severity:    domain.NoticeWarning,
	})
}
