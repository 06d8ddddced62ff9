package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
	apperrors "github.com/renanduart3/promptopia-creation-platform/pkg/errors"
)

const checkoutBodyLimit = 1 << 20

type checkoutService struct {
	config     domain.Config
	logger     domain.Logger
	guard      *ActionGuard
	httpClient *http.Client
}

func NewCheckoutService(
	config domain.Config,
	logger domain.Logger,
	guard *ActionGuard,
) *checkoutService {
	return &checkoutService{
		config: config,
		logger: logger,
		guard:  guard,
		httpClient: &http.Client{
			Timeout: config.GetHTTPTimeout(),
		},
	}
}

// checkoutEnvelope is the wire format of the checkout function:
// {"data":{"url":"..."}} on success, {"error":{"message":"..."}} on failure.
type checkoutEnvelope struct {
	Data *struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateSession asks the checkout function for a payment session URL on
// behalf of the token's user. No retries; callers surface a single notice on
// failure.
func (s *checkoutService) CreateSession(ctx context.Context, userID string, token string) (*domain.CheckoutSession, error) {
	if token == "" {
		return nil, domain.ErrAuthRequired
	}

	if !s.guard.TryAcquire(userID) {
		return nil, domain.ErrActionInProgress
	}
	defer s.guard.Release(userID)

	endpoint := s.config.GetCheckoutFunctionURL()
	if endpoint == "" {
		return nil, apperrors.NewInternalError("checkout function URL not configured", nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader("{}"))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build checkout request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewNetworkError("checkout request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, checkoutBodyLimit))
	if err != nil {
		return nil, apperrors.NewNetworkError("failed to read checkout response", err)
	}

	var envelope checkoutEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apperrors.NewNetworkError(fmt.Sprintf("unexpected checkout response (status %d)", resp.StatusCode), err)
	}

	if envelope.Error != nil {
		s.logger.Error("Checkout function returned an error", fmt.Errorf("%s", envelope.Error.Message), "user_id", userID, "status", resp.StatusCode)
		return nil, apperrors.NewNetworkError("checkout function rejected the request", nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewNetworkError(fmt.Sprintf("unexpected checkout status %d", resp.StatusCode), nil)
	}

	if envelope.Data == nil || envelope.Data.URL == "" {
		return nil, apperrors.NewNetworkError("checkout response missing url", nil)
	}

	s.logger.Info("Checkout session created", "user_id", userID)
	return &domain.CheckoutSession{URL: envelope.Data.URL}, nil
}
