package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
	apperrors "github.com/renanduart3/promptopia-creation-platform/pkg/errors"
)

type mockCheckoutService struct {
	session  *domain.CheckoutSession
	err      error
	called   bool
	lastUser string
}

func (m *mockCheckoutService) CreateSession(ctx context.Context, userID string, token string) (*domain.CheckoutSession, error) {
	m.called = true
	m.lastUser = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

func TestCheckoutHandler_CreateSession_OK(t *testing.T) {
	authService := &mockAuthService{user: &domain.SupabaseUser{ID: "user-1"}}
	checkoutService := &mockCheckoutService{session: &domain.CheckoutSession{URL: "https://pay.example/x"}}
	handler := NewCheckoutHandler(authService, checkoutService, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	req.Header.Set("Authorization", "Bearer access-token")
	rr := httptest.NewRecorder()

	handler.CreateSession(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var session domain.CheckoutSession
	if err := json.Unmarshal(rr.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if session.URL != "https://pay.example/x" {
		t.Fatalf("expected checkout url, got %s", session.URL)
	}
	if checkoutService.lastUser != "user-1" {
		t.Fatalf("expected user id to be forwarded, got %s", checkoutService.lastUser)
	}
}

func TestCheckoutHandler_CreateSession_NoSession(t *testing.T) {
	checkoutService := &mockCheckoutService{}
	handler := NewCheckoutHandler(&mockAuthService{}, checkoutService, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	rr := httptest.NewRecorder()

	handler.CreateSession(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Sign in required") {
		t.Fatalf("expected auth-required notice, got %s", rr.Body.String())
	}
	if checkoutService.called {
		t.Fatalf("expected no outbound checkout call without a session")
	}
}

func TestCheckoutHandler_CreateSession_InvalidToken(t *testing.T) {
	authService := &mockAuthService{err: errors.New("expired")}
	checkoutService := &mockCheckoutService{}
	handler := NewCheckoutHandler(authService, checkoutService, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rr := httptest.NewRecorder()

	handler.CreateSession(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if checkoutService.called {
		t.Fatalf("expected no outbound checkout call with an invalid token")
	}
}

func TestCheckoutHandler_CreateSession_Failure(t *testing.T) {
	authService := &mockAuthService{user: &domain.SupabaseUser{ID: "user-1"}}
	checkoutService := &mockCheckoutService{err: apperrors.NewNetworkError("checkout request failed", nil)}
	handler := NewCheckoutHandler(authService, checkoutService, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	req.Header.Set("Authorization", "Bearer access-token")
	rr := httptest.NewRecorder()

	handler.CreateSession(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Checkout unavailable") {
		t.Fatalf("expected generic checkout notice, got %s", rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "url") {
		t.Fatalf("expected no url in failure response, got %s", rr.Body.String())
	}
}

func TestCheckoutHandler_CreateSession_Busy(t *testing.T) {
	authService := &mockAuthService{user: &domain.SupabaseUser{ID: "user-1"}}
	checkoutService := &mockCheckoutService{err: domain.ErrActionInProgress}
	handler := NewCheckoutHandler(authService, checkoutService, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	req.Header.Set("Authorization", "Bearer access-token")
	rr := httptest.NewRecorder()

	handler.CreateSession(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rr.Code)
	}
}
