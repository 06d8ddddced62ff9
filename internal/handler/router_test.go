package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/renanduart3/promptopia-creation-platform/internal/config"
	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
)

func newTestContainer() *config.Container {
	return &config.Container{
		Logger:            NewMockHandlerLogger(),
		AuthService:       &mockAuthService{user: &domain.SupabaseUser{ID: "user-1"}},
		ProfileService:    &mockProfileService{},
		GenerationService: &mockGenerationService{},
		CheckoutService:   &mockCheckoutService{session: &domain.CheckoutSession{URL: "https://pay.example/x"}},
	}
}

func TestNewRouter_Health(t *testing.T) {
	router := NewRouter(newTestContainer())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_LandingPage(t *testing.T) {
	router := NewRouter(newTestContainer())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Promptopia") {
		t.Fatalf("expected landing page body, got %s", rr.Body.String())
	}
	if !strings.Contains(rr.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("expected html content type, got %s", rr.Header().Get("Content-Type"))
	}
}

func TestNewRouter_ProfileRequiresAuth(t *testing.T) {
	router := NewRouter(newTestContainer())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestNewRouter_GenerateRequiresAuth(t *testing.T) {
	router := NewRouter(newTestContainer())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{"text":"x"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestNewRouter_CheckoutWithoutSessionGetsNotice(t *testing.T) {
	router := NewRouter(newTestContainer())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Sign in required") {
		t.Fatalf("expected sign-in notice, got %s", rr.Body.String())
	}
}

func TestNewRouter_AuthedFlow(t *testing.T) {
	router := NewRouter(newTestContainer())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"profile":null`) {
		t.Fatalf("expected null profile for user without a row, got %s", rr.Body.String())
	}
}
