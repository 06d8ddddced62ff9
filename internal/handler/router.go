package handler

import (
	"net/http"

	"github.com/renanduart3/promptopia-creation-platform/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"promptopia-creation-platform"}`))
	}).Methods("GET")

	// Landing page (no auth required)
	pageHandler := NewPageHandler(container.Logger)
	router.HandleFunc("/", pageHandler.Landing).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Initialize handlers
	profileHandler := NewProfileHandler(container.ProfileService, container.Logger)
	generateHandler := NewGenerateHandler(container.GenerationService, container.Logger)
	checkoutHandler := NewCheckoutHandler(container.AuthService, container.CheckoutService, container.Logger)

	// Checkout validates its own token so visitors without a session get the
	// sign-in notice instead of a bare 401.
	api.HandleFunc("/checkout", checkoutHandler.CreateSession).Methods("POST")

	// Protected routes (require authentication)
	authMiddleware := NewAuthMiddleware(container.AuthService, container.Logger)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware.Middleware)

	protected.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/generate", generateHandler.Generate).Methods("POST")
	protected.HandleFunc("/generate/preview", generateHandler.Preview).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:4173", // Vite preview
			"http://localhost:3000", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
