package config

import (
	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
	"github.com/renanduart3/promptopia-creation-platform/internal/repository"
	"github.com/renanduart3/promptopia-creation-platform/internal/service"
	"github.com/renanduart3/promptopia-creation-platform/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	SupabaseClient    domain.SupabaseClient
	ProfileRepository domain.ProfileRepository
	ActionGuard       *service.ActionGuard
	AuthService       domain.AuthService
	ProfileService    domain.ProfileService
	GenerationService domain.GenerationService
	CheckoutService   domain.CheckoutService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize Supabase client
	supabaseClient := repository.NewSupabaseClient(config, appLogger)
	if err := supabaseClient.Initialize(); err != nil {
		appLogger.Warn("Supabase client not initialized", "error", err)
	}

	// Initialize repositories
	profileRepo := repository.NewSupabaseProfileRepository(supabaseClient, appLogger)

	// One guard shared by generate and checkout so a user cannot run both at once
	actionGuard := service.NewActionGuard()

	// Initialize services
	authService := service.NewAuthService(supabaseClient, config, appLogger)
	profileService := service.NewProfileService(profileRepo, appLogger)
	generationService := service.NewGenerationService(profileService, actionGuard, config, appLogger)
	checkoutService := service.NewCheckoutService(config, appLogger, actionGuard)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		SupabaseClient:    supabaseClient,
		ProfileRepository: profileRepo,
		ActionGuard:       actionGuard,
		AuthService:       authService,
		ProfileService:    profileService,
		GenerationService: generationService,
		CheckoutService:   checkoutService,
	}
}
