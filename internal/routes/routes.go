// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"charity/internal/config"
	"charity/internal/handlers"
	"charity/internal/middleware"
	"charity/internal/repositories"
	"charity/internal/repositories/cache"
	"charity/internal/services/auth"
	"charity/internal/services/dashboard"
	"charity/internal/services/donation"
	"charity/internal/services/notification"
	"charity/internal/services/outreach"
	"charity/internal/services/payment"
	"charity/internal/services/project"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers and registers every
// route. gateway is nil when payment credentials are missing; cacheSvc may
// be nil when redis is not available.
func SetupRoutes(app *fiber.App, cfg config.Config, db *gorm.DB, cacheSvc *cache.CacheService, gateway payment.Gateway) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, cacheSvc)
	donationRepo := repositories.NewDonationRepository(db)
	projectRepo := repositories.NewProjectRepository(db)

	// Services
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	donationService := donation.NewService(donationRepo, projectRepo, gateway, cacheSvc, notification.NewService(), cfg.Currency)
	projectService := project.NewService(projectRepo, cacheSvc)
	dashboardService := dashboard.NewService(repositories.NewDashboardRepository(db), cacheSvc)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	donationHandler := handlers.NewDonationHandler(donationService)
	projectHandler := handlers.NewProjectHandler(projectService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(db, cacheSvc, gateway != nil)
	outreachHandler := handlers.NewOutreachHandler(
		outreach.NewEventService(repositories.NewEventRepository(db)),
		outreach.NewVolunteerService(repositories.NewVolunteerRepository(db)),
		outreach.NewContactService(repositories.NewContactRepository(db)),
		outreach.NewNewsletterService(repositories.NewSubscriberRepository(db)),
	)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret, authService)
	authenticated := authMiddleware.Handler
	admin := []fiber.Handler{authMiddleware.Handler, middleware.AdminOnly}

	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Auth routes
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Get("/me", authenticated, authHandler.Me)
	authRoutes.Post("/logout", authenticated, authHandler.Logout)

	// Donation routes; fixed paths must precede /:id
	donations := api.Group("/donations")
	donations.Post("/", donationHandler.CreateDonation)
	donations.Post("/verify-payment", donationHandler.VerifyPayment)
	donations.Get("/", donationHandler.ListDonations)
	donations.Get("/admin", append(admin, donationHandler.ListAllDonations)...)
	donations.Get("/my-donations", authenticated, donationHandler.MyDonations)
	donations.Get("/:id/receipt", authenticated, donationHandler.Receipt)
	donations.Get("/:id/tax-certificate", authenticated, donationHandler.TaxCertificate)
	donations.Get("/:id", donationHandler.GetDonation)
	donations.Put("/:id", append(admin, donationHandler.UpdateDonation)...)

	// Project routes
	projects := api.Group("/projects")
	projects.Get("/", projectHandler.ListProjects)
	projects.Get("/:id", projectHandler.GetProject)
	projects.Post("/", append(admin, projectHandler.CreateProject)...)
	projects.Put("/:id", append(admin, projectHandler.UpdateProject)...)
	projects.Delete("/:id", append(admin, projectHandler.DeleteProject)...)

	// Event routes
	events := api.Group("/events")
	events.Get("/", outreachHandler.ListEvents)
	events.Get("/:id", outreachHandler.GetEvent)
	events.Post("/", append(admin, outreachHandler.CreateEvent)...)
	events.Put("/:id", append(admin, outreachHandler.UpdateEvent)...)
	events.Delete("/:id", append(admin, outreachHandler.DeleteEvent)...)

	// Volunteer routes
	volunteers := api.Group("/volunteers")
	volunteers.Post("/", outreachHandler.ApplyVolunteer)
	volunteers.Get("/", append(admin, outreachHandler.ListVolunteers)...)
	volunteers.Put("/:id/status", append(admin, outreachHandler.UpdateVolunteerStatus)...)

	// Contact routes
	contacts := api.Group("/contacts")
	contacts.Post("/", outreachHandler.SubmitContact)
	contacts.Get("/", append(admin, outreachHandler.ListContacts)...)
	contacts.Put("/:id/status", append(admin, outreachHandler.UpdateContactStatus)...)

	// Newsletter routes
	newsletter := api.Group("/newsletter")
	newsletter.Post("/subscribe", outreachHandler.Subscribe)
	newsletter.Post("/unsubscribe/:token", outreachHandler.Unsubscribe)
	newsletter.Get("/subscribers", append(admin, outreachHandler.ListSubscribers)...)

	// Admin routes
	adminRoutes := api.Group("/admin", admin...)
	adminRoutes.Get("/dashboard", dashboardHandler.Stats)
	adminRoutes.Get("/cache-stats", healthHandler.CacheStats)
}
