package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/pawpal-app/pawpal-backend/internal/config"
	"github.com/pawpal-app/pawpal-backend/internal/handlers"
	"github.com/pawpal-app/pawpal-backend/internal/middleware"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	Health        *handlers.HealthHandler
	Booking       *handlers.BookingHandler
	Review        *handlers.ReviewHandler
	Certification *handlers.CertificationHandler
	Favorite      *handlers.FavoriteHandler
	Sitter        *handlers.SitterHandler
	Profile       *handlers.ProfileHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", h.Health.Check)

	// Public sitter directory and certification status
	api.Get("/sitters", h.Sitter.Search)
	api.Get("/sitters/:id", h.Sitter.Get)
	api.Get("/certifications/status/:sitterId", h.Certification.Status)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	// Protected routes (JWT required) - apply middleware to individual
	// routes so public routes are unaffected
	jwt := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", jwt, h.Auth.Logout)

	api.Get("/profile", jwt, h.Profile.Get)
	api.Put("/profile", jwt, h.Profile.Update)
	api.Post("/profile/images", jwt, h.Profile.UploadImage)
	api.Delete("/profile/images/:id", jwt, h.Profile.DeleteImage)

	api.Post("/bookings", jwt, h.Booking.Create)
	api.Post("/bookings/respond", jwt, h.Booking.Respond)
	api.Post("/bookings/complete", jwt, h.Booking.Complete)
	api.Get("/bookings/my", jwt, h.Booking.My)

	api.Post("/reviews", jwt, h.Review.Create)

	api.Post("/certifications/submit", jwt, h.Certification.Submit)

	api.Post("/favorites", jwt, h.Favorite.Add)
	api.Delete("/favorites/:sitterId", jwt, h.Favorite.Remove)
	api.Get("/favorites", jwt, h.Favorite.List)

	// Admin certification panel (JWT + admin required)
	admin := api.Group("/admin", jwt, middleware.AdminRequired(db, cfg))
	admin.Get("/certifications/pending", h.Certification.PendingQueue)
	admin.Post("/certifications/:id/approve", h.Certification.Approve)
	admin.Post("/certifications/:id/reject", h.Certification.Reject)

	// Uploaded images are served directly from disk
	app.Static("/uploads", cfg.UploadDir)
}
