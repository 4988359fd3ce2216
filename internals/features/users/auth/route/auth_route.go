package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "supervisiku_backend/internals/features/users/auth/controller"
	"supervisiku_backend/internals/middlewares"
	authMiddleware "supervisiku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")

	// Publik (dibatasi rate limiter khusus)
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)

	// Butuh token valid
	protected := auth.Group("/", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/change-password", ctrl.ChangePassword)
}
