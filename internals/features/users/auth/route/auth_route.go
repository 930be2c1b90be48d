package route

import (
	"github.com/gofiber/fiber/v2"

	controller "darulfatheh_backend/internals/features/users/auth/controller"
	helper "darulfatheh_backend/internals/helpers"
	rateLimiter "darulfatheh_backend/internals/middlewares"
)

// AuthRoutes: login/logout dashboard (tanpa RequireAdmin).
func AuthRoutes(app fiber.Router, deps *helper.Deps) {
	authController := controller.NewAuthController(deps.DB, deps.Secret, deps.SecureCookies)

	dashboard := app.Group("/dashboard")
	dashboard.Get("/login", authController.LoginPage)
	dashboard.Post("/login", rateLimiter.LoginRateLimiter(deps.LimiterStorage), authController.Login)
	dashboard.Get("/logout", authController.Logout)
	dashboard.Post("/logout", authController.Logout)
}
