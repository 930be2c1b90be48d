package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	helper "darulfatheh_backend/internals/helpers"
	middlewares "darulfatheh_backend/internals/middlewares"
	authMiddleware "darulfatheh_backend/internals/middlewares/auth"
	routeDetails "darulfatheh_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes memasang semua route. Urutan penting: auth → admin → publik,
// supaya middleware navbar tidak ikut jalan di /dashboard.
func SetupRoutes(app *fiber.App, deps *helper.Deps) {
	startTime = time.Now()

	BaseRoutes(app, deps)

	// ===================== AUTH =====================
	log.Info("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, deps)

	// ===================== ADMIN (session cookie) =====================
	log.Info("[INFO] Setting up ADMIN group (/dashboard)...")
	admin := app.Group("/dashboard", authMiddleware.RequireAdmin(deps.DB, deps.Secret))

	routeDetails.HomeAdminRoutes(admin, deps)
	routeDetails.ProfileAdminRoutes(admin, deps)
	routeDetails.AcademicAdminRoutes(admin, deps)
	routeDetails.PublicationAdminRoutes(admin, deps)
	routeDetails.FinanceAdminRoutes(admin, deps)
	routeDetails.InboxAdminRoutes(admin, deps)

	// ===================== PUBLIC (navbar courses) =====================
	log.Info("[INFO] Setting up PUBLIC group...")
	public := app.Group("/", middlewares.NavbarMiddleware(deps.DB))

	routeDetails.HomePublicRoutes(public, deps)
	routeDetails.ProfilePublicRoutes(public, deps)
	routeDetails.AcademicPublicRoutes(public, deps)
	routeDetails.PublicationPublicRoutes(public, deps)
	routeDetails.FinancePublicRoutes(public, deps)
	routeDetails.InboxPublicRoutes(public, deps)

	// 🚫 semua path lain → 404 (dirender ErrorHandler)
	public.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
