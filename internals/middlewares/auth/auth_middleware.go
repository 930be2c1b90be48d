package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authRepo "darulfatheh_backend/internals/features/users/auth/repository"
	authService "darulfatheh_backend/internals/features/users/auth/service"
)

// RequireAdmin menjaga seluruh group /dashboard: tanpa sesi valid → redirect
// ke halaman login.
func RequireAdmin(db *gorm.DB, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isPublicAuthPath(c.Path()) {
			return c.Next()
		}

		raw, err := extractSessionToken(c)
		if err != nil {
			return redirectToLogin(c)
		}

		claims, err := authService.ParseSessionToken(secret, raw)
		if err != nil {
			log.WithField("path", c.Path()).Debug("invalid admin session")
			clearSessionCookie(c)
			return redirectToLogin(c)
		}

		adminID, err := claims.AdminID()
		if err != nil {
			clearSessionCookie(c)
			return redirectToLogin(c)
		}

		admin, err := authRepo.FindActiveAdminByID(c.UserContext(), db, adminID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.WithError(err).Error("load admin for session")
			}
			clearSessionCookie(c)
			return redirectToLogin(c)
		}

		c.Locals(LocAdminID, admin.AdminID.String())
		c.Locals(LocCurrentAdmin, admin.AdminUsername)
		return c.Next()
	}
}
