package auth

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	authService "darulfatheh_backend/internals/features/users/auth/service"
)

const (
	LoginPath  = "/dashboard/login/"
	LogoutPath = "/dashboard/logout/"
)

// Locals keys yang diisi RequireAdmin.
const (
	LocAdminID      = "admin_id"
	LocCurrentAdmin = "CurrentAdmin"
)

/* ======== Extractors ======== */

func extractSessionToken(c *fiber.Ctx) (string, error) {
	tok := strings.Trim(strings.TrimSpace(c.Cookies(authService.SessionCookie)), "\"'")
	if tok == "" {
		return "", fmt.Errorf("no session cookie")
	}
	return tok, nil
}

/* ======== Cookie & redirect ======== */

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authService.SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
}

// redirectToLogin mengarahkan ke halaman login dan menyimpan tujuan di ?next=.
func redirectToLogin(c *fiber.Ctx) error {
	target := LoginPath
	if c.Method() == fiber.MethodGet && c.Path() != LoginPath {
		target += "?next=" + url.QueryEscape(c.OriginalURL())
	}
	return c.Redirect(target, fiber.StatusFound)
}

// login & logout harus bisa diakses tanpa sesi.
func isPublicAuthPath(p string) bool {
	p = strings.TrimRight(p, "/") + "/"
	return p == LoginPath || p == LogoutPath
}
