package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/users/auth/dto"
	authRepo "darulfatheh_backend/internals/features/users/auth/repository"
	"darulfatheh_backend/internals/features/users/auth/service"
	helper "darulfatheh_backend/internals/helpers"
)

const (
	loginView       = "admin/login"
	dashboardPath   = "/dashboard/"
	loginPath       = "/dashboard/login/"
	msgInvalidLogin = "Invalid username or password"
	msgLoggedOut    = "You have been logged out."
)

type AuthController struct {
	DB     *gorm.DB
	Secret string
	Secure bool // cookie Secure (false saat DEBUG / http lokal)
}

func NewAuthController(db *gorm.DB, secret string, secure bool) *AuthController {
	return &AuthController{DB: db, Secret: secret, Secure: secure}
}

// ========================== LOGIN PAGE ==========================
func (ac *AuthController) LoginPage(c *fiber.Ctx) error {
	if ac.hasValidSession(c) {
		return c.Redirect(dashboardPath, fiber.StatusFound)
	}
	return c.Render(loginView, fiber.Map{
		"Title": "Admin Login",
		"Next":  c.Query("next"),
	}, helper.LayoutAuth)
}

// ========================== LOGIN ==========================
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	next := c.FormValue("next", c.Query("next"))

	if msg := helper.BindForm(c, &req); msg != "" {
		return ac.renderLoginError(c, req.Username, next, msg)
	}

	admin, err := authRepo.FindAdminByUsername(c.UserContext(), ac.DB, req.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDBError(err, "load admin user")
		}
		return ac.renderLoginError(c, req.Username, next, msgInvalidLogin)
	}
	if !admin.AdminIsActive || !service.CheckPasswordHash(admin.AdminPasswordHash, req.Password) {
		log.WithField("username", req.Username).Info("🔒 admin login rejected")
		return ac.renderLoginError(c, req.Username, next, msgInvalidLogin)
	}

	token, exp, err := service.IssueSessionToken(ac.Secret, admin, time.Now())
	if err != nil {
		return helper.FromDBError(err, "issue session token")
	}
	if err := authRepo.TouchLastLogin(c.UserContext(), ac.DB, admin.AdminID); err != nil {
		log.WithError(err).Warn("update last login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     service.SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   ac.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  exp,
	})
	log.WithField("username", admin.AdminUsername).Info("✅ admin logged in")
	return c.Redirect(SafeNext(next), fiber.StatusFound)
}

// ========================== LOGOUT ==========================
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     service.SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   ac.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	helper.SetFlash(c, "info", msgLoggedOut)
	return c.Redirect(loginPath, fiber.StatusFound)
}

func (ac *AuthController) renderLoginError(c *fiber.Ctx, username, next, msg string) error {
	return c.Status(fiber.StatusOK).Render(loginView, fiber.Map{
		"Title":    "Admin Login",
		"Error":    msg,
		"Username": username,
		"Next":     next,
	}, helper.LayoutAuth)
}

func (ac *AuthController) hasValidSession(c *fiber.Ctx) bool {
	raw := c.Cookies(service.SessionCookie)
	if raw == "" {
		return false
	}
	claims, err := service.ParseSessionToken(ac.Secret, raw)
	if err != nil {
		return false
	}
	id, err := claims.AdminID()
	if err != nil {
		return false
	}
	_, err = authRepo.FindActiveAdminByID(c.UserContext(), ac.DB, id)
	return err == nil
}

// SafeNext hanya menerima tujuan internal di bawah /dashboard/.
func SafeNext(next string) string {
	next = strings.TrimSpace(next)
	if strings.HasPrefix(next, dashboardPath) && !strings.HasPrefix(next, "//") &&
		!strings.HasPrefix(next, loginPath) && !strings.Contains(next, "\\") {
		return next
	}
	return dashboardPath
}
