package helper

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

type Flash struct {
	Level   string // success | error | info
	Message string
}

// SetFlash menyimpan pesan satu kali tampil untuk request berikutnya.
func SetFlash(c *fiber.Ctx, level, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func FlashSuccess(c *fiber.Ctx, message string) { SetFlash(c, "success", message) }
func FlashError(c *fiber.Ctx, message string)   { SetFlash(c, "error", message) }

// PopFlash membaca lalu menghapus cookie flash.
func PopFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{Name: flashCookie, Value: "", Path: "/", HTTPOnly: true, Expires: time.Unix(0, 0)})
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	level, msg, ok := strings.Cut(decoded, "|")
	if !ok || msg == "" {
		return nil
	}
	return &Flash{Level: level, Message: msg}
}
