package middlewares

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// HostAllowed: "*" semua host, ".example.com" domain + subdomain, selain itu exact.
func HostAllowed(host string, allowed []string) bool {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.Trim(host, "[]"), ".")
	if host == "" {
		return false
	}
	for _, pattern := range allowed {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		switch {
		case pattern == "":
			continue
		case pattern == "*":
			return true
		case strings.HasPrefix(pattern, "."):
			if host == pattern[1:] || strings.HasSuffix(host, pattern) {
				return true
			}
		case host == pattern:
			return true
		}
	}
	return false
}

// AllowedHosts menolak Host header di luar ALLOWED_HOSTS dengan 400.
// Dilewati saat debug.
func AllowedHosts(allowed []string, debug bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if debug || HostAllowed(c.Hostname(), allowed) {
			return c.Next()
		}
		log.WithField("host", c.Hostname()).Warn("⛔ disallowed host")
		return fiber.NewError(fiber.StatusBadRequest, "Bad Request")
	}
}
