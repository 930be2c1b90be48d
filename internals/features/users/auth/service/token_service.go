package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	authModel "darulfatheh_backend/internals/features/users/auth/model"
)

const (
	SessionCookie = "session_token"
	SessionTTL    = 24 * time.Hour
	sessionIssuer = "darulfatheh-dashboard"
)

var ErrInvalidSession = errors.New("invalid session token")

type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AdminID mengembalikan subject token sebagai UUID.
func (c *SessionClaims) AdminID() (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Subject))
}

// ========================== ISSUE ==========================
func IssueSessionToken(secret string, admin *authModel.AdminUserModel, now time.Time) (string, time.Time, error) {
	exp := now.Add(SessionTTL)
	claims := SessionClaims{
		Username: admin.AdminUsername,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.AdminID.String(),
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ========================== PARSE ==========================
func ParseSessionToken(secret, raw string) (*SessionClaims, error) {
	raw = strings.Trim(strings.TrimSpace(raw), "\"'")
	if raw == "" {
		return nil, ErrInvalidSession
	}
	claims := &SessionClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidSession
	}
	if claims.Issuer != sessionIssuer {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
