package helper

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titleForm struct {
	Title  string `form:"title" validate:"required,max=10"`
	Body   string `form:"body"`
	Secret string `form:"secret" trim:"-"`
	Count  int    `form:"count"`
}

func TestTrimStrings(t *testing.T) {
	f := titleForm{Title: "  Open Day \n", Body: "\tx ", Secret: " pass ", Count: 3}
	TrimStrings(&f)
	assert.Equal(t, "Open Day", f.Title)
	assert.Equal(t, "x", f.Body)
	assert.Equal(t, " pass ", f.Secret)
	assert.Equal(t, 3, f.Count)

	// bukan pointer ke struct → diabaikan
	TrimStrings(f)
	TrimStrings(nil)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "ab", TruncateRunes("abc", 2))
	assert.Equal(t, "صور", TruncateRunes("صورة.png", 3))
	assert.Equal(t, "", TruncateRunes("abc", 0))
	assert.Len(t, []rune(TruncateRunes(strings.Repeat("é", 200), 150)), 150)
}

func TestBindForm_BlankRequiredField(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var f titleForm
		if msg := BindForm(c, &f); msg != "" {
			return c.Status(fiber.StatusUnprocessableEntity).SendString(msg)
		}
		return c.SendString(f.Title)
	})

	post := func(title string) (int, string) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"title": {title}}.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		resp, err := app.Test(req)
		require.NoError(t, err)
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(b)
	}

	code, body := post("   ")
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "title is required", body)

	code, body = post("  Open Day  ")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Open Day", body)
}
