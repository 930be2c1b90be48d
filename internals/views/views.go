// Package views memegang template HTML (embedded) dan fungsi template.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/template/html/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/datatypes"

	helper "darulfatheh_backend/internals/helpers"
)

//go:embed templates
var templatesFS embed.FS

const (
	displayDate = "Jan 02, 2006"
	inputDate   = helper.DateLayout
)

// NewEngine membuat engine html dari template embedded. Funcs harus
// terdaftar sebelum Load (dipanggil fiber saat New).
func NewEngine(media *helper.MediaStore, debug bool) *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.Debug(debug)
	for name, fn := range Funcs(media) {
		engine.AddFunc(name, fn)
	}
	return engine
}

// Funcs fungsi yang tersedia di semua template.
func Funcs(media *helper.MediaStore) template.FuncMap {
	return template.FuncMap{
		"media": func(rel string) string {
			if media == nil {
				return ""
			}
			return media.URL(rel)
		},
		"date":      func(v any) string { return formatDate(v, displayDate) },
		"dateInput": func(v any) string { return formatDate(v, inputDate) },
		"truncate":  truncate,
		"linebreaks": func(s string) template.HTML {
			escaped := template.HTMLEscapeString(strings.TrimSpace(s))
			escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
			return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
		},
		"money": func(v *float64) string {
			if v == nil {
				return "-"
			}
			return formatMoney(*v)
		},
		// nilai mentah untuk <input type="number">
		"decimal": func(v *float64) string {
			if v == nil {
				return ""
			}
			return strconv.FormatFloat(*v, 'f', 2, 64)
		},
		"stars": func(n int) []int {
			if n < 0 {
				n = 0
			}
			return make([]int, n)
		},
		"add":  func(a, b int) int { return a + b },
		"year": func() int { return time.Now().Year() },
	}
}

func formatDate(v any, layout string) string {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		if x == nil {
			return ""
		}
		t = *x
	case datatypes.Date:
		t = time.Time(x)
	case *datatypes.Date:
		if x == nil {
			return ""
		}
		t = time.Time(*x)
	default:
		return ""
	}
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "…"
}

var moneyPrinter = message.NewPrinter(language.English)

// formatMoney: 2 desimal dengan pemisah ribuan ("1,250.00").
func formatMoney(v float64) string {
	return moneyPrinter.Sprintf("%.2f", v)
}
