package helper

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const DateLayout = "2006-01-02"

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// pakai nama field dari tag form supaya pesan error sesuai input HTML
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidationMessage mengubah error validator jadi satu pesan inline.
func ValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Please correct the errors below."
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ReplaceAll(e.Field(), "_", " ")
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", field))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", field))
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

// BindForm parse body form ke dst, trim semua field string, lalu validasi;
// pesan kosong berarti valid. Isi spasi saja dianggap kosong untuk "required".
func BindForm(c *fiber.Ctx, dst any) string {
	if err := c.BodyParser(dst); err != nil {
		return "Please correct the errors below."
	}
	TrimStrings(dst)
	if err := Validate.Struct(dst); err != nil {
		return ValidationMessage(err)
	}
	return ""
}

// TrimStrings membuang spasi di awal/akhir setiap field string (exported)
// pada pointer ke struct. Field bertag `trim:"-"` dibiarkan apa adanya.
func TrimStrings(dst any) {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if v.Type().Field(i).Tag.Get("trim") == "-" {
			continue
		}
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}

// TruncateRunes memotong s menjadi maksimal n rune.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Checkbox: field ada di form (nilai apa pun selain "false"/"off") → true.
func Checkbox(c *fiber.Ctx, field string) bool {
	v := strings.ToLower(strings.TrimSpace(c.FormValue(field)))
	return v != "" && v != "false" && v != "off" && v != "0"
}

// ParseDate: "" → nil; format wajib YYYY-MM-DD (sudah divalidasi tag datetime).
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
