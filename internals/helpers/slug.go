package helper

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const (
	DefaultSlugMaxLen = 200
	SlugRetryAttempts = 3
)

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify mengubah teks bebas jadi slug [a-z0-9-]: NFKD, buang non-ASCII,
// lower-case, run non-alnum jadi "-", trim ujung. Bisa menghasilkan "".
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(s) {
		if r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	out := reNonAlnum.ReplaceAllString(b.String(), "-")
	out = strings.Trim(out, "-")
	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}

// SlugOptions menentukan tabel/kolom untuk cek keunikan slug.
type SlugOptions struct {
	Table      string // contoh: "courses"
	SlugColumn string // contoh: "course_slug"
	IDColumn   string // dipakai untuk exclude record sendiri saat edit
}

// isTaken mengecek apakah candidate sudah dipakai record lain.
func isTaken(ctx context.Context, db *gorm.DB, opts SlugOptions, candidate string, excludeID *uuid.UUID) (bool, error) {
	q := db.WithContext(ctx).Table(opts.Table).
		Where(fmt.Sprintf("%s = ?", opts.SlugColumn), candidate)
	if excludeID != nil && opts.IDColumn != "" {
		q = q.Where(fmt.Sprintf("%s <> ?", opts.IDColumn), *excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerateUniqueSlug membuat slug unik dari title:
// 1) coba base dulu (kecuali base kosong),
// 2) jika bentrok, coba base-1, base-2, ... sampai ketemu.
func GenerateUniqueSlug(ctx context.Context, db *gorm.DB, opts SlugOptions, title string, excludeID *uuid.UUID) (string, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return "", errors.New("slug options: table/slug column required")
	}
	base := Slugify(title)

	if base != "" {
		taken, err := isTaken(ctx, db, opts, base, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return base, nil
		}
	}

	for i := 1; i < 10000; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := isTaken(ctx, db, opts, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("failed to generate unique slug after many attempts")
}

// RetryOnDuplicate menjalankan fn ulang bila gagal karena unique constraint
// (butuh gorm.Config.TranslateError). fn harus menghitung slug ulang sendiri.
func RetryOnDuplicate(attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}
