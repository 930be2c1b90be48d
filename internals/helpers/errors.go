package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// FromDBError mengubah error hasil query jadi error yang dipahami ErrorHandler:
// record tidak ada → 404, selain itu dibungkus dengan konteks → 500.
func FromDBError(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.ErrNotFound
	}
	return pkgerrors.Wrap(err, action)
}

// FindOr404 memuat satu record berdasarkan kolom; tidak ada → fiber.ErrNotFound.
func FindOr404[T any](c *fiber.Ctx, db *gorm.DB, column string, value any) (*T, error) {
	var out T
	if err := db.WithContext(c.UserContext()).Where(column+" = ?", value).First(&out).Error; err != nil {
		return nil, FromDBError(err, "load record")
	}
	return &out, nil
}
