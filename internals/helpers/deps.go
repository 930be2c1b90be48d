package helper

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/helpers/imageopt"
	"darulfatheh_backend/internals/helpers/mailer"
)

// Notifier antrean notifikasi async (lihat mailer.Dispatcher).
type Notifier interface {
	Enqueue(msg mailer.Message) bool
}

// Deps kolaborator bersama yang dibagikan ke semua route + controller.
type Deps struct {
	DB       *gorm.DB
	Media    *MediaStore
	Images   *imageopt.Processor
	Notifier Notifier
	MailFrom string
	NotifyTo string

	Secret         string
	SecureCookies  bool
	LimiterStorage fiber.Storage // nil → memory
}
