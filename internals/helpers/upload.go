package helper

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

const MaxUploadSize = int64(10 * 1024 * 1024)

// Folder upload per jenis lampiran (relatif ke MEDIA_ROOT).
const (
	FolderTeam         = "team"
	FolderCourses      = "courses"
	FolderNews         = "news"
	FolderGallery      = "gallery"
	FolderDonations    = "donations"
	FolderTestimonials = "testimonials"
	FolderAlumniPhotos = "alumni/photos"
	FolderAlumniEvents = "alumni/events"
)

var (
	ErrFileTooLarge = errors.New("file is larger than 10 MB")
	ErrNotAnImage   = errors.New("upload a valid image")
)

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// path tersimpan di kolom varchar(255): folder + tanggal + uuid + nama
const maxStoredName = 100

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	name := reUnsafeFilename.ReplaceAllString(filepath.Base(filename), "_")
	if len(name) <= maxStoredName {
		return name
	}
	ext := filepath.Ext(name)
	if len(ext) > 10 {
		ext = ""
	}
	return name[:maxStoredName-len(ext)] + ext
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// MediaStore menyimpan upload di disk lokal di bawah Root; record hanya
// menyimpan path relatif yang disajikan lewat URLPrefix.
type MediaStore struct {
	Root      string
	URLPrefix string
}

func NewMediaStore(root string) *MediaStore {
	return &MediaStore{Root: root, URLPrefix: "/media/"}
}

// URL path publik untuk path relatif (kosong → "").
func (m *MediaStore) URL(rel string) string {
	if strings.TrimSpace(rel) == "" {
		return ""
	}
	return strings.TrimRight(m.URLPrefix, "/") + "/" + strings.TrimLeft(path.Clean("/"+rel), "/")
}

// SaveImage seperti SaveFile tetapi menolak file yang bukan gambar.
func (m *MediaStore) SaveImage(fh *multipart.FileHeader, folder string) (string, error) {
	return m.save(fh, folder, true)
}

// SaveFile menyalin upload ke Root/folder dan mengembalikan path relatifnya.
func (m *MediaStore) SaveFile(fh *multipart.FileHeader, folder string) (string, error) {
	return m.save(fh, folder, false)
}

func (m *MediaStore) save(fh *multipart.FileHeader, folder string, imageOnly bool) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}
	src, err := fh.Open()
	if err != nil {
		return "", pkgerrors.Wrap(err, "open upload")
	}
	defer src.Close()

	if imageOnly {
		head := make([]byte, 512)
		n, _ := io.ReadFull(src, head)
		if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
			return "", ErrNotAnImage
		}
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return "", pkgerrors.Wrap(err, "rewind upload")
		}
	}

	rel := GenerateUniqueFilename(folder, fh.Filename)
	full := filepath.Join(m.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", pkgerrors.Wrap(err, "create media folder")
	}
	dst, err := os.Create(full)
	if err != nil {
		return "", pkgerrors.Wrap(err, "create media file")
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(full)
		return "", pkgerrors.Wrap(err, "write media file")
	}
	if err := dst.Close(); err != nil {
		return "", pkgerrors.Wrap(err, "close media file")
	}
	return rel, nil
}

// OptionalFile mengambil file dari form; tidak ada file → nil.
func OptionalFile(c *fiber.Ctx, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Filename == "" {
		return nil
	}
	return fh
}

// MultipleFiles mengambil semua file dengan nama field yang sama.
func MultipleFiles(c *fiber.Ctx, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// IsUploadError: error validasi upload (ditampilkan inline di form).
func IsUploadError(err error) bool {
	return errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrNotAnImage)
}

// ReplaceImage menyimpan file baru dari field bila ada; tanpa file baru
// path lama dipertahankan.
func (m *MediaStore) ReplaceImage(c *fiber.Ctx, field, folder, current string) (string, error) {
	fh := OptionalFile(c, field)
	if fh == nil {
		return current, nil
	}
	return m.SaveImage(fh, folder)
}
