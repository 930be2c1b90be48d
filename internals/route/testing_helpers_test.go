package routes

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/databases/dbtest"
	authRepo "darulfatheh_backend/internals/features/users/auth/repository"
	authService "darulfatheh_backend/internals/features/users/auth/service"
	helper "darulfatheh_backend/internals/helpers"
	"darulfatheh_backend/internals/helpers/imageopt"
	"darulfatheh_backend/internals/helpers/mailer"
	middlewares "darulfatheh_backend/internals/middlewares"
	"darulfatheh_backend/internals/views"
)

const testSecret = "test-secret"

type fakeNotifier struct {
	mu     sync.Mutex
	accept bool
	calls  []mailer.Message
}

func (n *fakeNotifier) Enqueue(msg mailer.Message) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, msg)
	return n.accept
}

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	deps     *helper.Deps
	notifier *fakeNotifier
	session  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := dbtest.Open(t)
	mediaRoot := t.TempDir()
	logger, _ := test.NewNullLogger()

	media := helper.NewMediaStore(mediaRoot)
	notifier := &fakeNotifier{accept: true}
	deps := &helper.Deps{
		DB:       db,
		Media:    media,
		Images:   imageopt.NewProcessor(mediaRoot, imageopt.DefaultOptions(), logger),
		Notifier: notifier,
		MailFrom: "webmaster@example.com",
		NotifyTo: "office@example.com",
		Secret:   testSecret,
	}

	app := fiber.New(fiber.Config{
		Views:             views.NewEngine(media, false),
		ViewsLayout:       helper.LayoutPublic,
		PassLocalsToViews: true,
		ErrorHandler:      middlewares.ErrorHandler,
	})
	app.Use(middlewares.RequestContext())
	app.Use(middlewares.FlashMiddleware())
	SetupRoutes(app, deps)

	return &testEnv{app: app, db: db, deps: deps, notifier: notifier}
}

// login membuat admin lalu menyimpan cookie sesi untuk request berikutnya.
func (e *testEnv) login(t *testing.T) {
	t.Helper()
	hash, err := authService.HashPassword("s3cret-pass")
	require.NoError(t, err)
	admin, _, err := authRepo.UpsertAdmin(context.Background(), e.db, "admin", hash)
	require.NoError(t, err)
	tok, _, err := authService.IssueSessionToken(testSecret, admin, time.Now())
	require.NoError(t, err)
	e.session = tok
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	if e.session != "" {
		req.AddCookie(&http.Cookie{Name: authService.SessionCookie, Value: e.session})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) get(t *testing.T, target string) *http.Response {
	t.Helper()
	return e.do(t, httptest.NewRequest(http.MethodGet, target, nil))
}

func (e *testEnv) postForm(t *testing.T, target string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return e.do(t, req)
}

type upload struct {
	field, filename string
	content         []byte
}

func (e *testEnv) postMultipart(t *testing.T, target string, form url.Values, files ...upload) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vals := range form {
		for _, v := range vals {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return e.do(t, req)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	img.Set(1, 1, color.RGBA{200, 10, 10, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
