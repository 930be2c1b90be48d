package imageopt

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y += 10 {
			img.Set(x, y, color.RGBA{uint8(x % 255), uint8(y % 255), 120, 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	switch filepath.Ext(path) {
	case ".png":
		require.NoError(t, png.Encode(f, img))
	default:
		require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 90}))
	}
}

func dims(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestOptimize_ResizesOversizedImage(t *testing.T) {
	for _, name := range []string{"big.png", "big.jpg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			writeImage(t, path, 3000, 2000)

			changed, err := Optimize(path, DefaultOptions())
			require.NoError(t, err)
			assert.True(t, changed)

			w, h := dims(t, path)
			assert.Equal(t, 1600, w)
			assert.Equal(t, 1067, h)
		})
	}
}

func TestOptimize_SecondPassIsByteStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	writeImage(t, path, 2400, 1800)

	_, err := Optimize(path, DefaultOptions())
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	changed, err := Optimize(path, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, changed)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second))
}

func TestOptimize_SmallImageUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	writeImage(t, path, 400, 300)
	before, _ := os.ReadFile(path)

	changed, err := Optimize(path, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, changed)

	after, _ := os.ReadFile(path)
	assert.Equal(t, before, after)
}

func TestOptimize_UnsupportedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	_, err := Optimize(path, DefaultOptions())
	assert.Error(t, err)
}

type bearer struct{ path string }

func (b *bearer) ImageAttributes() []ImageAttribute {
	return []ImageAttribute{{Name: "image", Path: b.path}}
}

func TestProcessor_OnPersisted(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "gallery"), 0o755))
	writeImage(t, filepath.Join(root, "gallery", "a.png"), 2000, 2000)

	logger, hook := test.NewNullLogger()
	p := NewProcessor(root, DefaultOptions(), logger)

	p.OnPersisted(&bearer{path: "gallery/a.png"})
	w, h := dims(t, filepath.Join(root, "gallery", "a.png"))
	assert.Equal(t, 1600, w)
	assert.Equal(t, 1600, h)
	assert.Empty(t, hook.AllEntries())

	// non-bearers are ignored
	p.OnPersisted(struct{ Name string }{"x"})
	assert.Empty(t, hook.AllEntries())
}

func TestProcessor_FailuresOnlyLogged(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.jpg"), []byte("not an image"), 0o644))

	logger, hook := test.NewNullLogger()
	p := NewProcessor(root, DefaultOptions(), logger)

	assert.NotPanics(t, func() {
		p.OnPersisted(&bearer{path: "broken.jpg"})
		p.OnPersisted(&bearer{path: "missing.jpg"})
		p.OnPersisted(&bearer{path: "../outside.jpg"})
		p.OnPersisted(&bearer{path: ""})
	})
	require.Len(t, hook.AllEntries(), 3)
	for _, e := range hook.AllEntries() {
		assert.Equal(t, logrus.WarnLevel, e.Level)
	}
}
