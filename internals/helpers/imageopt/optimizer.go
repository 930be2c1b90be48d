package imageopt

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

/* =======================================================================
   Options (ENV-driven via configs.ImageConfig)
======================================================================= */

type Options struct {
	MaxWidth  int // resize keep-aspect when wider
	MaxHeight int // resize keep-aspect when taller
	Quality   int // jpeg/webp quality, 1..100
}

func DefaultOptions() Options {
	return Options{MaxWidth: 1600, MaxHeight: 1600, Quality: 82}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.MaxWidth <= 0 {
		o.MaxWidth = d.MaxWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = d.MaxHeight
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = d.Quality
	}
	return o
}

// Optimize fits the image stored at path inside the configured bounds and
// rewrites it in place, keeping its format. Images already inside the bounds
// are left untouched, so running it twice on the same file is a no-op.
func Optimize(path string, opt Options) (bool, error) {
	opt = opt.normalized()
	ext := strings.ToLower(filepath.Ext(path))

	img, format, err := decode(path, ext)
	if err != nil {
		return false, err
	}

	b := img.Bounds()
	if b.Dx() <= opt.MaxWidth && b.Dy() <= opt.MaxHeight {
		return false, nil
	}

	dst := imaging.Fit(img, opt.MaxWidth, opt.MaxHeight, imaging.Lanczos)
	if err := writeInPlace(path, ext, dst, format, opt); err != nil {
		return false, err
	}
	return true, nil
}

/* =======================================================================
   Decode (jpeg/png/gif/tiff/bmp via imaging, webp via chai2010)
======================================================================= */

func decode(path, ext string) (image.Image, imaging.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "open image")
	}
	defer f.Close()

	if ext == ".webp" {
		img, err := webp.Decode(f)
		if err != nil {
			return nil, 0, errors.Wrap(err, "decode webp")
		}
		return img, 0, nil
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "unsupported image %q", filepath.Base(path))
	}
	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, errors.Wrap(err, "decode image")
	}
	return img, format, nil
}

func writeInPlace(path, ext string, img image.Image, format imaging.Format, opt Options) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".optimize-*"+ext)
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if ext == ".webp" {
		err = webp.Encode(tmp, img, &webp.Options{Quality: float32(opt.Quality)})
	} else {
		err = imaging.Encode(tmp, img, format, imaging.JPEGQuality(opt.Quality))
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrap(err, "encode image")
	}
	return errors.Wrap(os.Rename(tmpName, path), "replace image")
}
