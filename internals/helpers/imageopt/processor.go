package imageopt

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// ImageAttribute is one stored image of an entity. Path is relative to the
// media root, as persisted on the record.
type ImageAttribute struct {
	Name string
	Path string
}

// ImageBearer is implemented by entities whose stored images get optimized
// after every write.
type ImageBearer interface {
	ImageAttributes() []ImageAttribute
}

type Processor struct {
	MediaRoot string
	Options   Options
	Log       logrus.FieldLogger
}

func NewProcessor(mediaRoot string, opt Options, log logrus.FieldLogger) *Processor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Processor{MediaRoot: mediaRoot, Options: opt, Log: log}
}

// OnPersisted optimizes every stored image of entity when it is an
// ImageBearer. Failures are logged and never returned: the record is
// already saved and the original file stays on disk.
func (p *Processor) OnPersisted(entity any) {
	bearer, ok := entity.(ImageBearer)
	if !ok {
		return
	}
	for _, attr := range bearer.ImageAttributes() {
		rel := strings.TrimSpace(attr.Path)
		if rel == "" {
			continue
		}
		entry := p.Log.WithFields(logrus.Fields{"attribute": attr.Name, "path": rel})

		full, ok := p.resolve(rel)
		if !ok {
			entry.Warn("image path escapes media root, skipped")
			continue
		}
		changed, err := Optimize(full, p.Options)
		if err != nil {
			entry.WithError(err).Warn("image optimization failed")
			continue
		}
		if changed {
			entry.Debug("image optimized")
		}
	}
}

func (p *Processor) resolve(rel string) (string, bool) {
	root := filepath.Clean(p.MediaRoot)
	full := filepath.Join(root, filepath.FromSlash(rel))
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}
