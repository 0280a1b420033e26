package render

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ErrAssetNotFound is returned when an asset name is empty or no file exists for it.
var ErrAssetNotFound = errors.New("asset not found")

// AssetLoader supplies static images (logo, signature, profile photos) by name.
type AssetLoader interface {
	Load(name string) (image.Image, error)
}

// DirAssets loads images from files under a root directory.
// Names never resolve outside the root.
type DirAssets struct {
	root        string
	stripPrefix string
	cache       bool

	mu     sync.RWMutex
	images map[string]image.Image
}

// DirOption configures a DirAssets.
type DirOption func(*DirAssets)

// WithCache keeps decoded images in memory. Use it for a small fixed set such as
// the logo and signature, not for user uploads.
func WithCache() DirOption {
	return func(d *DirAssets) { d.cache = true }
}

// WithStripPrefix drops a leading path segment from names, so public paths like
// "/uploads/p.jpg" resolve against a root that already is the uploads directory.
func WithStripPrefix(prefix string) DirOption {
	return func(d *DirAssets) { d.stripPrefix = "/" + strings.Trim(prefix, "/") }
}

// NewDirAssets returns a loader rooted at dir.
func NewDirAssets(dir string, opts ...DirOption) *DirAssets {
	d := &DirAssets{root: dir, images: make(map[string]image.Image)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load decodes the named image, honoring EXIF orientation.
func (d *DirAssets) Load(name string) (image.Image, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrAssetNotFound
	}
	path := d.resolve(name)

	if d.cache {
		d.mu.RLock()
		img, ok := d.images[path]
		d.mu.RUnlock()
		if ok {
			return img, nil
		}
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
		}
		return nil, fmt.Errorf("decode asset %s: %w", name, err)
	}

	if d.cache {
		d.mu.Lock()
		d.images[path] = img
		d.mu.Unlock()
	}
	return img, nil
}

func (d *DirAssets) resolve(name string) string {
	// Cleaning a rooted path collapses every ".." at the root.
	clean := filepath.ToSlash(filepath.Clean("/" + filepath.FromSlash(name)))
	if d.stripPrefix != "/" && d.stripPrefix != "" {
		if clean == d.stripPrefix {
			clean = "/"
		} else if strings.HasPrefix(clean, d.stripPrefix+"/") {
			clean = strings.TrimPrefix(clean, d.stripPrefix)
		}
	}
	return filepath.Join(d.root, filepath.FromSlash(clean))
}
