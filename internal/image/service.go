// Package image uploads menu item images to object storage and resolves
// browser-facing URLs for them.
package image

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/lezzetduragi/menu-service/internal/config"
	"github.com/lezzetduragi/menu-service/internal/storage"
)

// KeyPrefix is the object-key namespace for item images.
const KeyPrefix = "images/"

// SignedURLTTL is how long presigned image URLs stay valid. Signed URLs must
// be resolved on demand, never persisted: anything cached longer than this
// goes stale.
const SignedURLTTL = 7 * 24 * time.Hour

var whitespace = regexp.MustCompile(`\s+`)

// Service stores item images and produces fetchable URLs for them. The URL
// mode (signed vs public) is fixed at construction and never mixed per call.
type Service struct {
	store storage.ObjectStore
	mode  config.ImageURLMode
}

// NewService creates an image Service using the given store and URL mode.
func NewService(store storage.ObjectStore, mode config.ImageURLMode) *Service {
	return &Service{store: store, mode: mode}
}

// Uploaded describes a stored image: the filename to persist in the menu
// document and the resolved URL for immediate display. Documents keep the
// filename, not the URL — in signed mode URLs expire and must be resolved
// on demand.
type Uploaded struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Upload stores the payload under a derived key. The filename is
// "<epochMillis>-<display name, whitespace collapsed to hyphens>.<ext>"
// where ext comes from the original upload filename. The millisecond
// timestamp is the only collision guard; two uploads for the same name
// within one millisecond overwrite each other.
func (s *Service) Upload(ctx context.Context, r io.Reader, size int64, contentType, originalName, displayName string) (*Uploaded, error) {
	ext := strings.TrimPrefix(path.Ext(originalName), ".")
	name := whitespace.ReplaceAllString(strings.TrimSpace(displayName), "-")
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
	if ext != "" {
		filename += "." + ext
	}

	if err := s.store.Put(ctx, KeyPrefix+filename, r, size, contentType); err != nil {
		return nil, fmt.Errorf("upload image %q: %w", filename, err)
	}

	url, err := s.URLFor(ctx, filename)
	if err != nil {
		return nil, err
	}
	return &Uploaded{Filename: filename, URL: url}, nil
}

// URLFor resolves a stored image reference to a fetchable URL. References
// that are already fully-qualified URLs pass through unchanged, so documents
// holding either raw filenames or full URLs both work. Otherwise any query
// string is stripped and a URL is produced per the configured mode.
func (s *Service) URLFor(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty image name")
	}
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name, nil
	}

	clean, _, _ := strings.Cut(name, "?")
	key := KeyPrefix + clean

	if s.mode == config.ImageURLSigned {
		url, err := s.store.PresignedURL(ctx, key, SignedURLTTL)
		if err != nil {
			return "", fmt.Errorf("sign image url %q: %w", key, err)
		}
		return url, nil
	}
	return s.store.PublicURL(key), nil
}

// Delete removes the image object stored under name. Callers treat this as
// best-effort: a failed delete never aborts the operation that triggered it.
func (s *Service) Delete(ctx context.Context, name string) error {
	clean, _, _ := strings.Cut(name, "?")
	return s.store.Delete(ctx, KeyPrefix+clean)
}
