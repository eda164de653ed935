package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/lezzetduragi/menu-service/internal/image"
)

// ErrMissingFields is returned when a submission lacks required fields.
var ErrMissingFields = errors.New("missing required fields")

// currencyPrefix is prepended to prices submitted without one.
const currencyPrefix = "₺"

// ImageUpload carries an image file from a multipart submission.
type ImageUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// ItemInput is an admin form submission for creating or updating an item.
type ItemInput struct {
	Category         string
	ID               string
	Name             string
	Price            string
	ShortDescription string
	LongDescription  string
	Translations     map[string]LocalizedFields
	Image            *ImageUpload
}

// Service translates admin submissions into repository and image-service
// calls and records an audit entry per mutation.
type Service struct {
	repo    *Repository
	images  *image.Service
	changes *ChangeLog
}

// NewService creates a menu Service.
func NewService(repo *Repository, images *image.Service, changes *ChangeLog) *Service {
	return &Service{repo: repo, images: images, changes: changes}
}

// Menu returns the full menu document.
func (s *Service) Menu(ctx context.Context) (Document, error) {
	return s.repo.Read(ctx)
}

// ImageURL resolves a stored image reference to a fetchable URL.
func (s *Service) ImageURL(ctx context.Context, name string) (string, error) {
	return s.images.URLFor(ctx, name)
}

// CreateItem builds an item from the submission and appends it to the
// category. The server assigns the id; prices gain the currency prefix when
// missing.
func (s *Service) CreateItem(ctx context.Context, in ItemInput) (*Item, error) {
	if in.Category == "" || in.Name == "" || in.Price == "" {
		return nil, ErrMissingFields
	}

	item := Item{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Price:            normalizePrice(in.Price),
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		Translations:     in.Translations,
	}

	if in.Image != nil {
		up, err := s.images.Upload(ctx, in.Image.Reader, in.Image.Size, in.Image.ContentType, in.Image.Filename, in.Name)
		if err != nil {
			return nil, fmt.Errorf("upload item image: %w", err)
		}
		item.Image = &up.Filename
	}

	if err := s.repo.AddItem(ctx, in.Category, item); err != nil {
		// The item never made it into the document; don't leave its
		// image orphaned.
		if item.Image != nil {
			if derr := s.images.Delete(ctx, *item.Image); derr != nil {
				log.Printf("menu: clean up image %q after failed add: %v", *item.Image, derr)
			}
		}
		return nil, err
	}

	s.record(ctx, "add", item.Name)
	return &item, nil
}

// UpdateItem replaces the item identified by the submission's id. When the
// submission carries a new image the previous object is deleted best-effort;
// otherwise the existing image reference is carried forward.
func (s *Service) UpdateItem(ctx context.Context, in ItemInput) (*Item, error) {
	if in.Category == "" || in.ID == "" || in.Name == "" || in.Price == "" {
		return nil, ErrMissingFields
	}

	doc, err := s.repo.Read(ctx)
	if err != nil {
		return nil, err
	}
	cat, ok := doc[in.Category]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	idx := indexOf(cat.Items, in.ID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	existing := cat.Items[idx]

	item := Item{
		ID:               in.ID,
		Name:             in.Name,
		Price:            normalizePrice(in.Price),
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		Translations:     in.Translations,
		Image:            existing.Image,
	}

	if in.Image != nil {
		up, err := s.images.Upload(ctx, in.Image.Reader, in.Image.Size, in.Image.ContentType, in.Image.Filename, in.Name)
		if err != nil {
			return nil, fmt.Errorf("upload item image: %w", err)
		}
		if old := existing.ImageKey(); old != "" {
			if derr := s.images.Delete(ctx, old); derr != nil {
				log.Printf("menu: delete replaced image %q: %v", old, derr)
			}
		}
		item.Image = &up.Filename
	}

	if err := s.repo.UpdateItem(ctx, in.Category, in.ID, item); err != nil {
		return nil, err
	}

	s.record(ctx, "update", item.Name)
	return &item, nil
}

// DeleteItem removes the item and its image.
func (s *Service) DeleteItem(ctx context.Context, category, id string) error {
	if err := s.repo.DeleteItem(ctx, category, id); err != nil {
		return err
	}
	s.record(ctx, "delete", id)
	return nil
}

// AddCategory creates an empty category.
func (s *Service) AddCategory(ctx context.Context, name string, names map[string]string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingFields
	}
	if err := s.repo.AddCategory(ctx, name, names); err != nil {
		return err
	}
	s.record(ctx, "add-category", name)
	return nil
}

// DeleteCategory removes the category, its items and their images.
func (s *Service) DeleteCategory(ctx context.Context, name string) error {
	if err := s.repo.DeleteCategory(ctx, name); err != nil {
		return err
	}
	s.record(ctx, "delete-category", name)
	return nil
}

// record writes an audit entry. Best-effort: a failed audit write never
// fails the mutation it describes.
func (s *Service) record(ctx context.Context, changeType, name string) {
	if s.changes == nil {
		return
	}
	if err := s.changes.Record(ctx, changeType, name); err != nil {
		log.Printf("menu: record change %s %q: %v", changeType, name, err)
	}
}

// normalizePrice ensures the price carries the currency prefix.
func normalizePrice(price string) string {
	if strings.HasPrefix(price, currencyPrefix) {
		return price
	}
	return currencyPrefix + price
}
