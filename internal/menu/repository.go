package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/lezzetduragi/menu-service/internal/config"
	"github.com/lezzetduragi/menu-service/internal/storage"
)

// ErrCategoryExists is returned when adding a category whose name is taken.
var ErrCategoryExists = errors.New("category already exists")

// ErrCategoryNotFound is returned when the referenced category is absent.
var ErrCategoryNotFound = errors.New("category not found")

// ErrItemNotFound is returned when no item with the given id exists in the
// referenced category.
var ErrItemNotFound = errors.New("item not found")

// ImageStore deletes stored item images. Satisfied by image.Service.
type ImageStore interface {
	Delete(ctx context.Context, name string) error
}

// Repository owns the single menu document in object storage. Every
// mutation is a read-modify-write cycle over the whole document: read the
// JSON blob, change the in-memory copy, write the blob back unconditionally.
//
// The object store offers no transactional boundary across that cycle, so
// two concurrent mutations race and the last write wins, silently dropping
// the other's change. In ConcurrencySerialized mode (the default) a mutex
// spans the whole cycle, serializing mutations within this process. In
// ConcurrencyLastWrite mode the race is left in place, matching deployments
// where whole-document overwrite semantics are relied upon.
type Repository struct {
	store  storage.ObjectStore
	images ImageStore
	mode   config.ConcurrencyMode

	mu sync.Mutex
}

// NewRepository creates a menu Repository over the given object store.
func NewRepository(store storage.ObjectStore, images ImageStore, mode config.ConcurrencyMode) *Repository {
	return &Repository{store: store, images: images, mode: mode}
}

// lock serializes the caller until the returned func runs. A no-op in
// last-write-wins mode.
func (r *Repository) lock() func() {
	if r.mode != config.ConcurrencySerialized {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

// Read fetches the menu document. When no document exists yet it seeds the
// default categories, persists that initial document once, and returns it.
func (r *Repository) Read(ctx context.Context) (Document, error) {
	defer r.lock()()
	return r.read(ctx)
}

func (r *Repository) read(ctx context.Context) (Document, error) {
	data, err := r.store.Get(ctx, DocumentKey)
	if errors.Is(err, storage.ErrNotFound) {
		log.Println("menu: document not found, creating initial structure")
		doc := NewDefaultDocument()
		if err := r.write(ctx, doc); err != nil {
			return nil, fmt.Errorf("initialize menu document: %w", err)
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read menu document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode menu document: %w", err)
	}
	return doc, nil
}

// Write serializes doc and overwrites the stored document unconditionally.
func (r *Repository) Write(ctx context.Context, doc Document) error {
	defer r.lock()()
	return r.write(ctx, doc)
}

func (r *Repository) write(ctx context.Context, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode menu document: %w", err)
	}
	if err := r.store.Put(ctx, DocumentKey, bytes.NewReader(data), int64(len(data)), "application/json"); err != nil {
		return fmt.Errorf("write menu document: %w", err)
	}
	return nil
}

// AddCategory inserts an empty category under name. Names carries optional
// per-language display names. Fails with ErrCategoryExists on an exact key
// match.
func (r *Repository) AddCategory(ctx context.Context, name string, names map[string]string) error {
	defer r.lock()()

	doc, err := r.read(ctx)
	if err != nil {
		return err
	}
	if _, ok := doc[name]; ok {
		return ErrCategoryExists
	}
	doc[name] = Category{Items: []Item{}, Names: names}
	return r.write(ctx, doc)
}

// DeleteCategory removes the category and best-effort deletes every image
// its items reference. A failed image delete is logged and the category
// removal proceeds; the orphaned object has no reconciliation path.
func (r *Repository) DeleteCategory(ctx context.Context, name string) error {
	defer r.lock()()

	doc, err := r.read(ctx)
	if err != nil {
		return err
	}
	cat, ok := doc[name]
	if !ok {
		return ErrCategoryNotFound
	}

	for _, it := range cat.Items {
		r.deleteImage(ctx, it)
	}

	delete(doc, name)
	return r.write(ctx, doc)
}

// AddItem appends item to the category's item sequence.
func (r *Repository) AddItem(ctx context.Context, category string, item Item) error {
	defer r.lock()()

	doc, err := r.read(ctx)
	if err != nil {
		return err
	}
	cat, ok := doc[category]
	if !ok {
		return ErrCategoryNotFound
	}
	cat.Items = append(cat.Items, item)
	doc[category] = cat
	return r.write(ctx, doc)
}

// UpdateItem replaces the full slot of the item with matching id.
func (r *Repository) UpdateItem(ctx context.Context, category, id string, newItem Item) error {
	defer r.lock()()

	doc, err := r.read(ctx)
	if err != nil {
		return err
	}
	cat, ok := doc[category]
	if !ok {
		return ErrCategoryNotFound
	}
	idx := indexOf(cat.Items, id)
	if idx < 0 {
		return ErrItemNotFound
	}
	cat.Items[idx] = newItem
	doc[category] = cat
	return r.write(ctx, doc)
}

// DeleteItem removes the item with matching id, best-effort deleting its
// image first.
func (r *Repository) DeleteItem(ctx context.Context, category, id string) error {
	defer r.lock()()

	doc, err := r.read(ctx)
	if err != nil {
		return err
	}
	cat, ok := doc[category]
	if !ok {
		return ErrCategoryNotFound
	}
	idx := indexOf(cat.Items, id)
	if idx < 0 {
		return ErrItemNotFound
	}

	r.deleteImage(ctx, cat.Items[idx])

	cat.Items = append(cat.Items[:idx], cat.Items[idx+1:]...)
	doc[category] = cat
	return r.write(ctx, doc)
}

// deleteImage removes the item's image object, if any. Best-effort.
func (r *Repository) deleteImage(ctx context.Context, it Item) {
	key := it.ImageKey()
	if key == "" || r.images == nil {
		return
	}
	if err := r.images.Delete(ctx, key); err != nil {
		log.Printf("menu: delete image %q for item %q: %v", key, it.ID, err)
	}
}

// indexOf returns the position of the item with the given id, or -1.
func indexOf(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
