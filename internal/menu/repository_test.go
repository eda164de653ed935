package menu

import (
	"bytes"
	"context"
	"io"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/lezzetduragi/menu-service/internal/config"
	"github.com/lezzetduragi/menu-service/internal/image"
	"github.com/lezzetduragi/menu-service/internal/storage"
)

func newTestRepo(t *testing.T, mode config.ConcurrencyMode) (*Repository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	images := image.NewService(store, config.ImageURLPublic)
	return NewRepository(store, images, mode), store
}

// countingStore counts Put calls to the menu document key.
type countingStore struct {
	storage.ObjectStore
	mu        sync.Mutex
	docWrites int
}

func (s *countingStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if key == DocumentKey {
		s.mu.Lock()
		s.docWrites++
		s.mu.Unlock()
	}
	return s.ObjectStore.Put(ctx, key, reader, size, contentType)
}

func TestReadInitializesDefaultsOnce(t *testing.T) {
	counting := &countingStore{ObjectStore: storage.NewMemoryStore()}
	repo := NewRepository(counting, nil, config.ConcurrencySerialized)
	ctx := context.Background()

	first, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	if len(first) != len(DefaultCategories) {
		t.Fatalf("expected %d default categories, got %d", len(DefaultCategories), len(first))
	}
	for _, name := range DefaultCategories {
		cat, ok := first[name]
		if !ok {
			t.Fatalf("missing default category %q", name)
		}
		if len(cat.Items) != 0 {
			t.Fatalf("default category %q not empty", name)
		}
	}

	second, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second read differs from first:\n%v\n%v", first, second)
	}
	if counting.docWrites != 1 {
		t.Fatalf("expected exactly one initializing write, got %d", counting.docWrites)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t, config.ConcurrencySerialized)
	ctx := context.Background()

	img := "1700000000000-adana.jpg"
	doc := Document{
		"kebaplar": {
			Items: []Item{{
				ID:               "item-1",
				Name:             "Adana Kebap",
				Price:            "₺250",
				ShortDescription: "Acili kiyma kebabi",
				LongDescription:  "Zirhla cekilmis kuzu etinden",
				Image:            &img,
				Translations: map[string]LocalizedFields{
					"en": {Name: "Adana Kebab", ShortDescription: "Spicy minced kebab"},
				},
			}},
			Names: map[string]string{"tr": "Kebaplar", "en": "Kebabs"},
		},
		"tatlilar": {Items: []Item{}},
	}

	if err := repo.Write(ctx, doc); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(doc, got) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", doc, got)
	}
}

func TestDocumentIsPrettyPrinted(t *testing.T) {
	repo, store := newTestRepo(t, config.ConcurrencySerialized)
	ctx := context.Background()

	if err := repo.Write(ctx, Document{"kebaplar": {Items: []Item{}}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw, err := store.Get(ctx, DocumentKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(string(raw), "\n  ") {
		t.Fatalf("document not indented: %q", raw)
	}
}

func TestAddCategoryDuplicate(t *testing.T) {
	repo, _ := newTestRepo(t, config.ConcurrencySerialized)
	ctx := context.Background()

	if err := repo.AddCategory(ctx, "corbalar", nil); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := repo.AddCategory(ctx, "corbalar", nil); err != ErrCategoryExists {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}

	doc, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	count := 0
	for name := range doc {
		if name == "corbalar" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one corbalar key, got %d", count)
	}
}

func TestAddCategoryExactMatchOnly(t *testing.T) {
	// No normalization at storage time: keys differing only by case coexist.
	repo, _ := newTestRepo(t, config.ConcurrencySerialized)
	ctx := context.Background()

	if err := repo.AddCategory(ctx, "corbalar", nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.AddCategory(ctx, "Corbalar", nil); err != nil {
		t.Fatalf("case variant rejected: %v", err)
	}
}

func TestItemLifecycle(t *testing.T) {
	repo, _ := newTestRepo(t, config.ConcurrencySerialized)
	ctx := context.Background()

	item := Item{ID: "item-1", Name: "Adana", Price: "₺250"}
	if err := repo.AddItem(ctx, "kebaplar", item); err != nil {
		t.Fatalf("add item: %v", err)
	}

	item2 := Item{ID: "item-1", Name: "Adana Kebap", Price: "₺275", ShortDescription: "Acili"}
	if err := repo.UpdateItem(ctx, "kebaplar", "item-1", item2); err != nil {
		t.Fatalf("update item: %v", err)
	}

	doc, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	items := doc["kebaplar"].Items
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	if !reflect.DeepEqual(items[0], item2) {
		t.Fatalf("expected updated item, got %+v", items[0])
	}
}

func TestDeleteItemRemovesImage(t *testing.T) {
	repo, store := newTestRepo(t, config.ConcurrencySerialized)
	ctx := context.Background()

	key := "1700000000000-adana.jpg"
	if err := store.Put(ctx, image.KeyPrefix+key, bytes.NewReader([]byte("jpeg")), 4, "image/jpeg"); err != nil {
		t.Fatalf("seed image: %v", err)
	}

	item := Item{ID: "item-1", Name: "Adana", Price: "₺250", Image: &key}
	if err := repo.AddItem(ctx, "kebaplar", item); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := repo.DeleteItem(ctx, "kebaplar", "item-1"); err != nil {
		t.Fatalf("delete item: %v", err)
	}

	if store.Has(image.KeyPrefix + key) {
		t.Fatal("image object still present after item delete")
	}
	doc, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(doc["kebaplar"].Items) != 0 {
		t.Fatalf("item still present: %+v", doc["kebaplar"].Items)
	}
}

func TestDeleteCategoryRemovesItemImages(t *testing.T) {
	repo, store := newTestRepo(t, config.ConcurrencySerialized)
	ctx := context.Background()

	keys := []string{"1-a.jpg", "2-b.jpg"}
	for _, k := range keys {
		if err := store.Put(ctx, image.KeyPrefix+k, bytes.NewReader([]byte("x")), 1, "image/jpeg"); err != nil {
			t.Fatalf("seed image: %v", err)
		}
	}
	k0, k1 := keys[0], keys[1]
	if err := repo.AddItem(ctx, "kebaplar", Item{ID: "1", Name: "a", Price: "₺1", Image: &k0}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.AddItem(ctx, "kebaplar", Item{ID: "2", Name: "b", Price: "₺2", Image: &k1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := repo.DeleteCategory(ctx, "kebaplar"); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	for _, k := range keys {
		if store.Has(image.KeyPrefix + k) {
			t.Fatalf("image %q still present after category delete", k)
		}
	}
	doc, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, ok := doc["kebaplar"]; ok {
		t.Fatal("category still present")
	}
}

func TestUnknownCategoryAndItemLeaveDocumentUnchanged(t *testing.T) {
	repo, _ := newTestRepo(t, config.ConcurrencySerialized)
	ctx := context.Background()

	before, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if err := repo.UpdateItem(ctx, "nonexistent", "id", Item{ID: "id"}); err != ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if err := repo.DeleteItem(ctx, "kebaplar", "nonexistent-id"); err != ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if err := repo.DeleteCategory(ctx, "nonexistent"); err != ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	after, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("document changed by failed operations:\nbefore %+v\nafter  %+v", before, after)
	}
}

// barrierGetStore blocks each Get of the menu document until all expected
// readers have read, forcing two read-modify-write cycles to interleave.
type barrierGetStore struct {
	storage.ObjectStore
	barrier *sync.WaitGroup
}

func (s *barrierGetStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.ObjectStore.Get(ctx, key)
	if key == DocumentKey {
		s.barrier.Done()
		s.barrier.Wait()
	}
	return data, err
}

func TestLostUpdateRaceInLastWriteMode(t *testing.T) {
	// Both mutations read the document before either writes: the last
	// write wins and the other category is silently absent.
	mem := storage.NewMemoryStore()
	var barrier sync.WaitGroup
	barrier.Add(2)
	repo := NewRepository(&barrierGetStore{ObjectStore: mem, barrier: &barrier}, nil, config.ConcurrencyLastWrite)
	ctx := context.Background()

	seeded := Document{"kebaplar": {Items: []Item{}}}
	if err := repo.Write(ctx, seeded); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := repo.AddCategory(ctx, name, nil); err != nil {
				t.Errorf("add %q: %v", name, err)
			}
		}(name)
	}
	wg.Wait()

	plain := NewRepository(mem, nil, config.ConcurrencyLastWrite)
	doc, err := plain.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	_, hasA := doc["a"]
	_, hasB := doc["b"]
	if hasA == hasB {
		t.Fatalf("expected exactly one of the racing categories to survive, got a=%v b=%v", hasA, hasB)
	}
	if len(doc) != 2 {
		t.Fatalf("expected seed category plus one survivor, got %d keys: %v", len(doc), doc)
	}
}

func TestSerializedModeKeepsBothConcurrentCategories(t *testing.T) {
	repo, _ := newTestRepo(t, config.ConcurrencySerialized)
	ctx := context.Background()

	if err := repo.Write(ctx, Document{"kebaplar": {Items: []Item{}}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := repo.AddCategory(ctx, name, nil); err != nil {
				t.Errorf("add %q: %v", name, err)
			}
		}(name)
	}
	wg.Wait()

	doc, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, name := range []string{"a", "b"} {
		if _, ok := doc[name]; !ok {
			t.Fatalf("category %q lost under serialized mode", name)
		}
	}
}
