// Package menu manages the restaurant menu document: categories, items and
// their persistence in object storage.
package menu

// DocumentKey is the object key holding the entire menu document.
const DocumentKey = "menu-data.json"

// Document is the whole menu, keyed by category name. The key is the
// natural display name, matched by exact string — no case or accent
// normalization happens at the storage layer.
type Document map[string]Category

// Category groups menu items. Names optionally carries per-language display
// names keyed by language code ("tr", "en").
type Category struct {
	Items []Item            `json:"items"`
	Names map[string]string `json:"names,omitempty"`
}

// Item is a single menu entry.
type Item struct {
	ID               string                     `json:"id"`
	Name             string                     `json:"name"`
	Price            string                     `json:"price"`
	ShortDescription string                     `json:"shortDescription"`
	LongDescription  string                     `json:"longDescription"`
	Image            *string                    `json:"image"`
	Translations     map[string]LocalizedFields `json:"translations,omitempty"`
}

// LocalizedFields holds the translatable fields of an item.
type LocalizedFields struct {
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
}

// Localized returns the item's fields in the requested language, falling
// back field-by-field to the base language when a translation is missing
// or partially filled.
func (it Item) Localized(lang string) LocalizedFields {
	base := LocalizedFields{
		Name:             it.Name,
		ShortDescription: it.ShortDescription,
		LongDescription:  it.LongDescription,
	}
	tr, ok := it.Translations[lang]
	if !ok {
		return base
	}
	if tr.Name == "" {
		tr.Name = base.Name
	}
	if tr.ShortDescription == "" {
		tr.ShortDescription = base.ShortDescription
	}
	if tr.LongDescription == "" {
		tr.LongDescription = base.LongDescription
	}
	return tr
}

// ImageKey returns the stored image reference, or "" when the item has none.
func (it Item) ImageKey() string {
	if it.Image == nil {
		return ""
	}
	return *it.Image
}

// DefaultCategories are the category keys seeded when no menu document
// exists yet.
var DefaultCategories = []string{
	"kebaplar",
	"salatalar",
	"pide cesitleri",
	"soguk icecekler",
	"ara sicaklar",
	"sicak icecekler",
	"tatlilar",
	"izgaralar",
	"tava cesitleri",
}

// NewDefaultDocument builds the initial menu document with the default
// categories and empty item lists.
func NewDefaultDocument() Document {
	doc := make(Document, len(DefaultCategories))
	for _, name := range DefaultCategories {
		doc[name] = Category{Items: []Item{}}
	}
	return doc
}
