package menu

import "testing"

func TestLocalizedFallback(t *testing.T) {
	item := Item{
		Name:             "Adana Kebap",
		ShortDescription: "Acili kiyma kebabi",
		LongDescription:  "Zirhla cekilmis kuzu etinden",
		Translations: map[string]LocalizedFields{
			"en": {Name: "Adana Kebab"},
		},
	}

	tests := []struct {
		lang      string
		wantName  string
		wantShort string
	}{
		{"en", "Adana Kebab", "Acili kiyma kebabi"}, // partial translation falls back per field
		{"de", "Adana Kebap", "Acili kiyma kebabi"}, // missing language falls back entirely
		{"tr", "Adana Kebap", "Acili kiyma kebabi"},
	}
	for _, tt := range tests {
		got := item.Localized(tt.lang)
		if got.Name != tt.wantName {
			t.Errorf("Localized(%q).Name = %q, want %q", tt.lang, got.Name, tt.wantName)
		}
		if got.ShortDescription != tt.wantShort {
			t.Errorf("Localized(%q).ShortDescription = %q, want %q", tt.lang, got.ShortDescription, tt.wantShort)
		}
	}
}

func TestLocalizedNoTranslations(t *testing.T) {
	item := Item{Name: "Ayran", ShortDescription: "Soguk"}
	got := item.Localized("en")
	if got.Name != "Ayran" || got.ShortDescription != "Soguk" {
		t.Fatalf("expected base fields, got %+v", got)
	}
}

func TestNewDefaultDocument(t *testing.T) {
	doc := NewDefaultDocument()
	if len(doc) != 9 {
		t.Fatalf("expected 9 default categories, got %d", len(doc))
	}
	for name, cat := range doc {
		if cat.Items == nil || len(cat.Items) != 0 {
			t.Fatalf("category %q should have an empty item list", name)
		}
	}
}
