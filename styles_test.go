package md2docx

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
)

func TestLookupTokenStyleExact(t *testing.T) {
	s, ok := lookupTokenStyle(chroma.Keyword)
	if !ok {
		t.Fatal("expected a style for Keyword")
	}
	if s.Color != "0000FF" || !s.Bold {
		t.Errorf("unexpected style: %+v", s)
	}
}

func TestLookupTokenStyleSubCategoryFallback(t *testing.T) {
	// KeywordNamespace has no entry; it must inherit from Keyword.
	s, ok := lookupTokenStyle(chroma.KeywordNamespace)
	if !ok {
		t.Fatal("expected fallback to Keyword")
	}
	if s.Color != "0000FF" {
		t.Errorf("unexpected style: %+v", s)
	}
}

func TestLookupTokenStyleCategoryFallback(t *testing.T) {
	// LiteralStringDouble falls back to LiteralString via subcategory.
	s, ok := lookupTokenStyle(chroma.LiteralStringDouble)
	if !ok {
		t.Fatal("expected fallback through the hierarchy")
	}
	if s.Color != "A31515" {
		t.Errorf("unexpected style: %+v", s)
	}
}

func TestLookupTokenStyleMiss(t *testing.T) {
	if _, ok := lookupTokenStyle(chroma.Text); ok {
		t.Error("plain text tokens must render unstyled")
	}
}

func TestAlertStylesComplete(t *testing.T) {
	for _, severity := range []string{"NOTE", "TIP", "IMPORTANT", "WARNING", "CAUTION"} {
		s, ok := alertStyles[severity]
		if !ok {
			t.Errorf("missing alert style for %s", severity)
			continue
		}
		if s.Border == "" || s.Background == "" || s.Label == "" || s.Text == "" {
			t.Errorf("incomplete style for %s: %+v", severity, s)
		}
	}
}
