package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Book is one catalog entry in its native language. There is no separate id
// field: the title is the record's identity, used as the favorites key and as
// the detail lookup key.
type Book struct {
	Title        string                 `json:"title"`
	Author       string                 `json:"author"`
	Year         int                    `json:"year"`
	Description  string                 `json:"description"`
	Category     string                 `json:"category"`
	CoverImage   string                 `json:"cover_image"`
	Language     string                 `json:"language"`
	Translations map[string]Translation `json:"translations,omitempty"`
}

// Translation overrides the textual fields of a Book for one language.
// Fields left empty fall back to the original.
type Translation struct {
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// DisplayBook is a Book projected into a target language. It is derived on
// every render and never stored.
type DisplayBook struct {
	Title       string
	Author      string
	Year        int
	Description string
	Category    string
	CoverImage  string
	Language    string
}

// NormalizeTag canonicalises a language tag for comparison, so catalog data
// carrying "pt-BR" meets a stored preference of "pt-br". Unparseable tags are
// lowercased as-is.
func NormalizeTag(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(tag))
	}
	return strings.ToLower(t.String())
}

// LanguageName returns the native self-name of a language tag ("pt-br" ->
// "português"), falling back to the raw tag.
func LanguageName(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	if name := display.Self.Name(t); name != "" {
		return name
	}
	return tag
}

// Resolve projects a book into the target language. If the book is already in
// that language, or has no matching translation, the projection is the book
// unchanged. The book itself is never mutated.
func Resolve(b Book, tag string) DisplayBook {
	d := DisplayBook{
		Title:       b.Title,
		Author:      b.Author,
		Year:        b.Year,
		Description: b.Description,
		Category:    b.Category,
		CoverImage:  b.CoverImage,
		Language:    b.Language,
	}

	want := NormalizeTag(tag)
	if want == "" || want == NormalizeTag(b.Language) {
		return d
	}

	tr, ok := translationFor(b, want)
	if !ok {
		return d
	}
	if tr.Title != "" {
		d.Title = tr.Title
	}
	if tr.Author != "" {
		d.Author = tr.Author
	}
	if tr.Description != "" {
		d.Description = tr.Description
	}
	if tr.Category != "" {
		d.Category = tr.Category
	}
	return d
}

func translationFor(b Book, want string) (Translation, bool) {
	for tag, tr := range b.Translations {
		if NormalizeTag(tag) == want {
			return tr, true
		}
	}
	return Translation{}, false
}

// Categories returns the unique category values in catalog order.
func Categories(books []Book) []string {
	seen := make(map[string]bool, len(books))
	var out []string
	for _, b := range books {
		if b.Category == "" || seen[b.Category] {
			continue
		}
		seen[b.Category] = true
		out = append(out, b.Category)
	}
	return out
}

// CategoryCounts returns how many books carry each category value.
func CategoryCounts(books []Book) map[string]int {
	counts := make(map[string]int, len(books))
	for _, b := range books {
		counts[b.Category]++
	}
	return counts
}

// Languages returns every language the catalog can be displayed in: each
// book's native tag plus every translation tag, normalised, in catalog order.
func Languages(books []Book) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(tag string) {
		norm := NormalizeTag(tag)
		if norm == "" || seen[norm] {
			return
		}
		seen[norm] = true
		out = append(out, norm)
	}
	for _, b := range books {
		add(b.Language)
	}
	for _, b := range books {
		tags := make([]string, 0, len(b.Translations))
		for tag := range b.Translations {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			add(tag)
		}
	}
	return out
}
