package catalog

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBook() Book {
	return Book{
		Title:       "A Raposa",
		Author:      "João Silva",
		Year:        1950,
		Description: "Uma fábula.",
		Category:    "Fábula",
		CoverImage:  "raposa.jpg",
		Language:    "pt-br",
		Translations: map[string]Translation{
			"en": {Title: "The Fox", Author: "John Silva", Description: "A fable."},
			"es": {Title: "El Zorro"},
		},
	}
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "pt-br", NormalizeTag("pt-BR"))
	assert.Equal(t, "pt-br", NormalizeTag("pt-br"))
	assert.Equal(t, "en", NormalizeTag("EN"))
	assert.Equal(t, "not a tag", NormalizeTag(" Not A Tag "))
	assert.Equal(t, "", NormalizeTag(""))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName("en"))
	assert.NotEmpty(t, LanguageName("pt-br"))
	assert.Equal(t, "???", LanguageName("???"))
}

func TestResolve(t *testing.T) {
	t.Run("same language returns the book unchanged", func(t *testing.T) {
		b := sampleBook()
		d := Resolve(b, "pt-BR")
		assert.Equal(t, "A Raposa", d.Title)
		assert.Equal(t, "João Silva", d.Author)
	})

	t.Run("translation overrides textual fields", func(t *testing.T) {
		d := Resolve(sampleBook(), "en")
		assert.Equal(t, "The Fox", d.Title)
		assert.Equal(t, "John Silva", d.Author)
		assert.Equal(t, "A fable.", d.Description)
		// No translated category falls back to the original.
		assert.Equal(t, "Fábula", d.Category)
		assert.Equal(t, 1950, d.Year)
		assert.Equal(t, "raposa.jpg", d.CoverImage)
	})

	t.Run("partial translation keeps originals", func(t *testing.T) {
		d := Resolve(sampleBook(), "es")
		assert.Equal(t, "El Zorro", d.Title)
		assert.Equal(t, "João Silva", d.Author)
		assert.Equal(t, "Uma fábula.", d.Description)
	})

	t.Run("missing translation returns original", func(t *testing.T) {
		d := Resolve(sampleBook(), "fr")
		assert.Equal(t, "A Raposa", d.Title)
	})

	t.Run("does not mutate the book", func(t *testing.T) {
		b := sampleBook()
		_ = Resolve(b, "en")
		assert.Equal(t, "A Raposa", b.Title)
		assert.Equal(t, "João Silva", b.Author)
	})
}

func TestFindByTitle(t *testing.T) {
	books := []Book{
		sampleBook(),
		{Title: "Dom Casmurro", Language: "pt-br"},
	}

	t.Run("original title", func(t *testing.T) {
		b, err := FindByTitle(books, "Dom Casmurro")
		require.NoError(t, err)
		assert.Equal(t, "Dom Casmurro", b.Title)
	})

	t.Run("translated title resolves to the original record", func(t *testing.T) {
		b, err := FindByTitle(books, "The Fox")
		require.NoError(t, err)
		assert.Equal(t, "A Raposa", b.Title)
	})

	t.Run("url-encoded title", func(t *testing.T) {
		b, err := FindByTitle(books, "El%20Zorro")
		require.NoError(t, err)
		assert.Equal(t, "A Raposa", b.Title)
	})

	t.Run("unknown title", func(t *testing.T) {
		_, err := FindByTitle(books, "Nada")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := FindByTitle(books, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

const catalogJSON = `[
  {
    "title": "A Raposa",
    "author": "João Silva",
    "year": 1950,
    "description": "<p>Uma <b>fábula</b>  curta.</p>",
    "category": "Fábula",
    "cover_image": "raposa.jpg",
    "language": "pt-br",
    "translations": {
      "en": {"title": "The Fox", "description": "<p>A short fable.</p>"}
    }
  }
]`

func TestLoad(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "books.json")
		require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0644))

		books, err := Load(path)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "A Raposa", books[0].Title)
		assert.Equal(t, "raposa.jpg", books[0].CoverImage)
		assert.Equal(t, "Uma fábula curta.", books[0].Description)
		assert.Equal(t, "A short fable.", books[0].Translations["en"].Description)
	})

	t.Run("from http", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(catalogJSON))
		}))
		defer srv.Close()

		books, err := Load(srv.URL)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "A Raposa", books[0].Title)
	})

	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := Load(srv.URL)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "books.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "plain text", stripMarkup("plain text"))
	assert.Equal(t, "bold and more", stripMarkup("<p><b>bold</b> and more</p>"))
	assert.Equal(t, "a & b", stripMarkup("a &amp; b"))
}

func TestCatalogIndicators(t *testing.T) {
	books := []Book{
		{Title: "a", Category: "Romance", Language: "pt-br"},
		{Title: "b", Category: "Fábula", Language: "pt-br",
			Translations: map[string]Translation{"en": {Title: "B"}, "es": {Title: "B!"}}},
		{Title: "c", Category: "Romance", Language: "pt-br"},
		{Title: "d", Language: "pt-br"},
	}

	assert.Equal(t, []string{"Romance", "Fábula"}, Categories(books))

	counts := CategoryCounts(books)
	assert.Equal(t, 2, counts["Romance"])
	assert.Equal(t, 1, counts["Fábula"])

	assert.Equal(t, []string{"pt-br", "en", "es"}, Languages(books))
}
