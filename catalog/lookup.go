package catalog

import (
	"errors"
	"net/url"
)

// ErrNotFound is returned by FindByTitle when no book matches.
var ErrNotFound = errors.New("book not found")

// FindByTitle locates a book by its original title or by any of its
// translated titles, in any language. The title may arrive URL-encoded from a
// navigation link. If two books happen to share a translated title the first
// one in catalog order wins.
func FindByTitle(books []Book, rawTitle string) (Book, error) {
	title := rawTitle
	if decoded, err := url.QueryUnescape(rawTitle); err == nil {
		title = decoded
	}
	if title == "" {
		return Book{}, ErrNotFound
	}

	for _, b := range books {
		if b.Title == title {
			return b, nil
		}
		for _, tr := range b.Translations {
			if tr.Title != "" && tr.Title == title {
				return b, nil
			}
		}
	}
	return Book{}, ErrNotFound
}
