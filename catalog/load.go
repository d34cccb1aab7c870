package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Load reads the whole catalog from source, which is either a filesystem path
// or an http(s) URL. The catalog is fetched eagerly and exactly once per
// session; any failure here is terminal for the browse view.
func Load(source string) ([]Book, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetch(source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", source, err)
	}

	for i := range books {
		books[i].Description = stripMarkup(books[i].Description)
		for tag, tr := range books[i].Translations {
			tr.Description = stripMarkup(tr.Description)
			books[i].Translations[tag] = tr
		}
	}

	return books, nil
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog %s: bad status: %d", url, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// stripMarkup flattens HTML fragments that sometimes leak into catalog
// descriptions down to plain text.
func stripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
