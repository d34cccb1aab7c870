package prefs

import "encoding/json"

// Storage keys. They match the original site's localStorage keys so a reader
// of the data file recognises them.
const (
	KeyLanguage  = "selectedLanguage"
	KeyCategory  = "selectedCategory"
	KeyFavorites = "favoriteBooks"
	KeyTheme     = "theme"
)

// Defaults applied when a key is absent.
const (
	DefaultLanguage = "pt-br"
	DefaultCategory = "Todos"
	DefaultTheme    = "light"
)

// Prefs exposes the user preferences as typed values over a Store.
type Prefs struct {
	store Store
}

func New(store Store) *Prefs {
	return &Prefs{store: store}
}

func (p *Prefs) Language() string {
	if v, ok := p.store.Get(KeyLanguage); ok && v != "" {
		return v
	}
	return DefaultLanguage
}

func (p *Prefs) SetLanguage(tag string) error {
	return p.store.Set(KeyLanguage, tag)
}

func (p *Prefs) Category() string {
	if v, ok := p.store.Get(KeyCategory); ok && v != "" {
		return v
	}
	return DefaultCategory
}

func (p *Prefs) SetCategory(category string) error {
	return p.store.Set(KeyCategory, category)
}

func (p *Prefs) Theme() string {
	if v, ok := p.store.Get(KeyTheme); ok && v != "" {
		return v
	}
	return DefaultTheme
}

func (p *Prefs) SetTheme(theme string) error {
	return p.store.Set(KeyTheme, theme)
}

// Favorites returns the favourited original titles in the order they were
// added. Favorites key books by their original, untranslated title.
func (p *Prefs) Favorites() []string {
	raw, ok := p.store.Get(KeyFavorites)
	if !ok || raw == "" {
		return nil
	}
	var titles []string
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		return nil
	}
	return titles
}

func (p *Prefs) IsFavorite(title string) bool {
	for _, t := range p.Favorites() {
		if t == title {
			return true
		}
	}
	return false
}

// ToggleFavorite flips membership of title in the favorite set and persists
// the result in the same call. It reports whether the title is a favorite
// afterwards.
func (p *Prefs) ToggleFavorite(title string) (bool, error) {
	titles := p.Favorites()
	kept := titles[:0]
	removed := false
	for _, t := range titles {
		if t == title {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		kept = append(kept, title)
	}

	data, err := json.Marshal(kept)
	if err != nil {
		return false, err
	}
	if err := p.store.Set(KeyFavorites, string(data)); err != nil {
		return false, err
	}
	return !removed, nil
}

// Reset drops every stored preference, returning all values to defaults.
func (p *Prefs) Reset() error {
	return p.store.Clear()
}
