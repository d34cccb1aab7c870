package browse

import "estante/prefs"

// FilterKind discriminates the category facet. A tagged variant instead of
// the raw sentinel strings, so a real category literally named "Favoritos"
// cannot collide with the favorites pseudo-category.
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterCategory
	FilterFavorites
)

// Filter is the category facet of the list state.
type Filter struct {
	Kind     FilterKind
	Category string
}

func All() Filter                 { return Filter{Kind: FilterAll} }
func Favorites() Filter           { return Filter{Kind: FilterFavorites} }
func Category(name string) Filter { return Filter{Kind: FilterCategory, Category: name} }

// Sentinel values used in durable storage.
const (
	allSentinel       = prefs.DefaultCategory
	favoritesSentinel = "Favoritos"
)

// filterFromPref maps a persisted category value back onto a Filter.
func filterFromPref(value string) Filter {
	switch value {
	case "", allSentinel:
		return All()
	case favoritesSentinel:
		return Favorites()
	default:
		return Category(value)
	}
}

// prefValue is the string persisted for this filter.
func (f Filter) prefValue() string {
	switch f.Kind {
	case FilterFavorites:
		return favoritesSentinel
	case FilterCategory:
		return f.Category
	default:
		return allSentinel
	}
}
