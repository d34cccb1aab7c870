package browse

import (
	"sort"
	"strings"

	"estante/catalog"
	"estante/prefs"
)

// PageSize is how many books one derived page holds.
const PageSize = 12

// SortDirection orders the catalog by year.
type SortDirection int

const (
	Ascending SortDirection = iota // oldest first
	Descending
)

// View is one derived page of the catalog plus the metadata needed to render
// pagination and empty states. OriginalTitles carries, per page entry, the
// untranslated title that keys favorites and the detail lookup.
type View struct {
	Page           []catalog.DisplayBook
	OriginalTitles []string
	PageCount      int
	TotalFiltered  int
	IsEmpty        bool
}

// Engine owns the mutable list state: the four facets (search, filter, sort,
// language) plus the current page, and derives the displayed view from them.
// All facet mutation funnels through its methods; the catalog itself is never
// modified, only reordered.
type Engine struct {
	books    []catalog.Book // current order, replaced in place by ToggleSort
	original []catalog.Book // order at load time, the reset anchor
	prefs    *prefs.Prefs

	search      string
	filter      Filter
	sortDir     SortDirection
	sortApplied bool
	language    string
	page        int
}

// New builds an engine over a loaded catalog, restoring the persisted
// language and category facets.
func New(books []catalog.Book, p *prefs.Prefs) *Engine {
	e := &Engine{
		books:    append([]catalog.Book(nil), books...),
		original: append([]catalog.Book(nil), books...),
		prefs:    p,
		filter:   filterFromPref(p.Category()),
		language: catalog.NormalizeTag(p.Language()),
		page:     1,
	}
	return e
}

// ---------------- Facet accessors ----------------

func (e *Engine) SearchTerm() string { return e.search }

func (e *Engine) Filter() Filter { return e.filter }

func (e *Engine) SortDirection() SortDirection { return e.sortDir }

func (e *Engine) Language() string { return e.language }

func (e *Engine) CurrentPage() int { return e.page }

func (e *Engine) Books() []catalog.Book { return e.books }

func (e *Engine) SortApplied() bool { return e.sortApplied }

// ---------------- Operations ----------------

// SetSearchTerm replaces the search facet. An empty term means no filter.
func (e *Engine) SetSearchTerm(term string) {
	e.search = term
	e.page = 1
}

// SetFilter replaces the category facet and persists the choice.
func (e *Engine) SetFilter(f Filter) error {
	e.filter = f
	e.page = 1
	return e.prefs.SetCategory(f.prefValue())
}

// ToggleSort flips the sort direction and re-sorts the catalog by year. The
// sort is stable: books with equal years keep their relative order.
func (e *Engine) ToggleSort() {
	if e.sortDir == Ascending {
		e.sortDir = Descending
	} else {
		e.sortDir = Ascending
	}
	desc := e.sortDir == Descending
	sort.SliceStable(e.books, func(i, j int) bool {
		if desc {
			return e.books[i].Year > e.books[j].Year
		}
		return e.books[i].Year < e.books[j].Year
	})
	e.sortApplied = true
	e.page = 1
}

// SetLanguage replaces the language facet, persists it, and resets every
// other filter: switching language intentionally starts the view over.
func (e *Engine) SetLanguage(tag string) error {
	e.language = catalog.NormalizeTag(tag)
	e.search = ""
	e.filter = All()
	e.page = 1
	if err := e.prefs.SetCategory(All().prefValue()); err != nil {
		return err
	}
	return e.prefs.SetLanguage(e.language)
}

// ToggleFavorite flips membership of an original title in the favorite set
// and persists it. No other facet is touched.
func (e *Engine) ToggleFavorite(title string) (bool, error) {
	return e.prefs.ToggleFavorite(title)
}

// SetPage moves to page n. The engine does not validate n: a page beyond the
// derived page count simply yields an empty page.
func (e *Engine) SetPage(n int) {
	e.page = n
}

// Reset restores the unfiltered, unsorted view: original catalog order,
// ascending direction, no search, no category, page one. The language facet
// is untouched.
func (e *Engine) Reset() error {
	e.books = append(e.books[:0:0], e.original...)
	e.sortDir = Ascending
	e.sortApplied = false
	e.search = ""
	e.filter = All()
	e.page = 1
	return e.prefs.SetCategory(All().prefValue())
}

// FiltersActive reports whether any facet differs from its default, which is
// what makes a clear-filters affordance worth showing.
func (e *Engine) FiltersActive() bool {
	return strings.TrimSpace(e.search) != "" || e.filter.Kind != FilterAll || e.sortApplied
}

// ---------------- Derivation ----------------

// View derives the current page: category filter on original book identity,
// search on the translated projection, then slice and translate. Searching
// matches the language the user is looking at, while favorites and category
// stay keyed to the original record.
func (e *Engine) View() View {
	filtered := e.filteredBooks()

	pageCount := (len(filtered) + PageSize - 1) / PageSize

	start := (e.page - 1) * PageSize
	end := start + PageSize
	var slice []catalog.Book
	if start >= 0 && start < len(filtered) {
		if end > len(filtered) {
			end = len(filtered)
		}
		slice = filtered[start:end]
	}

	page := make([]catalog.DisplayBook, len(slice))
	titles := make([]string, len(slice))
	for i, b := range slice {
		page[i] = catalog.Resolve(b, e.language)
		titles[i] = b.Title
	}

	return View{
		Page:           page,
		OriginalTitles: titles,
		PageCount:      pageCount,
		TotalFiltered:  len(filtered),
		IsEmpty:        len(filtered) == 0,
	}
}

func (e *Engine) filteredBooks() []catalog.Book {
	var favorites map[string]bool
	if e.filter.Kind == FilterFavorites {
		favorites = make(map[string]bool)
		for _, t := range e.prefs.Favorites() {
			favorites[t] = true
		}
	}

	// The term is matched untrimmed: edge whitespace narrows the search the
	// same way any other character does. Only FiltersActive trims.
	term := strings.ToLower(e.search)

	var out []catalog.Book
	for _, b := range e.books {
		switch e.filter.Kind {
		case FilterFavorites:
			if !favorites[b.Title] {
				continue
			}
		case FilterCategory:
			if b.Category != e.filter.Category {
				continue
			}
		}

		if term != "" {
			d := catalog.Resolve(b, e.language)
			if !strings.Contains(strings.ToLower(d.Title), term) &&
				!strings.Contains(strings.ToLower(d.Author), term) {
				continue
			}
		}

		out = append(out, b)
	}
	return out
}

// ---------------- Derived indicators ----------------

func (e *Engine) FavoriteCount() int {
	return len(e.prefs.Favorites())
}

// TotalCount is the whole catalog size, independent of any facet.
func (e *Engine) TotalCount() int {
	return len(e.original)
}

func (e *Engine) IsFavorite(title string) bool {
	return e.prefs.IsFavorite(title)
}

// Categories lists the catalog's categories in original catalog order,
// regardless of the current sort.
func (e *Engine) Categories() []string {
	return catalog.Categories(e.original)
}

// CategoryCounts returns the book count per category plus the total under
// the all-books sentinel.
func (e *Engine) CategoryCounts() map[string]int {
	counts := catalog.CategoryCounts(e.original)
	counts[allSentinel] = len(e.original)
	return counts
}

// Languages lists every selectable display language.
func (e *Engine) Languages() []string {
	return catalog.Languages(e.original)
}
