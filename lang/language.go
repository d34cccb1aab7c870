package lang

import (
	"fmt"
	"strings"
	"sync"
)

type Locale string

const (
	LocalePortuguese Locale = "pt-br"
	LocaleEnglish    Locale = "en"
)

type BrowseStrings struct {
	SearchPlaceholder string
	SearchPrompt      string
	SortDefault       string
	SortOldestFirst   string
	SortNewestFirst   string
	AllLabel          string
	FavoritesLabel    string
	FoundTemplate     string
	NoResults         string
	NoResultsTemplate string
	PageTemplate      string
	ClearFiltersHint  string
	HelpLine          string
	SearchHelpLine    string
	LoadFailed        string
	EmptyCatalog      string
	LanguageTemplate  string
}

type DetailStrings struct {
	ByTemplate     string
	NotFound       string
	NotSpecified   string
	AddFavorite    string
	RemoveFavorite string
	BackHint       string
}

type ThemeStrings struct {
	Light string
	Dark  string
}

type CommonStrings struct {
	AppTitle     string
	Loading      string
	UnknownState string
}

type Strings struct {
	Browse BrowseStrings
	Detail DetailStrings
	Theme  ThemeStrings
	Common CommonStrings
}

var (
	mu sync.RWMutex

	translations = map[Locale]*Strings{
		LocalePortuguese: {
			Browse: BrowseStrings{
				SearchPlaceholder: "Buscar por título ou autor…",
				SearchPrompt:      "Busca: ",
				SortDefault:       "Ordenar por Ano",
				SortOldestFirst:   "Ordenado: Mais Antigos",
				SortNewestFirst:   "Ordenado: Mais Novos",
				AllLabel:          "Todos",
				FavoritesLabel:    "Favoritos",
				FoundTemplate:     "%d livro(s) encontrado(s)",
				NoResults:         "Nenhum livro encontrado para os filtros aplicados.",
				NoResultsTemplate: "Nenhum livro encontrado para a busca \"%s\".",
				PageTemplate:      "Página %d de %d",
				ClearFiltersHint:  "x limpar filtros",
				HelpLine:          "↑/↓ navegar · ←/→ página · / buscar · c categoria · s ordenar · f favorito · L idioma · t tema · enter detalhes · q sair",
				SearchHelpLine:    "enter aplicar · esc cancelar",
				LoadFailed:        "Não foi possível carregar a lista de livros.",
				EmptyCatalog:      "O catálogo está vazio.",
				LanguageTemplate:  "Idioma: %s",
			},
			Detail: DetailStrings{
				ByTemplate:     "por %s (%d)",
				NotFound:       "Livro não encontrado.",
				NotSpecified:   "Livro não especificado.",
				AddFavorite:    "f adicionar aos favoritos",
				RemoveFavorite: "f remover dos favoritos",
				BackHint:       "esc voltar",
			},
			Theme: ThemeStrings{
				Light: "claro",
				Dark:  "escuro",
			},
			Common: CommonStrings{
				AppTitle:     "Estante",
				Loading:      "Carregando livros…",
				UnknownState: "Estado desconhecido",
			},
		},
		LocaleEnglish: {
			Browse: BrowseStrings{
				SearchPlaceholder: "Search by title or author…",
				SearchPrompt:      "Search: ",
				SortDefault:       "Sort by Year",
				SortOldestFirst:   "Sorted: Oldest First",
				SortNewestFirst:   "Sorted: Newest First",
				AllLabel:          "All",
				FavoritesLabel:    "Favorites",
				FoundTemplate:     "%d book(s) found",
				NoResults:         "No books match the applied filters.",
				NoResultsTemplate: "No books found for \"%s\".",
				PageTemplate:      "Page %d of %d",
				ClearFiltersHint:  "x clear filters",
				HelpLine:          "↑/↓ move · ←/→ page · / search · c category · s sort · f favorite · L language · t theme · enter details · q quit",
				SearchHelpLine:    "enter apply · esc cancel",
				LoadFailed:        "Could not load the book list.",
				EmptyCatalog:      "The catalog is empty.",
				LanguageTemplate:  "Language: %s",
			},
			Detail: DetailStrings{
				ByTemplate:     "by %s (%d)",
				NotFound:       "Book not found.",
				NotSpecified:   "No book specified.",
				AddFavorite:    "f add to favorites",
				RemoveFavorite: "f remove from favorites",
				BackHint:       "esc back",
			},
			Theme: ThemeStrings{
				Light: "light",
				Dark:  "dark",
			},
			Common: CommonStrings{
				AppTitle:     "Estante",
				Loading:      "Loading books…",
				UnknownState: "Unknown state",
			},
		},
	}

	currentLocale = LocalePortuguese
	current       = translations[currentLocale]
)

// SetLocale switches the UI chrome language.
func SetLocale(loc Locale) bool {
	mu.Lock()
	defer mu.Unlock()
	strs, ok := translations[loc]
	if !ok {
		return false
	}
	currentLocale = loc
	current = strs
	return true
}

// SetForLanguage picks the chrome locale matching a catalog display language:
// Portuguese for pt tags, English for everything else.
func SetForLanguage(tag string) {
	if strings.HasPrefix(strings.ToLower(tag), "pt") {
		SetLocale(LocalePortuguese)
		return
	}
	SetLocale(LocaleEnglish)
}

func CurrentLocale() Locale {
	mu.RLock()
	defer mu.RUnlock()
	return currentLocale
}

func Active() *Strings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func FoundBooks(count int) string {
	return fmt.Sprintf(Active().Browse.FoundTemplate, count)
}

func NoResultsFor(term string) string {
	if strings.TrimSpace(term) == "" {
		return Active().Browse.NoResults
	}
	return fmt.Sprintf(Active().Browse.NoResultsTemplate, term)
}

func PageStatus(page, pageCount int) string {
	return fmt.Sprintf(Active().Browse.PageTemplate, page, pageCount)
}

func DetailByline(author string, year int) string {
	return fmt.Sprintf(Active().Detail.ByTemplate, author, year)
}

func LanguageStatus(name string) string {
	return fmt.Sprintf(Active().Browse.LanguageTemplate, name)
}
