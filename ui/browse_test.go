package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estante/browse"
	"estante/catalog"
	"estante/lang"
	"estante/prefs"
)

func uiCatalog() []catalog.Book {
	return []catalog.Book{
		{
			Title: "A Raposa", Author: "João Silva", Year: 1950,
			Category: "Fábula", Language: "pt-br",
			Translations: map[string]catalog.Translation{"en": {Title: "The Fox"}},
		},
		{
			Title: "Dom Casmurro", Author: "Machado de Assis", Year: 1899,
			Category: "Romance", Language: "pt-br",
		},
	}
}

func newBrowseModel(t *testing.T, books []catalog.Book) BrowseModel {
	t.Helper()
	t.Cleanup(func() { lang.SetLocale(lang.LocalePortuguese) })
	engine := browse.New(books, prefs.New(prefs.NewMemStore()))
	return NewBrowseModel(engine, prefs.DefaultTheme, 80, 24)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Every key the help line names must do something; the help text and the key
// switch drift apart otherwise.
func TestHelpLineAdvertisesBoundKeys(t *testing.T) {
	t.Cleanup(func() { lang.SetLocale(lang.LocalePortuguese) })

	bound := map[string]bool{
		"↑/↓": true, "←/→": true, "/": true, "c": true, "s": true,
		"f": true, "L": true, "t": true, "x": true,
		"enter": true, "esc": true, "q": true,
	}

	for _, loc := range []lang.Locale{lang.LocalePortuguese, lang.LocaleEnglish} {
		require.True(t, lang.SetLocale(loc))
		str := lang.Active().Browse

		lines := []string{str.HelpLine, str.SearchHelpLine, str.ClearFiltersHint}
		for _, line := range lines {
			for _, seg := range strings.Split(line, " · ") {
				key := strings.Fields(seg)[0]
				assert.True(t, bound[key], "locale %s advertises unbound key %q", loc, key)
			}
		}
	}
}

func TestBrowseKeys(t *testing.T) {
	t.Run("s toggles sort", func(t *testing.T) {
		m := newBrowseModel(t, uiCatalog())
		m, _ = m.Update(keyMsg("s"))
		assert.True(t, m.engine.SortApplied())
		assert.Equal(t, browse.Descending, m.engine.SortDirection())
	})

	t.Run("L cycles language", func(t *testing.T) {
		m := newBrowseModel(t, uiCatalog())
		require.Equal(t, "pt-br", m.engine.Language())
		m, _ = m.Update(keyMsg("L"))
		assert.Equal(t, "en", m.engine.Language())
		assert.Equal(t, lang.LocaleEnglish, lang.CurrentLocale())
	})

	t.Run("c cycles the filter ring", func(t *testing.T) {
		m := newBrowseModel(t, uiCatalog())
		m, _ = m.Update(keyMsg("c"))
		assert.Equal(t, browse.Favorites(), m.engine.Filter())
		m, _ = m.Update(keyMsg("c"))
		assert.Equal(t, browse.Category("Fábula"), m.engine.Filter())
	})

	t.Run("f favorites the selected row", func(t *testing.T) {
		m := newBrowseModel(t, uiCatalog())
		m, _ = m.Update(keyMsg("f"))
		assert.True(t, m.engine.IsFavorite("A Raposa"))
	})

	t.Run("slash enters search mode and types into the term", func(t *testing.T) {
		m := newBrowseModel(t, uiCatalog())
		m, _ = m.Update(keyMsg("/"))
		assert.True(t, m.searching)

		for _, r := range "raposa" {
			m, _ = m.Update(keyMsg(string(r)))
		}
		assert.Equal(t, "raposa", m.engine.SearchTerm())
		assert.Equal(t, 1, m.engine.View().TotalFiltered)

		m, _ = m.Update(keyMsg("esc"))
		assert.False(t, m.searching)
		assert.Equal(t, "", m.engine.SearchTerm())
	})

	t.Run("x clears filters", func(t *testing.T) {
		m := newBrowseModel(t, uiCatalog())
		m, _ = m.Update(keyMsg("s"))
		m, _ = m.Update(keyMsg("c"))
		require.True(t, m.engine.FiltersActive())

		m, _ = m.Update(keyMsg("x"))
		assert.False(t, m.engine.FiltersActive())
	})

	t.Run("t emits the theme message", func(t *testing.T) {
		m := newBrowseModel(t, uiCatalog())
		_, cmd := m.Update(keyMsg("t"))
		require.NotNil(t, cmd)
		assert.IsType(t, themeToggledMsg{}, cmd())
	})

	t.Run("enter opens the selected row", func(t *testing.T) {
		m := newBrowseModel(t, uiCatalog())
		_, cmd := m.Update(keyMsg("enter"))
		require.NotNil(t, cmd)
		msg, ok := cmd().(openDetailMsg)
		require.True(t, ok)
		assert.Equal(t, "A Raposa", msg.Title)
	})

	t.Run("q quits", func(t *testing.T) {
		m := newBrowseModel(t, uiCatalog())
		_, cmd := m.Update(keyMsg("q"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestBrowseEmptyStates(t *testing.T) {
	t.Run("empty catalog gets its own message", func(t *testing.T) {
		m := newBrowseModel(t, nil)
		out := m.View()
		assert.Contains(t, out, lang.Active().Browse.EmptyCatalog)
		assert.NotContains(t, out, lang.Active().Browse.NoResults)
	})

	t.Run("over-filtered catalog reports no results", func(t *testing.T) {
		m := newBrowseModel(t, uiCatalog())
		m.engine.SetSearchTerm("zzz")
		out := m.View()
		assert.Contains(t, out, lang.NoResultsFor("zzz"))
		assert.NotContains(t, out, lang.Active().Browse.EmptyCatalog)
	})
}

func TestFilterBadges(t *testing.T) {
	t.Cleanup(func() { lang.SetLocale(lang.LocalePortuguese) })

	m := newBrowseModel(t, uiCatalog())

	assert.Equal(t, "Todos 2", m.filterLabel(browse.All()))

	// The all-books badge counts the catalog, not a map entry keyed by the
	// label, so translating the label keeps the number.
	require.True(t, lang.SetLocale(lang.LocaleEnglish))
	assert.Equal(t, "All 2", m.filterLabel(browse.All()))
	assert.Equal(t, "Favorites 0", m.filterLabel(browse.Favorites()))
	assert.Equal(t, "Romance 1", m.filterLabel(browse.Category("Romance")))
}
