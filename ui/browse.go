package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"estante/browse"
	"estante/catalog"
	"estante/lang"
)

// Messages the browse screen hands up to the app model.
type openDetailMsg struct {
	Title string
}

type themeToggledMsg struct{}

type prefsResetMsg struct{}

type BrowseModel struct {
	engine *browse.Engine
	input  textinput.Model
	pager  paginator.Model
	styles Styles
	theme  string

	cursor    int
	searching bool
	notice    string

	width  int
	height int
}

func NewBrowseModel(engine *browse.Engine, theme string, width, height int) BrowseModel {
	ti := textinput.New()
	ti.CharLimit = 60
	ti.Width = 34
	ti.Cursor.SetMode(cursor.CursorBlink)

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.PerPage = browse.PageSize

	m := BrowseModel{
		engine: engine,
		input:  ti,
		pager:  pg,
		width:  width,
		height: height,
	}
	m.applyTheme(theme)
	m.applyLanguage()
	m.syncPager()

	return m
}

func (m *BrowseModel) applyTheme(theme string) {
	m.theme = theme
	styles := NewStyles(PaletteFor(theme))
	m.styles = styles
	m.input.PromptStyle = styles.Prompt
	m.input.TextStyle = styles.PromptText
	m.input.PlaceholderStyle = styles.FilterIdle
	m.input.Cursor.Style = styles.PromptCursor
	m.pager.ActiveDot = styles.PagerActive.Render("●")
	m.pager.InactiveDot = styles.PagerIdle.Render("•")
}

func (m *BrowseModel) applyLanguage() {
	str := lang.Active().Browse
	m.input.Placeholder = str.SearchPlaceholder
	m.input.Prompt = str.SearchPrompt
}

// ---------------- Filter ring ----------------

// filterRing is the cycling order of the filter control: all books first,
// then favorites, then one entry per catalog category.
func (m *BrowseModel) filterRing() []browse.Filter {
	ring := []browse.Filter{browse.All(), browse.Favorites()}
	for _, c := range m.engine.Categories() {
		ring = append(ring, browse.Category(c))
	}
	return ring
}

func (m *BrowseModel) filterIndex(ring []browse.Filter) int {
	current := m.engine.Filter()
	for i, f := range ring {
		if f == current {
			return i
		}
	}
	return 0
}

func (m *BrowseModel) cycleFilter(delta int) {
	ring := m.filterRing()
	if len(ring) == 0 {
		return
	}
	i := (m.filterIndex(ring) + delta + len(ring)) % len(ring)
	if err := m.engine.SetFilter(ring[i]); err != nil {
		m.notice = err.Error()
	}
}

func (m *BrowseModel) cycleLanguage() {
	langs := m.engine.Languages()
	if len(langs) < 2 {
		return
	}
	current := m.engine.Language()
	next := langs[0]
	for i, tag := range langs {
		if tag == current {
			next = langs[(i+1)%len(langs)]
			break
		}
	}
	if err := m.engine.SetLanguage(next); err != nil {
		m.notice = err.Error()
		return
	}
	lang.SetForLanguage(next)
	m.input.SetValue("")
	m.applyLanguage()
}

// ---------------- Update ----------------

func (m BrowseModel) Update(msg tea.Msg) (BrowseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearching(msg)
		}
		return m.updateBrowsing(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m BrowseModel) updateSearching(msg tea.KeyMsg) (BrowseModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.input.Blur()
		m.input.SetValue("")
		m.engine.SetSearchTerm("")
		m.cursor = 0
		m.syncPager()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.engine.SetSearchTerm(m.input.Value())
	m.cursor = 0
	m.syncPager()
	return m, cmd
}

func (m BrowseModel) updateBrowsing(msg tea.KeyMsg) (BrowseModel, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		return m, m.input.Focus()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.engine.View().Page)-1 {
			m.cursor++
		}

	case "left", "h":
		if m.engine.CurrentPage() > 1 {
			m.engine.SetPage(m.engine.CurrentPage() - 1)
			m.cursor = 0
		}

	case "right", "l":
		if m.engine.CurrentPage() < m.engine.View().PageCount {
			m.engine.SetPage(m.engine.CurrentPage() + 1)
			m.cursor = 0
		}

	case "tab", "c":
		m.cycleFilter(1)
		m.cursor = 0

	case "shift+tab":
		m.cycleFilter(-1)
		m.cursor = 0

	case "s", "o":
		m.engine.ToggleSort()
		m.cursor = 0

	case "L", "i":
		m.cycleLanguage()
		m.cursor = 0

	case "f":
		v := m.engine.View()
		if m.cursor < len(v.OriginalTitles) {
			if _, err := m.engine.ToggleFavorite(v.OriginalTitles[m.cursor]); err != nil {
				m.notice = err.Error()
			}
		}

	case "x":
		if err := m.engine.Reset(); err != nil {
			m.notice = err.Error()
		}
		m.input.SetValue("")
		m.cursor = 0

	case "t":
		return m, func() tea.Msg { return themeToggledMsg{} }

	case "ctrl+r":
		return m, func() tea.Msg { return prefsResetMsg{} }

	case "enter":
		v := m.engine.View()
		if m.cursor < len(v.Page) {
			title := v.Page[m.cursor].Title
			return m, func() tea.Msg { return openDetailMsg{Title: title} }
		}
	}

	m.syncPager()
	m.clampCursor()
	return m, nil
}

func (m *BrowseModel) syncPager() {
	v := m.engine.View()
	total := v.PageCount
	if total < 1 {
		total = 1
	}
	m.pager.SetTotalPages(total)
	page := m.engine.CurrentPage() - 1
	if page < 0 {
		page = 0
	}
	if page > total-1 {
		page = total - 1
	}
	m.pager.Page = page
}

func (m *BrowseModel) clampCursor() {
	rows := len(m.engine.View().Page)
	if rows == 0 {
		m.cursor = 0
		return
	}
	if m.cursor > rows-1 {
		m.cursor = rows - 1
	}
}

// ---------------- View ----------------

func (m BrowseModel) sortLabel() string {
	str := lang.Active().Browse
	if !m.engine.SortApplied() {
		return str.SortDefault
	}
	if m.engine.SortDirection() == browse.Ascending {
		return str.SortOldestFirst
	}
	return str.SortNewestFirst
}

func (m BrowseModel) filterLabel(f browse.Filter) string {
	str := lang.Active().Browse
	counts := m.engine.CategoryCounts()

	switch f.Kind {
	case browse.FilterFavorites:
		return fmt.Sprintf("%s %d", str.FavoritesLabel, m.engine.FavoriteCount())
	case browse.FilterCategory:
		return fmt.Sprintf("%s %d", f.Category, counts[f.Category])
	default:
		return fmt.Sprintf("%s %d", str.AllLabel, m.engine.TotalCount())
	}
}

func (m BrowseModel) filterRow() string {
	ring := m.filterRing()
	active := m.filterIndex(ring)

	parts := make([]string, len(ring))
	for i, f := range ring {
		label := m.filterLabel(f)
		if i == active {
			parts[i] = m.styles.FilterActive.Render(label)
		} else {
			parts[i] = m.styles.FilterIdle.Render(label)
		}
	}
	return m.styles.Header.Render(strings.Join(parts, "  "))
}

func (m BrowseModel) maxLineWidth() int {
	w := m.width - 6
	if w > ListMaxWidth {
		w = ListMaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m BrowseModel) View() string {
	str := lang.Active().Browse
	v := m.engine.View()
	width := m.maxLineWidth()

	var b strings.Builder

	themeName := lang.Active().Theme.Light
	if m.theme == "dark" {
		themeName = lang.Active().Theme.Dark
	}
	header := fmt.Sprintf("%s · %s · %s",
		lang.LanguageStatus(catalog.LanguageName(m.engine.Language())),
		m.sortLabel(),
		themeName,
	)
	b.WriteString(m.styles.Title.Render(lang.Active().Common.AppTitle))
	b.WriteString("\n")
	b.WriteString(m.styles.Header.Render(header))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Body.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.filterRow())
	b.WriteString("\n")

	if v.IsEmpty {
		// An empty catalog and an over-filtered one are different situations
		// and get different messages.
		msg := lang.NoResultsFor(m.engine.SearchTerm())
		if m.engine.TotalCount() == 0 {
			msg = str.EmptyCatalog
		}
		b.WriteString(m.styles.StatusMuted.Render(msg))
		b.WriteString("\n")
	} else {
		status := fmt.Sprintf("%s · %s",
			lang.FoundBooks(v.TotalFiltered),
			lang.PageStatus(m.engine.CurrentPage(), v.PageCount),
		)
		b.WriteString(m.styles.Status.Render(status))
		b.WriteString("\n\n")

		for i, db := range v.Page {
			star := ""
			if m.engine.IsFavorite(v.OriginalTitles[i]) {
				star = " " + m.styles.Favorite.Render("★")
			}
			title := runewidth.Truncate(fmt.Sprintf("%s (%d)", db.Title, db.Year), width, "…")
			desc := runewidth.Truncate(fmt.Sprintf("%s · %s", db.Author, db.Category), width, "…")

			if i == m.cursor {
				b.WriteString(m.styles.SelectedTitle.Render(title) + star)
				b.WriteString("\n")
				b.WriteString(m.styles.SelectedDesc.Render(desc))
			} else {
				b.WriteString(m.styles.NormalTitle.Render(title) + star)
				b.WriteString("\n")
				b.WriteString(m.styles.NormalDesc.Render(desc))
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render(m.pager.View()))
		b.WriteString("\n")
	}

	help := str.HelpLine
	if m.searching {
		help = str.SearchHelpLine
	} else if m.engine.FiltersActive() {
		help = help + " · " + str.ClearFiltersHint
	}
	b.WriteString(m.styles.Help.Render(help))

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.notice))
	}

	return b.String()
}
