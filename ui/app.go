package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"estante/browse"
	"estante/catalog"
	"estante/lang"
	"estante/prefs"
	"estante/utils"
)

type AppState int

const (
	StateLoading AppState = iota
	StateBrowse
	StateDetail
	StateError
)

type catalogLoadedMsg struct {
	Books []catalog.Book
}

type errMsg struct {
	err error
}

type AppModel struct {
	state    AppState
	browseUI BrowseModel
	detailUI DetailModel

	engine  *browse.Engine
	prefs   *prefs.Prefs
	source  string
	theme   string
	styles  Styles
	loadErr error

	width  int
	height int
}

func NewAppModel(p *prefs.Prefs, source string) AppModel {
	theme := p.Theme()
	return AppModel{
		state:  StateLoading,
		prefs:  p,
		source: source,
		theme:  theme,
		styles: NewStyles(PaletteFor(theme)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return loadCatalogCmd(m.source)
}

func loadCatalogCmd(source string) tea.Cmd {
	return func() tea.Msg {
		books, err := catalog.Load(source)
		if err != nil {
			return errMsg{err: err}
		}
		return catalogLoadedMsg{Books: books}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	switch m.state {
	case StateLoading:
		return m.handleStateLoading(msg)
	case StateBrowse:
		return m.handleStateBrowse(msg)
	case StateDetail:
		return m.handleStateDetail(msg)
	case StateError:
		return m.handleStateError(msg)
	default:
		return m, nil
	}
}

func (m AppModel) handleStateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.engine = browse.New(msg.Books, m.prefs)
		m.browseUI = NewBrowseModel(m.engine, m.theme, m.width, m.height)
		m.state = StateBrowse
	case errMsg:
		m.loadErr = msg.err
		m.state = StateError
	}
	return m, nil
}

func (m AppModel) handleStateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.browseUI, cmd = m.browseUI.Update(msg)

	switch msg := msg.(type) {
	case openDetailMsg:
		m.detailUI = NewDetailModel(m.engine, msg.Title, m.styles, m.width, m.height)
		m.state = StateDetail

	case themeToggledMsg:
		next := "dark"
		if m.theme == "dark" {
			next = "light"
		}
		if err := m.prefs.SetTheme(next); err != nil {
			m.browseUI.notice = err.Error()
			return m, cmd
		}
		m.theme = next
		m.styles = NewStyles(PaletteFor(next))
		m.browseUI.applyTheme(next)

	case prefsResetMsg:
		// Wipe the store and rebuild the whole browse state from defaults,
		// the way clearing site data resets the page.
		if err := m.prefs.Reset(); err != nil {
			m.browseUI.notice = err.Error()
			return m, cmd
		}
		books := m.engine.Books()
		lang.SetForLanguage(m.prefs.Language())
		m.theme = m.prefs.Theme()
		m.styles = NewStyles(PaletteFor(m.theme))
		m.engine = browse.New(books, m.prefs)
		m.browseUI = NewBrowseModel(m.engine, m.theme, m.width, m.height)
	}

	return m, cmd
}

func (m AppModel) handleStateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = StateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.detailUI, cmd = m.detailUI.Update(msg)
	return m, cmd
}

func (m AppModel) handleStateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m AppModel) View() string {
	switch m.state {
	case StateLoading:
		return m.loadingView()
	case StateBrowse:
		return m.browseUI.View()
	case StateDetail:
		return m.detailUI.View()
	case StateError:
		return m.errorView()
	default:
		return lang.Active().Common.UnknownState
	}
}

// loadingView mimics the skeleton cards shown while the catalog downloads.
func (m AppModel) loadingView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(lang.Active().Common.AppTitle))
	b.WriteString("\n")
	b.WriteString(m.styles.StatusMuted.Render(lang.Active().Common.Loading))
	b.WriteString("\n\n")

	bar := strings.Repeat("░", SkeletonWidth)
	for i := 0; i < SkeletonRows; i++ {
		b.WriteString(m.styles.Skeleton.Render(bar))
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) errorView() string {
	var b strings.Builder
	b.WriteString(m.styles.Error.Render(lang.Active().Browse.LoadFailed))
	b.WriteString("\n")
	if m.loadErr != nil {
		b.WriteString(m.styles.StatusMuted.Render(m.loadErr.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func RunApp() {
	path := utils.AppConfig.Prefs.Path
	if path == "" {
		var err error
		path, err = prefs.DefaultPath()
		if err != nil {
			fmt.Println("Error resolving preferences path:", err)
			os.Exit(1)
		}
	}

	p := prefs.New(prefs.NewFileStore(path))
	lang.SetForLanguage(p.Language())

	source := utils.AppConfig.Catalog.Source
	if source == "" {
		source = utils.DefaultCatalogSource
	}

	app := NewAppModel(p, source)

	prog := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
