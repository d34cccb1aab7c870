package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"estante/browse"
	"estante/catalog"
	"estante/lang"
)

// DetailModel renders one book resolved for the active language. The lookup
// accepts either the original title or a translated one, so a row opened
// under any display language lands on the same book.
type DetailModel struct {
	engine *browse.Engine
	book   catalog.DisplayBook

	originalTitle string
	found         bool
	titleMissing  bool
	notice        string

	styles Styles
	width  int
	height int
}

func NewDetailModel(engine *browse.Engine, rawTitle string, styles Styles, width, height int) DetailModel {
	m := DetailModel{
		engine: engine,
		styles: styles,
		width:  width,
		height: height,
	}

	if strings.TrimSpace(rawTitle) == "" {
		m.titleMissing = true
		return m
	}

	book, err := catalog.FindByTitle(engine.Books(), rawTitle)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			m.notice = err.Error()
		}
		return m
	}

	m.found = true
	m.originalTitle = book.Title
	m.book = catalog.Resolve(book, engine.Language())
	return m
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "f":
			if m.found {
				if _, err := m.engine.ToggleFavorite(m.originalTitle); err != nil {
					m.notice = err.Error()
				}
			}
		}
	}

	return m, nil
}

func (m DetailModel) View() string {
	str := lang.Active().Detail

	if !m.found {
		msg := str.NotFound
		if m.titleMissing {
			msg = str.NotSpecified
		}
		body := m.styles.StatusMuted.Render(msg)
		if m.notice != "" {
			body += "\n" + m.styles.Error.Render(m.notice)
		}
		return body + "\n" + m.styles.Help.Render(str.BackHint)
	}

	width := m.width - 6
	if width > ListMaxWidth {
		width = ListMaxWidth
	}
	if width < 20 {
		width = 20
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.book.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Header.Render(lang.DetailByline(m.book.Author, m.book.Year)))
	b.WriteString("\n")

	if m.book.Category != "" {
		b.WriteString(m.styles.Header.Render(m.book.Category))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Body.Render(wordwrap.String(m.book.Description, width)))
	b.WriteString("\n")

	favHint := str.AddFavorite
	if m.engine.IsFavorite(m.originalTitle) {
		favHint = str.RemoveFavorite
	}
	b.WriteString(m.styles.Help.Render(favHint + " · " + str.BackHint))

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.notice))
	}

	return b.String()
}
