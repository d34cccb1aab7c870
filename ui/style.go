package ui

import (
	gloss "github.com/charmbracelet/lipgloss"
)

const (
	ListMaxWidth  = 76
	CardPadLeft   = 2
	CardInnerPad  = 1
	SkeletonRows  = 6
	SkeletonWidth = 36
)

// Palette is one named color set. Two are shipped, matching the persisted
// theme preference values "light" and "dark".
type Palette struct {
	Text    gloss.Color
	Subtle  gloss.Color
	Muted   gloss.Color
	Accent  gloss.Color
	Warn    gloss.Color
	Star    gloss.Color
	Border  gloss.Color
	Surface gloss.Color
}

var (
	DarkPalette = Palette{
		Text:    gloss.Color("#cdd6f4"),
		Subtle:  gloss.Color("#bac2de"),
		Muted:   gloss.Color("#585b70"),
		Accent:  gloss.Color("#89b4fa"),
		Warn:    gloss.Color("#f38ba8"),
		Star:    gloss.Color("#f9e2af"),
		Border:  gloss.Color("#363a4f"),
		Surface: gloss.Color("#313244"),
	}

	LightPalette = Palette{
		Text:    gloss.Color("#4c4f69"),
		Subtle:  gloss.Color("#5c5f77"),
		Muted:   gloss.Color("#9ca0b0"),
		Accent:  gloss.Color("#1e66f5"),
		Warn:    gloss.Color("#d20f39"),
		Star:    gloss.Color("#df8e1d"),
		Border:  gloss.Color("#bcc0cc"),
		Surface: gloss.Color("#ccd0da"),
	}
)

func PaletteFor(theme string) Palette {
	if theme == "dark" {
		return DarkPalette
	}
	return LightPalette
}

// Styles bundles every style the browse and detail screens render with, so a
// theme switch is a single struct swap.
type Styles struct {
	Title  gloss.Style
	Header gloss.Style

	SelectedTitle gloss.Style
	SelectedDesc  gloss.Style
	NormalTitle   gloss.Style
	NormalDesc    gloss.Style
	Favorite      gloss.Style

	FilterActive gloss.Style
	FilterIdle   gloss.Style

	Status      gloss.Style
	StatusMuted gloss.Style
	Error       gloss.Style
	Skeleton    gloss.Style
	Help        gloss.Style

	PagerActive gloss.Style
	PagerIdle   gloss.Style

	Prompt       gloss.Style
	PromptText   gloss.Style
	PromptCursor gloss.Style

	Body gloss.Style
}

func NewStyles(p Palette) Styles {
	return Styles{
		Title: gloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			PaddingLeft(CardPadLeft).
			PaddingTop(1),

		Header: gloss.NewStyle().
			Foreground(p.Subtle).
			PaddingLeft(CardPadLeft),

		SelectedTitle: gloss.NewStyle().
			Foreground(p.Accent).
			BorderLeft(true).
			BorderStyle(gloss.NormalBorder()).
			BorderForeground(p.Accent).
			PaddingLeft(CardInnerPad).
			Bold(true),

		SelectedDesc: gloss.NewStyle().
			Foreground(p.Subtle).
			BorderLeft(true).
			BorderStyle(gloss.NormalBorder()).
			BorderForeground(p.Accent).
			PaddingLeft(CardInnerPad),

		NormalTitle: gloss.NewStyle().
			Foreground(p.Text).
			PaddingLeft(CardPadLeft),

		NormalDesc: gloss.NewStyle().
			Foreground(p.Muted).
			PaddingLeft(CardPadLeft),

		Favorite: gloss.NewStyle().
			Foreground(p.Star),

		FilterActive: gloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Underline(true),

		FilterIdle: gloss.NewStyle().
			Foreground(p.Muted),

		Status: gloss.NewStyle().
			Foreground(p.Accent).
			PaddingLeft(CardPadLeft).
			PaddingTop(1),

		StatusMuted: gloss.NewStyle().
			Foreground(p.Muted).
			PaddingLeft(CardPadLeft).
			PaddingTop(1),

		Error: gloss.NewStyle().
			Foreground(p.Warn).
			Padding(2).
			Bold(true),

		Skeleton: gloss.NewStyle().
			Foreground(p.Surface).
			PaddingLeft(CardPadLeft),

		Help: gloss.NewStyle().
			Foreground(p.Muted).
			PaddingLeft(CardPadLeft).
			PaddingTop(1),

		PagerActive: gloss.NewStyle().
			Foreground(p.Accent),

		PagerIdle: gloss.NewStyle().
			Foreground(p.Muted),

		Prompt: gloss.NewStyle().
			Foreground(p.Accent).
			PaddingLeft(CardInnerPad).
			Bold(true),

		PromptText: gloss.NewStyle().
			Foreground(p.Text),

		PromptCursor: gloss.NewStyle().
			Foreground(p.Text),

		Body: gloss.NewStyle().
			Foreground(p.Text).
			PaddingLeft(CardPadLeft).
			PaddingRight(1),
	}
}
