package theme

import (
	"charm.land/lipgloss/v2"
	"github.com/atomicstack/tilegrid/internal/grid"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header       lipgloss.Style
	Tile         lipgloss.Style
	EmptyCell    lipgloss.Style
	Cursor       lipgloss.Style
	DropTarget   lipgloss.Style
	Match        lipgloss.Style
	Ghost        lipgloss.Style
	Info         lipgloss.Style
	Error        lipgloss.Style
	Footer       lipgloss.Style
	FindPrompt   lipgloss.Style
	Find         lipgloss.Style
	PanelTitle   lipgloss.Style
	PanelItem    lipgloss.Style
	PanelUndone  lipgloss.Style
	PanelCurrent lipgloss.Style
	Panel        lipgloss.Style
}

var defaultStyles = Styles{
	Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	Tile:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true),
	EmptyCell:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	Cursor:       lipgloss.NewStyle().Underline(true),
	DropTarget:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	Match:        lipgloss.NewStyle().Italic(true),
	Ghost:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	Footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	FindPrompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	Find:         lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	PanelTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	PanelItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	PanelUndone:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
	PanelCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	Panel:        lipgloss.NewStyle().PaddingLeft(2),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// TileStyle returns the base tile style painted with the tile color.
func (s *Styles) TileStyle(c grid.Color) lipgloss.Style {
	if c == "" {
		return s.Tile
	}
	return s.Tile.Background(lipgloss.Color(string(c)))
}

// FlashStyle highlights a tile that just changed.
func (s *Styles) FlashStyle(c grid.Color) lipgloss.Style {
	return s.TileStyle(c).Foreground(lipgloss.Color("255")).Underline(true)
}
