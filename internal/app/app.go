package app

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tilegrid/internal/grid"
	"github.com/atomicstack/tilegrid/internal/history"
	"github.com/atomicstack/tilegrid/internal/logging/events"
	"github.com/atomicstack/tilegrid/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	Rows         int
	HistoryLimit int
	Palette      grid.Palette
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	program := tea.NewProgram(newModel(cfg))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// newModel builds the grid and its history and seeds the initial rows.
// Seeded rows are attached directly so they cannot be undone.
func newModel(cfg Config) *ui.Model {
	var opts []grid.Option
	if len(cfg.Palette) > 0 {
		opts = append(opts, grid.WithPalette(cfg.Palette))
	}
	g := grid.New(opts...)
	for i := 0; i < cfg.Rows; i++ {
		g.Attach(g.NewRow())
	}
	if cfg.Rows > 0 {
		events.App.Seed(cfg.Rows)
	}
	h := history.New(history.WithLimit(cfg.HistoryLimit))
	return ui.NewModel(g, h, cfg.Width, cfg.Height, cfg.ShowFooter)
}
