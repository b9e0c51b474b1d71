// Package grid holds the tile grid model: attached rows of three cells, each
// cell holding at most one tile. Rows are created detached, attached to the
// end of the grid, and detached again without being destroyed, so a row keeps
// its identity and its tile labels across any number of attach cycles.
package grid

// Columns is the fixed number of cells per row.
const Columns = 3

// Cell is a slot in a row. Cells are referenced by pointer; the pointer is
// stable for the life of the row.
type Cell struct {
	Tile *Tile
	row  *Row
	col  int
}

// Row returns the row owning the cell.
func (c *Cell) Row() *Row {
	if c == nil {
		return nil
	}
	return c.row
}

// Column returns the column index of the cell within its row.
func (c *Cell) Column() int {
	if c == nil {
		return -1
	}
	return c.col
}

// HasTile reports whether the cell currently holds a tile.
func (c *Cell) HasTile() bool {
	return c != nil && c.Tile != nil
}

// Row is a fixed-size group of cells, the unit of addition.
type Row struct {
	ID       int
	Cells    [Columns]*Cell
	attached bool
}

// Attached reports whether the row is part of the visible grid.
func (r *Row) Attached() bool {
	return r != nil && r.attached
}

// Labels returns the tile labels of the row in column order.
func (r *Row) Labels() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, Columns)
	for _, cell := range r.Cells {
		if cell.HasTile() {
			out = append(out, cell.Tile.Label)
		}
	}
	return out
}

// Grid is the ordered set of attached rows plus the label source used to
// create new ones.
type Grid struct {
	rows    []*Row
	labels  *LabelSource
	palette Palette
	nextID  int
}

// Option customises a Grid.
type Option func(*Grid)

// WithPalette overrides the tile palette. Empty palettes are ignored.
func WithPalette(p Palette) Option {
	return func(g *Grid) {
		if len(p) == 0 {
			return
		}
		g.palette = append(Palette(nil), p...)
	}
}

// WithLabelStart overrides the initial counter value.
func WithLabelStart(start int) Option {
	return func(g *Grid) {
		g.labels = NewLabelSource(start)
	}
}

// New returns an empty grid.
func New(opts ...Option) *Grid {
	g := &Grid{
		labels:  NewLabelSource(DefaultLabelStart),
		palette: DefaultPalette,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Palette returns the palette used for new tiles.
func (g *Grid) Palette() Palette {
	return g.palette
}

// Labels exposes the grid's label source.
func (g *Grid) Labels() *LabelSource {
	return g.labels
}

// NewRow builds a detached row of Columns freshly labelled tiles. Each tile
// advances the label counter once and takes its color from the palette.
func (g *Grid) NewRow() *Row {
	g.nextID++
	row := &Row{ID: g.nextID}
	for col := 0; col < Columns; col++ {
		value := g.labels.Next()
		row.Cells[col] = &Cell{
			Tile: &Tile{Label: formatLabel(value), Color: g.palette.ColorFor(value)},
			row:  row,
			col:  col,
		}
	}
	return row
}

// Attach appends the row to the end of the grid. Attaching an attached row
// is a no-op.
func (g *Grid) Attach(r *Row) bool {
	if r == nil || r.attached {
		return false
	}
	r.attached = true
	g.rows = append(g.rows, r)
	return true
}

// Detach removes the row from the visible grid while keeping its cells and
// tiles intact.
func (g *Grid) Detach(r *Row) bool {
	if r == nil || !r.attached {
		return false
	}
	for i, existing := range g.rows {
		if existing == r {
			g.rows = append(g.rows[:i], g.rows[i+1:]...)
			r.attached = false
			return true
		}
	}
	return false
}

// Len returns the number of attached rows.
func (g *Grid) Len() int {
	return len(g.rows)
}

// Rows returns the attached rows in display order.
func (g *Grid) Rows() []*Row {
	if len(g.rows) == 0 {
		return nil
	}
	out := make([]*Row, len(g.rows))
	copy(out, g.rows)
	return out
}

// Cell returns the cell at (row, col) or nil when out of range.
func (g *Grid) Cell(row, col int) *Cell {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= Columns {
		return nil
	}
	return g.rows[row].Cells[col]
}

// Cells enumerates every attached cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, len(g.rows)*Columns)
	for _, row := range g.rows {
		out = append(out, row.Cells[:]...)
	}
	return out
}

// Tiles enumerates every tile held by an attached cell.
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, 0, len(g.rows)*Columns)
	for _, cell := range g.Cells() {
		if cell.HasTile() {
			out = append(out, cell.Tile)
		}
	}
	return out
}

// Locate resolves an attached cell to its (row, col) position.
func (g *Grid) Locate(c *Cell) (row, col int, ok bool) {
	if c == nil || c.row == nil || !c.row.attached {
		return -1, -1, false
	}
	for i, r := range g.rows {
		if r == c.row {
			return i, c.col, true
		}
	}
	return -1, -1, false
}
