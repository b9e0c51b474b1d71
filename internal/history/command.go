package history

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tilegrid/internal/grid"
	"github.com/atomicstack/tilegrid/internal/logging/events"
)

// Errors returned when a swap cannot be built.
var (
	ErrNilCell   = errors.New("swap: nil cell")
	ErrSameCell  = errors.New("swap: source and target are the same cell")
	ErrEmptyCell = errors.New("swap: cell holds no tile")
)

// Kind identifies the command variant.
type Kind int

const (
	KindAddRow Kind = iota
	KindSwap
)

func (k Kind) String() string {
	switch k {
	case KindAddRow:
		return "add-row"
	case KindSwap:
		return "swap"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Direction selects which half of the command contract Apply runs.
type Direction int

const (
	Execute Direction = iota
	Undo
	Redo
)

func (d Direction) String() string {
	switch d {
	case Execute:
		return "execute"
	case Undo:
		return "undo"
	case Redo:
		return "redo"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

type lifecycle int

const (
	statePending lifecycle = iota
	stateDone
	stateUndone
)

type addRowPayload struct {
	grid *grid.Grid
	row  *grid.Row
}

type swapPayload struct {
	source *grid.Cell
	target *grid.Cell
	// values captured at construction time
	sourceValue grid.Value
	targetValue grid.Value
}

// Command is a reversible unit of work. Only one of the payloads is set,
// selected by kind.
type Command struct {
	kind   Kind
	state  lifecycle
	addRow *addRowPayload
	swap   *swapPayload
}

// NewAddRow returns a command that appends a new row to g when executed.
func NewAddRow(g *grid.Grid) *Command {
	return &Command{
		kind:   KindAddRow,
		addRow: &addRowPayload{grid: g},
	}
}

// NewSwap returns a command exchanging the tile contents of two cells. Both
// cells must be distinct and hold a tile.
func NewSwap(source, target *grid.Cell) (*Command, error) {
	if source == nil || target == nil {
		return nil, ErrNilCell
	}
	if source == target {
		return nil, ErrSameCell
	}
	if !source.HasTile() || !target.HasTile() {
		return nil, ErrEmptyCell
	}
	return &Command{
		kind: KindSwap,
		swap: &swapPayload{
			source:      source,
			target:      target,
			sourceValue: source.Tile.Value(),
			targetValue: target.Tile.Value(),
		},
	}, nil
}

// Kind reports the command variant.
func (c *Command) Kind() Kind {
	return c.kind
}

// Done reports whether the command's effect is currently applied.
func (c *Command) Done() bool {
	return c.state == stateDone
}

// Row returns the row owned by an AddRow command, nil before the first
// execution or for other kinds.
func (c *Command) Row() *grid.Row {
	if c.addRow == nil {
		return nil
	}
	return c.addRow.row
}

// Cells returns the two cells of a Swap command.
func (c *Command) Cells() (source, target *grid.Cell) {
	if c.swap == nil {
		return nil, nil
	}
	return c.swap.source, c.swap.target
}

// Captured returns the values held by the swap cells when the command was
// built.
func (c *Command) Captured() (source, target grid.Value) {
	if c.swap == nil {
		return grid.Value{}, grid.Value{}
	}
	return c.swap.sourceValue, c.swap.targetValue
}

// Description returns a short human-readable summary.
func (c *Command) Description() string {
	switch c.kind {
	case KindAddRow:
		if c.addRow.row == nil {
			return "Add row"
		}
		labels := c.addRow.row.Labels()
		if len(labels) == 0 {
			return "Add row"
		}
		return fmt.Sprintf("Add row %s–%s", labels[0], labels[len(labels)-1])
	case KindSwap:
		return fmt.Sprintf("Swap %s ↔ %s", c.swap.sourceValue.Label, c.swap.targetValue.Label)
	default:
		return c.kind.String()
	}
}

// Apply runs the command in the given direction. It returns false without
// touching any state when the direction does not follow from the current
// lifecycle: execute only once, undo only after a do, redo only after an undo.
func (c *Command) Apply(d Direction) bool {
	var next lifecycle
	switch {
	case d == Execute && c.state == statePending:
		next = stateDone
	case d == Undo && c.state == stateDone:
		next = stateUndone
	case d == Redo && c.state == stateUndone:
		next = stateDone
	default:
		return false
	}
	switch c.kind {
	case KindAddRow:
		c.applyAddRow(d)
	case KindSwap:
		c.swapValues()
	default:
		return false
	}
	c.state = next
	return true
}

func (c *Command) applyAddRow(d Direction) {
	p := c.addRow
	switch d {
	case Execute:
		p.row = p.grid.NewRow()
		fallthrough
	case Redo:
		if p.grid.Attach(p.row) {
			events.Grid.Attach(p.row.ID, p.row.Labels())
		}
	case Undo:
		if p.grid.Detach(p.row) {
			events.Grid.Detach(p.row.ID)
		}
	}
}

func (c *Command) swapValues() {
	p := c.swap
	if !p.source.HasTile() || !p.target.HasTile() {
		return
	}
	events.Grid.Swap(p.source.Tile.Label, p.target.Tile.Label)
	grid.Swap(p.source.Tile, p.target.Tile)
}
