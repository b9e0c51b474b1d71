package history

import (
	"errors"
	"reflect"
	"testing"

	"github.com/atomicstack/tilegrid/internal/grid"
)

func snapshot(g *grid.Grid) [][]grid.Value {
	rows := g.Rows()
	out := make([][]grid.Value, len(rows))
	for i, row := range rows {
		for _, cell := range row.Cells {
			out[i] = append(out[i], cell.Tile.Value())
		}
	}
	return out
}

func checkAccounting(t *testing.T, m *Manager) {
	t.Helper()
	if m.UndoLen()+m.RedoLen() != m.Executed()-m.Discarded() {
		t.Fatalf("accounting broken: undo=%d redo=%d executed=%d discarded=%d",
			m.UndoLen(), m.RedoLen(), m.Executed(), m.Discarded())
	}
	seen := map[*Command]struct{}{}
	for _, entry := range m.Entries() {
		if _, dup := seen[entry.Command]; dup {
			t.Fatalf("command %q present twice in history", entry.Command.Description())
		}
		seen[entry.Command] = struct{}{}
	}
}

func TestAddRowUndoRedoScenario(t *testing.T) {
	g := grid.New()
	h := New()

	cmd := NewAddRow(g)
	if !h.Execute(cmd) {
		t.Fatalf("expected execute to succeed")
	}
	if g.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", g.Len())
	}
	want := []string{"1000", "1100", "1200"}
	if got := g.Rows()[0].Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected labels %v, got %v", want, got)
	}
	row := cmd.Row()

	if !h.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if g.Len() != 0 {
		t.Fatalf("expected empty grid after undo, got %d rows", g.Len())
	}
	if row.Attached() {
		t.Fatalf("expected row to be detached")
	}

	if !h.Redo() {
		t.Fatalf("expected redo to succeed")
	}
	if g.Len() != 1 || g.Rows()[0] != row {
		t.Fatalf("expected the same row to be reattached")
	}
	if got := g.Rows()[0].Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected labels %v after redo, got %v", want, got)
	}
	checkAccounting(t, h)
}

func TestRepeatedUndoRedoCyclesKeepRow(t *testing.T) {
	g := grid.New()
	h := New()
	cmd := NewAddRow(g)
	h.Execute(cmd)
	row := cmd.Row()
	for i := 0; i < 5; i++ {
		h.Undo()
		h.Redo()
	}
	if g.Len() != 1 || g.Rows()[0] != row {
		t.Fatalf("expected row identity to survive cycles")
	}
	if g.Labels().Current() != 1200 {
		t.Fatalf("expected counter to advance only once, got %d", g.Labels().Current())
	}
}

func TestSwapUndoRedoScenario(t *testing.T) {
	g := grid.New()
	h := New()
	h.Execute(NewAddRow(g))
	h.Execute(NewAddRow(g))

	source := g.Cell(0, 0)
	target := g.Cell(1, 2)
	before := snapshot(g)
	sourceBefore := source.Tile.Value()
	targetBefore := target.Tile.Value()

	cmd, err := NewSwap(source, target)
	if err != nil {
		t.Fatalf("NewSwap: %v", err)
	}
	h.Execute(cmd)
	if source.Tile.Value() != targetBefore || target.Tile.Value() != sourceBefore {
		t.Fatalf("expected values exchanged, got %#v / %#v", source.Tile.Value(), target.Tile.Value())
	}
	after := snapshot(g)

	h.Undo()
	if !reflect.DeepEqual(snapshot(g), before) {
		t.Fatalf("expected undo to restore pre-swap state")
	}
	h.Redo()
	if !reflect.DeepEqual(snapshot(g), after) {
		t.Fatalf("expected redo to restore post-swap state")
	}
	checkAccounting(t, h)
}

func TestSwapCapturesValuesAndColorsDrift(t *testing.T) {
	g := grid.New()
	g.Attach(g.NewRow())
	a, b := g.Cell(0, 0), g.Cell(0, 1)
	cmd, err := NewSwap(a, b)
	if err != nil {
		t.Fatalf("NewSwap: %v", err)
	}
	cmd.Apply(Execute)
	src, dst := cmd.Captured()
	if src.Label != "1000" || dst.Label != "1100" {
		t.Fatalf("unexpected captured values: %#v %#v", src, dst)
	}
	// color travels with the label, not the cell
	if a.Tile.Color != dst.Color || a.Tile.Label != "1100" {
		t.Fatalf("expected color to move with label, got %#v", a.Tile)
	}
	if cmd.Description() != "Swap 1000 ↔ 1100" {
		t.Fatalf("unexpected description %q", cmd.Description())
	}
}

func TestNewSwapRejectsInvalidCells(t *testing.T) {
	g := grid.New()
	g.Attach(g.NewRow())
	a, b := g.Cell(0, 0), g.Cell(0, 1)
	if _, err := NewSwap(nil, b); !errors.Is(err, ErrNilCell) {
		t.Fatalf("expected ErrNilCell, got %v", err)
	}
	if _, err := NewSwap(a, a); !errors.Is(err, ErrSameCell) {
		t.Fatalf("expected ErrSameCell, got %v", err)
	}
	b.Tile = nil
	if _, err := NewSwap(a, b); !errors.Is(err, ErrEmptyCell) {
		t.Fatalf("expected ErrEmptyCell, got %v", err)
	}
}

func TestExecuteClearsRedo(t *testing.T) {
	g := grid.New()
	h := New()
	h.Execute(NewAddRow(g))
	h.Execute(NewAddRow(g))
	h.Undo()
	if !h.CanRedo() {
		t.Fatalf("expected redo to be available after undo")
	}
	h.Execute(NewAddRow(g))
	if h.CanRedo() {
		t.Fatalf("expected fresh action to discard redo history")
	}
	if h.Redo() {
		t.Fatalf("expected redo to be a no-op")
	}
	if g.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", g.Len())
	}
	// the discarded row's labels are never reused
	if got := g.Rows()[1].Labels()[0]; got != "1600" {
		t.Fatalf("expected new row to start at 1600, got %s", got)
	}
	if h.Discarded() != 1 {
		t.Fatalf("expected 1 discarded command, got %d", h.Discarded())
	}
	checkAccounting(t, h)
}

func TestEmptyStacksAreNoOps(t *testing.T) {
	h := New()
	if h.Undo() || h.Redo() {
		t.Fatalf("expected no-ops on empty history")
	}
	if h.PeekUndo() != nil || h.PeekRedo() != nil {
		t.Fatalf("expected nothing to peek")
	}
	checkAccounting(t, h)
}

func TestUndoRedoStrictLIFO(t *testing.T) {
	g := grid.New()
	h := New()
	h.Execute(NewAddRow(g))
	h.Execute(NewAddRow(g))
	swap, err := NewSwap(g.Cell(0, 0), g.Cell(1, 0))
	if err != nil {
		t.Fatalf("NewSwap: %v", err)
	}
	h.Execute(swap)

	if h.PeekUndo() != swap {
		t.Fatalf("expected swap on top of undo stack")
	}
	h.Undo()
	if h.PeekRedo() != swap || h.PeekUndo().Kind() != KindAddRow {
		t.Fatalf("expected swap moved to redo stack")
	}
	h.Undo()
	h.Undo()
	if g.Len() != 0 {
		t.Fatalf("expected empty grid, got %d rows", g.Len())
	}
	h.Redo()
	h.Redo()
	h.Redo()
	if g.Cell(0, 0).Tile.Label != "1300" || g.Cell(1, 0).Tile.Label != "1000" {
		t.Fatalf("expected swap re-applied, got %s/%s", g.Cell(0, 0).Tile.Label, g.Cell(1, 0).Tile.Label)
	}
	checkAccounting(t, h)
}

func TestApplyRespectsLifecycle(t *testing.T) {
	g := grid.New()
	cmd := NewAddRow(g)
	if cmd.Apply(Undo) || cmd.Apply(Redo) {
		t.Fatalf("expected undo/redo before execute to be ignored")
	}
	if !cmd.Apply(Execute) {
		t.Fatalf("expected first execute to run")
	}
	if cmd.Apply(Execute) {
		t.Fatalf("expected second execute to be ignored")
	}
	if g.Len() != 1 {
		t.Fatalf("expected exactly one row, got %d", g.Len())
	}
	if cmd.Apply(Redo) {
		t.Fatalf("expected redo while done to be ignored")
	}
	h := New()
	if h.Execute(cmd) {
		t.Fatalf("expected history to reject an already executed command")
	}
	if h.UndoLen() != 0 {
		t.Fatalf("expected nothing recorded")
	}
}

func TestLimitTrimsOldestAndCountsDiscarded(t *testing.T) {
	g := grid.New()
	h := New(WithLimit(2))
	for i := 0; i < 4; i++ {
		h.Execute(NewAddRow(g))
	}
	if h.UndoLen() != 2 {
		t.Fatalf("expected undo depth 2, got %d", h.UndoLen())
	}
	if h.Discarded() != 2 {
		t.Fatalf("expected 2 trimmed commands, got %d", h.Discarded())
	}
	checkAccounting(t, h)
	h.Undo()
	h.Undo()
	if h.Undo() {
		t.Fatalf("expected trimmed commands to be unreachable")
	}
	if g.Len() != 2 {
		t.Fatalf("expected 2 rows left, got %d", g.Len())
	}
}

func TestEntriesOrder(t *testing.T) {
	g := grid.New()
	h := New()
	first := NewAddRow(g)
	second := NewAddRow(g)
	third := NewAddRow(g)
	h.Execute(first)
	h.Execute(second)
	h.Execute(third)
	h.Undo()
	h.Undo()
	entries := h.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Command != first || entries[0].Undone {
		t.Fatalf("expected first entry done")
	}
	if entries[1].Command != second || !entries[1].Undone {
		t.Fatalf("expected second entry next to redo")
	}
	if entries[2].Command != third || !entries[2].Undone {
		t.Fatalf("expected third entry last to redo")
	}
}

func TestAddRowDescription(t *testing.T) {
	g := grid.New()
	cmd := NewAddRow(g)
	if cmd.Description() != "Add row" {
		t.Fatalf("unexpected pending description %q", cmd.Description())
	}
	cmd.Apply(Execute)
	if cmd.Description() != "Add row 1000–1200" {
		t.Fatalf("unexpected description %q", cmd.Description())
	}
}
