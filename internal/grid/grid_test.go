package grid

import (
	"strconv"
	"testing"
)

func TestNewRowLabelsAndColors(t *testing.T) {
	g := New()
	row := g.NewRow()
	want := []string{"1000", "1100", "1200"}
	got := row.Labels()
	if len(got) != len(want) {
		t.Fatalf("expected %d labels, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	colors := []Color{"#33ff57", "#3357ff", "#ff33a1"}
	for i, cell := range row.Cells {
		if cell.Tile.Color != colors[i] {
			t.Fatalf("color %d: expected %s, got %s", i, colors[i], cell.Tile.Color)
		}
		if cell.Column() != i || cell.Row() != row {
			t.Fatalf("cell %d has wrong back-references", i)
		}
	}
	if row.Attached() {
		t.Fatalf("expected new row to start detached")
	}
	if g.Len() != 0 {
		t.Fatalf("expected grid to stay empty until attach, got %d rows", g.Len())
	}
}

func TestLabelsStrictlyIncreaseAcrossRows(t *testing.T) {
	g := New()
	seen := map[string]struct{}{}
	last := -1
	for i := 0; i < 20; i++ {
		row := g.NewRow()
		if i%3 == 0 {
			g.Attach(row)
			g.Detach(row)
		}
		for _, label := range row.Labels() {
			value, err := strconv.Atoi(label)
			if err != nil {
				t.Fatalf("label %q is not numeric: %v", label, err)
			}
			if value <= last {
				t.Fatalf("label %d not greater than previous %d", value, last)
			}
			if _, dup := seen[label]; dup {
				t.Fatalf("label %s reused", label)
			}
			seen[label] = struct{}{}
			last = value
		}
	}
}

func TestAttachDetachKeepsIdentity(t *testing.T) {
	g := New()
	first := g.NewRow()
	second := g.NewRow()
	if !g.Attach(first) || !g.Attach(second) {
		t.Fatalf("expected attach to succeed")
	}
	if g.Attach(first) {
		t.Fatalf("expected second attach of same row to be a no-op")
	}
	if !g.Detach(second) {
		t.Fatalf("expected detach to succeed")
	}
	if g.Detach(second) {
		t.Fatalf("expected detach of detached row to be a no-op")
	}
	if g.Len() != 1 || g.Rows()[0] != first {
		t.Fatalf("expected only first row attached")
	}
	g.Attach(second)
	if g.Rows()[1] != second {
		t.Fatalf("expected reattached row at the end")
	}
	if got := second.Labels(); got[0] != "1300" {
		t.Fatalf("expected reattached row to keep labels, got %v", got)
	}
}

func TestCellLookupAndLocate(t *testing.T) {
	g := New()
	g.Attach(g.NewRow())
	g.Attach(g.NewRow())
	cell := g.Cell(1, 2)
	if cell == nil || cell.Tile.Label != "1500" {
		t.Fatalf("unexpected cell at (1,2): %#v", cell)
	}
	row, col, ok := g.Locate(cell)
	if !ok || row != 1 || col != 2 {
		t.Fatalf("expected (1,2), got (%d,%d) ok=%v", row, col, ok)
	}
	if g.Cell(2, 0) != nil || g.Cell(0, Columns) != nil || g.Cell(-1, 0) != nil {
		t.Fatalf("expected out-of-range lookups to return nil")
	}
	if len(g.Cells()) != 6 || len(g.Tiles()) != 6 {
		t.Fatalf("expected 6 cells and tiles, got %d/%d", len(g.Cells()), len(g.Tiles()))
	}
	g.Detach(cell.Row())
	if _, _, ok := g.Locate(cell); ok {
		t.Fatalf("expected detached cell to be unlocatable")
	}
}

func TestSwapIsInvolution(t *testing.T) {
	a := &Tile{Label: "1000", Color: "#33ff57"}
	b := &Tile{Label: "1500", Color: "#ff33a1"}
	Swap(a, b)
	if a.Label != "1500" || a.Color != "#ff33a1" || b.Label != "1000" || b.Color != "#33ff57" {
		t.Fatalf("unexpected swap result: %#v %#v", a, b)
	}
	Swap(a, b)
	if a.Label != "1000" || a.Color != "#33ff57" || b.Label != "1500" || b.Color != "#ff33a1" {
		t.Fatalf("expected double swap to restore: %#v %#v", a, b)
	}
}

func TestPaletteColorFor(t *testing.T) {
	if got := DefaultPalette.ColorFor(1000); got != "#33ff57" {
		t.Fatalf("expected #33ff57, got %s", got)
	}
	if got := DefaultPalette.ColorFor(-1); got != DefaultPalette[len(DefaultPalette)-1] {
		t.Fatalf("expected negative values to wrap, got %s", got)
	}
	if got := Palette(nil).ColorFor(5); got != "" {
		t.Fatalf("expected empty color for empty palette, got %s", got)
	}
}

func TestWithPalette(t *testing.T) {
	g := New(WithPalette(Palette{"#000000", "#ffffff"}))
	row := g.NewRow()
	// 1000 % 2 = 0, 1100 % 2 = 0
	if row.Cells[0].Tile.Color != "#000000" || row.Cells[1].Tile.Color != "#000000" {
		t.Fatalf("unexpected colors: %#v", row.Labels())
	}
}

func TestParseColor(t *testing.T) {
	if _, err := ParseColor("#a133ff"); err != nil {
		t.Fatalf("expected valid color, got %v", err)
	}
	for _, bad := range []string{"", "a133ff", "#a133f", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
