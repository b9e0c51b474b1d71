package state

import "testing"

func TestCursorMoveClamps(t *testing.T) {
	var c Cursor
	if c.Move(-1, 0, 3, 3) {
		t.Fatalf("expected no movement past the top")
	}
	if !c.Move(1, 2, 3, 3) || c.Row != 1 || c.Col != 2 {
		t.Fatalf("expected (1,2), got (%d,%d)", c.Row, c.Col)
	}
	if c.Move(0, 1, 3, 3) {
		t.Fatalf("expected no movement past the right edge")
	}
	if c.Move(1, 0, 0, 3) || c.Row != 0 || c.Col != 0 {
		t.Fatalf("expected empty grid to reset cursor")
	}
}

func TestCursorHomeEndPaging(t *testing.T) {
	c := Cursor{Row: 4}
	if !c.MoveHome(10, 3) || c.Row != 0 {
		t.Fatalf("expected home at row 0, got %d", c.Row)
	}
	if !c.MoveEnd(10, 3) || c.Row != 9 {
		t.Fatalf("expected end at row 9, got %d", c.Row)
	}
	if !c.MovePageUp(4, 10, 3) || c.Row != 5 {
		t.Fatalf("expected page up to row 5, got %d", c.Row)
	}
	if !c.MovePageDown(4, 10, 3) || c.Row != 9 {
		t.Fatalf("expected page down to row 9, got %d", c.Row)
	}
	if !c.MovePageUp(0, 10, 3) || c.Row != 0 {
		t.Fatalf("expected unknown page size to jump to start, got %d", c.Row)
	}
}

func TestCursorEnsureVisible(t *testing.T) {
	c := Cursor{Row: 7}
	c.EnsureVisible(10, 3)
	if c.ViewportOffset != 5 {
		t.Fatalf("expected offset 5, got %d", c.ViewportOffset)
	}
	c.Row = 2
	c.EnsureVisible(10, 3)
	if c.ViewportOffset != 2 {
		t.Fatalf("expected offset 2, got %d", c.ViewportOffset)
	}
	c.EnsureVisible(2, 3)
	if c.ViewportOffset != 0 || c.Row != 1 {
		t.Fatalf("expected offset reset for short grid, got row=%d offset=%d", c.Row, c.ViewportOffset)
	}
	c.EnsureVisible(0, 3)
	if c.Row != 0 || c.ViewportOffset != 0 {
		t.Fatalf("expected reset on empty grid")
	}
}
