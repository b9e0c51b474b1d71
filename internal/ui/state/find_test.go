package state

import (
	"reflect"
	"testing"
)

func TestFindEditing(t *testing.T) {
	var f Find
	f.Open()
	if !f.Insert("15") || f.Query != "15" || f.CursorPos() != 2 {
		t.Fatalf("unexpected state %#v", f)
	}
	f.MoveLeft()
	f.Insert("0")
	if f.Query != "105" {
		t.Fatalf("expected insert at cursor, got %q", f.Query)
	}
	if f.Insert("\x1b") {
		t.Fatalf("expected control characters to be rejected")
	}
	if !f.DeleteBackward() || f.Query != "15" {
		t.Fatalf("expected backspace to remove the inserted rune, got %q", f.Query)
	}
	f.MoveRight()
	f.Insert(" 12")
	if !f.DeleteWordBackward() || f.Query != "15 " {
		t.Fatalf("expected word delete, got %q", f.Query)
	}
	f.Close()
	if f.Active || f.Query != "" {
		t.Fatalf("expected close to reset")
	}
	if f.DeleteBackward() || f.MoveLeft() || f.MoveRight() {
		t.Fatalf("expected edits on empty query to be no-ops")
	}
}

func TestMatchesRanksExactFirst(t *testing.T) {
	labels := []string{"1000", "1100", "1200", "11000", "2100"}
	got := Matches("1100", labels)
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if Matches("  ", labels) != nil {
		t.Fatalf("expected blank query to match nothing")
	}
	if Matches("9", labels) != nil {
		t.Fatalf("expected no matches")
	}
}
