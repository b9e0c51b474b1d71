package state

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Find holds the tile-finder query line.
type Find struct {
	Active bool
	Query  string
	Pos    int
}

// Open activates the finder with an empty query.
func (f *Find) Open() {
	f.Active = true
	f.Query = ""
	f.Pos = 0
}

// Close deactivates the finder and clears the query.
func (f *Find) Close() {
	f.Active = false
	f.Query = ""
	f.Pos = 0
}

// CursorPos returns the rune offset of the query cursor.
func (f *Find) CursorPos() int {
	n := len([]rune(f.Query))
	if f.Pos < 0 {
		return 0
	}
	if f.Pos > n {
		return n
	}
	return f.Pos
}

// Insert inserts text at the cursor. Control characters are rejected.
func (f *Find) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	for _, r := range insert {
		if unicode.IsControl(r) {
			return false
		}
	}
	runes := []rune(f.Query)
	pos := f.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	f.Query = string(updated)
	f.Pos = pos + len(insert)
	return true
}

// DeleteBackward removes the rune before the cursor.
func (f *Find) DeleteBackward() bool {
	runes := []rune(f.Query)
	pos := f.CursorPos()
	if pos == 0 {
		return false
	}
	f.Query = string(append(runes[:pos-1], runes[pos:]...))
	f.Pos = pos - 1
	return true
}

// DeleteWordBackward removes the word preceding the cursor.
func (f *Find) DeleteWordBackward() bool {
	runes := []rune(f.Query)
	pos := f.CursorPos()
	if pos == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	f.Query = string(append(runes[:i], runes[pos:]...))
	f.Pos = i
	return true
}

// MoveLeft and MoveRight move the query cursor by one rune.
func (f *Find) MoveLeft() bool {
	pos := f.CursorPos()
	if pos == 0 {
		return false
	}
	f.Pos = pos - 1
	return true
}

func (f *Find) MoveRight() bool {
	pos := f.CursorPos()
	if pos >= len([]rune(f.Query)) {
		return false
	}
	f.Pos = pos + 1
	return true
}

// Matches returns the indexes of labels matching query, best match first.
// Exact matches rank ahead of prefix matches, which rank ahead of fuzzy
// matches; ties keep the original order.
func Matches(query string, labels []string) []int {
	query = strings.TrimSpace(query)
	if query == "" || len(labels) == 0 {
		return nil
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return nil
	}
	tier := func(r fuzzy.Rank) int {
		switch {
		case r.Target == query:
			return 0
		case strings.HasPrefix(r.Target, query):
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		ti, tj := tier(ranks[i]), tier(ranks[j])
		if ti != tj {
			return ti < tj
		}
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]int, len(ranks))
	for i, r := range ranks {
		out[i] = r.OriginalIndex
	}
	return out
}
