package grid

import "strconv"

const (
	// DefaultLabelStart is the counter value before the first tile is created.
	DefaultLabelStart = 900
	// LabelStep is the counter increment per created tile.
	LabelStep = 100
)

// LabelSource hands out strictly increasing tile labels. Values are never
// reused, even when the rows holding them are detached.
type LabelSource struct {
	counter int
}

// NewLabelSource returns a source whose first label is start+LabelStep.
func NewLabelSource(start int) *LabelSource {
	return &LabelSource{counter: start}
}

// Next advances the counter and returns the new value.
func (s *LabelSource) Next() int {
	s.counter += LabelStep
	return s.counter
}

// Current reports the last value handed out (or the start value).
func (s *LabelSource) Current() int {
	return s.counter
}

func formatLabel(value int) string {
	return strconv.Itoa(value)
}
