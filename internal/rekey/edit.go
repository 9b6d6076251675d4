package rekey

import (
	"fmt"
	"sort"
	"strings"
)

// Edit replaces text[Start:End] with Text. All edits of one batch are
// computed against the same unmodified snapshot.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Apply applies a batch of edits computed from text and returns the result.
// Edits may arrive in any order; overlapping or out-of-range edits are rejected
// and text is returned unchanged.
func Apply(text string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return text, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	prevEnd := 0
	for i, e := range sorted {
		if e.Start < 0 || e.End > len(text) || e.Start > e.End {
			return text, fmt.Errorf("invalid edit range [%d:%d] for text of length %d", e.Start, e.End, len(text))
		}
		if i > 0 && e.Start < prevEnd {
			return text, fmt.Errorf("overlapping edits at [%d:%d]", e.Start, e.End)
		}
		prevEnd = e.End
	}

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, e := range sorted {
		b.WriteString(text[pos:e.Start])
		b.WriteString(e.Text)
		pos = e.End
	}
	b.WriteString(text[pos:])
	return b.String(), nil
}
