package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator compares strings the way a file browser does: case and accent
// insensitive, with digit runs compared numerically ("Block 2" < "Block 10").
// A Collator is not safe for concurrent use, so each sort builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics, collate.Numeric)
}

func sortSnapshot(s *Snapshot) {
	c := newCollator()
	for i := range s.Themes {
		files := s.Themes[i].Files
		sort.SliceStable(files, func(a, b int) bool {
			if n := c.CompareString(files[a].Title, files[b].Title); n != 0 {
				return n < 0
			}
			return files[a].Path < files[b].Path
		})
		sort.Strings(s.Themes[i].Folders)
	}
	sort.SliceStable(s.Themes, func(a, b int) bool {
		if n := c.CompareString(s.Themes[a].DisplayName, s.Themes[b].DisplayName); n != 0 {
			return n < 0
		}
		return s.Themes[a].DisplayName < s.Themes[b].DisplayName
	})
}
