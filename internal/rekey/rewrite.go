package rekey

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentic-research/acfkit/internal/keygen"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// keyDecl matches a "key": "<value>" declaration; group 1 is the value.
var keyDecl = regexp.MustCompile(`"key"\s*:\s*"([^"]+)"`)

var fieldKeys = jp.MustParseString("$.fields[*].key")

// Rename is the result of regenerating one key.
type Rename struct {
	OldKey string
	NewKey string
	// Declaration is the edit rewriting the "key" property itself.
	Declaration Edit
	// Edits holds Declaration followed by any reference replacements.
	Edits []Edit
}

// References returns the number of edits beyond the declaration.
func (r *Rename) References() int { return len(r.Edits) - 1 }

// RenameKey regenerates the first "key" declared inside span. Only the
// declaration is rewritten; other occurrences of the old key are left alone.
func RenameKey(text string, span Span, prefix string) (*Rename, error) {
	return renameKey(text, span, prefix, false)
}

// RenameKeyWithReferences is RenameKey plus one edit for every quoted
// occurrence of the old key elsewhere in text (conditional logic, clones).
func RenameKeyWithReferences(text string, span Span, prefix string) (*Rename, error) {
	return renameKey(text, span, prefix, true)
}

func renameKey(text string, span Span, prefix string, propagate bool) (*Rename, error) {
	if span.Start < 0 || span.End > len(text) || span.Start >= span.End {
		return nil, fmt.Errorf("invalid object span [%d:%d] for text of length %d", span.Start, span.End, len(text))
	}

	obj := text[span.Start:span.End]
	m := keyDecl.FindStringSubmatchIndex(obj)
	if m == nil {
		return nil, ErrNoKeyFound
	}

	r := &Rename{
		OldKey: obj[m[2]:m[3]],
		NewKey: keygen.New(prefix),
	}
	r.Declaration = Edit{
		Start: span.Start + m[0],
		End:   span.Start + m[1],
		Text:  obj[m[0]:m[2]] + r.NewKey + obj[m[3]:m[1]],
	}
	r.Edits = []Edit{r.Declaration}
	if propagate {
		r.Edits = append(r.Edits, references(text, r.OldKey, r.NewKey, r.Declaration)...)
	}
	return r, nil
}

// references returns an edit for every literal "oldKey" in text that does not
// lie inside the declaration edit.
func references(text, oldKey, newKey string, decl Edit) []Edit {
	needle := `"` + oldKey + `"`
	replacement := `"` + newKey + `"`

	var edits []Edit
	for pos := 0; pos < len(text); {
		i := strings.Index(text[pos:], needle)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(needle)
		if start < decl.Start || end > decl.End {
			edits = append(edits, Edit{Start: start, End: end, Text: replacement})
		}
		pos = end
	}
	return edits
}

// BatchRename is the result of regenerating every field key in a document.
type BatchRename struct {
	Changes []*Rename
	// Edits is every change's edits, all computed from the same snapshot.
	Edits []Edit
}

// RenameAllFields assigns a fresh field key to every entry of the document's
// top-level "fields" array and propagates each rename across the document.
// A key shared by several fields is renamed once.
func RenameAllFields(text string) (*BatchRename, error) {
	doc, err := oj.ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("parse field group: %w", err)
	}

	seen := make(map[string]bool)
	batch := &BatchRename{}
	for _, v := range fieldKeys.Get(doc) {
		oldKey, ok := v.(string)
		if !ok || oldKey == "" || seen[oldKey] {
			continue
		}
		seen[oldKey] = true

		decl := regexp.MustCompile(`"key"\s*:\s*"(` + regexp.QuoteMeta(oldKey) + `)"`)
		m := decl.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}

		r := &Rename{OldKey: oldKey, NewKey: keygen.New(keygen.FieldPrefix)}
		r.Declaration = Edit{
			Start: m[0],
			End:   m[1],
			Text:  text[m[0]:m[2]] + r.NewKey + text[m[3]:m[1]],
		}
		r.Edits = append([]Edit{r.Declaration}, references(text, r.OldKey, r.NewKey, r.Declaration)...)

		batch.Changes = append(batch.Changes, r)
		batch.Edits = append(batch.Edits, r.Edits...)
	}

	if len(batch.Changes) == 0 {
		return nil, fmt.Errorf("no field keys in document: %w", ErrNoKeyFound)
	}
	return batch, nil
}
