// Package rekey rewrites ACF keys inside field-group JSON without reserializing
// the document. Objects are located by brace counting and keys by a scoped
// regular expression, so formatting and unrelated content survive untouched.
//
// Braces inside string literals are not recognised. A "{" or "}" inside a
// quoted value will shift the detected object boundaries.
package rekey

import (
	"errors"
	"strings"
)

var (
	// ErrNoEnclosingObject is returned when the offset is not inside a balanced {...}.
	ErrNoEnclosingObject = errors.New("cursor is not within a JSON object")
	// ErrNoKeyFound is returned when the located object has no "key" property.
	ErrNoKeyFound = errors.New(`no "key" field found in the current JSON object`)
)

// Span is a half-open byte range [Start, End) over a document.
type Span struct {
	Start int
	End   int
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// FindEnclosingObject returns the innermost {...} span enclosing offset.
// The character at offset itself takes part in the backward scan, so an
// offset sitting on an opening brace selects that brace's object.
func FindEnclosingObject(text string, offset int) (Span, error) {
	if offset < 0 || len(text) == 0 {
		return Span{}, ErrNoEnclosingObject
	}
	if offset >= len(text) {
		offset = len(text) - 1
	}

	depth := 0
	start := -1
	for i := offset; i >= 0; i-- {
		switch text[i] {
		case '}':
			depth++
		case '{':
			depth--
			if depth < 0 {
				start = i
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return Span{}, ErrNoEnclosingObject
	}

	depth = 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return Span{Start: start, End: i + 1}, nil
			}
		}
	}
	return Span{}, ErrNoEnclosingObject
}

// RootSpan returns the span of the first top-level object in text.
func RootSpan(text string) (Span, error) {
	i := strings.IndexByte(text, '{')
	if i < 0 {
		return Span{}, ErrNoEnclosingObject
	}
	return FindEnclosingObject(text, i)
}
