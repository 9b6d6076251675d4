package writeback

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg/oj"
)

// ValidationError reports where an edited document stopped being valid JSON.
type ValidationError struct {
	FilePath string
	Line     int // 1-indexed
	Column   int // 1-indexed
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
}

// Validate parses content as strict JSON and returns a *ValidationError if it
// does not parse.
func Validate(content []byte, filePath string) error {
	_, err := oj.Parse(content)
	if err == nil {
		return nil
	}

	var pe *oj.ParseError
	if errors.As(err, &pe) {
		return &ValidationError{
			FilePath: filePath,
			Line:     pe.Line,
			Column:   pe.Column,
			Message:  pe.Message,
		}
	}
	return &ValidationError{FilePath: filePath, Message: err.Error()}
}
