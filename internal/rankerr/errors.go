// Package rankerr defines the error taxonomy shared by the index builder,
// the query evaluator, and the CLI. Every error raised by this module falls
// into one of a small number of kinds so the top-level command handler can
// print a brief, consistent message instead of a raw Go error string.
package rankerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error the way the command layer needs to react to it.
type Kind int

const (
	// InputShape covers malformed JSON, a missing document_id, a duplicate
	// document_id, or a document with no body fields.
	InputShape Kind = iota
	// ArgShape covers bad CLI arguments: wrong arg count, non-positive k,
	// a bad path, a malformed query token, unbalanced phrase colons.
	ArgShape
	// IndexShape covers a missing index file or a TSV line that cannot be
	// parsed into the expected shape.
	IndexShape
	// Semantic covers a query with neither keywords nor phrases.
	Semantic
)

func (k Kind) String() string {
	switch k {
	case InputShape:
		return "input"
	case ArgShape:
		return "argument"
	case IndexShape:
		return "index"
	case Semantic:
		return "query"
	default:
		return "unknown"
	}
}

// Error is a categorized, wrapped error.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.err }

// New builds a categorized error with no underlying cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, msg: msg}
}

// Newf builds a categorized error with a formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, msg string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, msg: msg, err: err}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
