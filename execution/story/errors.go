package story

import (
	"errors"
	"fmt"
)

var (
	ErrNoParser        = errors.New("parser is nil")
	ErrNoCompiler      = errors.New("compiler is nil")
	ErrNoTree          = errors.New("syntax tree is nil")
	ErrNotParsed       = errors.New("story has not been parsed")
	ErrMalformedImport = errors.New("malformed import declaration")
	ErrLineOutOfRange  = errors.New("line out of range")
)

// SyntaxError is the single failure shape for everything the parser adapter
// can reject. The pipeline never distinguishes between parser-specific error
// variants; adapters collapse them into this. Positions are 0-based, with -1
// meaning unknown.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string

	// ContextHint optionally carries a snippet pre-rendered by the parser.
	ContextHint string

	// Err is the parser's original error, kept for unwrapping.
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("syntax error: %s", e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("syntax error: %s", e.Err)
	}
	return "syntax error"
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Position reports the 0-based source location.
func (e *SyntaxError) Position() (int, int) {
	return e.Line, e.Column
}

// Hint returns the parser-rendered context, if any.
func (e *SyntaxError) Hint() string {
	return e.ContextHint
}

// SemanticError is raised by the compiler backend. Internal marks
// compiler-internal failures (unexpected tree shapes, backend bugs) as
// opposed to story-level mistakes; both travel through the same diagnostic
// path. Positions are 0-based, with -1 meaning unknown.
type SemanticError struct {
	Line     int
	Column   int
	Msg      string
	Internal bool
	Err      error
}

func (e *SemanticError) Error() string {
	if e.Internal {
		return fmt.Sprintf("internal compiler error: %s", e.Msg)
	}
	return fmt.Sprintf("compile error: %s", e.Msg)
}

func (e *SemanticError) Unwrap() error {
	return e.Err
}

// Position reports the 0-based source location.
func (e *SemanticError) Position() (int, int) {
	return e.Line, e.Column
}
