package diagnostic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Positioned is implemented by failures that know where in the source they
// occurred. Both coordinates are 0-based.
type Positioned interface {
	Position() (line, column int)
}

// Hinted is implemented by failures carrying a pre-rendered context hint,
// typically produced by the parser.
type Hinted interface {
	Hint() string
}

// Diagnostic is a renderable, source-located error report. It is built only
// at failure time from the underlying cause plus the document's raw text and
// origin path, and derives its position without re-parsing anything.
type Diagnostic struct {
	cause  error
	path   string
	source string
}

// New wraps a failure with the document context needed to render it.
func New(cause error, path, source string) *Diagnostic {
	return &Diagnostic{
		cause:  cause,
		path:   path,
		source: source,
	}
}

// Cause returns the original failure, verbatim.
func (d *Diagnostic) Cause() error {
	return d.cause
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (d *Diagnostic) Unwrap() error {
	return d.cause
}

// Path returns the origin path of the document, which may be empty for
// stream-loaded sources.
func (d *Diagnostic) Path() string {
	return d.path
}

// Position reports the 0-based source location of the cause. ok is false when
// the cause carries no usable position metadata.
func (d *Diagnostic) Position() (line, column int, ok bool) {
	var pos Positioned
	if errors.As(d.cause, &pos) {
		line, column = pos.Position()
		if line >= 0 && column >= 0 {
			return line, column, true
		}
	}
	return 0, 0, false
}

// Error renders the short, single-line form. Positions are shown 1-based.
func (d *Diagnostic) Error() string {
	path := d.path
	if path == "" {
		path = "<story>"
	}
	if line, column, ok := d.Position(); ok {
		return fmt.Sprintf("%s:%d:%d: %s", path, line+1, column+1, d.cause)
	}
	return fmt.Sprintf("%s: %s", path, d.cause)
}

var (
	headColor   = color.New(color.FgRed, color.Bold)
	gutterColor = color.New(color.FgCyan)
	caretColor  = color.New(color.FgRed, color.Bold)
)

// Render writes the full human-readable report to w. Rendering never fails:
// when position metadata is missing or out of range the snippet is skipped and
// only the message and path are written.
func (d *Diagnostic) Render(w io.Writer) {
	headColor.Fprint(w, "error: ")
	fmt.Fprintln(w, d.cause.Error())

	line, column, ok := d.Position()
	path := d.path
	if path == "" {
		path = "<story>"
	}
	if !ok {
		fmt.Fprintf(w, "  --> %s\n", path)
		d.renderHint(w)
		return
	}
	fmt.Fprintf(w, "  --> %s:%d:%d\n", path, line+1, column+1)

	lines := splitLines(d.source)
	if line >= len(lines) {
		d.renderHint(w)
		return
	}

	gutter := len(fmt.Sprint(line + 1))
	if line > 0 {
		d.renderLine(w, gutter, line, lines[line-1])
	}
	d.renderLine(w, gutter, line+1, lines[line])
	if column <= len(lines[line]) {
		gutterColor.Fprintf(w, " %s | ", strings.Repeat(" ", gutter))
		caretColor.Fprintf(w, "%s^\n", strings.Repeat(" ", column))
	}
	d.renderHint(w)
}

func (d *Diagnostic) renderLine(w io.Writer, gutter, number int, text string) {
	gutterColor.Fprintf(w, " %*d | ", gutter, number)
	fmt.Fprintln(w, text)
}

func (d *Diagnostic) renderHint(w io.Writer) {
	var hinted Hinted
	if errors.As(d.cause, &hinted) {
		if hint := hinted.Hint(); hint != "" {
			fmt.Fprintln(w, hint)
		}
	}
}

// splitLines mirrors the document's line view: terminators excluded, a final
// terminator does not produce a trailing empty line.
func splitLines(source string) []string {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
