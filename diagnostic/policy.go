package diagnostic

import (
	"io"
	"os"
)

// Handler decides what happens to a Diagnostic once a pipeline stage has
// failed. Exactly one handler is active per story; the pipeline never
// branches on debug flags itself.
type Handler interface {
	Handle(d *Diagnostic) error
}

// Propagating hands the original failure back to the caller, unrendered.
// This is the debug-mode policy: programmatic callers and tests can inspect
// the failure value directly and no process ever terminates.
type Propagating struct{}

func (Propagating) Handle(d *Diagnostic) error {
	return d.Cause()
}

// Terminating renders the report to the operator-facing output and ends the
// process with a non-zero code. Out and Exit exist so a shell can redirect
// the report and so tests can observe the exit instead of dying.
type Terminating struct {
	// Out receives the rendered report. Defaults to os.Stderr.
	Out io.Writer

	// Exit ends the process. Defaults to os.Exit.
	Exit func(code int)
}

func (t *Terminating) Handle(d *Diagnostic) error {
	out := t.Out
	if out == nil {
		out = os.Stderr
	}
	d.Render(out)

	exit := t.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(1)

	// Only reachable when Exit was replaced with a non-terminating stub.
	return d
}
