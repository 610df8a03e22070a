package story

import (
	"fmt"
	"log/slog"

	"github.com/storylang/storyc/diagnostic"
)

// FunctionalOption configures a Story during construction.
type FunctionalOption func(*Story) error

// WithParser sets the parser adapter used by Parse.
func WithParser(p Parser) FunctionalOption {
	return func(s *Story) error {
		if p == nil {
			return ErrNoParser
		}
		s.parser = p
		return nil
	}
}

// WithCompiler sets the compiler backend used by Compile.
func WithCompiler(c Compiler) FunctionalOption {
	return func(s *Story) error {
		if c == nil {
			return ErrNoCompiler
		}
		s.compiler = c
		return nil
	}
}

// WithErrorHandler selects the error policy for parse and compile failures.
// The default is a terminating handler that renders to stderr and exits.
func WithErrorHandler(h diagnostic.Handler) FunctionalOption {
	return func(s *Story) error {
		if h == nil {
			return fmt.Errorf("error handler cannot be nil")
		}
		s.handler = h
		return nil
	}
}

// WithDebug switches the story to debug mode: failures propagate to the
// caller verbatim instead of being rendered, and the debug flag is passed
// through to the compiler backend. An explicit WithErrorHandler still wins.
func WithDebug() FunctionalOption {
	return func(s *Story) error {
		s.debug = true
		return nil
	}
}

// WithLogHandler sets the slog handler for the story. This is the preferred
// logging option as it provides flexibility through the slog.Handler
// interface.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(s *Story) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		s.logHandler = handler
		s.logger = nil
		return nil
	}
}

// WithLogger sets a specific logger for the story.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(s *Story) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		s.logHandler = nil
		return nil
	}
}
