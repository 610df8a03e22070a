package parser

import (
	"fmt"
	"log/slog"
)

// FunctionalOption configures a Parser instance.
type FunctionalOption func(*Parser) error

// WithLogHandler sets the slog handler for the parser.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(p *Parser) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		p.logHandler = handler
		p.logger = nil
		return nil
	}
}

// WithLogger sets a specific logger for the parser.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(p *Parser) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		p.logger = logger
		p.logHandler = nil
		return nil
	}
}
