package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger creates a configured logger for a pipeline component.
// If the provided handler is nil, a default text handler writing to stderr
// is created and grouped under the component name.
//
// Returns the effective handler plus a logger created from it, optionally
// grouped under groupName.
func SetupLogger(handler slog.Handler, component string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil).WithGroup(component)
	}

	var logger *slog.Logger
	if groupName != "" {
		logger = slog.New(handler.WithGroup(groupName))
	} else {
		logger = slog.New(handler)
	}

	return handler, logger
}
