package loader

import "errors"

var (
	ErrSchemeUnsupported = errors.New("unsupported scheme")
	ErrStoryNotAvailable = errors.New("story not available")

	// ErrStoryNotFound is the pre-document failure path: the path resolved
	// but no file exists there. Wrapped messages always include the resolved
	// absolute path.
	ErrStoryNotFound = errors.New("story file not found")
)
