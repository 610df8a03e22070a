package loader

import (
	"io"
	"net/url"
)

// Loader provides story source text from some origin. GetReader may be
// called more than once; every call returns a fresh reader over the same
// content.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
