package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/storylang/storyc/internal/helpers"
)

// FromString loads a story from an in-memory string. The content is stored
// verbatim; trimming it would shift the line numbers diagnostics report.
type FromString struct {
	content   string
	sourceURL *url.URL
}

func NewFromString(content string) (*FromString, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrStoryNotAvailable)
	}

	u, err := url.Parse("string://inline/" + helpers.SHA256(content)[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the story.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
