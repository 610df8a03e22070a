package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/storylang/storyc/internal/helpers"
)

// FromDisk loads a story from a local file. Relative paths are resolved
// against the working directory at construction time, so not-found reports
// always carry the absolute path.
type FromDisk struct {
	path      string
	absPath   string
	sourceURL *url.URL
}

func NewFromDisk(path string) (*FromDisk, error) {
	path = strings.TrimPrefix(path, "file://")

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." || cleaned == "/" || cleaned == "\\" {
		return nil, fmt.Errorf("%w: path is empty or invalid", ErrStoryNotAvailable)
	}

	absPath, err := filepath.Abs(cleaned)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve path: %w", err)
	}

	sourceURL, err := url.Parse("file://" + absPath)
	if err != nil {
		return nil, fmt.Errorf("unable to parse URL: %w", err)
	}

	return &FromDisk{
		path:      path,
		absPath:   absPath,
		sourceURL: sourceURL,
	}, nil
}

func (l *FromDisk) String() string {
	noChkSum := fmt.Sprintf("loader.FromDisk{Path: %s}", l.absPath)

	reader, err := l.GetReader()
	if err != nil {
		return noChkSum
	}
	defer reader.Close()

	chksum, err := helpers.SHA256Reader(reader)
	if err != nil {
		return noChkSum
	}

	return fmt.Sprintf("loader.FromDisk{Path: %s, SHA256: %s}", l.absPath, chksum[:8])
}

func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	file, err := os.Open(l.absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q (resolved to %s)",
				ErrStoryNotFound, l.path, l.absPath)
		}
		return nil, err
	}
	return file, nil
}

// GetSourceURL returns the file URL of the story.
func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
