package story

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/storylang/storyc/diagnostic"
	"github.com/storylang/storyc/execution/story/loader"
	"github.com/storylang/storyc/internal/helpers"
)

// State tracks where a story is in its compile lifecycle.
type State int

const (
	// StateLoaded is the initial state: raw text is present, nothing parsed.
	StateLoaded State = iota

	// StateParsed means the current tree reflects the raw text.
	StateParsed

	// StateCompiled means the current artifact reflects the current tree.
	StateCompiled

	// StateFailed is reached when a parse or compile attempt failed. A fresh
	// Parse may always be attempted from here.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateParsed:
		return "parsed"
	case StateCompiled:
		return "compiled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Story owns one source document and sequences comment stripping, parsing,
// module resolution and compilation over it. The tree and artifact are
// exclusively owned and replaced wholesale; they are never partially updated.
//
// A Story is a self-contained unit of mutable state. Separate stories may be
// processed on parallel workers without synchronization; a single Story must
// not be shared.
type Story struct {
	source string
	path   string
	lines  []string

	state    State
	tree     Tree
	artifact Artifact

	parser   Parser
	compiler Compiler
	handler  diagnostic.Handler
	debug    bool

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Story from raw source text. path is the origin used in
// diagnostics and may be empty for stream-loaded sources. A parser and a
// compiler must be provided through options; the storyc package wires the
// defaults.
func New(source, path string, opts ...FunctionalOption) (*Story, error) {
	s := &Story{
		source: source,
		path:   path,
		state:  StateLoaded,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("error applying story option: %w", err)
		}
	}

	s.applyDefaults()

	if err := s.validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("story created", "path", s.path, "bytes", len(s.source))
	return s, nil
}

// NewFromLoader drains the loader once and creates a Story from its content.
// File-backed loaders contribute their path; other loaders contribute their
// source URL.
func NewFromLoader(l loader.Loader, opts ...FunctionalOption) (*Story, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: loader is nil", loader.ErrStoryNotAvailable)
	}

	reader, err := l.GetReader()
	if err != nil {
		return nil, err
	}
	content, err := io.ReadAll(reader)
	closeErr := reader.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read story: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close reader: %w", closeErr)
	}

	path := ""
	if u := l.GetSourceURL(); u != nil {
		if u.Scheme == "file" {
			path = u.Path
		} else {
			path = u.String()
		}
	}

	return New(string(content), path, opts...)
}

func (s *Story) String() string {
	return fmt.Sprintf("story.Story{Path: %s, State: %s}", s.path, s.state)
}

// Parse strips comments from the raw text and hands the result to the parser
// adapter. On success the previous tree is discarded and replaced and any
// artifact from an earlier compile is cleared, so a stale artifact can never
// be observed against a newer tree. On failure the story moves to
// StateFailed and the syntax failure is routed through the error handler.
//
// Parse may be invoked again on a failed or compiled story; it ignores prior
// state except for reading the raw text.
func (s *Story) Parse(ctx context.Context) error {
	tree, err := s.parser.Parse(ctx, CleanSource(s.source))
	if err != nil {
		s.state = StateFailed
		s.tree = nil
		s.artifact = nil
		s.logger.Debug("parse failed", "path", s.path, "error", err)
		return s.fail(err)
	}

	s.tree = tree
	s.artifact = nil
	s.state = StateParsed
	s.logger.Debug("parse succeeded", "path", s.path)
	return nil
}

// Compile runs the compiler backend over the current tree. It is valid only
// when the story is parsed, or already compiled (recompiling an unchanged
// tree). On success the previous artifact is discarded and replaced; on
// failure the story moves to StateFailed and the semantic failure is routed
// through the error handler.
func (s *Story) Compile(ctx context.Context) error {
	if s.state != StateParsed && s.state != StateCompiled {
		return fmt.Errorf("%w: story is %s", ErrNotParsed, s.state)
	}

	artifact, err := s.compiler.Compile(ctx, s.tree, s.debug)
	if err != nil {
		s.state = StateFailed
		s.artifact = nil
		s.logger.Debug("compile failed", "path", s.path, "error", err)
		return s.fail(err)
	}

	s.artifact = artifact
	s.state = StateCompiled
	s.logger.Debug("compile succeeded", "path", s.path)
	return nil
}

// Process parses and then compiles the story, returning the artifact. The
// compile stage is never attempted after a parse failure.
func (s *Story) Process(ctx context.Context) (Artifact, error) {
	if err := s.Parse(ctx); err != nil {
		return nil, err
	}
	if err := s.Compile(ctx); err != nil {
		return nil, err
	}
	return s.artifact, nil
}

// Modules returns the normalized paths of every module this story imports.
// The story must be parsed. Malformed imports surface directly to the
// caller; they are never routed through the error handler.
func (s *Story) Modules() ([]string, error) {
	if s.state != StateParsed && s.state != StateCompiled {
		return nil, fmt.Errorf("%w: story is %s", ErrNotParsed, s.state)
	}
	return ResolveModules(s.tree)
}

// Tokens streams the lexical tokens of the comment-stripped source. This is
// a tooling path only; compiling never goes through it.
func (s *Story) Tokens() iter.Seq2[Token, error] {
	return s.parser.Tokens(CleanSource(s.source))
}

// Line returns the nth line of the raw source, 0-indexed, terminator
// excluded.
func (s *Story) Line(n int) (string, error) {
	lines := s.splitLines()
	if n < 0 || n >= len(lines) {
		return "", fmt.Errorf("%w: line %d of %d", ErrLineOutOfRange, n, len(lines))
	}
	return lines[n], nil
}

// Slice returns the half-open line range [start, end) of the raw source.
func (s *Story) Slice(start, end int) ([]string, error) {
	lines := s.splitLines()
	if start < 0 || end < start || end > len(lines) {
		return nil, fmt.Errorf("%w: slice [%d, %d) of %d lines",
			ErrLineOutOfRange, start, end, len(lines))
	}
	return lines[start:end], nil
}

// State returns the current lifecycle state.
func (s *Story) State() State {
	return s.state
}

// Source returns the raw text the story was created with.
func (s *Story) Source() string {
	return s.source
}

// Path returns the origin path, empty for stream-loaded stories.
func (s *Story) Path() string {
	return s.path
}

// Tree returns the current syntax tree, nil unless the story is parsed or
// compiled.
func (s *Story) Tree() Tree {
	return s.tree
}

// Artifact returns the compiled artifact, nil unless the story is compiled.
func (s *Story) Artifact() Artifact {
	return s.artifact
}

// fail routes a caught pipeline failure through the active error policy.
func (s *Story) fail(cause error) error {
	return s.handler.Handle(diagnostic.New(cause, s.path, s.source))
}

// splitLines lazily derives the line view of the raw text. Terminators are
// excluded and a trailing terminator does not produce an empty final line.
func (s *Story) splitLines() []string {
	if s.lines == nil {
		normalized := strings.ReplaceAll(s.source, "\r\n", "\n")
		lines := strings.Split(normalized, "\n")
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines = lines[:n-1]
		}
		s.lines = lines
	}
	return s.lines
}

func (s *Story) applyDefaults() {
	if s.handler == nil {
		if s.debug {
			s.handler = diagnostic.Propagating{}
		} else {
			s.handler = &diagnostic.Terminating{}
		}
	}

	if s.logger != nil {
		s.logHandler = s.logger.Handler()
	} else {
		s.logHandler, s.logger = helpers.SetupLogger(s.logHandler, "story", "Story")
	}
}

func (s *Story) validate() error {
	if s.parser == nil {
		return ErrNoParser
	}
	if s.compiler == nil {
		return ErrNoCompiler
	}
	return nil
}
