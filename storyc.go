// Package storyc compiles story scripts into structured artifacts.
//
// The constructors here wire the default parser and compiler so most callers
// need a single call:
//
//	s, err := storyc.FromFile("hello.story", story.WithDebug())
//	if err != nil { ... }
//	artifact, err := s.Process(ctx)
//
// Everything is replaceable through story.FunctionalOption values: the
// parser, the compiler backend, the error policy and logging.
package storyc

import (
	"context"
	"io"

	"github.com/storylang/storyc/execution/story"
	"github.com/storylang/storyc/execution/story/loader"
	"github.com/storylang/storyc/lang/compiler"
	"github.com/storylang/storyc/lang/parser"
)

// FromFile creates a story from a file path. A missing file fails with
// loader.ErrStoryNotFound carrying the resolved absolute path, before any
// story exists.
func FromFile(path string, opts ...story.FunctionalOption) (*story.Story, error) {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}
	return fromLoader(l, opts)
}

// FromString creates a story from an in-memory source.
func FromString(source string, opts ...story.FunctionalOption) (*story.Story, error) {
	l, err := loader.NewFromString(source)
	if err != nil {
		return nil, err
	}
	return fromLoader(l, opts)
}

// FromIoReader creates a story from an arbitrary readable stream. sourceName
// labels the stream in diagnostics and may be empty.
func FromIoReader(reader io.Reader, sourceName string, opts ...story.FunctionalOption) (*story.Story, error) {
	l, err := loader.NewFromIoReader(reader, sourceName)
	if err != nil {
		return nil, err
	}
	return fromLoader(l, opts)
}

// Process is the one-call path: load a story from a file, parse and compile
// it, and return the artifact.
func Process(ctx context.Context, path string, opts ...story.FunctionalOption) (story.Artifact, error) {
	s, err := FromFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return s.Process(ctx)
}

// fromLoader prepends the default parser and compiler so caller options can
// still override either.
func fromLoader(l loader.Loader, opts []story.FunctionalOption) (*story.Story, error) {
	p, err := parser.New()
	if err != nil {
		return nil, err
	}
	c, err := compiler.New()
	if err != nil {
		return nil, err
	}

	merged := append([]story.FunctionalOption{
		story.WithParser(p),
		story.WithCompiler(c),
	}, opts...)

	return story.NewFromLoader(l, merged...)
}
