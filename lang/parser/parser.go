package parser

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/storylang/storyc/execution/story"
	"github.com/storylang/storyc/internal/helpers"
)

// Parser is the default parser adapter for the story language, built on
// participle. It implements story.Parser.
type Parser struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new story Parser with the provided options.
func New(opts ...FunctionalOption) (*Parser, error) {
	p := &Parser{}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("error applying parser option: %w", err)
		}
	}

	if p.logger != nil {
		p.logHandler = p.logger.Handler()
	} else {
		p.logHandler, p.logger = helpers.SetupLogger(p.logHandler, "parser", "Parser")
	}

	return p, nil
}

func (p *Parser) String() string {
	return "story.Parser"
}

// Parse converts cleaned story text into a syntax tree. Every participle
// failure variant is collapsed into a single *story.SyntaxError; callers
// never see which variant occurred.
func (p *Parser) Parse(_ context.Context, source string) (story.Tree, error) {
	program, err := storyParser.ParseString("", source)
	if err != nil {
		p.logger.Debug("parse failed", "error", err)
		return nil, convertError(err)
	}
	p.logger.Debug("parse succeeded", "statements", len(program.Statements))
	return newTree(program, source), nil
}

// Tokens lazily streams the lexical tokens of the source. Whitespace is
// skipped; line breaks are reported as EOL tokens. This exists for
// diagnostics and tooling only.
func (p *Parser) Tokens(source string) iter.Seq2[story.Token, error] {
	return func(yield func(story.Token, error) bool) {
		lex, err := storyLexer.Lex("", strings.NewReader(source))
		if err != nil {
			yield(story.Token{}, convertError(err))
			return
		}

		symbols := lexer.SymbolsByRune(storyLexer)
		for {
			tok, err := lex.Next()
			if err != nil {
				yield(story.Token{}, convertError(err))
				return
			}
			if tok.EOF() {
				return
			}
			name := symbols[tok.Type]
			if name == "Whitespace" {
				continue
			}
			out := story.Token{
				Type:   name,
				Value:  tok.Value,
				Line:   tok.Pos.Line - 1,
				Column: tok.Pos.Column - 1,
			}
			if !yield(out, nil) {
				return
			}
		}
	}
}

// convertError maps any participle failure onto the pipeline's uniform
// syntax failure shape, translating 1-based participle positions to the
// 0-based convention used internally.
func convertError(err error) *story.SyntaxError {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return &story.SyntaxError{
			Line:   pos.Line - 1,
			Column: pos.Column - 1,
			Msg:    perr.Message(),
			Err:    err,
		}
	}
	return &story.SyntaxError{
		Line:   -1,
		Column: -1,
		Msg:    err.Error(),
		Err:    err,
	}
}
