package compiler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	risorErrors "github.com/risor-io/risor/errz"
	risorParser "github.com/risor-io/risor/parser"

	"github.com/storylang/storyc/execution/story"
	"github.com/storylang/storyc/internal/helpers"
	"github.com/storylang/storyc/lang/parser"
)

// Compiler is the default backend: it lowers a parsed story into a
// line-keyed Program. It implements story.Compiler.
//
// Embedded expressions are validated with risor's parser; a story that
// assigns `a = 1 +` fails here, not at parse time, because the story grammar
// treats expressions as raw token runs.
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new story Compiler with the provided options.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "compiler", "Compiler")
	}

	return c, nil
}

func (c *Compiler) String() string {
	return "story.Compiler"
}

// Compile lowers the tree into an Artifact. Failures are always
// *story.SemanticError: story-level mistakes carry a position, unexpected
// tree shapes are marked Internal.
func (c *Compiler) Compile(ctx context.Context, tree story.Tree, debug bool) (story.Artifact, error) {
	typed, ok := tree.(*parser.Tree)
	if !ok || typed == nil {
		return nil, &story.SemanticError{
			Line:     -1,
			Column:   -1,
			Msg:      fmt.Sprintf("unsupported syntax tree %T", tree),
			Internal: true,
		}
	}

	program := typed.Program()
	if program == nil {
		return nil, &story.SemanticError{
			Line:     -1,
			Column:   -1,
			Msg:      "syntax tree has no program",
			Internal: true,
		}
	}

	logger := c.logger.WithGroup("compile")
	if debug {
		logger.Debug("starting compile", "statements", len(program.Statements))
	}

	lowered, err := c.lower(ctx, program)
	if err != nil {
		logger.Debug("compile failed", "error", err)
		return nil, err
	}

	logger.Debug("compile succeeded", "lines", len(lowered.Lines))
	return newArtifact(typed.Source(), lowered), nil
}

func (c *Compiler) lower(ctx context.Context, program *parser.Program) (*Program, error) {
	out := &Program{
		Version: FormatVersion,
		Lines:   make(map[string]*Line),
	}
	assigned := make(map[string]bool)
	prev := ""

	for _, stmt := range program.Statements {
		var line *Line
		key := strconv.Itoa(stmt.Pos.Line)

		switch {
		case stmt.Import != nil:
			raw := stmt.Import.Path.Value
			if len(raw) < 2 {
				return nil, internalAt(stmt.Pos, fmt.Sprintf(
					"import literal %q is missing quote delimiters", raw))
			}
			line = &Line{
				Method: "import",
				Ln:     key,
				Module: story.NormalizeImport(raw[1 : len(raw)-1]),
			}
			out.Modules = append(out.Modules, line.Module)

		case stmt.Assign != nil:
			expr := strings.Join(stmt.Assign.Expr, " ")
			if err := c.checkExpression(ctx, expr, stmt.Assign.Pos); err != nil {
				return nil, err
			}
			assigned[stmt.Assign.Name] = true
			line = &Line{
				Method: "set",
				Ln:     key,
				Output: []string{stmt.Assign.Name},
				Args:   []*Arg{{Type: "expression", Value: expr}},
			}

		case stmt.Command != nil:
			args, err := lowerArgs(stmt.Command.Args, assigned)
			if err != nil {
				return nil, err
			}
			line = &Line{
				Method:  "execute",
				Ln:      key,
				Service: stmt.Command.Service,
				Command: stmt.Command.Action,
				Args:    args,
			}

		default:
			return nil, internalAt(stmt.Pos, "statement has no recognized form")
		}

		out.Lines[key] = line
		if prev != "" {
			out.Lines[prev].Next = key
		} else {
			out.Entry = key
		}
		prev = key
	}

	return out, nil
}

// checkExpression validates an embedded expression by parsing it with risor.
// The reported position is the story statement's, not risor's internal
// position, since the expression text was re-joined from tokens.
func (c *Compiler) checkExpression(ctx context.Context, expr string, pos lexer.Position) error {
	if strings.TrimSpace(expr) == "" {
		return &story.SemanticError{
			Line:   pos.Line - 1,
			Column: pos.Column - 1,
			Msg:    "assignment has an empty expression",
		}
	}

	if _, err := risorParser.Parse(ctx, expr); err != nil {
		msg := err.Error()
		var friendly risorErrors.FriendlyError
		if errors.As(err, &friendly) {
			msg = friendly.FriendlyErrorMessage()
		}
		return &story.SemanticError{
			Line:   pos.Line - 1,
			Column: pos.Column - 1,
			Msg:    fmt.Sprintf("invalid expression %q: %s", expr, strings.TrimSpace(msg)),
			Err:    err,
		}
	}
	return nil
}

func lowerArgs(args []*parser.Arg, assigned map[string]bool) ([]*Arg, error) {
	var out []*Arg
	for _, arg := range args {
		value := arg.Value
		switch {
		case value.String != nil:
			raw := *value.String
			if len(raw) < 2 {
				return nil, internalAt(arg.Pos, fmt.Sprintf(
					"string literal %q is missing quote delimiters", raw))
			}
			out = append(out, &Arg{Name: arg.Name, Type: "string", Value: raw[1 : len(raw)-1]})
		case value.Number != nil:
			out = append(out, &Arg{Name: arg.Name, Type: "number", Value: *value.Number})
		case value.Ident != nil:
			name := *value.Ident
			if name == "true" || name == "false" {
				out = append(out, &Arg{Name: arg.Name, Type: "boolean", Value: name})
				continue
			}
			if !assigned[name] {
				return nil, &story.SemanticError{
					Line:   value.Pos.Line - 1,
					Column: value.Pos.Column - 1,
					Msg:    fmt.Sprintf("undefined variable %q", name),
				}
			}
			out = append(out, &Arg{Name: arg.Name, Type: "variable", Value: name})
		default:
			return nil, internalAt(arg.Pos, "argument has no recognized value")
		}
	}
	return out, nil
}

func internalAt(pos lexer.Position, msg string) *story.SemanticError {
	return &story.SemanticError{
		Line:     pos.Line - 1,
		Column:   pos.Column - 1,
		Msg:      msg,
		Internal: true,
	}
}
