package modules

import (
	"strings"

	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/config"
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/parser"
	"github.com/HicaroD/brush/internal/types"
)

type Number struct {
	Value string
}

func (num *Number) Type() types.Type { return types.NUM }

// Parse rejects fractional literals when the program is rendered with the
// integer-only shell arithmetic
func (num *Number) Parse(ctx *parser.Context) error {
	tok, err := parser.Expect(ctx, token.NUMBER_LITERAL)
	if err != nil {
		return err
	}
	value := string(tok.Lexeme)
	if ctx.Arith == config.ARITH_SHELL && strings.Contains(value, ".") {
		return ctx.ErrorAt(tok, "Fractional number '%s' requires the '%s' arithmetic backend, got '%s'", value, config.ARITH_BC_SED, ctx.Arith)
	}
	num.Value = value
	return nil
}

func (num *Number) Translate(ctx *codegen.Context) string {
	return num.Value
}

// Bool is rendered as the arithmetic truth values 1 and 0
type Bool struct {
	Value bool
}

func (b *Bool) Type() types.Type { return types.BOOL }

func (b *Bool) Parse(ctx *parser.Context) error {
	switch ctx.Current().Kind {
	case token.TRUE_BOOL_LITERAL:
		b.Value = true
	case token.FALSE_BOOL_LITERAL:
		b.Value = false
	default:
		return ctx.Quiet(ctx.Current())
	}
	ctx.Skip()
	return nil
}

func (b *Bool) Translate(ctx *codegen.Context) string {
	if b.Value {
		return "1"
	}
	return "0"
}

type Text struct {
	Value string
}

func (text *Text) Type() types.Type { return types.TEXT }

func (text *Text) Parse(ctx *parser.Context) error {
	tok, err := parser.Expect(ctx, token.TEXT_LITERAL)
	if err != nil {
		return err
	}
	text.Value = string(tok.Lexeme)
	return nil
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

func (text *Text) Translate(ctx *codegen.Context) string {
	return `"` + textEscaper.Replace(text.Value) + `"`
}

type Null struct{}

func (Null) Type() types.Type { return types.NULL }

func (Null) Parse(ctx *parser.Context) error {
	_, err := parser.Expect(ctx, token.NULL_LITERAL)
	return err
}

func (Null) Translate(ctx *codegen.Context) string {
	return "''"
}

type Parenthesis struct {
	inner *Expr
}

func (paren *Parenthesis) Inner() *Expr { return paren.inner }

func (paren *Parenthesis) Type() types.Type { return paren.inner.Type() }

func (paren *Parenthesis) Parse(ctx *parser.Context) error {
	if _, err := parser.Expect(ctx, token.OPEN_PAREN); err != nil {
		return err
	}
	inner := NewExpr()
	if err := inner.Parse(ctx); err != nil {
		return err
	}
	if _, err := parser.Expect(ctx, token.CLOSE_PAREN); err != nil {
		return err
	}
	paren.inner = inner
	return nil
}

// Both arithmetic renderings are already self delimiting
func (paren *Parenthesis) Translate(ctx *codegen.Context) string {
	return paren.inner.Translate(ctx)
}
