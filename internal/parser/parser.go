// Package parser provides the parse-time state shared by every node: the
// token cursor, the scope memory and the constructors for parse failures.
package parser

import (
	"fmt"

	"github.com/HicaroD/brush/internal/config"
	"github.com/HicaroD/brush/internal/diagnostics"
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/scope"
	"github.com/HicaroD/brush/internal/types"
)

type Context struct {
	Filename string
	Mem      *scope.Memory[types.Type]

	// Arith is the arithmetic backend the program will be rendered with
	Arith config.ArithType

	tokens []*token.Token
	index  int
}

// New creates a context positioned at the first token. The stream must end
// with an EOF token, as produced by lexer.Tokenize.
func New(filename string, tokens []*token.Token) *Context {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		eofPos := token.NewPosition(filename, 1, 1)
		if len(tokens) > 0 {
			eofPos = tokens[len(tokens)-1].Pos
		}
		tokens = append(tokens, token.New(nil, token.EOF, eofPos))
	}
	return &Context{
		Filename: filename,
		Mem:      scope.NewMemory[types.Type](),
		Arith:    config.ARITH_BC_SED,
		tokens:   tokens,
		index:    0,
	}
}

// Current never returns nil: past the end of the stream it keeps returning
// the EOF token.
func (ctx *Context) Current() *token.Token {
	if ctx.index >= len(ctx.tokens) {
		return ctx.tokens[len(ctx.tokens)-1]
	}
	return ctx.tokens[ctx.index]
}

func (ctx *Context) Peek1() *token.Token {
	if ctx.index+1 >= len(ctx.tokens) {
		return ctx.tokens[len(ctx.tokens)-1]
	}
	return ctx.tokens[ctx.index+1]
}

func (ctx *Context) IsEOF() bool {
	return ctx.Current().Kind == token.EOF
}

func (ctx *Context) Index() int { return ctx.index }

func (ctx *Context) SetIndex(index int) { ctx.index = index }

func (ctx *Context) Skip() {
	if ctx.index < len(ctx.tokens)-1 {
		ctx.index++
	}
}

// Quiet builds a syntax mismatch at tok
func (ctx *Context) Quiet(tok *token.Token) error {
	return diagnostics.Quiet(tok.Pos)
}

// ErrorAt builds a complete diagnostic anchored at tok
func (ctx *Context) ErrorAt(tok *token.Token, format string, args ...any) error {
	return diagnostics.Loud(tok.Pos, fmt.Sprintf(format, args...))
}
