package testutil

import (
	"io"
	"testing"

	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/config"
	"github.com/HicaroD/brush/internal/diagnostics"
	"github.com/HicaroD/brush/internal/lexer"
	"github.com/HicaroD/brush/internal/parser"
	"github.com/HicaroD/brush/internal/types"
)

const DefaultFilename = "test.br"

func NewLexer(src []byte, filename string) *lexer.Lexer {
	lex, _ := NewLexerWithCollector(src, filename)
	return lex
}

// NewLexerWithCollector returns a lexer whose collector keeps diagnostics
// without printing them
func NewLexerWithCollector(src []byte, filename string) (*lexer.Lexer, *diagnostics.Collector) {
	if filename == "" {
		filename = DefaultFilename
	}
	collector := diagnostics.NewWithWriter(io.Discard)
	return lexer.New(filename, src, collector), collector
}

func NewContext(t *testing.T, src string) *parser.Context {
	t.Helper()
	tokens, err := NewLexer([]byte(src), "").Tokenize()
	if err != nil {
		t.Fatalf("unexpected lexer error: %v", err)
	}
	return parser.New(DefaultFilename, tokens)
}

// NewContextWith opens a scope holding the given variables
func NewContextWith(t *testing.T, src string, vars map[string]types.Type) *parser.Context {
	t.Helper()
	ctx := NewContext(t, src)
	ctx.Mem.PushScope()
	for name, ty := range vars {
		if err := ctx.Mem.Insert(name, ty); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return ctx
}

func NewEmitContext(arith config.ArithType) *codegen.Context {
	cfg := config.Default()
	cfg.Emit.Arith = arith
	return codegen.NewContext(cfg)
}

// ExpectLoud fails the test unless err is a loud failure with message
func ExpectLoud(t *testing.T, err error, message string) diagnostics.Diag {
	t.Helper()
	if !diagnostics.IsLoud(err) {
		t.Fatalf("expected loud failure %q, got %v", message, err)
	}
	diag, _ := diagnostics.AsDiag(err)
	if diag.Message != message {
		t.Errorf("expected message %q, got %q", message, diag.Message)
	}
	return diag
}
