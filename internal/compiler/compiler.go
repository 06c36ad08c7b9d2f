// Package compiler drives a whole compilation: lexing, parsing of the top
// level block and translation into a shell script.
package compiler

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/config"
	"github.com/HicaroD/brush/internal/diagnostics"
	"github.com/HicaroD/brush/internal/lexer"
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/modules"
	"github.com/HicaroD/brush/internal/parser"
)

type Compiler struct {
	Config    *config.Config
	Collector *diagnostics.Collector

	// Verbose enables phase traces on the standard logger
	Verbose bool
}

func New(cfg *config.Config, collector *diagnostics.Collector) *Compiler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Compiler{Config: cfg, Collector: collector}
}

func (c *Compiler) tracef(format string, args ...any) {
	if c.Verbose || config.DEV {
		log.Printf(format, args...)
	}
}

// Parse lexes and parses src as a top level block. The first failure is
// reported into the collector and COMPILER_ERROR_FOUND is returned.
func (c *Compiler) Parse(filename string, src []byte) (*modules.Block, error) {
	tokens, err := c.Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return c.ParseTokens(filename, tokens)
}

func (c *Compiler) Tokenize(filename string, src []byte) ([]*token.Token, error) {
	start := time.Now()

	lex := lexer.New(filename, src, c.Collector)
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}
	c.tracef("lexed %s: %d tokens in %s", filename, len(tokens), time.Since(start))
	return tokens, nil
}

// ParseTokens parses an EOF terminated token stream as a top level block
func (c *Compiler) ParseTokens(filename string, tokens []*token.Token) (*modules.Block, error) {
	start := time.Now()

	ctx := parser.New(filename, tokens)
	ctx.Arith = c.Config.Emit.Arith
	block := modules.NewBlock()
	block.SetScopeless()

	err := block.Parse(ctx)
	if err == nil && !ctx.IsEOF() {
		// only a stray '}' stops the top level block early
		err = diagnostics.Loud(ctx.Current().Pos, "Unexpected token")
	}
	if err != nil {
		return nil, c.report(err)
	}

	c.tracef("parsed %s: %d statements in %s", filename, len(block.Statements()), time.Since(start))
	return block, nil
}

func (c *Compiler) report(err error) error {
	diag, ok := diagnostics.AsDiag(err)
	if !ok {
		return err
	}
	c.Collector.ReportAndSave(diag)
	return diagnostics.COMPILER_ERROR_FOUND
}

// Translate renders the statements of block without any header
func (c *Compiler) Translate(block *modules.Block) string {
	return block.Translate(codegen.NewContext(c.Config))
}

func (c *Compiler) header(filename string) string {
	var header strings.Builder
	if c.Config.Build.Shebang != "" {
		header.WriteString(c.Config.Build.Shebang + "\n")
	}
	if c.Config.Build.Kind == config.DEBUG {
		fmt.Fprintf(&header, "# compiled from %s\n", filename)
	}
	return header.String()
}

// Compile produces a complete script: header, translated statements and a
// trailing newline
func (c *Compiler) Compile(filename string, src []byte) (string, error) {
	block, err := c.Parse(filename, src)
	if err != nil {
		return "", err
	}
	script := c.header(filename) + c.Translate(block) + "\n"
	c.tracef("translated %s: %d bytes", filename, len(script))
	return script, nil
}

func (c *Compiler) CompileFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read source file: %w", err)
	}
	return c.Compile(path, src)
}

// IsIncomplete reports whether src leaves a block open, i.e. more input is
// required before it can be compiled. Lexer failures count as complete so
// that they get reported.
func IsIncomplete(src string) bool {
	lex := lexer.New("", []byte(src), diagnostics.NewWithWriter(io.Discard))
	depth := 0
	for {
		tok := lex.Next()
		switch tok.Kind {
		case token.OPEN_CURLY:
			depth++
		case token.CLOSE_CURLY:
			depth--
		case token.INVALID:
			return false
		case token.EOF:
			return depth > 0
		}
	}
}
