package modules

import (
	"errors"
	"strings"

	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/diagnostics"
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/parser"
)

type Block struct {
	statements []*Statement
	isScope    bool
}

func NewBlock() *Block {
	return &Block{statements: nil, isScope: true}
}

func (block *Block) IsEmpty() bool {
	return len(block.statements) == 0
}

func (block *Block) IsScope() bool {
	return block.isScope
}

// SetScopeless is for embedding constructs that manage indentation
// themselves, e.g. the top level of a script
func (block *Block) SetScopeless() {
	block.isScope = false
}

func (block *Block) PushStatement(statement *Statement) {
	block.statements = append(block.statements, statement)
}

func (block *Block) Statements() []*Statement {
	return block.statements
}

// Parse reads statements until '}' or the end of input, neither of which is
// consumed.
func (block *Block) Parse(ctx *parser.Context) error {
	ctx.Mem.PushScope()
	defer ctx.Mem.PopScope()

	for {
		tok := ctx.Current()

		if tok.Kind.IsSeparator() || tok.Kind == token.COMMENT {
			ctx.Skip()
			continue
		}
		if tok.Kind == token.CLOSE_CURLY || tok.Kind == token.EOF {
			break
		}

		statement := NewStatement()
		if err := statement.Parse(ctx); err != nil {
			var quiet *diagnostics.QuietFailure
			if errors.As(err, &quiet) {
				return diagnostics.Loud(quiet.Pos, "Unexpected token")
			}
			return err
		}
		block.statements = append(block.statements, statement)
	}
	return nil
}

func (block *Block) Translate(ctx *codegen.Context) string {
	if block.isScope {
		ctx.IncreaseIndent()
	}

	var result string
	if block.IsEmpty() {
		result = ":"
	} else {
		rendered := make([]string, 0, len(block.statements))
		for _, statement := range block.statements {
			rendered = append(rendered, ctx.GenIndent()+statement.Translate(ctx))
		}
		result = strings.Join(rendered, ";\n")
	}

	if block.isScope {
		ctx.DecreaseIndent()
	}
	return result
}
