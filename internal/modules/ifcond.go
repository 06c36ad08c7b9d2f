package modules

import (
	"strings"

	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/parser"
	"github.com/HicaroD/brush/internal/types"
)

// IfCondition is "if cond { ... }" with an optional "else { ... }" on the
// same line as the closing brace.
type IfCondition struct {
	cond      *Expr
	block     *Block
	elseBlock *Block
}

func (ifc *IfCondition) Cond() *Expr      { return ifc.cond }
func (ifc *IfCondition) Block() *Block     { return ifc.block }
func (ifc *IfCondition) ElseBlock() *Block { return ifc.elseBlock }

func (ifc *IfCondition) Parse(ctx *parser.Context) error {
	if _, err := parser.Expect(ctx, token.IF); err != nil {
		return err
	}

	condTok := ctx.Current()
	cond := NewExpr()
	if err := cond.Parse(ctx); err != nil {
		return err
	}
	if cond.Type() != types.BOOL {
		return ctx.ErrorAt(condTok, "Expected expression of type '%s' in condition, got '%s'", types.BOOL, cond.Type())
	}
	ifc.cond = cond

	block, err := parseBraced(ctx)
	if err != nil {
		return err
	}
	ifc.block = block

	if ctx.Current().Kind != token.ELSE {
		return nil
	}
	ctx.Skip()

	elseBlock, err := parseBraced(ctx)
	if err != nil {
		return err
	}
	ifc.elseBlock = elseBlock
	return nil
}

func parseBraced(ctx *parser.Context) (*Block, error) {
	if _, err := parser.Expect(ctx, token.OPEN_CURLY); err != nil {
		return nil, err
	}
	block := NewBlock()
	if err := block.Parse(ctx); err != nil {
		return nil, err
	}
	if _, err := parser.Expect(ctx, token.CLOSE_CURLY); err != nil {
		return nil, err
	}
	return block, nil
}

func (ifc *IfCondition) Translate(ctx *codegen.Context) string {
	var result strings.Builder

	result.WriteString("if [ " + ifc.cond.Translate(ctx) + " != 0 ]; then\n")
	result.WriteString(ifc.block.Translate(ctx))
	if ifc.elseBlock != nil {
		result.WriteString("\n" + ctx.GenIndent() + "else\n")
		result.WriteString(ifc.elseBlock.Translate(ctx))
	}
	result.WriteString("\n" + ctx.GenIndent() + "fi")
	return result.String()
}
