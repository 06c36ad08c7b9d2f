package modules

import (
	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/parser"
	"github.com/HicaroD/brush/internal/types"
)

type unopRule struct {
	tok     token.Kind
	operand types.Type
	message string
}

var UNOP_RULES = map[codegen.ArithOp]unopRule{
	codegen.NOT: {token.NOT, types.BOOL, "Cannot apply logical negation to value of type '%s'"},
	codegen.NEG: {token.MINUS, types.NUM, "Cannot negate value of type '%s'"},
}

func unopFor(kind token.Kind) (codegen.ArithOp, bool) {
	for op, rule := range UNOP_RULES {
		if rule.tok == kind {
			return op, true
		}
	}
	return 0, false
}

// UnOp is a prefix operation. Its operand may itself be prefixed, so
// "not not true" and "- -1" are accepted.
type UnOp struct {
	Op      codegen.ArithOp
	operand *Expr
}

func NewUnOp(op codegen.ArithOp) *UnOp {
	return &UnOp{Op: op}
}

func (unop *UnOp) Operand() *Expr { return unop.operand }

func (unop *UnOp) Type() types.Type {
	return UNOP_RULES[unop.Op].operand
}

func (unop *UnOp) Parse(ctx *parser.Context) error {
	rule := UNOP_RULES[unop.Op]

	operator, err := parser.Expect(ctx, rule.tok)
	if err != nil {
		return err
	}

	operand, err := parseUnary(ctx)
	if err != nil {
		return err
	}
	unop.operand = operand

	if operand.Type() != rule.operand {
		return ctx.ErrorAt(operator, rule.message, operand.Type())
	}
	return nil
}

func (unop *UnOp) Translate(ctx *codegen.Context) string {
	operand := unop.operand.Translate(ctx)
	return codegen.TranslateComputation(ctx, unop.Op, nil, &operand)
}
