package modules

import (
	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/parser"
	"github.com/HicaroD/brush/internal/types"
)

// Binding levels, loosest first
const (
	LEVEL_OR = iota
	LEVEL_AND
	LEVEL_COMPARISON
	LEVEL_ADDITIVE
	LEVEL_MULTIPLICATIVE

	BINARY_LEVELS
)

type binopRule struct {
	tok     token.Kind
	level   int
	allowed []types.Type
	// result is only meaningful when sameAsOperands is false
	result         types.Type
	sameAsOperands bool
	message        string
}

var BINOP_RULES = map[codegen.ArithOp]binopRule{
	codegen.ADD: {
		tok: token.PLUS, level: LEVEL_ADDITIVE,
		allowed: []types.Type{types.NUM, types.TEXT}, sameAsOperands: true,
		message: "Cannot add two values of different types",
	},
	codegen.SUB: {
		tok: token.MINUS, level: LEVEL_ADDITIVE,
		allowed: []types.Type{types.NUM}, result: types.NUM,
		message: "Cannot subtract two values of different types",
	},
	codegen.MUL: {
		tok: token.STAR, level: LEVEL_MULTIPLICATIVE,
		allowed: []types.Type{types.NUM}, result: types.NUM,
		message: "Cannot multiply two values of different types",
	},
	codegen.DIV: {
		tok: token.SLASH, level: LEVEL_MULTIPLICATIVE,
		allowed: []types.Type{types.NUM}, result: types.NUM,
		message: "Cannot divide two values of different types",
	},
	codegen.MODULO: {
		tok: token.PERCENT, level: LEVEL_MULTIPLICATIVE,
		allowed: []types.Type{types.NUM}, result: types.NUM,
		message: "Cannot modulo two values of different types",
	},
	codegen.GT: {
		tok: token.GREATER, level: LEVEL_COMPARISON,
		allowed: []types.Type{types.NUM}, result: types.BOOL,
		message: "Cannot compare two values of different types",
	},
	codegen.GE: {
		tok: token.GREATER_EQ, level: LEVEL_COMPARISON,
		allowed: []types.Type{types.NUM}, result: types.BOOL,
		message: "Cannot compare two values of different types",
	},
	codegen.LT: {
		tok: token.LESS, level: LEVEL_COMPARISON,
		allowed: []types.Type{types.NUM}, result: types.BOOL,
		message: "Cannot compare two values of different types",
	},
	codegen.LE: {
		tok: token.LESS_EQ, level: LEVEL_COMPARISON,
		allowed: []types.Type{types.NUM}, result: types.BOOL,
		message: "Cannot compare two values of different types",
	},
	codegen.EQ: {
		tok: token.EQUAL_EQUAL, level: LEVEL_COMPARISON,
		allowed: []types.Type{types.NUM, types.BOOL}, result: types.BOOL,
		message: "Cannot compare two values of different types",
	},
	codegen.NEQ: {
		tok: token.BANG_EQUAL, level: LEVEL_COMPARISON,
		allowed: []types.Type{types.NUM, types.BOOL}, result: types.BOOL,
		message: "Cannot compare two values of different types",
	},
	codegen.AND: {
		tok: token.AND, level: LEVEL_AND,
		allowed: []types.Type{types.BOOL}, result: types.BOOL,
		message: "Cannot perform logical operation on values of different types",
	},
	codegen.OR: {
		tok: token.OR, level: LEVEL_OR,
		allowed: []types.Type{types.BOOL}, result: types.BOOL,
		message: "Cannot perform logical operation on values of different types",
	},
}

func binopAt(level int, kind token.Kind) (codegen.ArithOp, bool) {
	for op, rule := range BINOP_RULES {
		if rule.level == level && rule.tok == kind {
			return op, true
		}
	}
	return 0, false
}

// BinOp is a binary operation. Its left arm may be prefilled by the
// expression dispatcher, in which case parsing starts at the operator.
type BinOp struct {
	Op    codegen.ArithOp
	left  *Expr
	right *Expr
}

func NewBinOp(op codegen.ArithOp) *BinOp {
	return &BinOp{Op: op}
}

func (binop *BinOp) Left() *Expr  { return binop.left }
func (binop *BinOp) Right() *Expr { return binop.right }

func (binop *BinOp) Type() types.Type {
	rule := BINOP_RULES[binop.Op]
	if rule.sameAsOperands {
		return binop.left.Type()
	}
	return rule.result
}

func (binop *BinOp) Parse(ctx *parser.Context) error {
	rule := BINOP_RULES[binop.Op]

	if err := parseLeftExpr(ctx, &binop.left, rule.level); err != nil {
		return err
	}

	operator, err := parser.Expect(ctx, rule.tok)
	if err != nil {
		return err
	}

	// one level tighter, so operators of the same level group from the left
	right, err := parseExprFrom(ctx, rule.level+1)
	if err != nil {
		return err
	}
	binop.right = right

	return expressionArmsOfType(ctx, operator, binop.left.Type(), binop.right.Type(), rule.allowed, rule.message)
}

func (binop *BinOp) Translate(ctx *codegen.Context) string {
	left := binop.left.Translate(ctx)
	right := binop.right.Translate(ctx)
	if binop.Op == codegen.ADD && binop.left.Type() == types.TEXT {
		return left + right
	}
	return codegen.TranslateComputation(ctx, binop.Op, &left, &right)
}

// parseLeftExpr keeps an already parsed left arm, otherwise parses one that
// binds tighter than level
func parseLeftExpr(ctx *parser.Context, left **Expr, level int) error {
	if *left != nil {
		return nil
	}
	parsed, err := parseExprFrom(ctx, level+1)
	if err != nil {
		return err
	}
	*left = parsed
	return nil
}

// expressionArmsOfType requires both arms to share one of the allowed types
func expressionArmsOfType(ctx *parser.Context, operator *token.Token, left, right types.Type, allowed []types.Type, message string) error {
	if left == right && left.OneOf(allowed...) {
		return nil
	}
	return ctx.ErrorAt(operator, "%s: %s %s %s", message, left, operator.Name(), right)
}
